package workhourshandler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"timetally/internal/domain/reports"
	"timetally/internal/domain/workhours"
	"timetally/internal/transport/http/api"
)

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/workhours", h.handleCalculate)
	r.Get("/workhours/report.pdf", h.handleReportPDF)
}

// handleCalculate answers with the bare totals tree; its serialization shape
// is the API contract, so there is no response envelope.
func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	tree, ok := h.calculate(w, r)
	if !ok {
		return
	}
	if err := api.WriteJSON(w, http.StatusOK, tree); err != nil {
		h.logger.Warn("write response failed", zap.Error(err))
	}
}

func (h *Handler) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	tree, ok := h.calculate(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if err := reports.WritePDF(&buf, tree, start, end); err != nil {
		h.logger.Error("pdf generation failed", zap.Error(err))
		api.Fail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="workhours.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("write pdf response failed", zap.Error(err))
	}
}

func (h *Handler) calculate(w http.ResponseWriter, r *http.Request) (*workhours.Tree, bool) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	tree, err := workhours.Calculate(start, end)
	if err != nil {
		status := http.StatusInternalServerError
		message := "internal server error"
		if isValidationError(err) {
			status = http.StatusBadRequest
			message = err.Error()
		} else {
			h.logger.Error("calculation failed", zap.Error(err),
				zap.String("start", start), zap.String("end", end))
		}
		api.Fail(w, status, message)
		return nil, false
	}
	return tree, true
}

func isValidationError(err error) bool {
	return errors.Is(err, workhours.ErrStartDate) ||
		errors.Is(err, workhours.ErrEndDate) ||
		errors.Is(err, workhours.ErrInvertedRange)
}
