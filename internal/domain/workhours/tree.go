package workhours

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Tree is the aggregated result: hours per reporting period, rolled up into
// month, year and grand totals. Serialization order is part of the wire
// contract (keys ascending, "total" last at every level), so each level
// marshals its map by hand instead of relying on struct tags.
type Tree struct {
	Years map[string]*YearTotals
	Total uint32
}

// YearTotals holds one calendar year keyed by "MM-MonthName".
type YearTotals struct {
	Months map[string]*MonthTotals
	Total  uint32
}

// MonthTotals holds one calendar month keyed by period label ("week: N").
type MonthTotals struct {
	Periods map[string]uint32
	Total   uint32
}

func newTree() *Tree {
	return &Tree{Years: make(map[string]*YearTotals)}
}

// add records hours for one period and bumps every enclosing total.
func (t *Tree) add(yearKey, monthKey, periodKey string, hours uint32) {
	year, ok := t.Years[yearKey]
	if !ok {
		year = &YearTotals{Months: make(map[string]*MonthTotals)}
		t.Years[yearKey] = year
	}
	month, ok := year.Months[monthKey]
	if !ok {
		month = &MonthTotals{Periods: make(map[string]uint32)}
		year.Months[monthKey] = month
	}
	month.Periods[periodKey] = hours
	month.Total += hours
	year.Total += hours
	t.Total += hours
}

// YearKeys returns the year keys in ascending order.
func (t *Tree) YearKeys() []string {
	return sortedKeys(t.Years)
}

// MonthKeys returns the month keys in ascending order.
func (y *YearTotals) MonthKeys() []string {
	return sortedKeys(y.Months)
}

// PeriodKeys returns the period labels in ascending label order.
func (m *MonthTotals) PeriodKeys() []string {
	return sortedKeys(m.Periods)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (t *Tree) MarshalJSON() ([]byte, error) {
	return marshalLevel(t.Years, t.YearKeys(), t.Total)
}

func (y *YearTotals) MarshalJSON() ([]byte, error) {
	return marshalLevel(y.Months, y.MonthKeys(), y.Total)
}

func (m *MonthTotals) MarshalJSON() ([]byte, error) {
	return marshalLevel(m.Periods, m.PeriodKeys(), m.Total)
}

func marshalLevel[V any](entries map[string]V, keys []string, total uint32) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for _, key := range keys {
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entries[key])
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
		buf.WriteByte(',')
	}
	buf.WriteString(`"total":`)
	totalJSON, err := json.Marshal(total)
	if err != nil {
		return nil, err
	}
	buf.Write(totalJSON)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
