package telemetry

import (
	"sort"
)

// SummaryKey groups entries by field and requested locale.
type SummaryKey struct {
	FieldName       string
	RequestedLocale string
}

// Summary counts missing translations per SummaryKey.
type Summary map[SummaryKey]int

// SummaryRow is a flattened Summary entry.
type SummaryRow struct {
	FieldName       string `json:"fieldName"`
	RequestedLocale string `json:"requestedLocale"`
	Count           int    `json:"count"`
}

// Summarize aggregates a log on read. Entries without a field name are
// grouped under the empty name.
func Summarize(entries []Entry) Summary {
	summary := make(Summary)
	for _, entry := range entries {
		summary[SummaryKey{FieldName: entry.FieldName, RequestedLocale: entry.RequestedLocale}]++
	}
	return summary
}

// Total returns the number of entries the summary was built from.
func (s Summary) Total() int {
	total := 0
	for _, count := range s {
		total += count
	}
	return total
}

// Rows returns the summary ordered by descending count, then field and locale.
func (s Summary) Rows() []SummaryRow {
	rows := make([]SummaryRow, 0, len(s))
	for key, count := range s {
		rows = append(rows, SummaryRow{FieldName: key.FieldName, RequestedLocale: key.RequestedLocale, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		if rows[i].FieldName != rows[j].FieldName {
			return rows[i].FieldName < rows[j].FieldName
		}
		return rows[i].RequestedLocale < rows[j].RequestedLocale
	})
	return rows
}
