// Package stats turns raw API payloads into date-indexed tabular records.
package stats

import (
	"io"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"nhl-stats-client/internal/timeutil"
)

// Record is one flattened row of statistic or schedule fields.
type Record map[string]any

// Row pairs a record with its parsed date index.
type Row struct {
	Date   time.Time
	Record Record
}

// Table holds rows sorted ascending by date. The sort is stable, so two
// games on the same date (NHL preseason allows this) keep their input
// order.
type Table struct {
	rows []Row
}

// NewTable sorts the given rows by date and wraps them.
func NewTable(rows []Row) Table {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return Table{rows: sorted}
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.rows)
}

// Rows returns the sorted rows.
func (t Table) Rows() []Row {
	return t.rows
}

// Dates returns the date index, in row order.
func (t Table) Dates() []time.Time {
	dates := make([]time.Time, len(t.rows))
	for i, r := range t.rows {
		dates[i] = r.Date
	}
	return dates
}

// On returns the records indexed at the given date.
func (t Table) On(date time.Time) []Record {
	var records []Record
	for _, r := range t.rows {
		if r.Date.Equal(date) {
			records = append(records, r.Record)
		}
	}
	return records
}

// Columns returns the sorted union of all record keys.
func (t Table) Columns() []string {
	seen := make(map[string]struct{})
	for _, r := range t.rows {
		for k := range r.Record {
			seen[k] = struct{}{}
		}
	}
	cols := make([]string, 0, len(seen))
	for k := range seen {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

// Render writes the table to w with the date as the leading column.
// Missing cells render empty.
func (t Table) Render(w io.Writer) {
	cols := t.Columns()

	tw := table.NewWriter()
	tw.SetOutputMirror(w)

	header := table.Row{"date"}
	for _, c := range cols {
		header = append(header, c)
	}
	tw.AppendHeader(header)

	for _, r := range t.rows {
		row := table.Row{timeutil.FormatDate(r.Date)}
		for _, c := range cols {
			if v, ok := r.Record[c]; ok {
				row = append(row, v)
			} else {
				row = append(row, "")
			}
		}
		tw.AppendRow(row)
	}

	tw.SetStyle(table.StyleRounded)
	tw.Render()
}
