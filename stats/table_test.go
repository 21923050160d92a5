package stats

import (
	"strings"
	"testing"
	"time"

	"nhl-stats-client/internal/timeutil"
)

func day(value string) time.Time {
	t, err := timeutil.ParseDate(value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNewTableSortsByDate(t *testing.T) {
	tbl := NewTable([]Row{
		{Date: day("2018-10-11"), Record: Record{"goals": 1}},
		{Date: day("2018-10-04"), Record: Record{"goals": 2}},
		{Date: day("2018-10-08"), Record: Record{"goals": 3}},
	})

	dates := tbl.Dates()
	if timeutil.FormatDate(dates[0]) != "2018-10-04" ||
		timeutil.FormatDate(dates[1]) != "2018-10-08" ||
		timeutil.FormatDate(dates[2]) != "2018-10-11" {
		t.Fatalf("unexpected order %v", dates)
	}
}

func TestNewTableDoesNotMutateInput(t *testing.T) {
	rows := []Row{
		{Date: day("2018-10-11")},
		{Date: day("2018-10-04")},
	}
	_ = NewTable(rows)
	if !rows[0].Date.After(rows[1].Date) {
		t.Fatal("input slice was reordered")
	}
}

func TestTableOn(t *testing.T) {
	tbl := NewTable([]Row{
		{Date: day("2018-09-17"), Record: Record{"gamePk": 1}},
		{Date: day("2018-09-17"), Record: Record{"gamePk": 2}},
		{Date: day("2018-10-04"), Record: Record{"gamePk": 3}},
	})

	records := tbl.On(day("2018-09-17"))
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["gamePk"] != 1 || records[1]["gamePk"] != 2 {
		t.Fatalf("unexpected records %+v", records)
	}
	if got := tbl.On(day("2018-12-25")); got != nil {
		t.Fatalf("expected no records, got %+v", got)
	}
}

func TestTableColumnsUnion(t *testing.T) {
	tbl := NewTable([]Row{
		{Date: day("2018-10-04"), Record: Record{"goals": 1, "assists": 2}},
		{Date: day("2018-10-08"), Record: Record{"goals": 0, "shots": 4}},
	})

	cols := tbl.Columns()
	want := []string{"assists", "goals", "shots"}
	if len(cols) != len(want) {
		t.Fatalf("unexpected columns %v", cols)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Fatalf("expected columns %v, got %v", want, cols)
		}
	}
}

func TestTableRender(t *testing.T) {
	tbl := NewTable([]Row{
		{Date: day("2018-10-04"), Record: Record{"goals": 2, "opponent_name": "Boston Bruins"}},
		{Date: day("2018-10-08"), Record: Record{"goals": 1}},
	})

	var sb strings.Builder
	tbl.Render(&sb)
	out := sb.String()

	for _, want := range []string{"DATE", "GOALS", "OPPONENT_NAME", "2018-10-04", "Boston Bruins"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered table missing %q:\n%s", want, out)
		}
	}
}

func TestEmptyTable(t *testing.T) {
	tbl := NewTable(nil)
	if tbl.Len() != 0 || len(tbl.Columns()) != 0 || len(tbl.Dates()) != 0 {
		t.Fatal("expected empty table")
	}
}
