package flatten

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnrollNestedObjects(t *testing.T) {
	in := map[string]any{
		"date": "2018-10-03",
		"team": map[string]any{
			"id":   float64(1),
			"name": "New Jersey Devils",
		},
		"game": map[string]any{
			"gamePk": float64(2018020001),
			"content": map[string]any{
				"link": "/api/v1/game/2018020001/content",
			},
		},
	}

	got := Unroll(in, Options{})
	want := map[string]any{
		"date":              "2018-10-03",
		"team_id":           float64(1),
		"team_name":         "New Jersey Devils",
		"game_gamePk":       float64(2018020001),
		"game_content_link": "/api/v1/game/2018020001/content",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestUnrollBlacklistDropsAtAnyDepth(t *testing.T) {
	in := map[string]any{
		"link": "/api/v1/teams/1",
		"team": map[string]any{
			"id":   float64(1),
			"link": "/api/v1/teams/1",
		},
	}

	got := Unroll(in, Options{Blacklist: []string{"link"}})
	want := map[string]any{"team_id": float64(1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestUnrollPrefix(t *testing.T) {
	in := map[string]any{
		"goals": float64(2),
		"shots": float64(5),
	}

	got := Unroll(in, Options{Prefix: "stat"})
	want := map[string]any{
		"stat_goals": float64(2),
		"stat_shots": float64(5),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestUnrollNoPrefixKeys(t *testing.T) {
	in := map[string]any{
		"stat": map[string]any{
			"goals":   float64(1),
			"assists": float64(2),
		},
		"opponent": map[string]any{
			"name": "Boston Bruins",
		},
	}

	got := Unroll(in, Options{NoPrefix: []string{"stat"}})
	want := map[string]any{
		"goals":         float64(1),
		"assists":       float64(2),
		"opponent_name": "Boston Bruins",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestUnrollLeavesArraysAlone(t *testing.T) {
	in := map[string]any{
		"tags": []any{"a", "b"},
	}

	got := Unroll(in, Options{})
	want := map[string]any{"tags": []any{"a", "b"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestUnrollDoesNotMutateInput(t *testing.T) {
	in := map[string]any{
		"outer": map[string]any{"inner": "v"},
	}

	_ = Unroll(in, Options{})
	if _, ok := in["outer"].(map[string]any); !ok {
		t.Fatal("input map was mutated")
	}
	if len(in) != 1 {
		t.Fatalf("input map changed size: %d", len(in))
	}
}

func TestUnrollEmpty(t *testing.T) {
	if got := Unroll(nil, Options{}); len(got) != 0 {
		t.Fatalf("expected empty record, got %v", got)
	}
	if got := Unroll(map[string]any{}, Options{Prefix: "p"}); len(got) != 0 {
		t.Fatalf("expected empty record, got %v", got)
	}
}
