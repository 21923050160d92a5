package stats

import (
	"context"
	"fmt"

	"nhl-stats-client/flatten"
	"nhl-stats-client/internal/timeutil"
	"nhl-stats-client/nhl"
)

// Service composes the API client with flattening into tables.
type Service struct {
	api *nhl.Client
}

// NewService constructs a Service on top of the given client.
func NewService(api *nhl.Client) *Service {
	return &Service{api: api}
}

// PlayerGameLog fetches a player's per-game stats for a season and returns
// them as a table indexed by game date. The "stat" wrapper object flattens
// without a prefix, so e.g. stat.goals becomes the "goals" column; every
// other nested object keeps its key as a prefix (team_name, opponent_id).
func (s *Service) PlayerGameLog(ctx context.Context, playerID int, season nhl.Season) (Table, error) {
	splits, err := s.api.GameLog(ctx, playerID, season)
	if err != nil {
		return Table{}, err
	}

	rows := make([]Row, 0, len(splits))
	for _, split := range splits {
		record := flatten.Unroll(split, flatten.Options{NoPrefix: []string{"stat"}})
		raw, ok := record["date"].(string)
		if !ok {
			return Table{}, fmt.Errorf("stats: game log entry for player %d has no date", playerID)
		}
		date, err := timeutil.ParseDate(raw)
		if err != nil {
			return Table{}, err
		}
		// The date moves into the index, mirroring how the raw field
		// disappears from the columns.
		delete(record, "date")
		rows = append(rows, Row{Date: date, Record: record})
	}
	return NewTable(rows), nil
}
