package stats

import (
	"context"

	"nhl-stats-client/flatten"
	"nhl-stats-client/internal/timeutil"
	"nhl-stats-client/nhl"
)

// TeamSchedule fetches a team's scheduled games for a season and returns
// one fully unrolled row per game, indexed by the schedule date.
func (s *Service) TeamSchedule(ctx context.Context, teamID int, season nhl.Season) (Table, error) {
	dates, err := s.api.Schedule(ctx, teamID, season)
	if err != nil {
		return Table{}, err
	}

	var rows []Row
	for _, d := range dates {
		date, err := timeutil.ParseDate(d.Date)
		if err != nil {
			return Table{}, err
		}
		for _, game := range d.Games {
			rows = append(rows, Row{
				Date:   date,
				Record: flatten.Unroll(game, flatten.Options{}),
			})
		}
	}
	return NewTable(rows), nil
}
