package nhl

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Season identifies an NHL season as "aaaabbbb", e.g. "20182019".
type Season string

// ErrSeasonFormat is returned when a season string is not two consecutive
// four-digit years.
var ErrSeasonFormat = errors.New("season must be two consecutive years formatted as aaaabbbb")

// Validate checks the "aaaabbbb" shape and that bbbb == aaaa + 1.
func (s Season) Validate() error {
	start, end, err := s.years()
	if err != nil {
		return err
	}
	if end != start+1 {
		return fmt.Errorf("season %q: %w", string(s), ErrSeasonFormat)
	}
	return nil
}

// StartDate returns the first day of the schedule window (Sep 1 of the
// season's first year).
func (s Season) StartDate() string {
	start, _, err := s.years()
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%04d-09-01", start)
}

// EndDate returns the last day of the schedule window (Sep 1 of the
// season's second year).
func (s Season) EndDate() string {
	_, end, err := s.years()
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%04d-09-01", end)
}

func (s Season) years() (int, int, error) {
	raw := string(s)
	if len(raw) != 8 {
		return 0, 0, fmt.Errorf("season %q: %w", raw, ErrSeasonFormat)
	}
	start, err := strconv.Atoi(raw[:4])
	if err != nil {
		return 0, 0, fmt.Errorf("season %q: %w", raw, ErrSeasonFormat)
	}
	end, err := strconv.Atoi(raw[4:])
	if err != nil {
		return 0, 0, fmt.Errorf("season %q: %w", raw, ErrSeasonFormat)
	}
	return start, end, nil
}

// CurrentSeason returns the season in progress at the given instant.
// Seasons roll over on September 1: September through December belong to
// the season starting that year.
func CurrentSeason(now time.Time) Season {
	year := now.Year()
	if now.Month() >= time.September {
		return Season(fmt.Sprintf("%04d%04d", year, year+1))
	}
	return Season(fmt.Sprintf("%04d%04d", year-1, year))
}
