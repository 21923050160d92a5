// Package search resolves team and player names to API identifiers using
// Jaro-Winkler string similarity.
package search

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/antzucaro/matchr"

	"nhl-stats-client/nhl"
)

// maxMatches bounds every lookup to the three best candidates.
const maxMatches = 3

// Match is a ranked candidate for a name lookup.
type Match struct {
	Name  string
	ID    int
	Score float64
}

// TeamRef selects a team by id or by name. Exactly one field must be set.
type TeamRef struct {
	ID   int
	Name string
}

// ErrTeamRef is returned when a TeamRef sets both fields or neither.
var ErrTeamRef = errors.New("search: exactly one of TeamRef.ID or TeamRef.Name must be set")

// Searcher performs fuzzy lookups against live API data.
type Searcher struct {
	api *nhl.Client
}

// New constructs a Searcher on top of the given client.
func New(api *nhl.Client) *Searcher {
	return &Searcher{api: api}
}

// FindTeamID returns the three team names closest to name, best first,
// each carrying the team's id.
func (s *Searcher) FindTeamID(ctx context.Context, name string) ([]Match, error) {
	teams, err := s.api.Teams(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make(map[string]int, len(teams))
	for _, t := range teams {
		candidates[t.Name] = t.ID
	}
	return rank(name, candidates), nil
}

// FindPlayerID returns the three roster names closest to name, best first.
// The roster to search comes from team: either an explicit id, or a team
// name which resolves through FindTeamID's best match.
func (s *Searcher) FindPlayerID(ctx context.Context, name string, team TeamRef) ([]Match, error) {
	if (team.ID != 0) == (team.Name != "") {
		return nil, ErrTeamRef
	}

	teamID := team.ID
	if teamID == 0 {
		teamMatches, err := s.FindTeamID(ctx, team.Name)
		if err != nil {
			return nil, err
		}
		if len(teamMatches) == 0 {
			return nil, fmt.Errorf("search: no team matching %q", team.Name)
		}
		teamID = teamMatches[0].ID
	}

	roster, err := s.api.Roster(ctx, teamID)
	if err != nil {
		return nil, err
	}

	candidates := make(map[string]int, len(roster))
	for _, entry := range roster {
		candidates[entry.Person.FullName] = entry.Person.ID
	}
	return rank(name, candidates), nil
}

// rank scores every candidate against the query and keeps the top three.
// Candidates are visited in sorted-name order so equal scores break ties
// deterministically.
func rank(query string, candidates map[string]int) []Match {
	names := make([]string, 0, len(candidates))
	for n := range candidates {
		names = append(names, n)
	}
	sort.Strings(names)

	q := strings.ToLower(query)
	matches := make([]Match, 0, len(names))
	for _, n := range names {
		matches = append(matches, Match{
			Name:  n,
			ID:    candidates[n],
			Score: matchr.JaroWinkler(q, strings.ToLower(n), false),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}
	return matches
}
