// Package nhl is a thin synchronous client for the NHL stats REST API.
package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nhl-stats-client/internal/config"
	"nhl-stats-client/internal/logging"
	"nhl-stats-client/metrics"
)

// Config controls how the client reaches the stats API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// ConfigFromEnv builds a Config from environment variables, leaving the
// HTTP client, logger and recorder at their defaults.
func ConfigFromEnv() Config {
	cfg := config.Load()
	return Config{
		BaseURL:    cfg.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// Client fetches data from the NHL stats API. All calls are synchronous
// and blocking; there is no retry, caching or pagination layer.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	metrics    *metrics.Recorder
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
	}
}

// Teams lists every franchise known to the API.
func (c *Client) Teams(ctx context.Context) ([]Team, error) {
	var payload teamsResponse
	if err := c.getJSON(ctx, endpointTeams, c.teamsURL(), &payload); err != nil {
		return nil, err
	}
	return payload.Teams, nil
}

// Roster returns the current roster for a team.
func (c *Client) Roster(ctx context.Context, teamID int) ([]RosterEntry, error) {
	var payload rosterResponse
	if err := c.getJSON(ctx, endpointRoster, c.rosterURL(teamID), &payload); err != nil {
		return nil, err
	}
	if len(payload.Teams) == 0 {
		return nil, fmt.Errorf("nhl: no team in roster response for id %d", teamID)
	}
	return payload.Teams[0].Roster.Roster, nil
}

// Player fetches the person record for a player id.
func (c *Client) Player(ctx context.Context, playerID int) (Player, error) {
	var payload peopleResponse
	if err := c.getJSON(ctx, endpointPlayer, c.playerURL(playerID), &payload); err != nil {
		return Player{}, err
	}
	if len(payload.People) == 0 {
		return Player{}, fmt.Errorf("nhl: no person in response for id %d", playerID)
	}
	return payload.People[0], nil
}

// GameLog returns the raw per-game splits for a player and season.
func (c *Client) GameLog(ctx context.Context, playerID int, season Season) ([]map[string]any, error) {
	if err := season.Validate(); err != nil {
		return nil, err
	}
	var payload gameLogResponse
	if err := c.getJSON(ctx, endpointGameLog, c.gameLogURL(playerID, season), &payload); err != nil {
		return nil, err
	}
	if len(payload.Stats) == 0 {
		return nil, fmt.Errorf("nhl: empty game log payload for player %d season %s", playerID, season)
	}
	return payload.Stats[0].Splits, nil
}

// Schedule returns the raw schedule dates for a team across a season's
// window (Sep 1 of the first year through Sep 1 of the second).
func (c *Client) Schedule(ctx context.Context, teamID int, season Season) ([]ScheduleDate, error) {
	if err := season.Validate(); err != nil {
		return nil, err
	}
	var payload scheduleResponse
	if err := c.getJSON(ctx, endpointSchedule, c.scheduleURL(teamID, season), &payload); err != nil {
		return nil, err
	}
	return payload.Dates, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, url string, dest any) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.RecordAPICall(endpoint, time.Since(start), err)
	}()

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if reqErr != nil {
		err = reqErr
		return err
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		err = doErr
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		err = &StatusError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
		return err
	}

	if decodeErr := json.NewDecoder(resp.Body).Decode(dest); decodeErr != nil {
		err = fmt.Errorf("nhl: decoding %s response: %w", endpoint, decodeErr)
		return err
	}

	c.logDebug(ctx, "api call",
		slog.String(logging.FieldEndpoint, endpoint),
		slog.String(logging.FieldURL, url),
		slog.Int(logging.FieldStatusCode, resp.StatusCode),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return nil
}

func (c *Client) logDebug(ctx context.Context, msg string, attrs ...slog.Attr) {
	if c.logger == nil {
		return
	}
	c.logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}
