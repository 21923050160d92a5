package nhl

import "time"

const (
	defaultBaseURL     = "https://statsapi.web.nhl.com/api/v1"
	defaultHTTPTimeout = 10 * time.Second

	// Upstream error bodies are truncated to keep StatusError printable.
	maxErrorBody = 512
)

// Endpoint labels used for metrics and logging.
const (
	endpointTeams    = "teams"
	endpointRoster   = "roster"
	endpointPlayer   = "player"
	endpointGameLog  = "gamelog"
	endpointSchedule = "schedule"
)
