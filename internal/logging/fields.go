package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldEndpoint   = "endpoint"
	FieldURL        = "url"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"
	FieldCount      = "count"
	FieldSeason     = "season"
	FieldTeamID     = "team_id"
	FieldPlayerID   = "player_id"
)
