package nhl

// Team is a franchise as returned by the /teams endpoint.
type Team struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Abbreviation    string `json:"abbreviation"`
	TeamName        string `json:"teamName"`
	LocationName    string `json:"locationName"`
	FirstYearOfPlay string `json:"firstYearOfPlay"`
	Active          bool   `json:"active"`
}

// Person is the identity nested inside roster entries.
type Person struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

// Position describes where a player lines up.
type Position struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Abbreviation string `json:"abbreviation"`
}

// RosterEntry is one player on a team roster.
type RosterEntry struct {
	Person       Person   `json:"person"`
	JerseyNumber string   `json:"jerseyNumber"`
	Position     Position `json:"position"`
}

// Player is the full person record from /people/{id}.
type Player struct {
	ID              int      `json:"id"`
	FullName        string   `json:"fullName"`
	PrimaryNumber   string   `json:"primaryNumber"`
	BirthDate       string   `json:"birthDate"`
	CurrentAge      int      `json:"currentAge"`
	Nationality     string   `json:"nationality"`
	Active          bool     `json:"active"`
	PrimaryPosition Position `json:"primaryPosition"`
}

// ScheduleDate groups the games played on a single calendar date. Games
// stay generic JSON objects so callers can flatten them whole.
type ScheduleDate struct {
	Date  string           `json:"date"`
	Games []map[string]any `json:"games"`
}

type teamsResponse struct {
	Teams []Team `json:"teams"`
}

type rosterResponse struct {
	Teams []rosterTeam `json:"teams"`
}

type rosterTeam struct {
	ID     int        `json:"id"`
	Roster rosterList `json:"roster"`
}

type rosterList struct {
	Roster []RosterEntry `json:"roster"`
}

type peopleResponse struct {
	People []Player `json:"people"`
}

type gameLogResponse struct {
	Stats []gameLogStats `json:"stats"`
}

type gameLogStats struct {
	Splits []map[string]any `json:"splits"`
}

type scheduleResponse struct {
	Dates []ScheduleDate `json:"dates"`
}
