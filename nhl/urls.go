package nhl

import "fmt"

// URL builders for the stats API. Each endpoint is plain string templating
// over the configured base URL; season parameters are validated by the
// calling operation before they reach this layer.

func (c *Client) teamsURL() string {
	return c.baseURL + "/teams"
}

func (c *Client) rosterURL(teamID int) string {
	return fmt.Sprintf("%s/teams/%d?expand=team.roster", c.baseURL, teamID)
}

func (c *Client) playerURL(playerID int) string {
	return fmt.Sprintf("%s/people/%d", c.baseURL, playerID)
}

func (c *Client) gameLogURL(playerID int, season Season) string {
	return fmt.Sprintf("%s/people/%d/stats?stats=gameLog&season=%s", c.baseURL, playerID, season)
}

func (c *Client) scheduleURL(teamID int, season Season) string {
	return fmt.Sprintf("%s/schedule?teamId=%d&startDate=%s&endDate=%s",
		c.baseURL, teamID, season.StartDate(), season.EndDate())
}
