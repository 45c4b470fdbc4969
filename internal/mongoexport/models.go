package mongoexport

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt tolerates the mixed numeric encodings seen in mongo exports:
// plain numbers, quoted numbers, or garbage. Anything unusable decodes
// to zero so one bad value never rejects a whole document.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	*f = 0
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			*f = FlexInt(v)
		}
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err == nil {
		*f = FlexInt(v)
	}
	return nil
}

// Int returns the decoded value.
func (f FlexInt) Int() int { return int(f) }

// TeamSeason is one season entry under a player's includedTeams.
type TeamSeason struct {
	TeamCode     string             `json:"teamCode"`
	Awards       map[string]FlexInt `json:"awards"`
	TotalGoals   FlexInt            `json:"totalGoals"`
	TotalAssists FlexInt            `json:"totalAssistence"`
	TotalGames   FlexInt            `json:"totalGamePlayed"`
	TotalWins    FlexInt            `json:"totalWins"`
	TotalDefeats FlexInt            `json:"totalDefeat"`
	TotalDraws   FlexInt            `json:"totalDraw"`
}

// PlayerDoc is a player document as exported from the league database.
type PlayerDoc struct {
	FullName          string       `json:"fullName"`
	Position          string       `json:"position"`
	PrizeDrawPosition string       `json:"prizeDrawPosition"`
	ImagePlayer       string       `json:"imagePlayer"`
	TeamCode          string       `json:"teamCode"`
	IncludedTeams     []TeamSeason `json:"includedTeams"`
}

// Name returns the trimmed player name.
func (d PlayerDoc) Name() string {
	return strings.TrimSpace(d.FullName)
}

// IsGoalkeeper reports whether the player's registered position marks
// them as a goalkeeper.
func (d PlayerDoc) IsGoalkeeper() bool {
	return strings.Contains(strings.ToLower(d.Position), "goleiro")
}

// ImageURL returns the player photo URL, or empty when the stored
// value is not an http(s) link.
func (d PlayerDoc) ImageURL() string {
	url := strings.TrimSpace(d.ImagePlayer)
	if strings.HasPrefix(url, "http") {
		return url
	}
	return ""
}

// CurrentSeason returns the includedTeams entry matching the player's
// root teamCode. Stats from other seasons are ignored.
func (d PlayerDoc) CurrentSeason() (TeamSeason, bool) {
	code := strings.TrimSpace(d.TeamCode)
	if code == "" {
		return TeamSeason{}, false
	}
	for _, season := range d.IncludedTeams {
		if strings.TrimSpace(season.TeamCode) == code {
			return season, true
		}
	}
	return TeamSeason{}, false
}
