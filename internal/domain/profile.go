package domain

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strconv"
)

// PlayerProfile is a player record as returned by the public game API
type PlayerProfile struct {
	Username         string             `json:"username"`
	ClanName         string             `json:"guildName,omitempty"`
	SkillExperiences map[string]float64 `json:"skillExperiences"`
	Upgrades         Upgrades           `json:"upgrades,omitempty"`
	Clan             *ClanRecord        `json:"clan,omitempty"`
}

// ClanRecord holds the clan-side data used by inference.
// SerializedUpgrades is kept raw: the API has shipped it as a JSON string,
// a legacy comma separated string and a plain numeric array.
type ClanRecord struct {
	ClanName           string          `json:"clanName,omitempty"`
	GuildName          string          `json:"guildName,omitempty"`
	SerializedUpgrades json.RawMessage `json:"serializedUpgrades,omitempty"`
}

// Name returns the clan name under either field the API uses
func (c *ClanRecord) Name() string {
	if c == nil {
		return ""
	}
	if c.ClanName != "" {
		return c.ClanName
	}
	return c.GuildName
}

// Experience returns the cumulative experience for an activity, 0 when absent
func (p *PlayerProfile) Experience(activity ActivityKey) float64 {
	if p == nil || p.SkillExperiences == nil {
		return 0
	}
	return p.SkillExperiences[string(activity)]
}

// InClan reports whether the player belongs to a clan
func (p *PlayerProfile) InClan() bool {
	return p != nil && p.ClanName != ""
}

// Upgrades is the raw upgrade map of a player record
type Upgrades map[string]UpgradeValue

// Counter returns the numeric value of a named upgrade, 0 when absent
func (u Upgrades) Counter(name string) int {
	if u == nil {
		return 0
	}
	return int(u[name])
}

// Has reports whether a named upgrade counter is positive
func (u Upgrades) Has(name string) bool {
	return u.Counter(name) > 0
}

// UpgradeValue accepts a number, a numeric string or a boolean (true = 1).
// Anything else decodes as 0 so one bad upgrade never rejects the record.
type UpgradeValue float64

// UnmarshalJSON implements json.Unmarshaler
func (v *UpgradeValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch string(trimmed) {
	case "null", "false":
		*v = 0
		return nil
	case "true":
		*v = 1
		return nil
	}

	var n float64
	if err := json.Unmarshal(trimmed, &n); err == nil {
		*v = UpgradeValue(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			*v = UpgradeValue(n)
			return nil
		}
	}

	slog.Warn(LogMsgMalformedUpgradeValue, "value", string(trimmed))
	*v = 0
	return nil
}

// InferredState is the complete calculator state derived from one player record
type InferredState struct {
	Username          string                         `json:"username"`
	ClanName          string                         `json:"clan_name,omitempty"`
	Experience        map[ActivityKey]float64        `json:"experience"`
	Levels            map[ActivityKey]int            `json:"levels"`
	Selections        map[ActivityKey]BoostSelection `json:"selections"`
	General           GeneralBuffs                   `json:"general"`
	Gathering         GatheringBuffs                 `json:"gathering"`
	Upgrades          UpgradeBuffs                   `json:"upgrades"`
	MalformedUpgrades bool                           `json:"malformed_upgrades,omitempty"`
}
