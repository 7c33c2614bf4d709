package session

import (
	"time"

	"github.com/osse101/IdleRates_Go/internal/domain"
)

// State is the full calculator context of one user session
type State struct {
	ID string `json:"id"`

	Activity          domain.ActivityKey `json:"activity"`
	Item              string             `json:"item,omitempty"`
	CurrentExperience float64            `json:"current_experience"`
	TargetLevel       int                `json:"target_level"`

	Selections map[domain.ActivityKey]domain.BoostSelection `json:"selections"`
	General    domain.GeneralBuffs                          `json:"general"`
	Gathering  domain.GatheringBuffs                        `json:"gathering"`
	Upgrades   domain.UpgradeBuffs                          `json:"upgrades"`

	PlayerName       string                         `json:"player_name,omitempty"`
	ClanName         string                         `json:"clan_name,omitempty"`
	PlayerExperience map[domain.ActivityKey]float64 `json:"player_experience,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Target changes what the session calculates. Nil fields are left unchanged.
type Target struct {
	Activity          *domain.ActivityKey `json:"activity,omitempty" validate:"omitnil,activity"`
	Item              *string             `json:"item,omitempty" validate:"omitnil,max=100"`
	CurrentExperience *float64            `json:"current_experience,omitempty" validate:"omitnil,min=0"`
	TargetLevel       *int                `json:"target_level,omitempty" validate:"omitnil,min=1,max=121"`
}

func newState(id string, now time.Time) *State {
	s := &State{
		ID:        id,
		CreatedAt: now,
	}
	s.reset(now)
	return s
}

// reset returns every field except identity to its default
func (s *State) reset(now time.Time) {
	s.Activity = domain.ActivityCrafting
	s.Item = ""
	s.CurrentExperience = 0
	s.TargetLevel = domain.DefaultTargetLevel

	s.Selections = make(map[domain.ActivityKey]domain.BoostSelection, len(domain.AllActivities))
	for _, activity := range domain.AllActivities {
		s.Selections[activity] = domain.DefaultBoostSelection()
	}
	s.General = domain.DefaultGeneralBuffs()
	s.Gathering = domain.GatheringBuffs{}
	s.Upgrades = domain.UpgradeBuffs{}

	s.PlayerName = ""
	s.ClanName = ""
	s.PlayerExperience = nil
	s.UpdatedAt = now
}

// applyInferred replaces selections and buffs wholesale with an inferred state
func (s *State) applyInferred(in *domain.InferredState, now time.Time) {
	s.Selections = make(map[domain.ActivityKey]domain.BoostSelection, len(domain.AllActivities))
	for _, activity := range domain.AllActivities {
		sel, ok := in.Selections[activity]
		if !ok {
			sel = domain.DefaultBoostSelection()
		}
		s.Selections[activity] = sel
	}
	s.General = in.General
	s.Gathering = in.Gathering
	s.Upgrades = in.Upgrades

	s.PlayerName = in.Username
	s.ClanName = in.ClanName
	s.PlayerExperience = make(map[domain.ActivityKey]float64, len(in.Experience))
	for activity, xp := range in.Experience {
		s.PlayerExperience[activity] = xp
	}
	s.CurrentExperience = s.PlayerExperience[s.Activity]
	s.UpdatedAt = now
}

// Selection returns the selection of the current activity
func (s *State) Selection() domain.BoostSelection {
	if sel, ok := s.Selections[s.Activity]; ok {
		return sel
	}
	return domain.DefaultBoostSelection()
}

func (s *State) clone() *State {
	c := *s
	c.Selections = make(map[domain.ActivityKey]domain.BoostSelection, len(s.Selections))
	for k, v := range s.Selections {
		c.Selections[k] = v
	}
	if s.PlayerExperience != nil {
		c.PlayerExperience = make(map[domain.ActivityKey]float64, len(s.PlayerExperience))
		for k, v := range s.PlayerExperience {
			c.PlayerExperience[k] = v
		}
	}
	return &c
}
