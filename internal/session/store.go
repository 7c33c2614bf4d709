package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/IdleRates_Go/internal/calculator"
	"github.com/osse101/IdleRates_Go/internal/domain"
	"github.com/osse101/IdleRates_Go/internal/logger"
	"github.com/osse101/IdleRates_Go/internal/metrics"
	"github.com/osse101/IdleRates_Go/internal/selection"
)

// Store owns the per-user calculator state. Sessions expire after the TTL.
// Every mutation runs on a copy under the store mutex and is committed only
// when it succeeds, so a rejected edit leaves the session untouched.
type Store struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *State]
	svc      calculator.Service
	now      func() time.Time
}

// NewStore creates a session store backed by an expirable LRU
func NewStore(svc calculator.Service, size int, ttl time.Duration) *Store {
	if size <= 0 {
		size = DefaultStoreSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: expirable.NewLRU[string, *State](size, nil, ttl),
		svc:      svc,
		now:      time.Now,
	}
}

// Create starts a new session with every selection at its default
func (s *Store) Create(ctx context.Context) *State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := newState(uuid.New().String(), s.now())
	s.sessions.Add(state.ID, state)
	metrics.SessionsCreatedTotal.Inc()

	logger.FromContext(ctx).Debug(LogMsgSessionCreated, "session_id", state.ID)
	return state.clone()
}

// Get returns a copy of a session
func (s *Store) Get(id string) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return state.clone(), nil
}

// Delete removes a session
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Remove(id)
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	return s.sessions.Len()
}

// PatchBoosts edits the selection of one activity
func (s *Store) PatchBoosts(ctx context.Context, id string, activity domain.ActivityKey, patch selection.Patch) (*State, error) {
	return s.mutate(id, func(state *State) error {
		current, ok := state.Selections[activity]
		if !ok {
			current = domain.DefaultBoostSelection()
		}

		next, err := s.svc.ApplySelection(activity, current, patch)
		if err != nil {
			logger.FromContext(ctx).Debug(LogMsgBoostsRejected, "session_id", id, "activity", activity, "error", err)
			return err
		}
		state.Selections[activity] = next
		return nil
	})
}

// SetGeneral replaces the shared buffs
func (s *Store) SetGeneral(id string, general domain.GeneralBuffs) (*State, error) {
	return s.mutate(id, func(state *State) error {
		if err := s.svc.ValidateGeneral(general); err != nil {
			return err
		}
		state.General = general
		return nil
	})
}

// SetGathering replaces the tiered gathering buffs
func (s *Store) SetGathering(id string, gathering domain.GatheringBuffs) (*State, error) {
	return s.mutate(id, func(state *State) error {
		if err := s.svc.ValidateGathering(gathering); err != nil {
			return err
		}
		state.Gathering = gathering
		return nil
	})
}

// SetUpgrades replaces the boolean upgrades
func (s *Store) SetUpgrades(id string, upgrades domain.UpgradeBuffs) (*State, error) {
	return s.mutate(id, func(state *State) error {
		state.Upgrades = upgrades
		return nil
	})
}

// SetTarget changes the activity, item, current experience or target level.
// Switching activity clears the item and, when a player is loaded and no
// experience is given, fills the current experience from the player record.
func (s *Store) SetTarget(ctx context.Context, id string, target Target) (*State, error) {
	return s.mutate(id, func(state *State) error {
		if target.Activity != nil && *target.Activity != state.Activity {
			activity, err := s.svc.Activity(*target.Activity)
			if err != nil {
				return err
			}
			state.Activity = activity.Key
			state.Item = ""
			if state.PlayerExperience != nil {
				state.CurrentExperience = state.PlayerExperience[activity.Key]
			}
			logger.FromContext(ctx).Debug(LogMsgActivityChanged, "session_id", id, "activity", activity.Key)
		}

		if target.Item != nil {
			state.Item = *target.Item
		}
		if target.CurrentExperience != nil {
			if *target.CurrentExperience < 0 {
				return fmt.Errorf(ErrFmtNegativeXP, domain.ErrInvalidInput, *target.CurrentExperience)
			}
			state.CurrentExperience = *target.CurrentExperience
		}
		if target.TargetLevel != nil {
			if _, err := s.svc.Level(*target.TargetLevel); err != nil {
				return err
			}
			state.TargetLevel = *target.TargetLevel
		}
		return nil
	})
}

// LoadPlayer fetches a player record, infers its state and replaces the
// session's selections and buffs with it in one step
func (s *Store) LoadPlayer(ctx context.Context, id, name string) (*State, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	inferred, err := s.svc.PlayerBoosts(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.ApplyInferred(ctx, id, inferred)
}

// ApplyInferred bulk-replaces the session's selections and buffs with an inferred state
func (s *Store) ApplyInferred(ctx context.Context, id string, inferred *domain.InferredState) (*State, error) {
	if inferred == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNilInferred)
	}
	state, err := s.mutate(id, func(state *State) error {
		state.applyInferred(inferred, s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgPlayerLoaded, "session_id", id, "username", inferred.Username)
	return state, nil
}

// Reset returns a session to its defaults, keeping its id
func (s *Store) Reset(ctx context.Context, id string) (*State, error) {
	state, err := s.mutate(id, func(state *State) error {
		state.reset(s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug(LogMsgSessionReset, "session_id", id)
	return state, nil
}

// Result calculates the rates for the session's current activity and item
func (s *Store) Result(ctx context.Context, id string) (*domain.RateResult, error) {
	state, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if state.Item == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNoItemSelected)
	}

	sel := state.Selection()
	general := state.General
	return s.svc.Calculate(ctx, calculator.Request{
		Activity:          state.Activity,
		Item:              state.Item,
		Selection:         &sel,
		General:           &general,
		Gathering:         state.Gathering,
		Upgrades:          state.Upgrades,
		CurrentExperience: state.CurrentExperience,
		TargetLevel:       state.TargetLevel,
	})
}

// mutate applies fn to a copy of the session and commits the copy on success
func (s *Store) mutate(id string, fn func(*State) error) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	next := current.clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	next.UpdatedAt = s.now()
	s.sessions.Add(id, next)
	return next.clone(), nil
}

// lookup must be called with the mutex held
func (s *Store) lookup(id string) (*State, error) {
	state, ok := s.sessions.Get(id)
	if !ok {
		metrics.CacheLookupsTotal.WithLabelValues(metrics.CacheSessions, metrics.CacheMiss).Inc()
		return nil, fmt.Errorf(ErrFmtSessionNotFound, domain.ErrSessionNotFound, id)
	}
	metrics.CacheLookupsTotal.WithLabelValues(metrics.CacheSessions, metrics.CacheHit).Inc()
	return state, nil
}
