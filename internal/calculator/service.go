package calculator

import (
	"context"
	"fmt"
	"math"

	"github.com/osse101/IdleRates_Go/internal/boost"
	"github.com/osse101/IdleRates_Go/internal/catalog"
	"github.com/osse101/IdleRates_Go/internal/domain"
	"github.com/osse101/IdleRates_Go/internal/inference"
	"github.com/osse101/IdleRates_Go/internal/leveling"
	"github.com/osse101/IdleRates_Go/internal/logger"
	"github.com/osse101/IdleRates_Go/internal/metrics"
	"github.com/osse101/IdleRates_Go/internal/naming"
	"github.com/osse101/IdleRates_Go/internal/profile"
	"github.com/osse101/IdleRates_Go/internal/rates"
	"github.com/osse101/IdleRates_Go/internal/selection"
)

// Service is the entry point to the rate engine
type Service interface {
	// Calculate resolves the item, folds the bonuses and returns the full result record
	Calculate(ctx context.Context, req Request) (*domain.RateResult, error)

	// InferProfile derives a complete calculator state from a player record
	InferProfile(ctx context.Context, p *domain.PlayerProfile) (*domain.InferredState, error)

	// PlayerBoosts fetches a player record by name and infers its state
	PlayerBoosts(ctx context.Context, name string) (*domain.InferredState, error)

	// ApplySelection applies a partial edit to a selection for an activity
	ApplySelection(activity domain.ActivityKey, current domain.BoostSelection, patch selection.Patch) (domain.BoostSelection, error)

	ValidateGeneral(g domain.GeneralBuffs) error
	ValidateGathering(g domain.GatheringBuffs) error

	Activities() []*domain.Activity
	Activity(key domain.ActivityKey) (*domain.Activity, error)
	Bonuses() *catalog.Bonuses

	// Level returns the cumulative experience required for a level (1-121)
	Level(level int) (LevelInfo, error)

	// Progress locates an experience total within the level table
	Progress(xp float64) (leveling.Progress, error)
}

type service struct {
	table      *leveling.Table
	catalog    *catalog.Catalog
	selections *selection.Engine
	inference  *inference.Engine
	aggregator *boost.Aggregator
	calculator *rates.Calculator
	resolver   naming.Resolver
	source     profile.Source
}

// NewService wires the engines over a loaded level table and catalog.
// source may be nil, in which case PlayerBoosts reports the source as down.
func NewService(table *leveling.Table, cat *catalog.Catalog, source profile.Source) Service {
	return &service{
		table:      table,
		catalog:    cat,
		selections: selection.NewEngine(cat.Bonuses),
		inference:  inference.NewEngine(table),
		aggregator: boost.NewAggregator(cat.Bonuses),
		calculator: rates.NewCalculator(table),
		resolver:   naming.NewResolver(cat.Activities.All()),
		source:     source,
	}
}

// Calculate resolves the item, folds the bonuses and returns the full result record
func (s *service) Calculate(ctx context.Context, req Request) (*domain.RateResult, error) {
	log := logger.FromContext(ctx)

	result, err := s.calculate(req)
	metrics.CalculationsTotal.WithLabelValues(string(req.Activity), metrics.ResultFromError(err)).Inc()
	if err != nil {
		log.Debug(LogMsgCalculationFailed, "activity", req.Activity, "item", req.Item, "error", err)
		return nil, err
	}

	log.Debug(LogMsgCalculated,
		"activity", result.Activity,
		"item", result.ItemName,
		"xp_per_hour", result.XPPerHour,
		"repetitions", result.RepetitionsNeeded)
	return result, nil
}

func (s *service) calculate(req Request) (*domain.RateResult, error) {
	activity, err := s.catalog.Activities.Get(req.Activity)
	if err != nil {
		return nil, err
	}

	name, err := s.resolver.ResolveOrError(activity.Key, req.Item)
	if err != nil {
		return nil, err
	}
	item, ok := activity.FindItem(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}

	if err := checkExperience(req.CurrentExperience); err != nil {
		return nil, err
	}
	target := req.TargetLevel
	if target == 0 {
		target = domain.DefaultTargetLevel
	}
	if target < domain.MinLevel || target > domain.TrueMasterLevel {
		return nil, fmt.Errorf(ErrFmtTargetLevel, domain.ErrInvalidInput, target, domain.MinLevel, domain.TrueMasterLevel)
	}

	sel := domain.DefaultBoostSelection()
	if req.Selection != nil {
		sel = *req.Selection
	}
	general := domain.DefaultGeneralBuffs()
	if req.General != nil {
		general = *req.General
	}

	if err := s.selections.Validate(sel, activity); err != nil {
		metrics.SelectionsRejectedTotal.WithLabelValues(string(activity.Key)).Inc()
		return nil, err
	}
	if err := s.selections.ValidateGeneral(general); err != nil {
		return nil, err
	}
	if err := s.selections.ValidateGathering(req.Gathering); err != nil {
		return nil, err
	}

	totals := s.aggregator.Aggregate(boost.Input{
		Activity:  activity.Key,
		Item:      item,
		Selection: sel,
		General:   general,
		Gathering: req.Gathering,
		Upgrades:  req.Upgrades,
	})

	result := s.calculator.Calculate(rates.Input{
		Activity:          activity.Key,
		Item:              item,
		Totals:            totals,
		Selection:         sel,
		Gathering:         req.Gathering,
		CurrentExperience: req.CurrentExperience,
		TargetLevel:       target,
	})
	return &result, nil
}

// InferProfile derives a complete calculator state from a player record
func (s *service) InferProfile(ctx context.Context, p *domain.PlayerProfile) (*domain.InferredState, error) {
	if p == nil {
		err := fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNilProfile)
		metrics.InferenceRunsTotal.WithLabelValues(metrics.ResultFromError(err)).Inc()
		return nil, err
	}

	state, err := s.inference.Infer(ctx, p)
	if err != nil {
		metrics.InferenceRunsTotal.WithLabelValues(metrics.ResultFromError(err)).Inc()
		return nil, err
	}

	result := metrics.ResultSuccess
	if state.MalformedUpgrades {
		result = metrics.ResultMalformed
	}
	metrics.InferenceRunsTotal.WithLabelValues(result).Inc()

	logger.FromContext(ctx).Info(LogMsgProfileInferred,
		"username", state.Username,
		"clan", state.ClanName,
		"gatherers", state.Upgrades.Gatherers)
	return state, nil
}

// PlayerBoosts fetches a player record by name and infers its state
func (s *service) PlayerBoosts(ctx context.Context, name string) (*domain.InferredState, error) {
	if s.source == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileSourceDown, ErrMsgSourceUnavailable)
	}

	p, err := s.source.FetchPlayer(ctx, name)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPlayerFetchFailed, "username", name, "error", err)
		return nil, err
	}
	return s.InferProfile(ctx, p)
}

// ApplySelection applies a partial edit to a selection for an activity
func (s *service) ApplySelection(key domain.ActivityKey, current domain.BoostSelection, patch selection.Patch) (domain.BoostSelection, error) {
	activity, err := s.catalog.Activities.Get(key)
	if err != nil {
		return current, err
	}

	next, err := s.selections.Apply(current, patch, activity)
	if err != nil {
		metrics.SelectionsRejectedTotal.WithLabelValues(string(key)).Inc()
		return current, err
	}
	return next, nil
}

func (s *service) ValidateGeneral(g domain.GeneralBuffs) error {
	return s.selections.ValidateGeneral(g)
}

func (s *service) ValidateGathering(g domain.GatheringBuffs) error {
	return s.selections.ValidateGathering(g)
}

func (s *service) Activities() []*domain.Activity {
	return s.catalog.Activities.All()
}

func (s *service) Activity(key domain.ActivityKey) (*domain.Activity, error) {
	return s.catalog.Activities.Get(key)
}

func (s *service) Bonuses() *catalog.Bonuses {
	return s.catalog.Bonuses
}

// Level returns the cumulative experience required for a level (1-121)
func (s *service) Level(level int) (LevelInfo, error) {
	if level < domain.MinLevel || level > domain.TrueMasterLevel {
		return LevelInfo{}, fmt.Errorf(ErrFmtLevel, domain.ErrInvalidInput, level, domain.MinLevel, domain.TrueMasterLevel)
	}
	return LevelInfo{Level: level, XPRequired: s.table.XPRequired(level)}, nil
}

// Progress locates an experience total within the level table
func (s *service) Progress(xp float64) (leveling.Progress, error) {
	if err := checkExperience(xp); err != nil {
		return leveling.Progress{}, err
	}
	return s.table.Progress(xp), nil
}

// checkExperience rejects negative, NaN and infinite experience totals
func checkExperience(xp float64) error {
	if math.IsNaN(xp) || math.IsInf(xp, 0) {
		return fmt.Errorf(ErrFmtNonFiniteXP, domain.ErrInvalidInput, xp)
	}
	if xp < 0 {
		return fmt.Errorf(ErrFmtNegativeXP, domain.ErrInvalidInput, xp)
	}
	return nil
}
