package training

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitscore/internal/assessment"
	"github.com/2beens/fitscore/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=planner_mocks_test.go -package=training_test

const (
	planCacheSize   = 16 * 1024 * 1024
	PlanCacheExpire = 10 * time.Minute

	recentAttempts = 10
	kindPlan       = "training_plan"
)

var ErrInvalidPlan = errors.New("invalid training plan")

type planGenerator interface {
	GenerateJSON(ctx context.Context, kind, prompt string) (json.RawMessage, error)
}

type historyStore interface {
	GetUserStats(ctx context.Context, userID string) (*assessment.UserStats, error)
	GetHistory(ctx context.Context, userID string, testType assessment.TestType, limit int) ([]assessment.Attempt, error)
}

// Planner suggests training plans. Plans are cached per user and attempt count, so a
// new attempt leads to a fresh plan.
type Planner struct {
	generator planGenerator
	store     historyStore
	cache     *freecache.Cache
	validate  *validator.Validate
}

func NewPlanner(generator planGenerator, store historyStore) *Planner {
	return &Planner{
		generator: generator,
		store:     store,
		cache:     freecache.NewCache(planCacheSize),
		validate:  validator.New(),
	}
}

// Plan returns the cached or a freshly generated plan. Only store failures are errors,
// every generation problem falls back to the basic plan.
func (p *Planner) Plan(ctx context.Context, userID string) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "training.planner.plan")
	span.SetAttributes(attribute.String("user.id", userID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	stats, err := p.store.GetUserStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user stats: %w", err)
	}

	cacheKey := planCacheKey(userID, stats.TotalAttempts)
	if plan, ok := p.cached(cacheKey); ok {
		log.Tracef("training plan for %s found in cache", userID)
		return plan, nil
	}

	recent, err := p.store.GetHistory(ctx, userID, "", recentAttempts)
	if err != nil {
		return nil, fmt.Errorf("get recent attempts: %w", err)
	}

	plan := p.generate(ctx, stats, recent)
	p.cachePlan(cacheKey, plan)
	return plan, nil
}

// Save replaces the current plan of the user until the next attempt is recorded.
func (p *Planner) Save(ctx context.Context, userID string, plan Plan) error {
	if err := p.validate.Struct(plan); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}

	stats, err := p.store.GetUserStats(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user stats: %w", err)
	}

	p.cachePlan(planCacheKey(userID, stats.TotalAttempts), &plan)
	return nil
}

func (p *Planner) generate(ctx context.Context, stats *assessment.UserStats, recent []assessment.Attempt) *Plan {
	basic := BasicPlan()
	if p.generator == nil {
		return &basic
	}

	raw, err := p.generator.GenerateJSON(ctx, kindPlan, planPrompt(stats, recent))
	if err != nil {
		log.Warnf("generate training plan, using basic plan: %s", err)
		return &basic
	}

	var plan Plan
	if err := json.Unmarshal(raw, &plan); err != nil {
		log.Warnf("unmarshal generated training plan, using basic plan: %s", err)
		return &basic
	}
	if err := p.validate.Struct(plan); err != nil {
		log.Warnf("generated training plan is incomplete, using basic plan: %s", err)
		return &basic
	}

	return &plan
}

func (p *Planner) cached(key string) (*Plan, bool) {
	planBytes, err := p.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	var plan Plan
	if err := json.Unmarshal(planBytes, &plan); err != nil {
		log.Errorf("unmarshal cached training plan %s: %s", key, err)
		return nil, false
	}
	return &plan, true
}

func (p *Planner) cachePlan(key string, plan *Plan) {
	planBytes, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("marshal training plan %s: %s", key, err)
		return
	}
	if err := p.cache.Set([]byte(key), planBytes, int(PlanCacheExpire.Seconds())); err != nil {
		log.Errorf("cache training plan %s: %s", key, err)
	}
}

func planCacheKey(userID string, attempts int) string {
	return fmt.Sprintf("plan::%s::%d", userID, attempts)
}
