package categorization

import (
	"context"
	"strings"
	"sync"

	"Spendly/internal/domain/shared"
	"Spendly/internal/domain/transaction"
	appErrors "Spendly/internal/errors"
	"Spendly/internal/logger"

	"github.com/agnivade/levenshtein"
	"github.com/oklog/ulid/v2"
)

// FallbackSlug identifies the category every uncategorizable transaction
// lands in. The engine refuses to start without it.
const FallbackSlug = "other-uncategorized"

const (
	// MinPredictionConfidence gates model output: anything at or below is
	// discarded in favor of the fallback.
	MinPredictionConfidence = 0.6
	// AutoLearnConfidence gates rule learning from model output.
	AutoLearnConfidence = 0.9
	// FallbackConfidence is stored when nothing matched.
	FallbackConfidence = 0.1
)

const (
	MethodRule     = "rule"
	MethodAI       = "ai"
	MethodFallback = "fallback"
)

// maxNameDistance is the edit distance tolerated when resolving a model's
// category name against real category names.
const maxNameDistance = 2

// Result is a categorization decision for a single merchant.
type Result struct {
	CategoryId ulid.ULID `json:"categoryId"`
	Confidence float64   `json:"confidence"`
	Method     string    `json:"method"`
}

type rule struct {
	pattern    string
	categoryID ulid.ULID
	confidence float64
}

// Engine resolves merchants to categories: ordered substring rules first,
// then the predictor, then the fallback category. All state lives in memory
// after Initialize; learned rules are written through to the repository.
type Engine struct {
	mappings   MappingRepository
	categories CategoryLister
	predictor  Predictor

	mu           sync.RWMutex
	rules        []rule
	known        map[string]bool
	nameIndex    map[string]ulid.ULID
	names        []string
	displayNames []string
	fallbackID   ulid.ULID
	initialized  bool
}

func NewEngine(mappings MappingRepository, categories CategoryLister, predictor Predictor) *Engine {
	return &Engine{
		mappings:   mappings,
		categories: categories,
		predictor:  predictor,
		known:      make(map[string]bool),
		nameIndex:  make(map[string]ulid.ULID),
	}
}

// Initialize loads categories and rules into memory. Idempotent: a second
// call is a no-op. Fails with ErrNoFallbackCategory when the fallback
// category is missing, which keeps the process from serving traffic it
// cannot categorize.
func (e *Engine) Initialize(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	refs, err := e.categories.ListRefs(ctx)
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}

	fallbackFound := false
	for _, ref := range refs {
		name := strings.ToLower(ref.Name)
		e.nameIndex[name] = ref.Id
		e.names = append(e.names, name)
		e.displayNames = append(e.displayNames, ref.Name)
		if ref.Slug == FallbackSlug {
			e.fallbackID = ref.Id
			fallbackFound = true
		}
	}
	if !fallbackFound {
		return appErrors.ErrNoFallbackCategory
	}

	mappings, err := e.mappings.LoadAll(ctx)
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	for _, m := range mappings {
		e.rules = append(e.rules, rule{pattern: m.Pattern, categoryID: m.CategoryId, confidence: m.Confidence})
		e.known[m.Pattern] = true
	}

	e.initialized = true
	logger.Info().
		Int("rules", len(e.rules)).
		Int("categories", len(refs)).
		Msg("categorization engine initialized")
	return nil
}

// Categorize decides a category for a single merchant. Predictor failure
// never errors: the fallback absorbs everything the rules and the model
// cannot place. A failed rule save on the auto-learn path does error, so a
// broken rule store surfaces to the caller instead of being forgotten.
func (e *Engine) Categorize(ctx context.Context, merchant string) (*Result, error) {
	e.mu.RLock()
	if !e.initialized {
		e.mu.RUnlock()
		return nil, appErrors.ErrNoFallbackCategory
	}
	normalized := transaction.NormalizeMerchant(merchant)
	for _, r := range e.rules {
		if strings.Contains(normalized, r.pattern) {
			e.mu.RUnlock()
			return &Result{CategoryId: r.categoryID, Confidence: r.confidence, Method: MethodRule}, nil
		}
	}
	fallbackID := e.fallbackID
	// displayNames only grows during Initialize, so the slice is safe to
	// hand out past the lock.
	candidates := e.displayNames
	e.mu.RUnlock()

	result, err := e.predict(ctx, merchant, normalized, candidates)
	if err != nil {
		return nil, err
	}
	if result != nil {
		return result, nil
	}

	return &Result{CategoryId: fallbackID, Confidence: FallbackConfidence, Method: MethodFallback}, nil
}

func (e *Engine) predict(ctx context.Context, merchant, normalized string, candidates []string) (*Result, error) {
	if e.predictor == nil {
		return nil, nil
	}

	prediction, err := e.predictor.Predict(ctx, merchant, candidates)
	if err != nil {
		logger.Warn().Err(err).Str("merchant", normalized).Msg("prediction failed")
		return nil, nil
	}
	if prediction == nil || prediction.Confidence <= MinPredictionConfidence {
		return nil, nil
	}

	categoryID, ok := e.resolveCategory(prediction.CategoryName)
	if !ok {
		logger.Warn().
			Str("merchant", normalized).
			Str("category", prediction.CategoryName).
			Msg("prediction named an unknown category")
		return nil, nil
	}

	if prediction.Confidence > AutoLearnConfidence {
		if err := e.Learn(ctx, normalized, categoryID, prediction.Confidence); err != nil {
			return nil, err
		}
	}

	return &Result{CategoryId: categoryID, Confidence: prediction.Confidence, Method: MethodAI}, nil
}

// Learn records a merchant pattern as a rule, write-through to storage.
// Patterns outside the length bounds and patterns already known are silently
// ignored so callers can learn unconditionally.
func (e *Engine) Learn(ctx context.Context, pattern string, categoryID ulid.ULID, confidence float64) error {
	normalized := transaction.NormalizeMerchant(pattern)
	if len(normalized) < MinPatternLength || len(normalized) > MaxPatternLength {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.known[normalized] {
		return nil
	}

	if existing, err := e.mappings.FindByPattern(ctx, normalized); err != nil {
		return err
	} else if existing != nil {
		e.known[normalized] = true
		return nil
	}

	mapping, err := NewMapping(normalized, categoryID, confidence, SourceLearned)
	if err != nil {
		return err
	}
	if err := e.mappings.Append(ctx, mapping); err != nil {
		if !shared.IsUniqueConstraintError(err) {
			return err
		}
	}

	e.rules = append(e.rules, rule{pattern: normalized, categoryID: categoryID, confidence: confidence})
	e.known[normalized] = true
	logger.Info().Str("pattern", normalized).Msg("learned merchant mapping")
	return nil
}

// resolveCategory matches a model-reported name against real categories,
// tolerating small typos.
func (e *Engine) resolveCategory(name string) (ulid.ULID, bool) {
	lowered := strings.ToLower(strings.TrimSpace(name))
	if lowered == "" {
		return ulid.ULID{}, false
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	if id, ok := e.nameIndex[lowered]; ok {
		return id, true
	}

	bestDistance := maxNameDistance + 1
	var best string
	for _, candidate := range e.names {
		if d := levenshtein.ComputeDistance(lowered, candidate); d < bestDistance {
			bestDistance = d
			best = candidate
		}
	}
	if bestDistance <= maxNameDistance {
		return e.nameIndex[best], true
	}
	return ulid.ULID{}, false
}
