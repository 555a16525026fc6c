package transaction

import (
	"context"

	appErrors "Spendly/internal/errors"

	"github.com/oklog/ulid/v2"
)

// ManualCorrectionConfidence is stored on a transaction after the user picks
// the category themselves.
const ManualCorrectionConfidence = 1.0

// CorrectionLearnConfidence is attached to rules learned from a manual
// correction. Below the auto-learn bar so user-taught rules stay
// distinguishable from high-certainty model output.
const CorrectionLearnConfidence = 0.9

// CategoryChecker answers whether a category id refers to a real category.
type CategoryChecker interface {
	Exists(ctx context.Context, id ulid.ULID) (bool, error)
}

// Learner persists a merchant-pattern rule for future categorization.
type Learner interface {
	Learn(ctx context.Context, pattern string, categoryID ulid.ULID, confidence float64) error
}

type Service struct {
	repository Repository
	categories CategoryChecker
	learner    Learner
}

func NewService(repository Repository, categories CategoryChecker, learner Learner) *Service {
	return &Service{
		repository: repository,
		categories: categories,
		learner:    learner,
	}
}

func (s *Service) List(ctx context.Context, userID ulid.ULID, filters Filters) ([]*Transaction, int64, error) {
	filters.Pagination = filters.Pagination.Normalize()
	return s.repository.GetAll(ctx, userID, filters)
}

func (s *Service) Get(ctx context.Context, userID ulid.ULID, id ulid.ULID) (*Transaction, error) {
	return s.repository.GetByIDAndUser(ctx, id, userID)
}

// UpdateCategory applies a manual category correction. When learn is set the
// merchant pattern is taught to the categorization engine so future
// transactions from the same merchant land in the corrected category. A
// failed rule save errors even though the correction itself is already
// stored: the caller asked to learn and must hear that nothing was learned.
func (s *Service) UpdateCategory(ctx context.Context, userID ulid.ULID, id ulid.ULID, categoryID ulid.ULID, learn bool) (*Transaction, error) {
	existing, err := s.repository.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	exists, err := s.categories.Exists(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, appErrors.ErrCategoryNotFound
	}

	updated := existing.WithCategory(categoryID, ManualCorrectionConfidence)
	if err := s.repository.Update(ctx, updated); err != nil {
		return nil, err
	}

	if learn {
		if err := s.learner.Learn(ctx, updated.MerchantNormalized, categoryID, CorrectionLearnConfidence); err != nil {
			return nil, err
		}
	}

	return updated, nil
}
