package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"Spendly/internal/domain/transaction"
	appErrors "Spendly/internal/errors"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type fakeTransactionRepository struct {
	saveBatchFn          func(ctx context.Context, userID ulid.ULID, txs []*transaction.Transaction) (*transaction.BatchResult, error)
	getByIDAndUserFn     func(ctx context.Context, id ulid.ULID, userID ulid.ULID) (*transaction.Transaction, error)
	getAllFn             func(ctx context.Context, userID ulid.ULID, filters transaction.Filters) ([]*transaction.Transaction, int64, error)
	updateFn             func(ctx context.Context, tx *transaction.Transaction) error
	spendingByCategoryFn func(ctx context.Context, userID ulid.ULID, from, to time.Time) ([]transaction.CategorySpending, error)
	totalByTypeFn        func(ctx context.Context, userID ulid.ULID, typ transaction.Types, from, to time.Time) (decimal.Decimal, error)
}

func (f *fakeTransactionRepository) SaveBatch(ctx context.Context, userID ulid.ULID, txs []*transaction.Transaction) (*transaction.BatchResult, error) {
	if f.saveBatchFn != nil {
		return f.saveBatchFn(ctx, userID, txs)
	}
	return &transaction.BatchResult{Saved: txs}, nil
}

func (f *fakeTransactionRepository) GetByIDAndUser(ctx context.Context, id ulid.ULID, userID ulid.ULID) (*transaction.Transaction, error) {
	if f.getByIDAndUserFn != nil {
		return f.getByIDAndUserFn(ctx, id, userID)
	}
	return nil, appErrors.ErrTransactionNotFound
}

func (f *fakeTransactionRepository) GetAll(ctx context.Context, userID ulid.ULID, filters transaction.Filters) ([]*transaction.Transaction, int64, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, userID, filters)
	}
	return nil, 0, nil
}

func (f *fakeTransactionRepository) Update(ctx context.Context, tx *transaction.Transaction) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, tx)
	}
	return nil
}

func (f *fakeTransactionRepository) SpendingByCategory(ctx context.Context, userID ulid.ULID, from, to time.Time) ([]transaction.CategorySpending, error) {
	if f.spendingByCategoryFn != nil {
		return f.spendingByCategoryFn(ctx, userID, from, to)
	}
	return nil, nil
}

func (f *fakeTransactionRepository) TotalByType(ctx context.Context, userID ulid.ULID, typ transaction.Types, from, to time.Time) (decimal.Decimal, error) {
	if f.totalByTypeFn != nil {
		return f.totalByTypeFn(ctx, userID, typ, from, to)
	}
	return decimal.Zero, nil
}

type fakeCategoryChecker struct {
	existsFn func(ctx context.Context, id ulid.ULID) (bool, error)
}

func (f *fakeCategoryChecker) Exists(ctx context.Context, id ulid.ULID) (bool, error) {
	if f.existsFn != nil {
		return f.existsFn(ctx, id)
	}
	return true, nil
}

type fakeLearner struct {
	learnFn func(ctx context.Context, pattern string, categoryID ulid.ULID, confidence float64) error
}

func (f *fakeLearner) Learn(ctx context.Context, pattern string, categoryID ulid.ULID, confidence float64) error {
	if f.learnFn != nil {
		return f.learnFn(ctx, pattern, categoryID, confidence)
	}
	return nil
}

func TestUpdateCategory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := ulid.Make()
	categoryID := ulid.Make()

	existing, err := transaction.New(transaction.CreateParams{
		UserId:    userID,
		Amount:    decimal.NewFromInt(120),
		Type:      transaction.TypeDebit,
		Merchant:  "Swiggy",
		Source:    transaction.SourceUPI,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("applies correction and learns", func(t *testing.T) {
		var saved *transaction.Transaction
		var learnedPattern string
		var learnedConfidence float64

		svc := transaction.NewService(
			&fakeTransactionRepository{
				getByIDAndUserFn: func(ctx context.Context, id, uid ulid.ULID) (*transaction.Transaction, error) {
					copy := *existing
					return &copy, nil
				},
				updateFn: func(ctx context.Context, tx *transaction.Transaction) error {
					saved = tx
					return nil
				},
			},
			&fakeCategoryChecker{},
			&fakeLearner{learnFn: func(ctx context.Context, pattern string, cid ulid.ULID, confidence float64) error {
				learnedPattern = pattern
				learnedConfidence = confidence
				return nil
			}},
		)

		updated, err := svc.UpdateCategory(ctx, userID, existing.Id, categoryID, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved == nil || saved.CategoryId == nil || *saved.CategoryId != categoryID {
			t.Fatalf("repository did not receive the corrected category: %+v", saved)
		}
		if updated.CategoryConfidence == nil || *updated.CategoryConfidence != transaction.ManualCorrectionConfidence {
			t.Fatalf("expected confidence %v, got %+v", transaction.ManualCorrectionConfidence, updated.CategoryConfidence)
		}
		if learnedPattern != existing.MerchantNormalized {
			t.Fatalf("expected learn on %q, got %q", existing.MerchantNormalized, learnedPattern)
		}
		if learnedConfidence != transaction.CorrectionLearnConfidence {
			t.Fatalf("expected learn confidence %v, got %v", transaction.CorrectionLearnConfidence, learnedConfidence)
		}
	})

	t.Run("learn disabled", func(t *testing.T) {
		learned := false
		svc := transaction.NewService(
			&fakeTransactionRepository{
				getByIDAndUserFn: func(ctx context.Context, id, uid ulid.ULID) (*transaction.Transaction, error) {
					copy := *existing
					return &copy, nil
				},
			},
			&fakeCategoryChecker{},
			&fakeLearner{learnFn: func(ctx context.Context, pattern string, cid ulid.ULID, confidence float64) error {
				learned = true
				return nil
			}},
		)

		if _, err := svc.UpdateCategory(ctx, userID, existing.Id, categoryID, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if learned {
			t.Fatalf("learner must not be called when learn is disabled")
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		svc := transaction.NewService(
			&fakeTransactionRepository{
				getByIDAndUserFn: func(ctx context.Context, id, uid ulid.ULID) (*transaction.Transaction, error) {
					copy := *existing
					return &copy, nil
				},
			},
			&fakeCategoryChecker{existsFn: func(ctx context.Context, id ulid.ULID) (bool, error) {
				return false, nil
			}},
			&fakeLearner{},
		)

		_, err := svc.UpdateCategory(ctx, userID, existing.Id, categoryID, true)
		if !errors.Is(err, appErrors.ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("learn failure surfaces after the correction is stored", func(t *testing.T) {
		learnErr := errors.New("store unavailable")
		var saved *transaction.Transaction
		svc := transaction.NewService(
			&fakeTransactionRepository{
				getByIDAndUserFn: func(ctx context.Context, id, uid ulid.ULID) (*transaction.Transaction, error) {
					copy := *existing
					return &copy, nil
				},
				updateFn: func(ctx context.Context, tx *transaction.Transaction) error {
					saved = tx
					return nil
				},
			},
			&fakeCategoryChecker{},
			&fakeLearner{learnFn: func(ctx context.Context, pattern string, cid ulid.ULID, confidence float64) error {
				return learnErr
			}},
		)

		_, err := svc.UpdateCategory(ctx, userID, existing.Id, categoryID, true)
		if !errors.Is(err, learnErr) {
			t.Fatalf("expected the rule-save failure, got %v", err)
		}
		if saved == nil {
			t.Fatalf("the correction itself must still be stored")
		}
	})
}

func TestListNormalizesPagination(t *testing.T) {
	t.Parallel()

	var got transaction.Filters
	svc := transaction.NewService(
		&fakeTransactionRepository{
			getAllFn: func(ctx context.Context, userID ulid.ULID, filters transaction.Filters) ([]*transaction.Transaction, int64, error) {
				got = filters
				return nil, 0, nil
			},
		},
		&fakeCategoryChecker{},
		&fakeLearner{},
	)

	if _, _, err := svc.List(context.Background(), ulid.Make(), transaction.Filters{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Pagination.Page < 1 || got.Pagination.Limit < 1 {
		t.Fatalf("pagination was not normalized: %+v", got.Pagination)
	}
}
