package goal_test

import (
	"context"
	"testing"

	"Spendly/internal/domain/goal"
	appErrors "Spendly/internal/errors"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type fakeGoalRepository struct {
	saveFn      func(ctx context.Context, g *goal.Goal) error
	getByIDFn   func(ctx context.Context, id, userID ulid.ULID) (*goal.Goal, error)
	getByUserFn func(ctx context.Context, userID ulid.ULID) ([]*goal.Goal, error)
	deleteFn    func(ctx context.Context, id, userID ulid.ULID) error
}

func (f *fakeGoalRepository) Save(ctx context.Context, g *goal.Goal) error {
	if f.saveFn != nil {
		return f.saveFn(ctx, g)
	}
	return nil
}

func (f *fakeGoalRepository) GetByID(ctx context.Context, id, userID ulid.ULID) (*goal.Goal, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id, userID)
	}
	return nil, appErrors.ErrGoalNotFound
}

func (f *fakeGoalRepository) GetByUser(ctx context.Context, userID ulid.ULID) ([]*goal.Goal, error) {
	if f.getByUserFn != nil {
		return f.getByUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeGoalRepository) Delete(ctx context.Context, id, userID ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id, userID)
	}
	return nil
}

func TestContribute(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := ulid.Make()

	newGoal := func(t *testing.T, current int64) *goal.Goal {
		t.Helper()
		g, err := goal.New(userID, "Emergency Fund", decimal.NewFromInt(10000), nil, "🏦")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		g.CurrentAmount = decimal.NewFromInt(current)
		return g
	}

	t.Run("adds to the saved amount", func(t *testing.T) {
		g := newGoal(t, 2000)
		var saved *goal.Goal
		svc := goal.NewService(&fakeGoalRepository{
			getByIDFn: func(ctx context.Context, id, uid ulid.ULID) (*goal.Goal, error) {
				return g, nil
			},
			saveFn: func(ctx context.Context, g *goal.Goal) error {
				saved = g
				return nil
			},
		})

		updated, err := svc.Contribute(ctx, g.Id, userID, decimal.NewFromInt(500))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.CurrentAmount.Equal(decimal.NewFromInt(2500)) {
			t.Fatalf("expected 2500 saved, got %s", updated.CurrentAmount)
		}
		if updated.IsCompleted {
			t.Fatalf("goal must not complete below the target")
		}
		if saved == nil {
			t.Fatalf("updated goal was not persisted")
		}
		if !g.CurrentAmount.Equal(decimal.NewFromInt(2000)) {
			t.Fatalf("original goal was mutated: %s", g.CurrentAmount)
		}
	})

	t.Run("reaching the target completes the goal", func(t *testing.T) {
		g := newGoal(t, 9500)
		svc := goal.NewService(&fakeGoalRepository{
			getByIDFn: func(ctx context.Context, id, uid ulid.ULID) (*goal.Goal, error) {
				return g, nil
			},
		})

		updated, err := svc.Contribute(ctx, g.Id, userID, decimal.NewFromInt(500))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.IsCompleted {
			t.Fatalf("goal must complete at the target")
		}
	})

	t.Run("negative contribution corrects the total", func(t *testing.T) {
		g := newGoal(t, 2000)
		svc := goal.NewService(&fakeGoalRepository{
			getByIDFn: func(ctx context.Context, id, uid ulid.ULID) (*goal.Goal, error) {
				return g, nil
			},
		})

		updated, err := svc.Contribute(ctx, g.Id, userID, decimal.NewFromInt(-500))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.CurrentAmount.Equal(decimal.NewFromInt(1500)) {
			t.Fatalf("expected 1500 saved, got %s", updated.CurrentAmount)
		}
	})

	t.Run("total cannot go negative", func(t *testing.T) {
		g := newGoal(t, 200)
		svc := goal.NewService(&fakeGoalRepository{
			getByIDFn: func(ctx context.Context, id, uid ulid.ULID) (*goal.Goal, error) {
				return g, nil
			},
		})

		_, err := svc.Contribute(ctx, g.Id, userID, decimal.NewFromInt(-500))
		if err == nil {
			t.Fatalf("expected validation error")
		}
	})
}

func TestProgress(t *testing.T) {
	t.Parallel()

	g, err := goal.New(ulid.Make(), "Trip", decimal.NewFromInt(1000), nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g.CurrentAmount = decimal.NewFromInt(250)
	if !g.Progress().Equal(decimal.NewFromFloat(0.25)) {
		t.Fatalf("expected 0.25, got %s", g.Progress())
	}

	g.CurrentAmount = decimal.NewFromInt(1500)
	if !g.Progress().Equal(decimal.NewFromInt(1)) {
		t.Fatalf("progress must cap at 1, got %s", g.Progress())
	}
}

func TestNewValidations(t *testing.T) {
	t.Parallel()

	if _, err := goal.New(ulid.Make(), "  ", decimal.NewFromInt(100), nil, ""); err == nil {
		t.Fatalf("expected error for blank name")
	}
	if _, err := goal.New(ulid.Make(), "Trip", decimal.Zero, nil, ""); err == nil {
		t.Fatalf("expected error for zero target")
	}
}
