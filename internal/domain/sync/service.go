package sync

import (
	"context"
	"time"

	"Spendly/internal/domain/categorization"
	"Spendly/internal/domain/shared"
	"Spendly/internal/domain/transaction"
	"Spendly/internal/domain/user"
	appErrors "Spendly/internal/errors"
	"Spendly/internal/logger"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentCategorizations bounds parallel predictor calls per sync
// batch.
const maxConcurrentCategorizations = 8

// Item is one transaction as reported by a device. Fingerprint is optional;
// when absent the server derives it.
type Item struct {
	Amount      decimal.Decimal
	Type        transaction.Types
	Merchant    string
	Source      transaction.Sources
	Timestamp   time.Time
	Balance     *decimal.Decimal
	Metadata    shared.JSONMap
	Fingerprint string
}

// ItemError reports a single rejected item by its position in the batch.
type ItemError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// Result is the outcome of one sync call. Created plus Skipped plus
// len(Errors) always equals the submitted batch size. Transactions holds
// both the created rows and the stored rows duplicates resolved to, so the
// client can render the batch without a follow-up read.
type Result struct {
	Created      int                        `json:"created"`
	Skipped      int                        `json:"skipped"`
	Errors       []ItemError                `json:"errors"`
	Transactions []*transaction.Transaction `json:"transactions"`
	LastSyncAt   time.Time                  `json:"lastSyncAt"`
}

// DeviceResolver turns a device identity into a user account.
type DeviceResolver interface {
	GetOrCreateByDevice(ctx context.Context, deviceID, deviceFingerprint string) (*user.User, error)
	MarkSynced(ctx context.Context, id ulid.ULID, at time.Time) error
}

// Categorizer decides a category for one merchant.
type Categorizer interface {
	Categorize(ctx context.Context, merchant string) (*categorization.Result, error)
}

type Service struct {
	users        DeviceResolver
	categorizer  Categorizer
	transactions transaction.Repository
}

func NewService(users DeviceResolver, categorizer Categorizer, transactions transaction.Repository) *Service {
	return &Service{
		users:        users,
		categorizer:  categorizer,
		transactions: transactions,
	}
}

// Sync ingests a batch of device transactions: resolves the device to a
// user, categorizes every item in parallel, rejects invalid items
// individually, and saves the rest idempotently by fingerprint. A batch with
// some invalid items still lands the valid ones.
func (s *Service) Sync(ctx context.Context, deviceID, deviceFingerprint string, items []Item) (*Result, error) {
	account, err := s.users.GetOrCreateByDevice(ctx, deviceID, deviceFingerprint)
	if err != nil {
		return nil, err
	}

	prepared := make([]*transaction.Transaction, len(items))
	itemErrors := make([]*ItemError, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentCategorizations)
	for i := range items {
		g.Go(func() error {
			tx, itemErr := s.prepare(gctx, account.Id, i, items[i])
			prepared[i] = tx
			itemErrors[i] = itemErr
			return nil
		})
	}
	_ = g.Wait()

	result := &Result{Errors: []ItemError{}}
	valid := make([]*transaction.Transaction, 0, len(items))
	for i := range items {
		if itemErrors[i] != nil {
			result.Errors = append(result.Errors, *itemErrors[i])
			continue
		}
		valid = append(valid, prepared[i])
	}

	batch, err := s.transactions.SaveBatch(ctx, account.Id, valid)
	if err != nil {
		return nil, err
	}
	result.Created = len(batch.Saved)
	result.Skipped = batch.Skipped
	result.Transactions = make([]*transaction.Transaction, 0, len(batch.Saved)+len(batch.Matched))
	result.Transactions = append(result.Transactions, batch.Saved...)
	result.Transactions = append(result.Transactions, batch.Matched...)

	now := time.Now().UTC()
	if err := s.users.MarkSynced(ctx, account.Id, now); err != nil {
		logger.Warn().Err(err).Str("userId", account.Id.String()).Msg("failed to update last sync time")
	}
	result.LastSyncAt = now

	logger.Info().
		Str("deviceId", deviceID).
		Int("received", len(items)).
		Int("created", result.Created).
		Int("skipped", result.Skipped).
		Int("rejected", len(result.Errors)).
		Msg("sync completed")
	return result, nil
}

// prepare categorizes one item and builds the transaction through the
// validating factory, so the record never changes after construction.
func (s *Service) prepare(ctx context.Context, userID ulid.ULID, index int, item Item) (*transaction.Transaction, *ItemError) {
	decision, err := s.categorizer.Categorize(ctx, item.Merchant)
	if err != nil {
		return nil, &ItemError{Index: index, Message: appErrors.FromError(err).Message}
	}

	tx, err := transaction.New(transaction.CreateParams{
		UserId:             userID,
		Amount:             item.Amount,
		Type:               item.Type,
		Merchant:           item.Merchant,
		Source:             item.Source,
		Timestamp:          item.Timestamp,
		Fingerprint:        item.Fingerprint,
		Balance:            item.Balance,
		Metadata:           item.Metadata,
		CategoryId:         &decision.CategoryId,
		CategoryConfidence: &decision.Confidence,
	})
	if err != nil {
		return nil, &ItemError{Index: index, Message: appErrors.FromError(err).Message}
	}

	return tx, nil
}
