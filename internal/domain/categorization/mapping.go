package categorization

import (
	"time"

	appErrors "Spendly/internal/errors"
	"Spendly/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type MappingSource string

const (
	SourceSeed    MappingSource = "SEED"
	SourceLearned MappingSource = "LEARNED"
)

const (
	// MinPatternLength and MaxPatternLength bound learnable merchant
	// patterns. Shorter patterns match almost everything, longer ones
	// almost nothing.
	MinPatternLength = 3
	MaxPatternLength = 50
)

// MerchantMapping is one categorization rule: a normalized merchant pattern
// matched by substring against incoming transactions.
type MerchantMapping struct {
	Id         ulid.ULID     `gorm:"type:varchar(26);primaryKey" json:"id"`
	Pattern    string        `gorm:"type:varchar(50);not null;uniqueIndex:idx_merchant_mappings_pattern" json:"pattern"`
	CategoryId ulid.ULID     `gorm:"type:varchar(26);not null" json:"categoryId"`
	Confidence float64       `gorm:"type:decimal(3,2);not null" json:"confidence"`
	Source     MappingSource `gorm:"type:varchar(10);not null" json:"source"`
	CreatedAt  time.Time     `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt  time.Time     `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (MerchantMapping) TableName() string {
	return "merchant_mappings"
}

func NewMapping(pattern string, categoryID ulid.ULID, confidence float64, source MappingSource) (*MerchantMapping, error) {
	if len(pattern) < MinPatternLength || len(pattern) > MaxPatternLength {
		return nil, appErrors.NewValidationError("pattern", "pattern must be between 3 and 50 characters")
	}
	if pkg.IsEmptyULID(categoryID) {
		return nil, appErrors.NewValidationError("categoryId", "categoryId cannot be empty")
	}
	if confidence < 0 || confidence > 1 {
		return nil, appErrors.NewValidationError("confidence", "confidence must be between 0 and 1")
	}

	now := pkg.SetTimestamps()
	return &MerchantMapping{
		Id:         pkg.GenerateULIDObject(),
		Pattern:    pattern,
		CategoryId: categoryID,
		Confidence: confidence,
		Source:     source,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}
