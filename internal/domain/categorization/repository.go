package categorization

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// MappingRepository persists merchant mappings. LoadAll must return rules in
// creation order: earlier rules win when several patterns match.
type MappingRepository interface {
	LoadAll(ctx context.Context) ([]*MerchantMapping, error)
	FindByPattern(ctx context.Context, pattern string) (*MerchantMapping, error)
	Append(ctx context.Context, mapping *MerchantMapping) error
}

// CategoryRef is the slice of a category the engine needs: enough to resolve
// model output by name and to locate the fallback by slug.
type CategoryRef struct {
	Id   ulid.ULID
	Name string
	Slug string
}

// CategoryLister exposes the current category set to the engine.
type CategoryLister interface {
	ListRefs(ctx context.Context) ([]CategoryRef, error)
}
