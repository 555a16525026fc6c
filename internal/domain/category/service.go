package category

import (
	"context"
	"errors"
	"sort"

	appErrors "Spendly/internal/errors"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	repository Repository
}

func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// Create persists a category after checking that the parent link keeps the
// forest acyclic.
func (s *Service) Create(ctx context.Context, name, slug string, parentID *ulid.ULID, icon, color string) (*Category, error) {
	created, err := New(name, slug, parentID, icon, color)
	if err != nil {
		return nil, err
	}

	if parentID != nil {
		all, err := s.repository.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		byID := make(map[ulid.ULID]*Category, len(all))
		for _, c := range all {
			byID[c.Id] = c
		}
		if err := ValidateParent(created.Id, parentID, byID); err != nil {
			return nil, err
		}
	}

	if err := s.repository.Create(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) GetAll(ctx context.Context) ([]*Category, error) {
	return s.repository.GetAll(ctx)
}

func (s *Service) Get(ctx context.Context, id ulid.ULID) (*Category, error) {
	return s.repository.GetByID(ctx, id)
}

// GetTree returns the category forest: roots with children nested one level
// deep, both levels sorted by name.
func (s *Service) GetTree(ctx context.Context) ([]*Category, error) {
	all, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return BuildTree(all), nil
}

// Exists satisfies the category check the transaction service performs before
// accepting a manual correction.
func (s *Service) Exists(ctx context.Context, id ulid.ULID) (bool, error) {
	_, err := s.repository.GetByID(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, appErrors.ErrCategoryNotFound) {
		return false, nil
	}
	return false, err
}

// BuildTree arranges a flat category list into a forest. Orphans whose
// parent is missing from the input are promoted to roots rather than
// dropped.
func BuildTree(categories []*Category) []*Category {
	byID := make(map[ulid.ULID]*Category, len(categories))
	nodes := make([]*Category, 0, len(categories))
	for _, c := range categories {
		node := *c
		node.Children = nil
		byID[node.Id] = &node
		nodes = append(nodes, &node)
	}

	var roots []*Category
	for _, node := range nodes {
		if node.ParentId != nil {
			if parent, ok := byID[*node.ParentId]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	sortByName(roots)
	for _, root := range roots {
		sortByName(root.Children)
	}
	return roots
}

func sortByName(categories []*Category) {
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
}
