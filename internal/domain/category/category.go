package category

import (
	"crypto/sha256"
	"strings"
	"time"

	appErrors "Spendly/internal/errors"
	"Spendly/internal/pkg"

	"github.com/oklog/ulid/v2"
)

// Category is a node in the shared category forest. System categories are
// seeded and shared by every device; user categories are not currently
// exposed but the flag keeps the distinction in the data.
type Category struct {
	Id        ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	Name      string     `gorm:"type:varchar(100);not null" json:"name"`
	Slug      string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_slug" json:"slug"`
	ParentId  *ulid.ULID `gorm:"type:varchar(26);index:idx_categories_parent" json:"parentId"`
	Icon      string     `gorm:"type:varchar(50)" json:"icon"`
	Color     string     `gorm:"type:varchar(7)" json:"color"`
	IsSystem  bool       `gorm:"not null;default:false" json:"isSystem"`
	CreatedAt time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime;not null" json:"updatedAt"`

	// Children is populated only by tree queries.
	Children []*Category `gorm:"-" json:"children,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}

func New(name, slug string, parentID *ulid.ULID, icon, color string) (*Category, error) {
	name = strings.TrimSpace(name)
	slug = strings.TrimSpace(strings.ToLower(slug))
	if name == "" {
		return nil, appErrors.NewValidationError("name", "name cannot be empty")
	}
	if slug == "" {
		return nil, appErrors.NewValidationError("slug", "slug cannot be empty")
	}

	now := pkg.SetTimestamps()
	return &Category{
		Id:        pkg.GenerateULIDObject(),
		Name:      name,
		Slug:      slug,
		ParentId:  parentID,
		Icon:      icon,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateParent checks that attaching a category under parentID keeps the
// forest a forest: the parent must exist and walking up from it must
// terminate without revisiting a node or reaching the category itself.
func ValidateParent(categoryID ulid.ULID, parentID *ulid.ULID, byID map[ulid.ULID]*Category) error {
	if parentID == nil {
		return nil
	}

	seen := map[ulid.ULID]bool{categoryID: true}
	current := parentID
	for current != nil {
		if seen[*current] {
			return appErrors.NewValidationError("parentId", "category parent chain forms a cycle")
		}
		seen[*current] = true

		node, ok := byID[*current]
		if !ok {
			return appErrors.ErrCategoryNotFound
		}
		current = node.ParentId
	}
	return nil
}

// DeterministicID derives a stable ULID from a category slug so reseeding an
// existing database maps onto the same rows.
func DeterministicID(slug string) ulid.ULID {
	hash := sha256.Sum256([]byte("system_category:" + slug))

	timestamp := ulid.Timestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	entropy := [10]byte{}
	copy(entropy[:], hash[:10])

	reader := &deterministicReader{data: entropy[:]}
	return ulid.MustNew(timestamp, reader)
}

type deterministicReader struct {
	data []byte
	pos  int
}

func (r *deterministicReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if r.pos >= len(r.data) {
		r.pos = 0
	}

	n := copy(p, r.data[r.pos:])
	r.pos += n

	if r.pos >= len(r.data) {
		r.pos = 0
	}

	return n, nil
}
