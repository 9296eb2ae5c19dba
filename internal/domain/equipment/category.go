package equipment

import (
	"github.com/google/uuid"

	"rentdesk/internal/pkg/errs"
)

var (
	ErrInvalidCategoryName = errs.New("category name is required")
	ErrCategoryInUse       = errs.New("category is referenced by equipment")
)

type Category struct {
	ID   uuid.UUID
	Name string
}

func NewCategory(name string) (*Category, error) {
	if name == "" {
		return nil, ErrInvalidCategoryName
	}
	return &Category{ID: uuid.New(), Name: name}, nil
}
