package goal

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	List(ctx context.Context) ([]GoalRow, error)
	Create(ctx context.Context, row *GoalRow, columns []string) error
	FindByID(ctx context.Context, id uuid.UUID) (*GoalRow, error)
	Update(ctx context.Context, id uuid.UUID, columns map[string]interface{}) (*GoalRow, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]GoalRow, error) {
	var rows []GoalRow
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts only the given columns and reads the stored row back in the
// same statement, so database defaults are reflected in row.
func (r *repository) Create(ctx context.Context, row *GoalRow, columns []string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Select(columns).
		Create(row).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*GoalRow, error) {
	var row GoalRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, columns map[string]interface{}) (*GoalRow, error) {
	values := make(map[string]interface{}, len(columns)+1)
	for k, v := range columns {
		values[k] = v
	}
	values["updated_at"] = gorm.Expr("now()")

	var row GoalRow
	res := r.db.WithContext(ctx).
		Model(&row).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(values)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&GoalRow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
