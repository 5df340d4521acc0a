package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/BottleButler/pkg/model"
)

var ErrBottleNotFound = errors.New("bottle not found")

// SaveBottles inserts the bottles, overwriting any stored bottle with the same id.
func (r *Repository) SaveBottles(ctx context.Context, bottles []model.Bottle) error {
	if len(bottles) == 0 {
		return nil
	}

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&bottles)

	return result.Error
}

func (r *Repository) GetBottleByID(ctx context.Context, id string) (*model.Bottle, error) {
	var bottle model.Bottle

	result := r.DB.WithContext(ctx).Where("id = ?", id).First(&bottle)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBottleNotFound
		}

		return nil, result.Error
	}

	return &bottle, nil
}

// FindCandidateBottles returns the most popular stored bottles whose id is
// not in excludeIDs. A limit of zero returns every match.
func (r *Repository) FindCandidateBottles(ctx context.Context, excludeIDs []string, limit int) ([]model.Bottle, error) {
	var bottles []model.Bottle

	query := r.DB.WithContext(ctx)

	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	query = query.Order("popularity DESC NULLS LAST").Order("id")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if result := query.Find(&bottles); result.Error != nil {
		return nil, result.Error
	}

	return bottles, nil
}
