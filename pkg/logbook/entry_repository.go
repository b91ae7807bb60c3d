package logbook

import (
	"context"

	"zetanom/domain"
	"zetanom/entities"
	"zetanom/internal/utils/storage"
	"zetanom/pkg/food"

	"gorm.io/gorm"
)

type (
	EntryRepository interface {
		CreateEntry(ctx context.Context, entry *entities.Entry) (int64, error)
		DeleteEntry(ctx context.Context, id int64) error
		ListEntries(ctx context.Context, date domain.Date) ([]*entities.Entry, error)
	}

	entryRepository struct {
		store *storage.Store
	}
)

func NewEntryRepository(store *storage.Store) EntryRepository {
	return &entryRepository{store: store}
}

// CreateEntry checks, in the same transaction as the insert, that the food exists
// and that a given serving exists and belongs to that food.
func (r *entryRepository) CreateEntry(ctx context.Context, entry *entities.Entry) (int64, error) {
	row := *entry
	row.ID = 0
	row.Food = nil
	err := r.store.Transaction(ctx, func(tx *gorm.DB) error {
		var f entities.Food
		if err := food.FindFood(tx, row.FoodID, &f); err != nil {
			return err
		}
		if row.ServingID != nil {
			var serving entities.ServingSize
			if err := food.FindServing(tx, *row.ServingID, &serving); err != nil {
				return err
			}
			if serving.FoodID != row.FoodID {
				return domain.ErrServingFoodMismatch
			}
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (r *entryRepository) DeleteEntry(ctx context.Context, id int64) error {
	return r.store.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Where("entry_id = ?", id).Delete(&entities.Entry{}).Error
	})
}

func (r *entryRepository) ListEntries(ctx context.Context, date domain.Date) ([]*entities.Entry, error) {
	entries := []*entities.Entry{}
	err := r.store.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Where("date = ?", date.String()).
			Order("created_at ASC").
			Order("entry_id ASC").
			Find(&entries).Error
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
