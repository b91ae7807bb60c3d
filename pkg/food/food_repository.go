package food

import (
	"context"
	"errors"

	"zetanom/domain"
	"zetanom/entities"
	"zetanom/internal/utils/storage"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		CreateFood(ctx context.Context, food *entities.Food) (int64, error)
		GetFood(ctx context.Context, id int64) (*entities.Food, error)
		ListFoods(ctx context.Context) ([]*entities.Food, error)
		EditFood(ctx context.Context, food *entities.Food) error
		CountFoods(ctx context.Context) (int64, error)

		// Serving sizes
		CreateServing(ctx context.Context, serving *entities.ServingSize) (int64, error)
		GetServing(ctx context.Context, id int64) (*entities.ServingSize, error)
		DeleteServing(ctx context.Context, id int64) error
		ListServings(ctx context.Context, foodID int64) ([]*entities.ServingSize, error)
	}

	foodRepository struct {
		store *storage.Store
	}
)

// editableColumns are overwritten by EditFood; food_id and created_at never are.
var editableColumns = []string{
	"name", "brand", "serving_unit",
	"energy", "protein", "fat", "fat_saturated",
	"carbs", "carbs_sugars", "fibre", "sodium",
}

func NewFoodRepository(store *storage.Store) FoodRepository {
	return &foodRepository{store: store}
}

func (r *foodRepository) CreateFood(ctx context.Context, food *entities.Food) (int64, error) {
	row := *food
	row.ID = 0
	err := r.store.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (r *foodRepository) GetFood(ctx context.Context, id int64) (*entities.Food, error) {
	var food entities.Food
	err := r.store.Transaction(ctx, func(tx *gorm.DB) error {
		return FindFood(tx, id, &food)
	})
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) ListFoods(ctx context.Context) ([]*entities.Food, error) {
	foods := []*entities.Food{}
	err := r.store.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Order("name ASC").Order("food_id ASC").Find(&foods).Error
	})
	if err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) EditFood(ctx context.Context, food *entities.Food) error {
	return r.store.Transaction(ctx, func(tx *gorm.DB) error {
		res := tx.Model(&entities.Food{}).
			Where("food_id = ?", food.ID).
			Select(editableColumns).
			Updates(map[string]interface{}{
				"name":          food.Name,
				"brand":         food.Brand,
				"serving_unit":  food.ServingUnit,
				"energy":        food.Energy,
				"protein":       food.Protein,
				"fat":           food.Fat,
				"fat_saturated": food.FatSaturated,
				"carbs":         food.Carbs,
				"carbs_sugars":  food.CarbsSugars,
				"fibre":         food.Fibre,
				"sodium":        food.Sodium,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrFoodNotFound
		}
		return nil
	})
}

func (r *foodRepository) CountFoods(ctx context.Context) (int64, error) {
	var count int64
	err := r.store.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Model(&entities.Food{}).Count(&count).Error
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *foodRepository) CreateServing(ctx context.Context, serving *entities.ServingSize) (int64, error) {
	if serving.Amount <= 0 {
		return 0, domain.ErrInvalidServingAmount
	}
	row := *serving
	row.ID = 0
	row.Food = nil
	err := r.store.Transaction(ctx, func(tx *gorm.DB) error {
		var food entities.Food
		if err := FindFood(tx, row.FoodID, &food); err != nil {
			return err
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (r *foodRepository) GetServing(ctx context.Context, id int64) (*entities.ServingSize, error) {
	var serving entities.ServingSize
	err := r.store.Transaction(ctx, func(tx *gorm.DB) error {
		return FindServing(tx, id, &serving)
	})
	if err != nil {
		return nil, err
	}
	return &serving, nil
}

// DeleteServing removes the serving size. Deleting a missing id is not an error, and
// entries that still reference the serving keep their dangling serving_id.
func (r *foodRepository) DeleteServing(ctx context.Context, id int64) error {
	return r.store.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Where("serving_id = ?", id).Delete(&entities.ServingSize{}).Error
	})
}

func (r *foodRepository) ListServings(ctx context.Context, foodID int64) ([]*entities.ServingSize, error) {
	servings := []*entities.ServingSize{}
	err := r.store.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Where("food_id = ?", foodID).
			Order("serving_name ASC").
			Order("serving_id ASC").
			Find(&servings).Error
	})
	if err != nil {
		return nil, err
	}
	return servings, nil
}

// FindFood loads a food inside an open transaction.
func FindFood(tx *gorm.DB, id int64, food *entities.Food) error {
	if err := tx.Where("food_id = ?", id).First(food).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodNotFound
		}
		return err
	}
	return nil
}

// FindServing loads a serving size inside an open transaction.
func FindServing(tx *gorm.DB, id int64, serving *entities.ServingSize) error {
	if err := tx.Where("serving_id = ?", id).First(serving).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrServingNotFound
		}
		return err
	}
	return nil
}
