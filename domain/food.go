package domain

import (
	"time"
)

var (
	MessageSuccessCreateFood    = "food created successfully"
	MessageSuccessEditFood      = "food updated successfully"
	MessageSuccessGetFoods      = "foods retrieved successfully"
	MessageSuccessGetFood       = "food retrieved successfully"
	MessageSuccessCreateServing = "serving size created successfully"
	MessageSuccessDeleteServing = "serving size deleted successfully"

	MessageFailedCreateFood    = "failed to create food"
	MessageFailedEditFood      = "failed to update food"
	MessageFailedGetFoods      = "failed to retrieve foods"
	MessageFailedGetFood       = "failed to retrieve food"
	MessageFailedCreateServing = "failed to create serving size"
	MessageFailedDeleteServing = "failed to delete serving size"

	ErrFoodNotFound         = NewError(KindNotFound, "food not found")
	ErrServingNotFound      = NewError(KindNotFound, "serving size not found")
	ErrFoodNameRequired     = NewError(KindValidation, "food name must not be empty")
	ErrServingNameRequired  = NewError(KindValidation, "serving name must not be empty")
	ErrInvalidServingAmount = NewError(KindValidation, "serving amount must be positive")
)

type (
	// FoodRequest carries the full set of mutable food fields. Nutrients are per 100
	// units of ServingUnit.
	FoodRequest struct {
		Name         string  `json:"name" validate:"required"`
		Brand        string  `json:"brand"`
		ServingUnit  string  `json:"serving_unit" validate:"required,serving_unit"`
		Energy       float64 `json:"energy" validate:"min=0"`
		Protein      float64 `json:"protein" validate:"min=0"`
		Fat          float64 `json:"fat" validate:"min=0"`
		FatSaturated float64 `json:"fat_saturated" validate:"min=0"`
		Carbs        float64 `json:"carbs" validate:"min=0"`
		CarbsSugars  float64 `json:"carbs_sugars" validate:"min=0"`
		Fibre        float64 `json:"fibre" validate:"min=0"`
		Sodium       float64 `json:"sodium" validate:"min=0"`
	}

	CreateFoodResponse struct {
		FoodID int64 `json:"food_id"`
	}

	FoodListItem struct {
		FoodID int64  `json:"food_id"`
		Name   string `json:"name"`
		Brand  string `json:"brand"`
	}

	FoodListResponse struct {
		Foods []FoodListItem `json:"foods"`
		Count int64          `json:"count"`
	}

	FoodResponse struct {
		FoodID      int64     `json:"food_id"`
		Name        string    `json:"name"`
		Brand       string    `json:"brand"`
		ServingUnit string    `json:"serving_unit"`
		Per100      Nutrition `json:"per_100"`
		CreatedAt   time.Time `json:"created_at"`
	}

	FoodDetailResponse struct {
		Food     FoodResponse      `json:"food"`
		Servings []ServingResponse `json:"servings"`
	}

	CreateServingRequest struct {
		Name   string  `json:"serving_name" validate:"required"`
		Amount float64 `json:"serving_amount" validate:"gt=0"`
	}

	CreateServingResponse struct {
		ServingID int64 `json:"serving_id"`
	}

	ServingResponse struct {
		ServingID int64     `json:"serving_id"`
		FoodID    int64     `json:"food_id"`
		Name      string    `json:"serving_name"`
		Amount    float64   `json:"serving_amount"`
		Unit      string    `json:"unit"`
		CreatedAt time.Time `json:"created_at"`
	}
)
