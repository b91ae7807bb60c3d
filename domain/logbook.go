package domain

var (
	MessageSuccessGetDailyLog = "daily log retrieved successfully"
	MessageSuccessCreateEntry = "food logged successfully"
	MessageSuccessDeleteEntry = "entry deleted successfully"

	MessageFailedGetDailyLog = "failed to retrieve daily log"
	MessageFailedCreateEntry = "failed to log food"
	MessageFailedDeleteEntry = "failed to delete entry"

	ErrEntryNotFound       = NewError(KindNotFound, "entry not found")
	ErrServingFoodMismatch = NewError(KindIntegrity, "serving size does not belong to the referenced food")
	ErrInvalidEntryAmount  = NewError(KindValidation, "amount must not be negative")
)

type (
	// CreateEntryRequest logs Amount of a food. Without a serving the amount counts
	// blocks of 100 base units, otherwise it counts servings.
	CreateEntryRequest struct {
		FoodID    int64   `json:"food_id" validate:"required,gt=0"`
		ServingID *int64  `json:"serving_id" validate:"omitempty,gt=0"`
		Amount    float64 `json:"amount" validate:"min=0"`
	}

	CreateEntryResponse struct {
		EntryID int64  `json:"entry_id"`
		Date    string `json:"date"`
	}

	LogLine struct {
		EntryID        int64     `json:"entry_id"`
		FoodID         int64     `json:"food_id"`
		FoodName       string    `json:"food_name"`
		Brand          string    `json:"brand"`
		Amount         float64   `json:"amount"`
		Unit           string    `json:"unit"`
		Time           string    `json:"time"`
		ServingMissing bool      `json:"serving_missing,omitempty"`
		Nutrition      Nutrition `json:"nutrition"`
	}

	DailyLogResponse struct {
		Date     string    `json:"date"`
		Title    string    `json:"title"`
		Previous string    `json:"previous"`
		Next     string    `json:"next"`
		Entries  []LogLine `json:"entries"`
		Total    Nutrition `json:"total"`
	}
)
