package food

import (
	"context"
	"errors"
	"testing"
	"time"

	migration "zetanom/cmd/database/migrate"
	"zetanom/domain"
	"zetanom/entities"
	"zetanom/internal/utils/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.March, 14, 8, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	db, err := storage.OpenMemory()
	require.NoError(t, err)
	require.NoError(t, migration.Migrate(db))

	store := storage.NewStore(db)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newTestService(t *testing.T) (*foodService, FoodRepository) {
	t.Helper()
	repo := NewFoodRepository(newTestStore(t))
	svc := NewFoodService(repo).(*foodService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func oats() domain.FoodRequest {
	return domain.FoodRequest{
		Name:         "Rolled oats",
		Brand:        "Uncle Tobys",
		ServingUnit:  "g",
		Energy:       1580,
		Protein:      12.6,
		Fat:          8.4,
		FatSaturated: 1.5,
		Carbs:        56.7,
		CarbsSugars:  1.2,
		Fibre:        9.9,
		Sodium:       2,
	}
}

func TestFoodRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateFood(ctx, oats())
	require.NoError(t, err)
	assert.Positive(t, created.FoodID)

	detail, err := svc.GetFood(ctx, created.FoodID)
	require.NoError(t, err)

	assert.Equal(t, created.FoodID, detail.Food.FoodID)
	assert.Equal(t, "Rolled oats", detail.Food.Name)
	assert.Equal(t, "Uncle Tobys", detail.Food.Brand)
	assert.Equal(t, "g", detail.Food.ServingUnit)
	assert.Equal(t, domain.Nutrition{
		Energy: 1580, Protein: 12.6, Fat: 8.4, FatSaturated: 1.5,
		Carbs: 56.7, CarbsSugars: 1.2, Fibre: 9.9, Sodium: 2,
	}, detail.Food.Per100)
	assert.True(t, fixedNow.Equal(detail.Food.CreatedAt))
	assert.Empty(t, detail.Servings)
}

func TestCreateFoodValidation(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		mutate   func(*domain.FoodRequest)
		expected error
	}{
		{name: "blank name", mutate: func(r *domain.FoodRequest) { r.Name = "   " }, expected: domain.ErrFoodNameRequired},
		{name: "unknown unit", mutate: func(r *domain.FoodRequest) { r.ServingUnit = "kg" }, expected: domain.ErrInvalidServingUnit},
		{name: "upper case unit", mutate: func(r *domain.FoodRequest) { r.ServingUnit = "ML" }, expected: domain.ErrInvalidServingUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := oats()
			tt.mutate(&req)
			_, err := svc.CreateFood(ctx, req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expected))
			assert.True(t, errors.Is(err, domain.ErrValidation))
		})
	}

	count, err := repo.CountFoods(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestListFoodsOrdering(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"banana", "Zucchini", "apple", "banana"} {
		req := oats()
		req.Name = name
		_, err := svc.CreateFood(ctx, req)
		require.NoError(t, err)
	}

	list, err := svc.ListFoods(ctx)
	require.NoError(t, err)
	require.Len(t, list.Foods, 4)
	assert.EqualValues(t, 4, list.Count)

	names := make([]string, 0, len(list.Foods))
	for _, item := range list.Foods {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"Zucchini", "apple", "banana", "banana"}, names)
	assert.Less(t, list.Foods[2].FoodID, list.Foods[3].FoodID)
}

func TestListFoodsEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	list, err := svc.ListFoods(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list.Foods)
	assert.Empty(t, list.Foods)
}

func TestEditFood(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateFood(ctx, oats())
	require.NoError(t, err)

	edited := oats()
	edited.Name = "Quick oats"
	edited.Brand = ""
	edited.ServingUnit = "ml"
	edited.Energy = 0
	svc.now = func() time.Time { return fixedNow.Add(time.Hour) }
	require.NoError(t, svc.EditFood(ctx, created.FoodID, edited))

	detail, err := svc.GetFood(ctx, created.FoodID)
	require.NoError(t, err)
	assert.Equal(t, "Quick oats", detail.Food.Name)
	assert.Equal(t, "", detail.Food.Brand)
	assert.Equal(t, "ml", detail.Food.ServingUnit)
	assert.Zero(t, detail.Food.Per100.Energy)
	assert.True(t, fixedNow.Equal(detail.Food.CreatedAt))
}

func TestEditFoodNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.EditFood(context.Background(), 42, oats())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFoodNotFound))
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGetFoodNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetFood(context.Background(), 7)
	assert.True(t, errors.Is(err, domain.ErrFoodNotFound))
}

func TestGetFoodCorruptUnit(t *testing.T) {
	_, repo := newTestService(t)
	ctx := context.Background()

	id, err := repo.CreateFood(ctx, &entities.Food{Name: "Mystery", ServingUnit: "oz", CreatedAt: fixedNow})
	require.NoError(t, err)

	_, err = NewFoodService(repo).GetFood(ctx, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCorruptRecord))
}

func TestServings(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateFood(ctx, oats())
	require.NoError(t, err)

	cup, err := svc.CreateServing(ctx, created.FoodID, domain.CreateServingRequest{Name: "cup", Amount: 90})
	require.NoError(t, err)
	bowl, err := svc.CreateServing(ctx, created.FoodID, domain.CreateServingRequest{Name: "bowl", Amount: 45})
	require.NoError(t, err)
	assert.NotEqual(t, cup.ServingID, bowl.ServingID)

	detail, err := svc.GetFood(ctx, created.FoodID)
	require.NoError(t, err)
	require.Len(t, detail.Servings, 2)
	assert.Equal(t, "bowl", detail.Servings[0].Name)
	assert.Equal(t, 45.0, detail.Servings[0].Amount)
	assert.Equal(t, "g", detail.Servings[0].Unit)
	assert.Equal(t, "cup", detail.Servings[1].Name)

	serving, err := repo.GetServing(ctx, cup.ServingID)
	require.NoError(t, err)
	assert.Equal(t, created.FoodID, serving.FoodID)
	assert.Equal(t, 90.0, serving.Amount)

	require.NoError(t, svc.DeleteServing(ctx, cup.ServingID))
	_, err = repo.GetServing(ctx, cup.ServingID)
	assert.True(t, errors.Is(err, domain.ErrServingNotFound))

	// deleting again is a no-op
	assert.NoError(t, svc.DeleteServing(ctx, cup.ServingID))
}

func TestCreateServingValidation(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateFood(ctx, oats())
	require.NoError(t, err)

	tests := []struct {
		name     string
		foodID   int64
		req      domain.CreateServingRequest
		expected error
	}{
		{name: "zero amount", foodID: created.FoodID, req: domain.CreateServingRequest{Name: "none", Amount: 0}, expected: domain.ErrInvalidServingAmount},
		{name: "negative amount", foodID: created.FoodID, req: domain.CreateServingRequest{Name: "less", Amount: -5}, expected: domain.ErrInvalidServingAmount},
		{name: "blank name", foodID: created.FoodID, req: domain.CreateServingRequest{Name: " ", Amount: 10}, expected: domain.ErrServingNameRequired},
		{name: "unknown food", foodID: created.FoodID + 100, req: domain.CreateServingRequest{Name: "cup", Amount: 10}, expected: domain.ErrFoodNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateServing(ctx, tt.foodID, tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expected))
		})
	}

	// the repository checks the amount on its own too
	_, err = repo.CreateServing(ctx, &entities.ServingSize{FoodID: created.FoodID, Name: "raw", Amount: 0})
	assert.True(t, errors.Is(err, domain.ErrInvalidServingAmount))

	servings, err := repo.ListServings(ctx, created.FoodID)
	require.NoError(t, err)
	assert.Empty(t, servings)
}

func TestCountFoods(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	count, err := svc.CountFoods(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateFood(ctx, oats())
		require.NoError(t, err)
	}

	count, err = svc.CountFoods(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}
