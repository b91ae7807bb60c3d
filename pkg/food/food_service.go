package food

import (
	"context"
	"fmt"
	"strings"
	"time"

	"zetanom/domain"
	"zetanom/entities"
)

type (
	FoodService interface {
		CreateFood(ctx context.Context, req domain.FoodRequest) (domain.CreateFoodResponse, error)
		EditFood(ctx context.Context, id int64, req domain.FoodRequest) error
		GetFood(ctx context.Context, id int64) (domain.FoodDetailResponse, error)
		ListFoods(ctx context.Context) (domain.FoodListResponse, error)
		CountFoods(ctx context.Context) (int64, error)

		CreateServing(ctx context.Context, foodID int64, req domain.CreateServingRequest) (domain.CreateServingResponse, error)
		DeleteServing(ctx context.Context, servingID int64) error
	}

	foodService struct {
		foodRepository FoodRepository
		now            func() time.Time
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		now:            time.Now,
	}
}

func (s *foodService) CreateFood(ctx context.Context, req domain.FoodRequest) (domain.CreateFoodResponse, error) {
	food, err := foodFromRequest(req)
	if err != nil {
		return domain.CreateFoodResponse{}, err
	}
	food.CreatedAt = s.now().UTC()

	id, err := s.foodRepository.CreateFood(ctx, food)
	if err != nil {
		return domain.CreateFoodResponse{}, err
	}
	return domain.CreateFoodResponse{FoodID: id}, nil
}

func (s *foodService) EditFood(ctx context.Context, id int64, req domain.FoodRequest) error {
	food, err := foodFromRequest(req)
	if err != nil {
		return err
	}
	food.ID = id
	return s.foodRepository.EditFood(ctx, food)
}

func (s *foodService) GetFood(ctx context.Context, id int64) (domain.FoodDetailResponse, error) {
	food, err := s.foodRepository.GetFood(ctx, id)
	if err != nil {
		return domain.FoodDetailResponse{}, err
	}
	servings, err := s.foodRepository.ListServings(ctx, id)
	if err != nil {
		return domain.FoodDetailResponse{}, err
	}

	res, err := ToFoodResponse(food)
	if err != nil {
		return domain.FoodDetailResponse{}, err
	}

	detail := domain.FoodDetailResponse{
		Food:     res,
		Servings: make([]domain.ServingResponse, 0, len(servings)),
	}
	for _, serving := range servings {
		detail.Servings = append(detail.Servings, domain.ServingResponse{
			ServingID: serving.ID,
			FoodID:    serving.FoodID,
			Name:      serving.Name,
			Amount:    serving.Amount,
			Unit:      res.ServingUnit,
			CreatedAt: serving.CreatedAt,
		})
	}
	return detail, nil
}

func (s *foodService) ListFoods(ctx context.Context) (domain.FoodListResponse, error) {
	foods, err := s.foodRepository.ListFoods(ctx)
	if err != nil {
		return domain.FoodListResponse{}, err
	}

	response := domain.FoodListResponse{
		Foods: make([]domain.FoodListItem, 0, len(foods)),
		Count: int64(len(foods)),
	}
	for _, food := range foods {
		response.Foods = append(response.Foods, domain.FoodListItem{
			FoodID: food.ID,
			Name:   food.Name,
			Brand:  food.Brand,
		})
	}
	return response, nil
}

func (s *foodService) CountFoods(ctx context.Context) (int64, error) {
	return s.foodRepository.CountFoods(ctx)
}

func (s *foodService) CreateServing(ctx context.Context, foodID int64, req domain.CreateServingRequest) (domain.CreateServingResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateServingResponse{}, domain.ErrServingNameRequired
	}
	if req.Amount <= 0 {
		return domain.CreateServingResponse{}, domain.ErrInvalidServingAmount
	}

	id, err := s.foodRepository.CreateServing(ctx, &entities.ServingSize{
		FoodID:    foodID,
		Name:      name,
		Amount:    req.Amount,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return domain.CreateServingResponse{}, err
	}
	return domain.CreateServingResponse{ServingID: id}, nil
}

func (s *foodService) DeleteServing(ctx context.Context, servingID int64) error {
	return s.foodRepository.DeleteServing(ctx, servingID)
}

func foodFromRequest(req domain.FoodRequest) (*entities.Food, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, domain.ErrFoodNameRequired
	}
	unit, err := domain.ParseServingUnit(req.ServingUnit)
	if err != nil {
		return nil, err
	}
	return &entities.Food{
		Name:         req.Name,
		Brand:        req.Brand,
		ServingUnit:  unit.String(),
		Energy:       req.Energy,
		Protein:      req.Protein,
		Fat:          req.Fat,
		FatSaturated: req.FatSaturated,
		Carbs:        req.Carbs,
		CarbsSugars:  req.CarbsSugars,
		Fibre:        req.Fibre,
		Sodium:       req.Sodium,
	}, nil
}

// Unit parses the stored base unit of food.
func Unit(food *entities.Food) (domain.ServingUnit, error) {
	unit, err := domain.ParseServingUnit(food.ServingUnit)
	if err != nil {
		return 0, domain.ErrCorruptRecord.Wrap(fmt.Errorf("food %d: %w", food.ID, err))
	}
	return unit, nil
}

// Per100 returns the nutrition of 100 base units of food.
func Per100(food *entities.Food) domain.Nutrition {
	return domain.Nutrition{
		Energy:       food.Energy,
		Protein:      food.Protein,
		Fat:          food.Fat,
		FatSaturated: food.FatSaturated,
		Carbs:        food.Carbs,
		CarbsSugars:  food.CarbsSugars,
		Fibre:        food.Fibre,
		Sodium:       food.Sodium,
	}
}

func ToFoodResponse(food *entities.Food) (domain.FoodResponse, error) {
	unit, err := Unit(food)
	if err != nil {
		return domain.FoodResponse{}, err
	}
	return domain.FoodResponse{
		FoodID:      food.ID,
		Name:        food.Name,
		Brand:       food.Brand,
		ServingUnit: unit.String(),
		Per100:      Per100(food),
		CreatedAt:   food.CreatedAt,
	}, nil
}
