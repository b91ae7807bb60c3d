package logbook

import (
	"context"
	"fmt"
	"time"

	"zetanom/domain"
	"zetanom/entities"
	"zetanom/pkg/food"

	"github.com/gofiber/fiber/v2/log"
)

// displayPlaces is the precision of nutrition figures in a daily log.
const displayPlaces = 1

type (
	LogService interface {
		GetDailyLog(ctx context.Context, date domain.Date) (domain.DailyLogResponse, error)
		CreateEntry(ctx context.Context, date domain.Date, req domain.CreateEntryRequest) (domain.CreateEntryResponse, error)
		DeleteEntry(ctx context.Context, id int64) error
		Today() domain.Date
	}

	logService struct {
		entryRepository EntryRepository
		foodRepository  food.FoodRepository
		loc             *time.Location
		now             func() time.Time
	}
)

func NewLogService(entryRepository EntryRepository, foodRepository food.FoodRepository, loc *time.Location) LogService {
	if loc == nil {
		loc = time.Local
	}
	return &logService{
		entryRepository: entryRepository,
		foodRepository:  foodRepository,
		loc:             loc,
		now:             time.Now,
	}
}

func (s *logService) Today() domain.Date {
	return domain.DateOf(s.now(), s.loc)
}

// GetDailyLog computes every entry's contribution and the day's total. Each lookup
// is its own storage operation, so a serving deleted in between is tolerated; a
// missing food is not and fails the whole log.
func (s *logService) GetDailyLog(ctx context.Context, date domain.Date) (domain.DailyLogResponse, error) {
	entries, err := s.entryRepository.ListEntries(ctx, date)
	if err != nil {
		return domain.DailyLogResponse{}, err
	}

	foods := map[int64]*entities.Food{}
	servings := map[int64][]*entities.ServingSize{}

	lines := make([]domain.LogLine, 0, len(entries))
	var total domain.Nutrition
	for _, entry := range entries {
		f, ok := foods[entry.FoodID]
		if !ok {
			f, err = s.foodRepository.GetFood(ctx, entry.FoodID)
			if err != nil {
				return domain.DailyLogResponse{}, fmt.Errorf("entry %d: %w", entry.ID, err)
			}
			foods[entry.FoodID] = f
		}
		base, err := food.Unit(f)
		if err != nil {
			return domain.DailyLogResponse{}, err
		}

		var foodServings []*entities.ServingSize
		if entry.ServingID != nil {
			foodServings, ok = servings[f.ID]
			if !ok {
				foodServings, err = s.foodRepository.ListServings(ctx, f.ID)
				if err != nil {
					return domain.DailyLogResponse{}, err
				}
				servings[f.ID] = foodServings
			}
		}

		unit := ResolveUnit(base, entry.ServingID, foodServings)
		if unit.ServingMissing {
			log.Warnf("entry %d references missing serving %d of food %d, counting it in %s",
				entry.ID, *entry.ServingID, f.ID, base)
		}

		nutrition := Contribution(food.Per100(f), entry.Amount, unit)
		total = total.Add(nutrition)

		lines = append(lines, domain.LogLine{
			EntryID:        entry.ID,
			FoodID:         f.ID,
			FoodName:       f.Name,
			Brand:          f.Brand,
			Amount:         entry.Amount,
			Unit:           unit.Label,
			Time:           entry.CreatedAt.In(s.loc).Format("15:04"),
			ServingMissing: unit.ServingMissing,
			Nutrition:      nutrition.Round(displayPlaces),
		})
	}

	return domain.DailyLogResponse{
		Date:     date.String(),
		Title:    date.Humanize(),
		Previous: date.Previous().String(),
		Next:     date.Next().String(),
		Entries:  lines,
		Total:    total.Round(displayPlaces),
	}, nil
}

func (s *logService) CreateEntry(ctx context.Context, date domain.Date, req domain.CreateEntryRequest) (domain.CreateEntryResponse, error) {
	if req.Amount < 0 {
		return domain.CreateEntryResponse{}, domain.ErrInvalidEntryAmount
	}
	if req.FoodID <= 0 {
		return domain.CreateEntryResponse{}, domain.ErrFoodNotFound
	}

	id, err := s.entryRepository.CreateEntry(ctx, &entities.Entry{
		Date:      date.String(),
		FoodID:    req.FoodID,
		ServingID: req.ServingID,
		Amount:    req.Amount,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return domain.CreateEntryResponse{}, err
	}
	return domain.CreateEntryResponse{EntryID: id, Date: date.String()}, nil
}

func (s *logService) DeleteEntry(ctx context.Context, id int64) error {
	return s.entryRepository.DeleteEntry(ctx, id)
}
