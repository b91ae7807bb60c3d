package handlers

import (
	"zetanom/domain"
	"zetanom/internal/api/presenters"
	"zetanom/pkg/logbook"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	LogHandler interface {
		Today(c *fiber.Ctx) error
		GetDailyLog(c *fiber.Ctx) error
		CreateEntry(c *fiber.Ctx) error
		DeleteEntry(c *fiber.Ctx) error
	}

	logHandler struct {
		logService logbook.LogService
		validator  *validator.Validate
	}
)

func NewLogHandler(logService logbook.LogService, validator *validator.Validate) LogHandler {
	return &logHandler{
		logService: logService,
		validator:  validator,
	}
}

// Today redirects to the log of the current date.
func (h *logHandler) Today(c *fiber.Ctx) error {
	return c.Redirect("/api/v1/log/"+h.logService.Today().String(), fiber.StatusFound)
}

func (h *logHandler) GetDailyLog(c *fiber.Ctx) error {
	date, err := paramDate(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDailyLog, err)
	}

	res, err := h.logService.GetDailyLog(c.UserContext(), date)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetDailyLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDailyLog)
}

func (h *logHandler) CreateEntry(c *fiber.Ctx) error {
	date, err := paramDate(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateEntry, err)
	}
	req := new(domain.CreateEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateEntry, err)
	}

	res, err := h.logService.CreateEntry(c.UserContext(), date, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedCreateEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateEntry)
}

func (h *logHandler) DeleteEntry(c *fiber.Ctx) error {
	entryID, err := paramID(c, "entry_id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParseID, err)
	}

	if err := h.logService.DeleteEntry(c.UserContext(), entryID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedDeleteEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteEntry)
}
