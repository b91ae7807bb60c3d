package handlers

import (
	"fmt"
	"strconv"

	"zetanom/domain"

	"github.com/gofiber/fiber/v2"
)

func paramID(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID.Wrap(fmt.Errorf("%s: %q", name, raw))
	}
	return id, nil
}

func paramDate(c *fiber.Ctx) (domain.Date, error) {
	return domain.ParseDate(c.Params("date"))
}
