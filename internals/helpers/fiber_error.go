package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError maps an error coming out of a Transaction (usually a
// *fiber.Error) to the consistent JSON envelope via helper.Error.
// Anything else falls back to 500 with the original message.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, err.Error())
}
