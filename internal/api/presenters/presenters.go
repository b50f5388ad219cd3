package presenters

import "github.com/gofiber/fiber/v2"

func SuccessResponse(c *fiber.Ctx, data interface{}, code int) error {
	return c.Status(code).JSON(data)
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	if err != nil {
		return c.Status(code).JSON(fiber.Map{
			"detail": message,
			"error":  err.Error(),
		})
	}
	return c.Status(code).JSON(fiber.Map{
		"detail": message,
	})
}
