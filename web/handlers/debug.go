package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lacsuuuu/ergin-hardware/database"
)

// Health is a simple check to see if the server is running
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "online",
		"message": "Ergin Hardware backend is running",
	})
}

// GetSQLLogs returns recent SQL logs as JSON
func GetSQLLogs(c *fiber.Ctx) error {
	queries := database.SQLLogger.GetRecentQueries(20)
	return c.JSON(queries)
}

// ClearSQLLogs clears all SQL logs
func ClearSQLLogs(c *fiber.Ctx) error {
	database.SQLLogger.Clear()
	return c.SendStatus(fiber.StatusOK)
}
