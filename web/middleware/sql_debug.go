package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lacsuuuu/ergin-hardware/database"
)

// SQLQueryCountHeader reports how many SQL statements a request executed.
const SQLQueryCountHeader = "X-SQL-Query-Count"

// SQLDebug counts the statements each request executes and reports the
// number on the response, alongside the full log at /api/debug/sql.
func SQLDebug() fiber.Handler {
	return func(c *fiber.Ctx) error {
		before := database.SQLLogger.Count()

		err := c.Next()

		c.Set(SQLQueryCountHeader, strconv.Itoa(database.SQLLogger.Count()-before))
		return err
	}
}
