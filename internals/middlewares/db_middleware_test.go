package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func TestDBMiddlewareInjetaConexao(t *testing.T) {
	db := &gorm.DB{}

	app := fiber.New()
	app.Use(DBMiddleware(db))
	app.Get("/t", func(c *fiber.Ctx) error {
		got, ok := c.Locals("db").(*gorm.DB)
		if !ok || got != db {
			t.Error("Locals(\"db\") deveria conter a conexão injetada")
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, esperado 200", resp.StatusCode)
	}
}
