package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// O app é montado com FromFiberError como ErrorHandler, como em produção:
// erro devolvido por middleware/handler precisa sair no envelope padrão.
func executarComErrorHandler(t *testing.T, handler fiber.Handler) (int, map[string]interface{}) {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: FromFiberError})
	app.Get("/t", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("lendo corpo: %v", err)
	}
	var envelope map[string]interface{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("corpo não é JSON: %q", body)
	}
	return resp.StatusCode, envelope
}

func TestErrorHandlerEnvelopaFiberError(t *testing.T) {
	status, env := executarComErrorHandler(t, func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusUnauthorized, "Token ausente")
	})
	if status != fiber.StatusUnauthorized {
		t.Errorf("status = %d, esperado 401", status)
	}
	if env["success"] != false {
		t.Error("success deveria ser false")
	}
	if env["statusCode"] != float64(401) {
		t.Errorf("statusCode = %v, esperado 401", env["statusCode"])
	}
	if env["message"] != "Token ausente" {
		t.Errorf("message = %v", env["message"])
	}
}

func TestErrorHandlerEnvelopaErroGenerico(t *testing.T) {
	status, env := executarComErrorHandler(t, func(c *fiber.Ctx) error {
		return errors.New("falha inesperada")
	})
	if status != fiber.StatusInternalServerError {
		t.Errorf("status = %d, esperado 500", status)
	}
	if env["success"] != false {
		t.Error("success deveria ser false")
	}
}
