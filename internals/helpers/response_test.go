package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func executar(t *testing.T, handler fiber.Handler) (int, map[string]interface{}) {
	t.Helper()
	app := fiber.New()
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
		t.Fatalf("corpo não é JSON: %v", err)
	}
	return resp.StatusCode, envelope
}

func TestSuccessEnvelope(t *testing.T) {
	status, env := executar(t, func(c *fiber.Ctx) error {
		return Success(c, "ok", fiber.Map{"id": 1})
	})
	if status != fiber.StatusOK {
		t.Errorf("status = %d, esperado 200", status)
	}
	if env["success"] != true {
		t.Error("success deveria ser true")
	}
	if env["statusCode"] != float64(200) {
		t.Errorf("statusCode = %v, esperado 200", env["statusCode"])
	}
	if env["message"] != "ok" {
		t.Errorf("message = %v", env["message"])
	}
	if env["quant_rows"] != float64(1) {
		t.Errorf("quant_rows = %v, esperado 1", env["quant_rows"])
	}
	if env["data"] == nil {
		t.Error("data não deveria ser nulo")
	}
}

func TestSuccessListQuantRows(t *testing.T) {
	_, env := executar(t, func(c *fiber.Ctx) error {
		return SuccessList(c, "lista", []int{1, 2, 3}, 3)
	})
	if env["quant_rows"] != float64(3) {
		t.Errorf("quant_rows = %v, esperado 3", env["quant_rows"])
	}
}

func TestErrorEnvelope(t *testing.T) {
	status, env := executar(t, func(c *fiber.Ctx) error {
		return Error(c, fiber.StatusConflict, "intervalo já reservado")
	})
	if status != fiber.StatusConflict {
		t.Errorf("status = %d, esperado 409", status)
	}
	if env["success"] != false {
		t.Error("success deveria ser false")
	}
	if env["quant_rows"] != float64(0) {
		t.Errorf("quant_rows = %v, esperado 0", env["quant_rows"])
	}
	if env["data"] != nil {
		t.Errorf("data = %v, esperado null", env["data"])
	}
}

func TestNotFoundMensagemPadrao(t *testing.T) {
	status, env := executar(t, func(c *fiber.Ctx) error {
		return NotFound(c, "")
	})
	if status != fiber.StatusNotFound {
		t.Errorf("status = %d, esperado 404", status)
	}
	if env["message"] == "" {
		t.Error("mensagem padrão não deveria ser vazia")
	}
}
