package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Envelope padrão de resposta da API:
// { success, statusCode, message, quant_rows, data }

func countRows(data interface{}) int {
	switch v := data.(type) {
	case nil:
		return 0
	case []interface{}:
		return len(v)
	default:
		return 1
	}
}

// Success responde 200 com o envelope padrão.
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// SuccessWithCode permite status customizado (ex.: 201 para created).
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"success":    true,
		"statusCode": code,
		"message":    message,
		"quant_rows": countRows(data),
		"data":       data,
	})
}

// SuccessList responde listas informando quant_rows explicitamente.
func SuccessList(c *fiber.Ctx, message string, data interface{}, quantRows int) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"statusCode": fiber.StatusOK,
		"message":    message,
		"quant_rows": quantRows,
		"data":       data,
	})
}

// Error responde falha com o envelope padrão.
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"success":    false,
		"statusCode": code,
		"message":    message,
		"quant_rows": 0,
		"data":       nil,
	})
}

// NotFound é o atalho para recurso inexistente.
func NotFound(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Recurso não encontrado"
	}
	return Error(c, fiber.StatusNotFound, message)
}

// ValidationError formata erros do validator.v10 campo a campo.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return Error(c, fiber.StatusBadRequest, "Entrada inválida")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success":    false,
		"statusCode": fiber.StatusBadRequest,
		"message":    "Validação falhou",
		"quant_rows": 0,
		"data":       nil,
		"errors":     errorsMap,
	})
}
