package handler

import (
	"errors"

	"go-baki-pos/internal/service"
	"go-baki-pos/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type CommandHandler struct {
	service service.LedgerService
}

func NewCommandHandler(s service.LedgerService) *CommandHandler {
	return &CommandHandler{service: s}
}

// CommandRequest carries one typed or transcribed utterance
type CommandRequest struct {
	Command string `json:"command" validate:"required,notblank"`
}

// getOperatorName reads the operator set by RequireAuth
func getOperatorName(c *fiber.Ctx) string {
	name := c.Locals("operator_name")
	if name == nil {
		return "system"
	}
	return name.(string)
}

// ProcessCommand handles a shop command
// POST /api/v1/commands
func (h *CommandHandler) ProcessCommand(c *fiber.Ctx) error {
	var req CommandRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": service.ErrEmptyCommand.Error()})
	}

	tx, err := h.service.ProcessCommand(c.UserContext(), req.Command)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCommand) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":  "Command processed successfully",
		"operator": getOperatorName(c),
		"data":     tx,
	})
}

// GetRecentCommands returns the last distinct commands, newest first
// GET /api/v1/commands/recent
func (h *CommandHandler) GetRecentCommands(c *fiber.Ctx) error {
	return c.JSON(h.service.RecentCommands())
}
