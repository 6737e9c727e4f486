package handler

import (
	"errors"

	"go-baki-pos/internal/service"
	"go-baki-pos/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

var errNilID = errors.New("id must not be the nil UUID")

type idParam struct {
	ID uuid.UUID `validate:"uuid_required"`
}

// parseUUID parses a path id; the all-zero UUID is never a record id
func parseUUID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, err
	}
	if errs := validator.ValidateStruct(&idParam{ID: parsed}); len(errs) > 0 {
		return uuid.Nil, errNilID
	}
	return parsed, nil
}

// notFoundOr500 maps a lookup error to the right status
func notFoundOr500(c *fiber.Ctx, err error, what string) error {
	if service.IsNotFound(err) {
		return c.Status(404).JSON(fiber.Map{"error": what + " not found"})
	}
	return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
}

// GET /api/v1/products?q=&status=&sort=&dir=
func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	var q service.ProductQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid query"})
	}

	products, err := h.service.GetProducts(q)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(products)
}

func (h *InventoryHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		return notFoundOr500(c, err, "Product")
	}
	return c.JSON(product)
}

// GET /api/v1/customers?q=
func (h *InventoryHandler) GetCustomers(c *fiber.Ctx) error {
	return c.JSON(h.service.GetCustomers(c.Query("q")))
}

func (h *InventoryHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	customer, err := h.service.GetCustomerByID(id)
	if err != nil {
		return notFoundOr500(c, err, "Customer")
	}
	return c.JSON(customer)
}

// GET /api/v1/transactions?q=&type=
func (h *InventoryHandler) GetTransactions(c *fiber.Ctx) error {
	var q service.TransactionQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid query"})
	}

	transactions, err := h.service.GetTransactions(q)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(transactions)
}

func (h *InventoryHandler) GetTransaction(c *fiber.Ctx) error {
	txID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	tx, err := h.service.GetTransactionByID(txID)
	if err != nil {
		return notFoundOr500(c, err, "Transaction")
	}
	return c.JSON(tx)
}
