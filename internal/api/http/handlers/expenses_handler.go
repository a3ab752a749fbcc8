package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scheduling-service/internal/api/dto"
	"github.com/spec-kit/scheduling-service/internal/domain"
	"github.com/spec-kit/scheduling-service/internal/service"
	apperrors "github.com/spec-kit/scheduling-service/pkg/util/errorutil"
)

// ExpensesHandler manages the expense ledger endpoints.
type ExpensesHandler struct {
	service *service.ExpenseService
}

// NewExpensesHandler constructs handler.
func NewExpensesHandler(expenseService *service.ExpenseService) *ExpensesHandler {
	return &ExpensesHandler{service: expenseService}
}

// Create POST /expenses.
func (h *ExpensesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Amount == nil {
		return apperrors.NewValidationError("expense required", nil)
	}

	expense, err := h.service.Create(c.Context(), req.Name, *req.Amount)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(expenseResponse(expense))
}

// List GET /expenses.
func (h *ExpensesHandler) List(c *fiber.Ctx) error {
	expenses, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		items = append(items, expenseResponse(&expenses[i]))
	}
	return c.JSON(items)
}

// Delete DELETE /expenses/:id.
func (h *ExpensesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Expense deleted successfully"})
}

func expenseResponse(expense *domain.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:     expense.ID,
		Name:   expense.Name,
		Amount: expense.Amount,
	}
}
