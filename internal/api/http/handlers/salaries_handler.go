package handlers

import (
	"math"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scheduling-service/internal/api/dto"
	"github.com/spec-kit/scheduling-service/internal/auth"
	"github.com/spec-kit/scheduling-service/internal/service"
	apperrors "github.com/spec-kit/scheduling-service/pkg/util/errorutil"
)

// SalariesHandler manages payroll endpoints.
type SalariesHandler struct {
	service *service.PayrollService
}

// NewSalariesHandler constructs handler.
func NewSalariesHandler(payrollService *service.PayrollService) *SalariesHandler {
	return &SalariesHandler{service: payrollService}
}

// Compute GET /salaries with optional start_date and end_date query params.
// The range applies only when both bounds are present.
func (h *SalariesHandler) Compute(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	startDate, err := parseDateQuery(c, "start_date")
	if err != nil {
		return err
	}
	endDate, err := parseDateQuery(c, "end_date")
	if err != nil {
		return err
	}

	rows, err := h.service.Compute(c.Context(), principal.User, principal.Identity, startDate, endDate)
	if err != nil {
		return err
	}

	items := make([]dto.PayrollRowResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.PayrollRowResponse{
			ID:         row.UserID,
			FirstName:  row.FirstName,
			LastName:   row.LastName,
			MiddleName: row.MiddleName,
			Salary:     round2(row.Amount),
		})
	}
	return c.JSON(items)
}

// Create POST /salaries records a commission rule.
func (h *SalariesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSalaryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UserID == 0 {
		return apperrors.NewValidationError("user_id required", nil)
	}

	salary, err := h.service.SetCommission(c.Context(), req.UserID, req.Salary, req.Percent)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.SalaryResponse{
		ID:      salary.ID,
		UserID:  salary.UserID,
		Salary:  salary.Salary,
		Percent: salary.Percent,
	})
}

func parseDateQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	val := c.Query(key)
	if val == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, val)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid "+key+" format", nil)
	}
	return &parsed, nil
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
