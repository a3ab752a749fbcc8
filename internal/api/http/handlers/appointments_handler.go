package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scheduling-service/internal/api/dto"
	"github.com/spec-kit/scheduling-service/internal/auth"
	"github.com/spec-kit/scheduling-service/internal/domain"
	"github.com/spec-kit/scheduling-service/internal/service"
	apperrors "github.com/spec-kit/scheduling-service/pkg/util/errorutil"
)

const (
	dateLayout      = "2006-01-02"
	timeOfDayLayout = "15:04"
	// slotLength is the inclusive width of a calendar slot.
	slotLength = 14*time.Minute + 59*time.Second
)

// AppointmentsHandler manages appointment endpoints.
type AppointmentsHandler struct {
	service *service.AppointmentService
}

// NewAppointmentsHandler constructs handler.
func NewAppointmentsHandler(appointmentService *service.AppointmentService) *AppointmentsHandler {
	return &AppointmentsHandler{service: appointmentService}
}

// List GET /appointments.
func (h *AppointmentsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}
	appts, err := h.service.List(c.Context(), principal.User, principal.Identity, service.AppointmentQuery{})
	if err != nil {
		return err
	}
	return c.JSON(appointmentResponses(appts))
}

// ListByDate GET /appointments_by_date/:date with an optional branch query.
func (h *AppointmentsHandler) ListByDate(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}
	day, err := time.Parse(dateLayout, c.Params("date"))
	if err != nil {
		return apperrors.NewValidationError("invalid date format", nil)
	}

	// An unrecognized branch value is ignored rather than rejected.
	branch, _ := domain.ParseBranch(c.Query("branch"))

	appts, err := h.service.List(c.Context(), principal.User, principal.Identity, service.AppointmentQuery{
		Date:   &day,
		Branch: branch,
	})
	if err != nil {
		return err
	}
	return c.JSON(appointmentResponses(appts))
}

// ListByDatetime GET /appointments_by_datetime/:datetime.
func (h *AppointmentsHandler) ListByDatetime(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}
	raw, err := url.PathUnescape(c.Params("datetime"))
	if err != nil {
		return apperrors.NewValidationError("invalid datetime format", nil)
	}
	at, err := parseTimestamp(raw)
	if err != nil {
		return apperrors.NewValidationError("invalid datetime format", nil)
	}

	appts, err := h.service.List(c.Context(), principal.User, principal.Identity, service.AppointmentQuery{At: &at})
	if err != nil {
		return err
	}
	return c.JSON(appointmentResponses(appts))
}

// ListByTimeslot GET /appointments_by_timeslot/:date/:time. The slot covers
// [start, start+14:59] inclusive.
func (h *AppointmentsHandler) ListByTimeslot(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}
	day, err := time.Parse(dateLayout, c.Params("date"))
	if err != nil {
		return apperrors.NewValidationError("invalid date format", nil)
	}
	tod, err := time.Parse(timeOfDayLayout, c.Params("time"))
	if err != nil {
		return apperrors.NewValidationError("invalid time format", nil)
	}

	start := day.Add(time.Duration(tod.Hour())*time.Hour + time.Duration(tod.Minute())*time.Minute)
	end := start.Add(slotLength)

	appts, err := h.service.List(c.Context(), principal.User, principal.Identity, service.AppointmentQuery{
		SlotStart: &start,
		SlotEnd:   &end,
	})
	if err != nil {
		return err
	}
	return c.JSON(appointmentResponses(appts))
}

// Create POST /appointments.
func (h *AppointmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UserID == 0 || req.ClientID == 0 || req.DateOfAppointment == "" {
		return apperrors.NewValidationError("user_id, client_id, date_of_appointment required", nil)
	}
	at, err := parseTimestamp(req.DateOfAppointment)
	if err != nil {
		return apperrors.NewValidationError("invalid date_of_appointment format", nil)
	}

	appt, err := h.service.Create(c.Context(), service.AppointmentCreateInput{
		UserID:            req.UserID,
		ClientID:          req.ClientID,
		DateOfAppointment: at,
		Price:             req.Price,
		Course:            req.Course,
		Discount:          req.Discount,
		TypeOfPayment:     req.TypeOfPayment,
		TypeOfMassage:     req.TypeOfMassage,
		Duration:          req.Duration,
		Service:           req.Service,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(appointmentResponse(appt))
}

// Finish PUT /appointments/:id/finish.
func (h *AppointmentsHandler) Finish(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if _, err := h.service.Finish(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Appointment finished"})
}

// Delete DELETE /appointments/:id.
func (h *AppointmentsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Appointment deleted successfully"})
}

// parseTimestamp accepts ISO-8601 with or without a zone designator.
func parseTimestamp(val string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", val)
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid id", nil)
	}
	return id, nil
}

func appointmentResponses(appts []domain.Appointment) []dto.AppointmentResponse {
	items := make([]dto.AppointmentResponse, 0, len(appts))
	for i := range appts {
		items = append(items, appointmentResponse(&appts[i]))
	}
	return items
}

func appointmentResponse(appt *domain.Appointment) dto.AppointmentResponse {
	resp := dto.AppointmentResponse{
		ID:                appt.ID,
		DateOfCreation:    appt.DateOfCreation,
		DateOfAppointment: appt.DateOfAppointment,
		IsFinished:        appt.IsFinished,
		Price:             appt.Price,
		Course:            appt.Course,
		Discount:          appt.Discount,
		TypeOfPayment:     appt.TypeOfPayment,
		TypeOfMassage:     appt.TypeOfMassage,
		Duration:          appt.Duration,
		Service:           appt.Service,
	}
	if appt.Owner != nil {
		resp.User = &dto.UserShort{
			FirstName:   appt.Owner.FirstName,
			LastName:    appt.Owner.LastName,
			Baitursynov: appt.Owner.Baitursynov,
			Gagarina:    appt.Owner.Gagarina,
		}
	}
	if appt.Client != nil {
		resp.Client = &dto.ClientShort{
			FirstName: appt.Client.FirstName,
			LastName:  appt.Client.LastName,
			Phone:     appt.Client.Phone,
		}
	}
	return resp
}
