package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scheduling-service/internal/api/dto"
	"github.com/spec-kit/scheduling-service/internal/domain"
	"github.com/spec-kit/scheduling-service/internal/service"
	apperrors "github.com/spec-kit/scheduling-service/pkg/util/errorutil"
)

// ClientsHandler manages client endpoints.
type ClientsHandler struct {
	service *service.ClientService
}

// NewClientsHandler constructs handler.
func NewClientsHandler(clientService *service.ClientService) *ClientsHandler {
	return &ClientsHandler{service: clientService}
}

// Create POST /clients.
func (h *ClientsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	client, err := h.service.Create(c.Context(), service.ClientCreateInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
		Phone:      req.Phone,
		Email:      req.Email,
		Visits:     req.Visits,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(clientResponse(client))
}

// List GET /clients.
func (h *ClientsHandler) List(c *fiber.Ctx) error {
	clients, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(clientResponses(clients))
}

// Delete DELETE /clients/:id.
func (h *ClientsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Client deleted successfully"})
}

func clientResponses(clients []domain.Client) []dto.ClientResponse {
	items := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		items = append(items, clientResponse(&clients[i]))
	}
	return items
}

func clientResponse(client *domain.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:         client.ID,
		FirstName:  client.FirstName,
		LastName:   client.LastName,
		MiddleName: client.MiddleName,
		Phone:      client.Phone,
		Email:      client.Email,
		Visits:     client.Visits,
	}
}
