package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/client-task-api/internal/dto"
	apierrors "github.com/yukikurage/client-task-api/internal/errors"
	"github.com/yukikurage/client-task-api/internal/middleware"
	"github.com/yukikurage/client-task-api/internal/services"
	"github.com/yukikurage/client-task-api/internal/utils"
)

type ClientHandler struct {
	clientService *services.ClientService
	log           *slog.Logger
}

func NewClientHandler(clientService *services.ClientService, log *slog.Logger) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		log:           log,
	}
}

// ListClients returns every client. Any authenticated user sees all clients.
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clientService.ListClients(requestContext(c), utils.GetPaginationParams(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientDTOs(clients))
}

// CreateClient creates a client seeded with the onboarding checklist
func (h *ClientHandler) CreateClient(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateClientRequest struct {
		Name        string `json:"name" binding:"required,max=255"`
		Description string `json:"description"`
	}

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	client, err := h.clientService.CreateClient(requestContext(c), services.CreateClientInput{
		Name:        req.Name,
		Description: req.Description,
		CreatorID:   userID,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientDTO(*client))
}

// UpdateClient changes the provided fields of a client
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	type UpdateClientRequest struct {
		Name        *string `json:"name" binding:"omitempty,max=255"`
		Description *string `json:"description"`
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	client, err := h.clientService.UpdateClient(requestContext(c), c.Param("id"), services.UpdateClientInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientDTO(*client))
}

// DeleteClient deletes a client with its tasks and their comments
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.clientService.DeleteClient(requestContext(c), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Client deleted successfully"})
}
