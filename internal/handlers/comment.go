package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/client-task-api/internal/dto"
	apierrors "github.com/yukikurage/client-task-api/internal/errors"
	"github.com/yukikurage/client-task-api/internal/middleware"
	"github.com/yukikurage/client-task-api/internal/services"
)

type CommentHandler struct {
	commentService *services.CommentService
	log            *slog.Logger
}

func NewCommentHandler(commentService *services.CommentService, log *slog.Logger) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		log:            log,
	}
}

// ListComments returns a task's comments oldest first
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.commentService.ListComments(requestContext(c), c.Param("task_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentDTOs(comments))
}

// CreateComment adds a comment authored by the current user
func (h *CommentHandler) CreateComment(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateCommentRequest struct {
		TaskID string `json:"task_id" binding:"required"`
		Text   string `json:"text" binding:"required"`
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.commentService.CreateComment(requestContext(c), services.CreateCommentInput{
		TaskID: req.TaskID,
		Text:   req.Text,
		Author: user,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentDTO(*comment))
}

// DeleteComment deletes a comment; only its author may do so
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.commentService.DeleteComment(requestContext(c), c.Param("id"), userID); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Comment deleted successfully"})
}
