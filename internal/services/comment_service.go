package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/client-task-api/internal/models"
	"github.com/yukikurage/client-task-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotCommentAuthor = errors.New("not authorized to delete this comment")
	ErrTextRequired     = errors.New("text is required")
	ErrTaskIDRequired   = errors.New("task_id is required")
)

// CommentService handles comment business logic
type CommentService struct {
	store repository.Store
}

// NewCommentService creates a new CommentService
func NewCommentService(store repository.Store) *CommentService {
	return &CommentService{store: store}
}

// CreateCommentInput represents input for creating a comment. The author is
// always the authenticated caller.
type CreateCommentInput struct {
	TaskID string
	Text   string
	Author *models.User
}

// ListComments returns a task's comments oldest first. An unknown task has
// no comments.
func (s *CommentService) ListComments(ctx context.Context, taskID string) ([]models.Comment, error) {
	comments, err := s.store.WithContext(ctx).Comments().ListByTask(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// CreateComment stores a comment, snapshotting the author's username.
func (s *CommentService) CreateComment(ctx context.Context, input CreateCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(input.TaskID) == "" {
		return nil, ErrTaskIDRequired
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrTextRequired
	}
	if input.Author == nil {
		return nil, ErrUserNotFound
	}

	store := s.store.WithContext(ctx)
	if _, err := store.Tasks().FindByID(input.TaskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	comment := &models.Comment{
		TaskID:   input.TaskID,
		UserID:   input.Author.ID,
		Username: input.Author.Username,
		Text:     input.Text,
	}

	if err := store.Comments().Create(comment); err != nil {
		// The task was deleted after the lookup above
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// DeleteComment removes a comment written by requesterID.
func (s *CommentService) DeleteComment(ctx context.Context, commentID, requesterID string) error {
	comments := s.store.WithContext(ctx).Comments()

	comment, err := comments.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("failed to find comment: %w", err)
	}

	if comment.UserID != requesterID {
		return ErrNotCommentAuthor
	}

	if err := comments.Delete(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}
