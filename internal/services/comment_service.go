package services

import (
	"fmt"

	"github.com/apetrov/my-blog-be/internal/models"
	"github.com/apetrov/my-blog-be/internal/storage"
	"github.com/apetrov/my-blog-be/internal/util"
)

// CommentInput carries the client-supplied fields of a comment.
type CommentInput struct {
	Title string `json:"title"`
	Rate  *int   `json:"rate"`
	Body  string `json:"body"`
}

// CommentServiceProvider defines the interface for comment services.
type CommentServiceProvider interface {
	ListForPost(postID int) ([]models.Comment, error)
	Create(postID int, input CommentInput, actor Actor) (models.Comment, error)
	Delete(id int64, actor Actor) error
}

// CommentService provides business logic for comments.
type CommentService struct {
	store    storage.Store
	eventSvc EventServiceProvider
	clock    util.Clock
}

// NewCommentService creates a new CommentService. The clock supplies comment
// ids (millisecond timestamps).
func NewCommentService(store storage.Store, eventSvc EventServiceProvider, clock util.Clock) *CommentService {
	return &CommentService{store: store, eventSvc: eventSvc, clock: clock}
}

// ListForPost returns every comment attached to a post.
func (s *CommentService) ListForPost(postID int) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.store.Load(storage.Comments, &comments); err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}

	matched := []models.Comment{}
	for _, c := range comments {
		if c.PostID == postID {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// Create validates the input and appends a new comment owned by the actor.
func (s *CommentService) Create(postID int, input CommentInput, actor Actor) (models.Comment, error) {
	if input.Rate == nil || *input.Rate < 1 || *input.Rate > 10 {
		return models.Comment{}, invalid("Rate must be an integer from 1 to 10")
	}
	if len(input.Title) > 30 {
		return models.Comment{}, invalid("Title must be at most 30 characters")
	}
	if len(input.Body) > 500 {
		return models.Comment{}, invalid("Body must be at most 500 characters")
	}

	var comments []models.Comment
	if err := s.store.Load(storage.Comments, &comments); err != nil {
		return models.Comment{}, fmt.Errorf("load comments: %w", err)
	}

	comment := models.Comment{
		ID:     s.clock.Now().UnixMilli(),
		PostID: postID,
		Title:  input.Title,
		Rate:   *input.Rate,
		Body:   input.Body,
		UserID: actor.UserID,
	}

	comments = append(comments, comment)
	if err := s.store.Replace(storage.Comments, comments); err != nil {
		return models.Comment{}, fmt.Errorf("save comments: %w", err)
	}

	s.eventSvc.Record("comment.create", "info", fmt.Sprintf("comment %d created on post %d", comment.ID, postID), actor.UserID)
	return comment, nil
}

// Delete removes a comment after the owner-or-admin check.
func (s *CommentService) Delete(id int64, actor Actor) error {
	var comments []models.Comment
	if err := s.store.Load(storage.Comments, &comments); err != nil {
		return fmt.Errorf("load comments: %w", err)
	}

	idx := -1
	for i, c := range comments {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}
	if !canMutate(comments[idx].UserID, actor) {
		return ErrForbidden
	}

	comments = append(comments[:idx], comments[idx+1:]...)
	if err := s.store.Replace(storage.Comments, comments); err != nil {
		return fmt.Errorf("save comments: %w", err)
	}

	s.eventSvc.Record("comment.delete", "info", fmt.Sprintf("comment %d deleted", id), actor.UserID)
	return nil
}
