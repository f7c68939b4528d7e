package services

import (
	"fmt"
	"strings"

	"github.com/apetrov/my-blog-be/internal/models"
	"github.com/apetrov/my-blog-be/internal/storage"
)

// PostInput carries the client-supplied fields of a post.
type PostInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
	Rate  *int   `json:"rate"`
}

// PostServiceProvider defines the interface for post services.
type PostServiceProvider interface {
	List(page, limit int) (Page[models.Post], error)
	Search(term string, page, limit int) (Page[models.Post], error)
	GetByID(id int) (models.Post, error)
	Create(input PostInput, actor Actor) (models.Post, error)
	Update(id int, input PostInput, actor Actor) (models.Post, error)
	Delete(id int, actor Actor) error
}

// PostService provides business logic for posts.
type PostService struct {
	store    storage.Store
	eventSvc EventServiceProvider
}

// NewPostService creates a new PostService.
func NewPostService(store storage.Store, eventSvc EventServiceProvider) *PostService {
	return &PostService{store: store, eventSvc: eventSvc}
}

// List returns one page of posts.
func (s *PostService) List(page, limit int) (Page[models.Post], error) {
	var posts []models.Post
	if err := s.store.Load(storage.Posts, &posts); err != nil {
		return Page[models.Post]{}, fmt.Errorf("load posts: %w", err)
	}
	return paginate(posts, page, limit), nil
}

// Search returns one page of posts whose title or body contains term,
// case-insensitively.
func (s *PostService) Search(term string, page, limit int) (Page[models.Post], error) {
	if term == "" {
		return Page[models.Post]{}, invalid("The term parameter is required")
	}

	var posts []models.Post
	if err := s.store.Load(storage.Posts, &posts); err != nil {
		return Page[models.Post]{}, fmt.Errorf("load posts: %w", err)
	}

	term = strings.ToLower(term)
	var matched []models.Post
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), term) || strings.Contains(strings.ToLower(p.Body), term) {
			matched = append(matched, p)
		}
	}
	return paginate(matched, page, limit), nil
}

// GetByID retrieves a single post.
func (s *PostService) GetByID(id int) (models.Post, error) {
	var posts []models.Post
	if err := s.store.Load(storage.Posts, &posts); err != nil {
		return models.Post{}, fmt.Errorf("load posts: %w", err)
	}
	for _, p := range posts {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Post{}, ErrNotFound
}

// Create validates the input and appends a new post owned by the actor.
func (s *PostService) Create(input PostInput, actor Actor) (models.Post, error) {
	if err := validatePostInput(input); err != nil {
		return models.Post{}, err
	}

	var posts []models.Post
	if err := s.store.Load(storage.Posts, &posts); err != nil {
		return models.Post{}, fmt.Errorf("load posts: %w", err)
	}

	post := models.Post{
		ID:     nextPostID(posts),
		Title:  input.Title,
		Body:   input.Body,
		URL:    input.URL,
		Rate:   *input.Rate,
		UserID: actor.UserID,
	}

	posts = append(posts, post)
	if err := s.store.Replace(storage.Posts, posts); err != nil {
		return models.Post{}, fmt.Errorf("save posts: %w", err)
	}

	s.eventSvc.Record("post.create", "info", fmt.Sprintf("post %d created", post.ID), actor.UserID)
	return post, nil
}

// Update replaces the mutable fields of a post. The post must exist before
// any authorization decision is made, so a missing post is NotFound even for
// a caller who could not have mutated it.
func (s *PostService) Update(id int, input PostInput, actor Actor) (models.Post, error) {
	var posts []models.Post
	if err := s.store.Load(storage.Posts, &posts); err != nil {
		return models.Post{}, fmt.Errorf("load posts: %w", err)
	}

	idx := -1
	for i, p := range posts {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Post{}, ErrNotFound
	}
	if !canMutate(posts[idx].UserID, actor) {
		return models.Post{}, ErrForbidden
	}

	posts[idx].Title = input.Title
	posts[idx].Body = input.Body
	posts[idx].URL = input.URL
	if input.Rate != nil {
		posts[idx].Rate = *input.Rate
	} else {
		posts[idx].Rate = 0
	}

	if err := s.store.Replace(storage.Posts, posts); err != nil {
		return models.Post{}, fmt.Errorf("save posts: %w", err)
	}

	s.eventSvc.Record("post.update", "info", fmt.Sprintf("post %d updated", id), actor.UserID)
	return posts[idx], nil
}

// Delete removes a post after the owner-or-admin check.
func (s *PostService) Delete(id int, actor Actor) error {
	var posts []models.Post
	if err := s.store.Load(storage.Posts, &posts); err != nil {
		return fmt.Errorf("load posts: %w", err)
	}

	idx := -1
	for i, p := range posts {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}
	if !canMutate(posts[idx].UserID, actor) {
		return ErrForbidden
	}

	posts = append(posts[:idx], posts[idx+1:]...)
	if err := s.store.Replace(storage.Posts, posts); err != nil {
		return fmt.Errorf("save posts: %w", err)
	}

	s.eventSvc.Record("post.delete", "info", fmt.Sprintf("post %d deleted", id), actor.UserID)
	return nil
}

func validatePostInput(input PostInput) error {
	if input.Title == "" || input.Body == "" || input.URL == "" || input.Rate == nil {
		return invalid("The title, body, url and rate fields are required")
	}
	if len(input.Title) < 1 || len(input.Title) > 50 {
		return invalid("Title must be a string of 1 to 50 characters")
	}
	if len(input.Body) < 1 || len(input.Body) > 1000 {
		return invalid("Body must be a string of 1 to 1000 characters")
	}
	if !strings.HasPrefix(input.URL, "http") {
		return invalid("URL must start with http")
	}
	if *input.Rate < 1 || *input.Rate > 10 {
		return invalid("Rate must be an integer from 1 to 10")
	}
	return nil
}

func nextPostID(posts []models.Post) int {
	max := 0
	for _, p := range posts {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}
