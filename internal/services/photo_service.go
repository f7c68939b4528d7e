package services

import (
	"fmt"
	"strings"

	"github.com/apetrov/my-blog-be/internal/models"
	"github.com/apetrov/my-blog-be/internal/storage"
)

// PhotoInput carries the client-supplied fields of a photo.
type PhotoInput struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	AlbumID int    `json:"albumId"`
}

// PhotoServiceProvider defines the interface for photo services.
type PhotoServiceProvider interface {
	List() ([]models.Photo, error)
	Create(input PhotoInput, actor Actor) (models.Photo, error)
	Delete(id int, actor Actor) error
}

// PhotoService provides business logic for photos.
type PhotoService struct {
	store    storage.Store
	eventSvc EventServiceProvider
}

// NewPhotoService creates a new PhotoService.
func NewPhotoService(store storage.Store, eventSvc EventServiceProvider) *PhotoService {
	return &PhotoService{store: store, eventSvc: eventSvc}
}

// List returns all photos.
func (s *PhotoService) List() ([]models.Photo, error) {
	photos := []models.Photo{}
	if err := s.store.Load(storage.Photos, &photos); err != nil {
		return nil, fmt.Errorf("load photos: %w", err)
	}
	return photos, nil
}

// Create validates the input and appends a new photo owned by the actor.
func (s *PhotoService) Create(input PhotoInput, actor Actor) (models.Photo, error) {
	if input.Title == "" || input.URL == "" || input.AlbumID == 0 {
		return models.Photo{}, invalid("All fields are required")
	}
	if !strings.HasPrefix(input.URL, "http") {
		return models.Photo{}, invalid("URL must start with http")
	}

	var photos []models.Photo
	if err := s.store.Load(storage.Photos, &photos); err != nil {
		return models.Photo{}, fmt.Errorf("load photos: %w", err)
	}

	photo := models.Photo{
		ID:      nextPhotoID(photos),
		Title:   input.Title,
		URL:     input.URL,
		AlbumID: input.AlbumID,
		UserID:  actor.UserID,
	}

	photos = append(photos, photo)
	if err := s.store.Replace(storage.Photos, photos); err != nil {
		return models.Photo{}, fmt.Errorf("save photos: %w", err)
	}

	s.eventSvc.Record("photo.create", "info", fmt.Sprintf("photo %d created", photo.ID), actor.UserID)
	return photo, nil
}

// Delete removes a photo after the owner-or-admin check. The route is
// additionally admin-gated, so in practice the actor here is an admin.
func (s *PhotoService) Delete(id int, actor Actor) error {
	var photos []models.Photo
	if err := s.store.Load(storage.Photos, &photos); err != nil {
		return fmt.Errorf("load photos: %w", err)
	}

	idx := -1
	for i, p := range photos {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}
	if !canMutate(photos[idx].UserID, actor) {
		return ErrForbidden
	}

	photos = append(photos[:idx], photos[idx+1:]...)
	if err := s.store.Replace(storage.Photos, photos); err != nil {
		return fmt.Errorf("save photos: %w", err)
	}

	s.eventSvc.Record("photo.delete", "info", fmt.Sprintf("photo %d deleted", id), actor.UserID)
	return nil
}

func nextPhotoID(photos []models.Photo) int {
	max := 0
	for _, p := range photos {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}
