package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoService_CreateAndList(t *testing.T) {
	svc := NewPhotoService(newTestStore(t), &stubEvents{})

	photo, err := svc.Create(PhotoInput{Title: "Sunset", URL: "http://img.example/1.jpg", AlbumID: 2}, Actor{UserID: 4})
	require.NoError(t, err)
	assert.Equal(t, 1, photo.ID)
	assert.Equal(t, 4, photo.UserID)

	photos, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, photos, 1)
}

func TestPhotoService_CreateValidation(t *testing.T) {
	svc := NewPhotoService(newTestStore(t), &stubEvents{})
	actor := Actor{UserID: 1}

	var ve *ValidationError

	_, err := svc.Create(PhotoInput{URL: "http://x", AlbumID: 1}, actor)
	assert.ErrorAs(t, err, &ve)

	_, err = svc.Create(PhotoInput{Title: "t", URL: "ftp://x", AlbumID: 1}, actor)
	assert.ErrorAs(t, err, &ve)
}

func TestPhotoService_DeleteOwnership(t *testing.T) {
	svc := NewPhotoService(newTestStore(t), &stubEvents{})

	photo, err := svc.Create(PhotoInput{Title: "Sunset", URL: "http://img.example/1.jpg", AlbumID: 2}, Actor{UserID: 5})
	require.NoError(t, err)

	err = svc.Delete(photo.ID, Actor{UserID: 7})
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(99, Actor{UserID: 5})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(photo.ID, Actor{UserID: 5})
	require.NoError(t, err)
}
