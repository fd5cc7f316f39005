// File: /controllers/photo_controller_test.go
package controllers

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nousyukukangen-ringo/isibasigeru/models"
	"github.com/nousyukukangen-ringo/isibasigeru/services"
)

func photoRouter(t *testing.T, db *gorm.DB, userID uint) (*gin.Engine, *services.Storage) {
	t.Helper()

	storage, err := services.NewStorage(t.TempDir())
	require.NoError(t, err)

	r := newTestRouter()
	pc := NewPhotoController(db, storage)

	api := r.Group("/api", authAs(userID))
	api.POST("/photo/upload", pc.Upload)
	api.GET("/photo/list", pc.List)
	api.DELETE("/photo/:id", pc.Delete)
	return r, storage
}

func TestUploadCreatesPhotoAndAwardsKibidango(t *testing.T) {
	db := setupTestDB(t)
	alice := createUser(t, db, "alice@example.com")
	r, storage := photoRouter(t, db, alice.ID)

	fields := map[string]string{
		"title":     "Tokyo Station",
		"latitude":  "35.681236",
		"longitude": "139.767125",
	}
	w := doMultipart(t, r, "/api/photo/upload", fields, "image", "shot.jpg", []byte("jpeg-bytes"))
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.True(t, strings.HasPrefix(body["filepath"].(string), "/uploads/"))

	var photo models.Photo
	require.NoError(t, db.First(&photo).Error)
	assert.Equal(t, alice.ID, photo.UserID)
	assert.Equal(t, "Tokyo Station", photo.Title)
	require.NotNil(t, photo.Latitude)
	assert.InDelta(t, 35.681236, *photo.Latitude, 1e-9)
	require.NotNil(t, photo.Longitude)
	assert.InDelta(t, 139.767125, *photo.Longitude, 1e-9)

	name := strings.TrimPrefix(photo.Filepath, "/uploads/")
	_, err := os.Stat(storage.Path(name))
	assert.NoError(t, err)

	var user models.User
	require.NoError(t, db.First(&user, alice.ID).Error)
	assert.Equal(t, 1, user.Kibidango)
}

func TestUploadDefaultsAndInvalidCoordinates(t *testing.T) {
	db := setupTestDB(t)
	alice := createUser(t, db, "alice@example.com")
	r, _ := photoRouter(t, db, alice.ID)

	fields := map[string]string{"latitude": "200", "longitude": "-999"}
	w := doMultipart(t, r, "/api/photo/upload", fields, "image", "shot.png", []byte("png-bytes"))
	require.Equal(t, http.StatusOK, w.Code)

	var photo models.Photo
	require.NoError(t, db.First(&photo).Error)
	assert.Equal(t, "Untitled", photo.Title)
	assert.Nil(t, photo.Latitude)
	assert.Nil(t, photo.Longitude)
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	db := setupTestDB(t)
	alice := createUser(t, db, "alice@example.com")
	r, _ := photoRouter(t, db, alice.ID)

	w := doMultipart(t, r, "/api/photo/upload", nil, "image", "anim.gif", []byte("gif-bytes"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Photo{}).Count(&count)
	assert.Zero(t, count)
}

func TestUploadRequiresImage(t *testing.T) {
	db := setupTestDB(t)
	alice := createUser(t, db, "alice@example.com")
	r, _ := photoRouter(t, db, alice.ID)

	w := doMultipart(t, r, "/api/photo/upload", map[string]string{"title": "no file"}, "", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReplaceUploadSwapsStoredFile(t *testing.T) {
	db := setupTestDB(t)
	alice := createUser(t, db, "alice@example.com")
	r, storage := photoRouter(t, db, alice.ID)

	// Seed a stored photo with a real file behind it.
	oldName := storage.NewFilename(".jpg")
	require.NoError(t, os.WriteFile(storage.Path(oldName), []byte("old"), 0o644))
	photo := createPhoto(t, db, alice.ID, storage.PublicPath(oldName))

	fields := map[string]string{"photo_id": fmt.Sprint(photo.ID)}
	w := doMultipart(t, r, "/api/photo/upload", fields, "image", "edited.jpg", []byte("new"))
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Photo
	require.NoError(t, db.First(&updated, photo.ID).Error)
	assert.NotEqual(t, photo.Filepath, updated.Filepath)

	_, err := os.Stat(storage.Path(oldName))
	assert.True(t, os.IsNotExist(err), "replaced file is removed")

	newName := strings.TrimPrefix(updated.Filepath, "/uploads/")
	data, err := os.ReadFile(storage.Path(newName))
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)

	// Replacement is an edit, not a new capture.
	var user models.User
	require.NoError(t, db.First(&user, alice.ID).Error)
	assert.Zero(t, user.Kibidango)
}

func TestReplaceNotOwned(t *testing.T) {
	db := setupTestDB(t)
	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")
	photo := createPhoto(t, db, bob.ID, "/uploads/bob.jpg")
	r, _ := photoRouter(t, db, alice.ID)

	fields := map[string]string{"photo_id": fmt.Sprint(photo.ID)}
	w := doMultipart(t, r, "/api/photo/upload", fields, "image", "edited.jpg", []byte("new"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var unchanged models.Photo
	require.NoError(t, db.First(&unchanged, photo.ID).Error)
	assert.Equal(t, "/uploads/bob.jpg", unchanged.Filepath)
}

func TestListReturnsOnlyOwnPhotos(t *testing.T) {
	db := setupTestDB(t)
	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")
	createPhoto(t, db, alice.ID, "/uploads/a.jpg")
	createPhoto(t, db, bob.ID, "/uploads/b.jpg")

	r, _ := photoRouter(t, db, alice.ID)
	w := doJSON(t, r, http.MethodGet, "/api/photo/list", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	photos := body["photos"].([]any)
	require.Len(t, photos, 1)
	assert.Equal(t, "/uploads/a.jpg", photos[0].(map[string]any)["filepath"])
}

func TestDeleteCascadesToPost(t *testing.T) {
	db := setupTestDB(t)
	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")
	r, storage := photoRouter(t, db, alice.ID)

	name := storage.NewFilename(".jpg")
	require.NoError(t, os.WriteFile(storage.Path(name), []byte("img"), 0o644))
	photo := createPhoto(t, db, alice.ID, storage.PublicPath(name))
	post := createPost(t, db, alice.ID, photo.ID, "shared")

	require.NoError(t, db.Create(&models.PostLike{PostID: post.ID, UserID: bob.ID}).Error)
	require.NoError(t, db.Create(&models.Comment{PostID: post.ID, UserID: bob.ID, Text: "bye"}).Error)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/photo/%d", photo.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var photos, posts, likes, comments int64
	db.Model(&models.Photo{}).Count(&photos)
	db.Model(&models.Post{}).Count(&posts)
	db.Model(&models.PostLike{}).Count(&likes)
	db.Model(&models.Comment{}).Count(&comments)
	assert.Zero(t, photos)
	assert.Zero(t, posts)
	assert.Zero(t, likes)
	assert.Zero(t, comments)

	_, err := os.Stat(storage.Path(name))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteNotOwned(t *testing.T) {
	db := setupTestDB(t)
	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")
	photo := createPhoto(t, db, bob.ID, "/uploads/b.jpg")
	r, _ := photoRouter(t, db, alice.ID)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/photo/%d", photo.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	db.Model(&models.Photo{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteInvalidID(t *testing.T) {
	db := setupTestDB(t)
	alice := createUser(t, db, "alice@example.com")
	r, _ := photoRouter(t, db, alice.ID)

	w := doJSON(t, r, http.MethodDelete, "/api/photo/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
