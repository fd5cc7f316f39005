// File: /controllers/photo_controller.go
package controllers

import (
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nousyukukangen-ringo/isibasigeru/models"
	"github.com/nousyukukangen-ringo/isibasigeru/services"
	"github.com/nousyukukangen-ringo/isibasigeru/utils"
)

type PhotoController struct {
	db      *gorm.DB
	storage *services.Storage
}

func NewPhotoController(db *gorm.DB, storage *services.Storage) *PhotoController {
	return &PhotoController{
		db:      db,
		storage: storage,
	}
}

// Upload handles the multipart image upload for both the capture flow (new
// photo with coordinates and title) and the edit flow (photo_id set, the
// stored image is replaced in place).
func (pc *PhotoController) Upload(c *gin.Context) {
	userID := c.GetUint("user_id")

	file, err := c.FormFile("image")
	if err != nil {
		utils.SendValidationError(c, "image file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
		// ok
	default:
		utils.SendValidationError(c, "unsupported file type")
		return
	}

	if photoID := c.PostForm("photo_id"); photoID != "" {
		pc.replace(c, userID, photoID, file, ext)
		return
	}

	name := pc.storage.NewFilename(ext)
	if err := c.SaveUploadedFile(file, pc.storage.Path(name)); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "failed to save file")
		return
	}

	photo := models.Photo{
		UserID:   userID,
		Filepath: pc.storage.PublicPath(name),
		Title:    c.DefaultPostForm("title", "Untitled"),
	}
	if lat, err := strconv.ParseFloat(c.PostForm("latitude"), 64); err == nil && utils.IsValidLatitude(lat) {
		photo.Latitude = &lat
	}
	if lng, err := strconv.ParseFloat(c.PostForm("longitude"), 64); err == nil && utils.IsValidLongitude(lng) {
		photo.Longitude = &lng
	}

	if err := pc.db.Create(&photo).Error; err != nil {
		if rmErr := pc.storage.Remove(photo.Filepath); rmErr != nil {
			log.Printf("Failed to remove file after create error: %v", rmErr)
		}
		utils.SendError(c, http.StatusInternalServerError, "failed to save photo")
		return
	}

	// One kibidango per capture
	pc.db.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("kibidango", gorm.Expr("kibidango + ?", 1))

	utils.SendSuccess(c, gin.H{"id": photo.ID, "filepath": photo.Filepath})
}

func (pc *PhotoController) replace(c *gin.Context, userID uint, photoID string, file *multipart.FileHeader, ext string) {
	id, err := strconv.ParseUint(photoID, 10, 64)
	if err != nil {
		utils.SendValidationError(c, "invalid photo id")
		return
	}

	var photo models.Photo
	if err := pc.db.First(&photo, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "photo not found or access denied")
		return
	}

	name := pc.storage.NewFilename(ext)
	if err := c.SaveUploadedFile(file, pc.storage.Path(name)); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "failed to save file")
		return
	}

	oldPath := photo.Filepath
	if err := pc.db.Model(&photo).Update("filepath", pc.storage.PublicPath(name)).Error; err != nil {
		if rmErr := pc.storage.Remove(pc.storage.PublicPath(name)); rmErr != nil {
			log.Printf("Failed to remove file after update error: %v", rmErr)
		}
		utils.SendError(c, http.StatusInternalServerError, "failed to update photo")
		return
	}

	if err := pc.storage.Remove(oldPath); err != nil {
		log.Printf("Failed to remove replaced file %s: %v", oldPath, err)
	}

	utils.SendSuccess(c, gin.H{"id": photo.ID, "filepath": photo.Filepath})
}

// List returns the caller's folder, newest first.
func (pc *PhotoController) List(c *gin.Context) {
	userID := c.GetUint("user_id")

	var photos []models.Photo
	if err := pc.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&photos).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "failed to fetch photos")
		return
	}

	views := make([]models.PhotoView, 0, len(photos))
	for _, p := range photos {
		views = append(views, p.View())
	}

	utils.SendSuccess(c, gin.H{"photos": views})
}

// Delete removes an owned photo, its stored file and any post sharing it.
func (pc *PhotoController) Delete(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendValidationError(c, "invalid photo id")
		return
	}

	var photo models.Photo
	if err := pc.db.First(&photo, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "photo not found or access denied")
		return
	}

	// A shared photo takes its post, likes and comments with it
	var post models.Post
	if err := pc.db.First(&post, "photo_id = ?", photo.ID).Error; err == nil {
		pc.db.Where("post_id = ?", post.ID).Delete(&models.PostLike{})
		pc.db.Where("post_id = ?", post.ID).Delete(&models.Comment{})
		pc.db.Delete(&post)
	}

	if err := pc.db.Delete(&photo).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "failed to delete photo")
		return
	}

	if err := pc.storage.Remove(photo.Filepath); err != nil {
		log.Printf("Failed to remove file %s: %v", photo.Filepath, err)
	}

	utils.SendSuccess(c, gin.H{"message": "photo deleted"})
}
