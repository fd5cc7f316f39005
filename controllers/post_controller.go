// File: /controllers/post_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nousyukukangen-ringo/isibasigeru/models"
	"github.com/nousyukukangen-ringo/isibasigeru/utils"
)

type PostController struct {
	db *gorm.DB
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{db: db}
}

// AllPosts returns the full feed plus the caller's like-set, the single
// round trip the client's sync builds its snapshot from.
func (pc *PostController) AllPosts(c *gin.Context) {
	userID := c.GetUint("user_id")

	var posts []models.Post
	if err := pc.db.Preload("User").Preload("Photo").
		Preload("Comments").Preload("Comments.User").
		Order("created_at DESC").Find(&posts).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "failed to fetch posts")
		return
	}

	views := make([]models.PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, p.View(userID))
	}

	var myLikes []uint
	if err := pc.db.Model(&models.PostLike{}).Where("user_id = ?", userID).
		Pluck("post_id", &myLikes).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "failed to fetch likes")
		return
	}

	utils.SendSuccess(c, gin.H{"posts": views, "my_likes": myLikes})
}

type LikeRequest struct {
	PostID uint   `json:"post_id" binding:"required"`
	Action string `json:"action" binding:"required,oneof=like unlike"`
}

// Like toggles the caller's like on a post. At most one like per
// (user, post); repeating an action is a no-op, so a like/unlike round trip
// always lands back on the original state.
func (pc *PostController) Like(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "post_id and action (like|unlike) are required")
		return
	}

	var post models.Post
	if err := pc.db.First(&post, "id = ?", req.PostID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "post not found")
		return
	}

	var existing models.PostLike
	hasLike := pc.db.Where("post_id = ? AND user_id = ?", req.PostID, userID).
		First(&existing).Error == nil

	switch req.Action {
	case "like":
		if hasLike {
			utils.SendSuccess(c, nil)
			return
		}
		like := models.PostLike{PostID: req.PostID, UserID: userID}
		if err := pc.db.Create(&like).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "failed to like post")
			return
		}
		pc.db.Model(&post).UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1))
	case "unlike":
		if !hasLike {
			utils.SendSuccess(c, nil)
			return
		}
		if err := pc.db.Delete(&existing).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "failed to unlike post")
			return
		}
		pc.db.Model(&post).UpdateColumn("likes_count", gorm.Expr("likes_count - ?", 1))
	}

	utils.SendSuccess(c, nil)
}

type CommentRequest struct {
	PostID uint   `json:"post_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

func (pc *PostController) Comment(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "post_id and text are required")
		return
	}

	var post models.Post
	if err := pc.db.First(&post, "id = ?", req.PostID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "post not found")
		return
	}

	comment := models.Comment{
		PostID: req.PostID,
		UserID: userID,
		Text:   req.Text,
	}
	if err := pc.db.Create(&comment).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "failed to create comment")
		return
	}

	utils.SendSuccess(c, nil)
}

type ShareRequest struct {
	PhotoID uint   `json:"photo_id" binding:"required"`
	Caption string `json:"caption"`
}

// Share publishes an owned photo to the feed.
func (pc *PostController) Share(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "photo_id is required")
		return
	}

	var photo models.Photo
	if err := pc.db.First(&photo, "id = ? AND user_id = ?", req.PhotoID, userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "photo not found or access denied")
		return
	}

	var existing models.Post
	if err := pc.db.First(&existing, "photo_id = ?", req.PhotoID).Error; err == nil {
		utils.SendError(c, http.StatusConflict, "photo is already shared")
		return
	}

	post := models.Post{
		UserID:  userID,
		PhotoID: req.PhotoID,
		Caption: req.Caption,
	}
	if err := pc.db.Create(&post).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "failed to create post")
		return
	}

	utils.SendSuccess(c, gin.H{"id": post.ID})
}

type UnshareRequest struct {
	PostID uint `json:"post_id" binding:"required"`
}

// Unshare removes an owned post from the feed; the photo stays in the
// owner's folder.
func (pc *PostController) Unshare(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req UnshareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "post_id is required")
		return
	}

	var post models.Post
	if err := pc.db.First(&post, "id = ? AND user_id = ?", req.PostID, userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "post not found or access denied")
		return
	}

	pc.db.Where("post_id = ?", post.ID).Delete(&models.PostLike{})
	pc.db.Where("post_id = ?", post.ID).Delete(&models.Comment{})

	if err := pc.db.Delete(&post).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "failed to delete post")
		return
	}

	utils.SendSuccess(c, nil)
}
