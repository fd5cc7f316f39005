// File: /models/post.go
package models

import (
	"time"
)

// Post is a feed-visible share of a Photo. Deleting the post keeps the photo
// in its owner's folder; deleting the photo removes the post as well.
type Post struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	PhotoID    uint      `json:"photo_id" gorm:"not null;uniqueIndex"`
	Caption    string    `json:"caption"`
	LikesCount int       `json:"likes_count" gorm:"default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	User     User       `json:"user" gorm:"foreignKey:UserID"`
	Photo    Photo      `json:"photo" gorm:"foreignKey:PhotoID"`
	Likes    []PostLike `json:"likes" gorm:"foreignKey:PostID"`
	Comments []Comment  `json:"comments" gorm:"foreignKey:PostID"`
}

type PostLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"not null;uniqueIndex:idx_post_likes_post_user"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_post_likes_post_user"`
	CreatedAt time.Time `json:"created_at"`
}

type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Text      string    `json:"text" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`

	User User `json:"user" gorm:"foreignKey:UserID"`
}

// PostView is a feed entry as seen by the requesting user.
type PostView struct {
	ID        uint          `json:"id"`
	User      string        `json:"user"`
	Caption   string        `json:"caption"`
	Filepath  string        `json:"filepath"`
	Latitude  *float64      `json:"latitude"`
	Longitude *float64      `json:"longitude"`
	Likes     int           `json:"likes"`
	Comments  []CommentView `json:"comments"`
	IsMine    bool          `json:"is_mine"`
	CreatedAt time.Time     `json:"created_at"`
}

type CommentView struct {
	User string `json:"user"`
	Text string `json:"text"`
}

// View flattens the post and its photo for the feed, computing is_mine
// relative to the requesting user.
func (p Post) View(viewerID uint) PostView {
	comments := make([]CommentView, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, CommentView{User: c.User.Email, Text: c.Text})
	}

	return PostView{
		ID:        p.ID,
		User:      p.User.Email,
		Caption:   p.Caption,
		Filepath:  p.Photo.Filepath,
		Latitude:  p.Photo.Latitude,
		Longitude: p.Photo.Longitude,
		Likes:     p.LikesCount,
		Comments:  comments,
		IsMine:    p.UserID == viewerID,
		CreatedAt: p.CreatedAt,
	}
}
