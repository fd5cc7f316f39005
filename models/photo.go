// File: /models/photo.go
package models

import (
	"time"
)

// Photo is a privately-owned, geo-tagged uploaded image. It may be shared to
// the feed as at most one Post.
type Photo struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Filepath  string    `json:"filepath" gorm:"not null;size:500"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	Title     string    `json:"title" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `json:"user" gorm:"foreignKey:UserID"`
}

// PhotoView is the folder listing payload.
type PhotoView struct {
	ID        uint      `json:"id"`
	Filepath  string    `json:"filepath"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func (p Photo) View() PhotoView {
	return PhotoView{
		ID:        p.ID,
		Filepath:  p.Filepath,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Title:     p.Title,
		CreatedAt: p.CreatedAt,
	}
}
