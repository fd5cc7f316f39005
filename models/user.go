// File: /models/user.go
package models

import (
	"time"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	Kibidango int       `json:"kibidango" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Photos []Photo `json:"photos" gorm:"foreignKey:UserID"`
	Posts  []Post  `json:"posts" gorm:"foreignKey:UserID"`
}

// UserView is the profile payload returned by login and identity checks.
type UserView struct {
	Email     string `json:"email"`
	Kibidango int    `json:"kibidango"`
}

func (u User) View() UserView {
	return UserView{Email: u.Email, Kibidango: u.Kibidango}
}
