package model

import "time"

// User represents a registered account. Passwords are stored only as a
// bcrypt hash.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:20;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:50;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:80" json:"-"`
	DateJoined   time.Time `gorm:"autoCreateTime" json:"date_joined"`
	Courses      []Course  `gorm:"foreignKey:UserID" json:"courses,omitempty"`
}
