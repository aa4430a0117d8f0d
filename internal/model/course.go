package model

// Course is a generated course owned by a user. Content holds the fully
// rendered course page, not the raw provider output. Duplicate
// (user, course name) pairs are permitted.
type Course struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"not null;index" json:"user_id"`
	CourseName string `gorm:"size:100;not null" json:"course_name"`
	Content    string `gorm:"type:text;not null" json:"content"`
}
