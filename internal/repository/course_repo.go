package repository

import (
	"context"

	"coursecraft/internal/model"

	"gorm.io/gorm"
)

// CourseRepository defines the interface for interacting with course data
type CourseRepository interface {
	CreateCourse(ctx context.Context, c *model.Course) error
	GetCoursesByUserID(ctx context.Context, userID uint) ([]model.Course, error)
}

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo creates a new CourseRepository
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

// CreateCourse inserts a new course row owned by c.UserID
func (r *courseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// GetCoursesByUserID retrieves all courses saved by the given user
func (r *courseRepo) GetCoursesByUserID(ctx context.Context, userID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}

	// If no courses found, return an empty slice, not nil
	if len(courses) == 0 {
		return []model.Course{}, nil
	}
	return courses, nil
}
