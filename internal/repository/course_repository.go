package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"studytrackr/internal/model"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	if err := r.db.WithContext(ctx).Create(course).Error; err != nil {
		return fmt.Errorf("create course failed: %w", err)
	}
	return nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get course failed: %w", err)
	}
	return &course, nil
}

func (r *CourseRepository) ListByUserID(ctx context.Context, userID uint) ([]model.Course, error) {
	var courses []model.Course
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("list courses failed: %w", err)
	}
	return courses, nil
}

// DeleteOwned deletes the course and its study sessions in one transaction.
// It returns ErrNotFound for an unknown id and ErrNotOwner when the course
// belongs to someone other than userID; nothing is deleted in either case.
func (r *CourseRepository) DeleteOwned(ctx context.Context, id, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var course model.Course
		if err := tx.First(&course, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("get course failed: %w", err)
		}
		if course.UserID != userID {
			return ErrNotOwner
		}

		if err := tx.Where("course_id = ?", course.ID).Delete(&model.StudySession{}).Error; err != nil {
			return fmt.Errorf("delete course study sessions failed: %w", err)
		}
		if err := tx.Delete(&course).Error; err != nil {
			return fmt.Errorf("delete course failed: %w", err)
		}
		return nil
	})
}
