package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"studytrackr/internal/model"
)

type StudySessionRepository struct {
	db *gorm.DB
}

func NewStudySessionRepository(db *gorm.DB) *StudySessionRepository {
	return &StudySessionRepository{db: db}
}

// CreateForOwner inserts the session only if its course exists and belongs to userID.
func (r *StudySessionRepository) CreateForOwner(ctx context.Context, session *model.StudySession, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var course model.Course
		if err := tx.Where("id = ? AND user_id = ?", session.CourseID, userID).First(&course).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotOwner
			}
			return fmt.Errorf("get session course failed: %w", err)
		}
		if err := tx.Create(session).Error; err != nil {
			return fmt.Errorf("create study session failed: %w", err)
		}
		return nil
	})
}

func (r *StudySessionRepository) GetByID(ctx context.Context, id uint) (*model.StudySession, error) {
	var session model.StudySession
	if err := r.db.WithContext(ctx).First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get study session failed: %w", err)
	}
	return &session, nil
}

// ListByUserID returns every session on the user's courses, newest date first.
func (r *StudySessionRepository) ListByUserID(ctx context.Context, userID uint) ([]model.StudySessionWithCourse, error) {
	var list []model.StudySessionWithCourse
	err := r.db.WithContext(ctx).
		Model(&model.StudySession{}).
		Select("study_sessions.*, courses.name AS course_name").
		Joins("JOIN courses ON courses.id = study_sessions.course_id").
		Where("courses.user_id = ?", userID).
		Order("study_sessions.date DESC, study_sessions.id DESC").
		Scan(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list study sessions failed: %w", err)
	}
	return list, nil
}

// DeleteOwned mirrors CourseRepository.DeleteOwned with ownership checked through the parent course.
func (r *StudySessionRepository) DeleteOwned(ctx context.Context, id, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session model.StudySession
		if err := tx.First(&session, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("get study session failed: %w", err)
		}

		var owned int64
		if err := tx.Model(&model.Course{}).
			Where("id = ? AND user_id = ?", session.CourseID, userID).
			Count(&owned).Error; err != nil {
			return fmt.Errorf("check study session owner failed: %w", err)
		}
		if owned == 0 {
			return ErrNotOwner
		}

		if err := tx.Delete(&session).Error; err != nil {
			return fmt.Errorf("delete study session failed: %w", err)
		}
		return nil
	})
}

type courseHours struct {
	CourseID uint
	Total    float64
}

// SumHoursByCourse totals logged hours per course id for the user's courses.
// Courses without sessions are absent from the map.
func (r *StudySessionRepository) SumHoursByCourse(ctx context.Context, userID uint) (map[uint]float64, error) {
	var rows []courseHours
	err := r.db.WithContext(ctx).
		Model(&model.StudySession{}).
		Select("study_sessions.course_id AS course_id, SUM(study_sessions.hours) AS total").
		Joins("JOIN courses ON courses.id = study_sessions.course_id").
		Where("courses.user_id = ?", userID).
		Group("study_sessions.course_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("sum study hours failed: %w", err)
	}

	totals := make(map[uint]float64, len(rows))
	for _, row := range rows {
		totals[row.CourseID] = row.Total
	}
	return totals, nil
}
