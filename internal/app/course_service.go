package app

import (
	"context"
	"errors"
	"strings"

	"studytrackr/internal/model"
	"studytrackr/internal/repository"
)

type CourseService struct {
	courseRepo *repository.CourseRepository
}

type AddCourseInput struct {
	UserID         uint
	Name           string
	EstimatedGrade int
}

func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

func (s *CourseService) ListCourses(ctx context.Context, userID uint) ([]model.Course, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.courseRepo.ListByUserID(ctx, userID)
}

func (s *CourseService) AddCourse(ctx context.Context, input AddCourseInput) (*model.Course, error) {
	name := strings.TrimSpace(input.Name)
	if input.UserID == 0 || name == "" {
		return nil, ErrInvalidInput
	}
	if input.EstimatedGrade < 0 || input.EstimatedGrade > 100 {
		return nil, ErrInvalidInput
	}

	course := &model.Course{
		UserID:         input.UserID,
		Name:           name,
		EstimatedGrade: input.EstimatedGrade,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse removes one of the user's courses along with its study sessions.
func (s *CourseService) DeleteCourse(ctx context.Context, userID, courseID uint) error {
	if userID == 0 || courseID == 0 {
		return ErrInvalidInput
	}
	err := s.courseRepo.DeleteOwned(ctx, courseID, userID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrCourseNotFound
	case errors.Is(err, repository.ErrNotOwner):
		return ErrForbidden
	}
	return err
}
