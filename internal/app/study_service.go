package app

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"studytrackr/internal/model"
	"studytrackr/internal/repository"
)

type StudyService struct {
	courseRepo  *repository.CourseRepository
	sessionRepo *repository.StudySessionRepository
}

type AddSessionInput struct {
	UserID   uint
	CourseID uint
	Date     string
	Hours    float64
	Note     string
}

type StudyOverview struct {
	Courses  []model.Course
	Sessions []model.StudySessionWithCourse
}

func NewStudyService(courseRepo *repository.CourseRepository, sessionRepo *repository.StudySessionRepository) *StudyService {
	return &StudyService{
		courseRepo:  courseRepo,
		sessionRepo: sessionRepo,
	}
}

// Overview lists the user's sessions newest first together with the courses
// a new session may be logged against.
func (s *StudyService) Overview(ctx context.Context, userID uint) (*StudyOverview, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	courses, err := s.courseRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &StudyOverview{Courses: courses, Sessions: sessions}, nil
}

func (s *StudyService) AddSession(ctx context.Context, input AddSessionInput) (*model.StudySession, error) {
	if input.UserID == 0 || !validHours(input.Hours) {
		return nil, ErrInvalidInput
	}
	if input.CourseID == 0 {
		return nil, ErrInvalidCourse
	}

	// calendar day at UTC midnight; the MySQL DSN ships loc=UTC to match
	date, err := time.ParseInLocation(model.DateLayout, strings.TrimSpace(input.Date), time.UTC)
	if err != nil {
		return nil, ErrInvalidDate
	}

	session := &model.StudySession{
		CourseID: input.CourseID,
		Date:     date,
		Hours:    input.Hours,
		Note:     strings.TrimSpace(input.Note),
	}
	if err := s.sessionRepo.CreateForOwner(ctx, session, input.UserID); err != nil {
		if errors.Is(err, repository.ErrNotOwner) {
			return nil, ErrInvalidCourse
		}
		return nil, err
	}
	return session, nil
}

func validHours(h float64) bool {
	return h >= 0 && !math.IsInf(h, 0) && !math.IsNaN(h)
}

func (s *StudyService) DeleteSession(ctx context.Context, userID, sessionID uint) error {
	if userID == 0 || sessionID == 0 {
		return ErrInvalidInput
	}
	err := s.sessionRepo.DeleteOwned(ctx, sessionID, userID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrSessionNotFound
	case errors.Is(err, repository.ErrNotOwner):
		return ErrForbidden
	}
	return err
}
