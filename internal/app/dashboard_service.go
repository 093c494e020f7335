package app

import (
	"context"

	"studytrackr/internal/gpa"
	"studytrackr/internal/repository"
)

type DashboardService struct {
	courseRepo  *repository.CourseRepository
	sessionRepo *repository.StudySessionRepository
}

type CourseSummary struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	EstimatedGrade int     `json:"estimated_grade"`
	GPAPoints      float64 `json:"gpa_points"`
	TotalHours     float64 `json:"total_hours"`
}

type Dashboard struct {
	GPA         float64         `json:"gpa"`
	TotalHours  float64         `json:"total_hours"`
	Courses     []CourseSummary `json:"courses"`
	ChartLabels []string        `json:"chart_labels"`
	ChartData   []float64       `json:"chart_data"`
}

func NewDashboardService(courseRepo *repository.CourseRepository, sessionRepo *repository.StudySessionRepository) *DashboardService {
	return &DashboardService{
		courseRepo:  courseRepo,
		sessionRepo: sessionRepo,
	}
}

// Summary computes the mean GPA over the user's courses (0 without courses)
// and the hours logged per course, in course order.
func (s *DashboardService) Summary(ctx context.Context, userID uint) (*Dashboard, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}

	courses, err := s.courseRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	hours, err := s.sessionRepo.SumHoursByCourse(ctx, userID)
	if err != nil {
		return nil, err
	}

	dash := &Dashboard{
		Courses:     make([]CourseSummary, 0, len(courses)),
		ChartLabels: make([]string, 0, len(courses)),
		ChartData:   make([]float64, 0, len(courses)),
	}
	grades := make([]int, 0, len(courses))
	for _, c := range courses {
		total := gpa.Round2(hours[c.ID])
		grades = append(grades, c.EstimatedGrade)
		dash.Courses = append(dash.Courses, CourseSummary{
			ID:             c.ID,
			Name:           c.Name,
			EstimatedGrade: c.EstimatedGrade,
			GPAPoints:      gpa.FromGrade(c.EstimatedGrade),
			TotalHours:     total,
		})
		dash.ChartLabels = append(dash.ChartLabels, c.Name)
		dash.ChartData = append(dash.ChartData, total)
		dash.TotalHours += total
	}
	dash.GPA = gpa.Mean(grades)
	dash.TotalHours = gpa.Round2(dash.TotalHours)
	return dash, nil
}
