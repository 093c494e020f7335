package model

import "time"

// DateLayout is the textual form of StudySession.Date in forms and views.
const DateLayout = "2006-01-02"

type StudySession struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CourseID  uint      `gorm:"not null;index" json:"course_id"`
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	Hours     float64   `gorm:"not null" json:"hours"`
	Note      string    `gorm:"type:text" json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StudySessionWithCourse is a study session joined with its course name for listings.
type StudySessionWithCourse struct {
	StudySession
	CourseName string `json:"course_name"`
}
