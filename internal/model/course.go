package model

import "time"

type Course struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UserID         uint           `gorm:"not null;index" json:"user_id"`
	Name           string         `gorm:"size:100;not null" json:"name"`
	EstimatedGrade int            `gorm:"not null" json:"estimated_grade"`
	Sessions       []StudySession `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
