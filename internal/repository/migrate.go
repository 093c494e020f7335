package repository

import (
	"fmt"

	"gorm.io/gorm"

	"studytrackr/internal/model"
)

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Course{}, &model.StudySession{}); err != nil {
		return fmt.Errorf("auto migrate tables failed: %w", err)
	}
	return nil
}
