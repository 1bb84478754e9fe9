package db_models

import (
	"time"

	"gorm.io/datatypes"
)

type Response struct {
	ID        int64          `gorm:"primaryKey;autoIncrement"`
	SurveyID  int64          `gorm:"index"`
	Answers   datatypes.JSON `gorm:"not null"` // []domain_models.Answer
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}
