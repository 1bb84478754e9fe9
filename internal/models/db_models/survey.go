package db_models

import (
	"time"

	"gorm.io/datatypes"
)

type Survey struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"not null"`
	Description *string
	UserID      int64          `gorm:"index"`
	Questions   datatypes.JSON `gorm:"not null"` // []domain_models.Question
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
}
