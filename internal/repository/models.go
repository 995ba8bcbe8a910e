package repository

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(32);not null;default:jobseeker"`
}

// Submission.Data holds the payload as JSON text; it is never parsed here.
type Submission struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Data      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}
