package models

import "time"

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(250);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(250);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(500);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations. Owned tasks are detached, never deleted, when the
	// account goes away.
	Tasks []Task `gorm:"foreignKey:OwnerID" json:"-"`
}
