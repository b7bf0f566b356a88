package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserCategory is the membership edge between a user and a shared category.
type UserCategory struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey;index:idx_user_categories_category_id" json:"category_id"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`

	User     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

func (uc *UserCategory) BeforeCreate(tx *gorm.DB) error {
	if uc.CreatedAt.IsZero() {
		uc.CreatedAt = time.Now().UTC()
	}
	return nil
}

func (uc *UserCategory) TableName() string {
	return "user_categories"
}
