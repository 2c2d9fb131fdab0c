package models

import "time"

// Like is a "many-to-many" relation of a user liking a photo. The composite
// primary key keeps the relation unique per (user, photo) pair, so liking
// the same photo twice fails with a duplicated-key error.
type Like struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	PhotoID   uint      `gorm:"primaryKey;autoIncrement:false" json:"photo_id"`
	CreatedAt time.Time `json:"created_at"`

	User  *User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Photo *Photo `gorm:"foreignKey:PhotoID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
