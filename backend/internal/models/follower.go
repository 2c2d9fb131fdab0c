package models

import "time"

// Follower is a directed follow edge: follower_id follows artist_id. The
// composite primary key allows at most one edge per ordered pair; deleting
// either user cascades to every edge referencing it. Self-follows are not
// prevented at the schema level.
type Follower struct {
	ArtistID   uint      `gorm:"primaryKey;autoIncrement:false" json:"artist_id"`
	FollowerID uint      `gorm:"primaryKey;autoIncrement:false" json:"follower_id"`
	CreatedAt  time.Time `json:"created_at"`

	Artist     *User `gorm:"foreignKey:ArtistID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	FollowedBy *User `gorm:"foreignKey:FollowerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
