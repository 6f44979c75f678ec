package models

import "time"

// Notification is a side-effect record written by the notification engine
// when another user's action touches your content. Clients never create one
// directly. The target is referenced by entity type + id rather than a
// foreign key, so any entity kind can be pointed at.
type Notification struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	RecipientID int       `gorm:"not null;index" json:"recipient_id"`
	ActorID     int       `gorm:"not null" json:"actor_id"`
	Recipient   User      `gorm:"foreignKey:RecipientID" json:"recipient"`
	Actor       User      `gorm:"foreignKey:ActorID" json:"actor"`
	Verb        string    `gorm:"not null" json:"verb"`
	TargetType  string    `gorm:"not null" json:"target_type"`
	TargetID    int       `gorm:"not null" json:"target_id"`
	CreatedAt   time.Time `json:"timestamp"`
}
