package models

import "time"

type Repair struct {
	// Token is both the primary key and the public read capability:
	// whoever holds the link can see the status.
	Token string `gorm:"primaryKey;size:64" json:"token"`

	Plate string `gorm:"size:32;not null" json:"plate"`

	// Position in the fixed repair sequence, 0..3.
	Status int `gorm:"not null;default:0" json:"status"`

	// Once true the record is inert: no further mutation, invisible
	// to every normal read path.
	IsClosed bool `gorm:"not null;default:false" json:"is_closed"`

	// Timestamps are owned by the application (UTC, whole seconds),
	// GORM must not touch them.
	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}
