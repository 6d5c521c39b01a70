package dto

import "time"

// RepairStatusDTO is the public projection of an open repair.
type RepairStatusDTO struct {
	Token     string    `json:"token"`
	Plate     string    `json:"plate"`
	Status    int       `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RepairListDTO is the technician listing row.
type RepairListDTO struct {
	Token     string    `json:"token"`
	Plate     string    `json:"plate"`
	Status    int       `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
