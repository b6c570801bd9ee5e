package domain

import "time"

type Team struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	RegionID  string    `json:"region_id"`
	LeadID    *int      `json:"lead_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
