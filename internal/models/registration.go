package models

import (
	"time"
)

// Registration status values. Every new registration starts as
// StatusRegistered; admins move it forward from the dashboard.
const (
	StatusRegistered = "Registered"
	StatusAttended   = "Attended"
	StatusCancelled  = "Cancelled"
)

// Registration is a public event signup. Members holds the comma-joined
// team member names for team events; it is empty for solo registrations.
type Registration struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CollegeID string    `json:"collegeId"`
	Email     string    `gorm:"index;not null" json:"email"`
	Phone     string    `json:"phone"`
	Event     string    `gorm:"not null" json:"event"`
	TeamName  string    `json:"teamName,omitempty"`
	Members   string    `json:"members,omitempty"`
	Status    string    `gorm:"default:'Registered'" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
