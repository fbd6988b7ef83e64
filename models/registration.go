package models

import (
	"time"
)

// Event names, fixed per endpoint.
const (
	EventDataAlchemy = "dataalchemy"
	EventSurvival    = "survival"
	EventCodeCortex  = "codecortex"
)

// SingleRegistration is one Data Alchemy sign-up. RegID is the short
// business-facing ID shown to the participant; ID is the storage key
// used by the admin panel.
type SingleRegistration struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Event        string    `json:"event"`
	Name         string    `json:"name"`
	Registration string    `json:"registration"`
	Email        string    `json:"email"`
	Contact      string    `json:"contact"`
	RegID        string    `json:"regID" gorm:"column:reg_id;index"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (SingleRegistration) TableName() string {
	return "dataregs"
}

// TeamMember lives inside its team's members document; it is never
// stored on its own. Slice order is join order, the leader first.
type TeamMember struct {
	Name         string `json:"name"`
	Registration string `json:"registration"`
	Email        string `json:"email"`
	Contact      string `json:"contact"`
}

// TeamRegistration is shared by both team events. It deliberately has
// no TableName: the store binds it to survivalregs or codecortexregs,
// which are identical in shape and differ only by event.
type TeamRegistration struct {
	ID        string       `json:"id" gorm:"primaryKey"`
	Event     string       `json:"event"`
	TeamName  string       `json:"teamName" gorm:"column:team_name"`
	TeamSize  int          `json:"teamSize" gorm:"column:team_size"`
	Members   []TeamMember `json:"members" gorm:"serializer:json;type:text"`
	TeamID    string       `json:"teamID" gorm:"column:team_id;index"`
	CreatedAt time.Time    `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time    `json:"updatedAt" gorm:"autoUpdateTime"`
}

// HasMember reports whether a member with the given registration number
// already joined.
func (t *TeamRegistration) HasMember(registration string) bool {
	for _, m := range t.Members {
		if m.Registration == registration {
			return true
		}
	}
	return false
}

// IsFull reports whether the team reached its declared size.
func (t *TeamRegistration) IsFull() bool {
	return len(t.Members) >= t.TeamSize
}
