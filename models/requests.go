package models

// Request bodies for the public registration endpoints. Field names
// match what the registration forms submit.

type SingleRegistrationRequest struct {
	Name         string `json:"name"`
	Registration string `json:"registration"`
	Email        string `json:"email"`
	Contact      string `json:"contact"`
}

// CreateTeamRequest carries the team details plus the leader's own
// member fields in one flat body.
type CreateTeamRequest struct {
	TeamName     string `json:"teamName"`
	TeamSize     int    `json:"teamSize"`
	Name         string `json:"name"`
	Registration string `json:"registration"`
	Email        string `json:"email"`
	Contact      string `json:"contact"`
}

// Leader returns the creating member, who becomes the team's first entry.
func (r CreateTeamRequest) Leader() TeamMember {
	return TeamMember{
		Name:         r.Name,
		Registration: r.Registration,
		Email:        r.Email,
		Contact:      r.Contact,
	}
}

type JoinTeamRequest struct {
	TeamID       string `json:"teamId"`
	Name         string `json:"name"`
	Registration string `json:"registration"`
	Email        string `json:"email"`
	Contact      string `json:"contact"`
}

func (r JoinTeamRequest) Member() TeamMember {
	return TeamMember{
		Name:         r.Name,
		Registration: r.Registration,
		Email:        r.Email,
		Contact:      r.Contact,
	}
}
