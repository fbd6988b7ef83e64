package services

import (
	"context"
	"errors"

	"event-registration-system/models"
	"event-registration-system/store"
	"event-registration-system/utils"
)

// Team size bounds for both team events.
const (
	MinTeamSize = 2
	MaxTeamSize = 4
)

// TeamWorkflow runs team creation and joining against one team
// collection. Survival Showdown and Code Cortex each get their own
// instance; the two never touch each other's table.
type TeamWorkflow struct {
	Store *store.TeamStore
	Event string
}

func NewTeamWorkflow(ts *store.TeamStore, event string) *TeamWorkflow {
	return &TeamWorkflow{Store: ts, Event: event}
}

// Create registers a new team with the requesting leader as its first
// member and returns the shareable team ID.
func (w *TeamWorkflow) Create(ctx context.Context, req models.CreateTeamRequest) (string, error) {
	if req.TeamName == "" || req.TeamSize == 0 || req.Name == "" ||
		req.Registration == "" || req.Email == "" || req.Contact == "" {
		return "", validationErr("All fields are required.")
	}
	if req.TeamSize < MinTeamSize || req.TeamSize > MaxTeamSize {
		return "", validationErr("Team size must be between 2 and 4.")
	}

	teamID := utils.GenerateID()
	team := &models.TeamRegistration{
		Event:    w.Event,
		TeamName: req.TeamName,
		TeamSize: req.TeamSize,
		Members:  []models.TeamMember{req.Leader()},
		TeamID:   teamID,
	}
	if err := w.Store.Create(ctx, team); err != nil {
		return "", err
	}
	return teamID, nil
}

// Join appends a member to an existing team, looked up by the shared
// team ID. All checks run before the write, so a failed join leaves
// the member list untouched.
func (w *TeamWorkflow) Join(ctx context.Context, req models.JoinTeamRequest) (string, error) {
	if req.TeamID == "" || req.Name == "" || req.Registration == "" ||
		req.Email == "" || req.Contact == "" {
		return "", validationErr("All fields are required.")
	}

	team, err := w.Store.FindByTeamID(ctx, req.TeamID)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrTeamNotFound
	}
	if err != nil {
		return "", err
	}

	if team.IsFull() {
		return "", ErrTeamFull
	}
	if team.HasMember(req.Registration) {
		return "", ErrDuplicateMember
	}

	team.Members = append(team.Members, req.Member())
	if err := w.Store.Save(ctx, team); err != nil {
		return "", err
	}
	return req.TeamID, nil
}
