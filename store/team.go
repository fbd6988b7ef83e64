package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"event-registration-system/models"
)

var teamColumns = map[string]string{
	"event":    "event",
	"teamName": "team_name",
	"teamSize": "team_size",
	"members":  "members",
	"teamID":   "team_id",
}

// TeamStore persists team registrations. Both team events share the
// record shape, so one store type serves both collections; each
// instance is bound to its table at construction.
type TeamStore struct {
	db    *gorm.DB
	table string
}

func NewTeamStore(db *gorm.DB, table string) *TeamStore {
	return &TeamStore{db: db, table: table}
}

func (s *TeamStore) Table() string {
	return s.table
}

func (s *TeamStore) Migrate() error {
	return s.db.Table(s.table).AutoMigrate(&models.TeamRegistration{})
}

// Create persists a new team, assigning its storage key.
func (s *TeamStore) Create(ctx context.Context, team *models.TeamRegistration) error {
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Table(s.table).Create(team).Error
}

func (s *TeamStore) FindAll(ctx context.Context) ([]models.TeamRegistration, error) {
	var teams []models.TeamRegistration
	err := s.db.WithContext(ctx).Table(s.table).Find(&teams).Error
	return teams, err
}

// FindByTeamID looks a team up by its shareable business ID. Business
// IDs are not unique by construction; like the original lookup this
// resolves a collision to the oldest matching row.
func (s *TeamStore) FindByTeamID(ctx context.Context, teamID string) (*models.TeamRegistration, error) {
	var team models.TeamRegistration
	err := s.db.WithContext(ctx).Table(s.table).
		Where("team_id = ?", teamID).
		Order("created_at").
		First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TeamStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Table(s.table).Count(&n).Error
	return n, err
}

// Save writes the full row back, members document included. A join is
// one Save, so the member append commits atomically per team.
func (s *TeamStore) Save(ctx context.Context, team *models.TeamRegistration) error {
	return s.db.WithContext(ctx).Table(s.table).Save(team).Error
}

// UpdateByID merges the recognized patch fields into the record and
// returns the updated row, or ErrNotFound for an unknown key. A
// "members" patch value is re-encoded into the JSON document column.
func (s *TeamStore) UpdateByID(ctx context.Context, id string, patch map[string]any) (*models.TeamRegistration, error) {
	var team models.TeamRegistration
	err := s.db.WithContext(ctx).Table(s.table).First(&team, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	updates := filterPatch(patch, teamColumns)
	if raw, ok := updates["members"]; ok {
		encoded, err := json.Marshal(raw)
		if err != nil {
			return nil, err
		}
		updates["members"] = string(encoded)
	}
	if len(updates) > 0 {
		err := s.db.WithContext(ctx).Table(s.table).
			Where("id = ?", id).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}

	if err := s.db.WithContext(ctx).Table(s.table).First(&team, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TeamStore) DeleteByID(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Table(s.table).
		Where("id = ?", id).
		Delete(&models.TeamRegistration{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
