package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"event-registration-system/models"
)

var singleColumns = map[string]string{
	"event":        "event",
	"name":         "name",
	"registration": "registration",
	"email":        "email",
	"contact":      "contact",
	"regID":        "reg_id",
}

// SingleStore persists Data Alchemy registrations in the dataregs table.
type SingleStore struct {
	DB *gorm.DB
}

func NewSingleStore(db *gorm.DB) *SingleStore {
	return &SingleStore{DB: db}
}

func (s *SingleStore) Migrate() error {
	return s.DB.AutoMigrate(&models.SingleRegistration{})
}

// Create persists a new registration, assigning its storage key.
func (s *SingleStore) Create(ctx context.Context, reg *models.SingleRegistration) error {
	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	return s.DB.WithContext(ctx).Create(reg).Error
}

func (s *SingleStore) FindAll(ctx context.Context) ([]models.SingleRegistration, error) {
	var regs []models.SingleRegistration
	err := s.DB.WithContext(ctx).Find(&regs).Error
	return regs, err
}

func (s *SingleStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.SingleRegistration{}).Count(&n).Error
	return n, err
}

// UpdateByID merges the recognized patch fields into the record and
// returns the updated row, or ErrNotFound for an unknown key.
func (s *SingleStore) UpdateByID(ctx context.Context, id string, patch map[string]any) (*models.SingleRegistration, error) {
	var reg models.SingleRegistration
	if err := s.DB.WithContext(ctx).First(&reg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	updates := filterPatch(patch, singleColumns)
	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(&reg).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := s.DB.WithContext(ctx).First(&reg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (s *SingleStore) DeleteByID(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Delete(&models.SingleRegistration{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
