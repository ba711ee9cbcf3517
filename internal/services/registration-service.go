package services

import (
	"github.com/felicityfest/fest-api/internal/models"
	"gorm.io/gorm"
)

// RegistrationService provides methods to interact with event registrations
type RegistrationService interface {
	// CreateRegistration stores a new public signup
	CreateRegistration(reg models.Registration) (models.Registration, error)
	// GetAllRegistrations retrieves every registration, newest first
	GetAllRegistrations() ([]models.Registration, error)
	// GetRegistrationsByEmail retrieves one attendee's registrations, newest first
	GetRegistrationsByEmail(email string) ([]models.Registration, error)
	// UpdateStatus changes only the status field of a registration
	UpdateStatus(id uint, status string) error
	// DeleteRegistration removes a registration by its ID
	DeleteRegistration(id uint) error
}

// registrationService is the implementation of the RegistrationService interface
type registrationService struct {
	db *gorm.DB
}

// NewRegistrationService creates a new instance of RegistrationService
func NewRegistrationService(db *gorm.DB) RegistrationService {
	return &registrationService{db: db}
}

func (s *registrationService) CreateRegistration(reg models.Registration) (models.Registration, error) {
	if reg.Status == "" {
		reg.Status = models.StatusRegistered
	}
	if err := s.db.Create(&reg).Error; err != nil {
		return models.Registration{}, err
	}
	return reg, nil
}

func (s *registrationService) GetAllRegistrations() ([]models.Registration, error) {
	var regs []models.Registration
	if err := s.db.Order("created_at DESC").Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (s *registrationService) GetRegistrationsByEmail(email string) ([]models.Registration, error) {
	var regs []models.Registration
	if err := s.db.Where("email = ?", email).Order("created_at DESC").Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (s *registrationService) UpdateStatus(id uint, status string) error {
	// Single-column update: every other field keeps its stored value.
	res := s.db.Model(&models.Registration{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *registrationService) DeleteRegistration(id uint) error {
	if err := s.db.Delete(&models.Registration{}, id).Error; err != nil {
		return err
	}
	return nil
}
