package services

import (
	"github.com/felicityfest/fest-api/internal/models"
	"gorm.io/gorm"
)

type MessageService interface {
	CreateMessage(msg models.Message) (models.Message, error)
	GetAllMessages() ([]models.Message, error)
	DeleteMessage(id uint) error
}

type messageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) MessageService {
	return &messageService{db: db}
}

func (s *messageService) CreateMessage(msg models.Message) (models.Message, error) {
	if err := s.db.Create(&msg).Error; err != nil {
		return models.Message{}, err
	}
	return msg, nil
}

func (s *messageService) GetAllMessages() ([]models.Message, error) {
	var msgs []models.Message
	if err := s.db.Order("created_at DESC").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *messageService) DeleteMessage(id uint) error {
	return s.db.Delete(&models.Message{}, id).Error
}
