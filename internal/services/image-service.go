package services

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/felicityfest/fest-api/internal/models"
	"gorm.io/gorm"
)

// ImageService provides methods to interact with the gallery
type ImageService interface {
	// CreateImage stores a gallery record for an already-written file
	CreateImage(img models.Image) (models.Image, error)
	// GetAllImages retrieves every gallery image, newest first
	GetAllImages() ([]models.Image, error)
	// UpdateImage changes title and/or category, leaving other fields alone
	UpdateImage(id uint, title, category string) error
	// DeleteImage removes the record and its backing file
	DeleteImage(id uint) error
}

// imageService is the implementation of the ImageService interface
type imageService struct {
	db        *gorm.DB
	uploadDir string
}

// NewImageService creates a new instance of ImageService. uploadDir is the
// content directory holding the backing files.
func NewImageService(db *gorm.DB, uploadDir string) ImageService {
	return &imageService{db: db, uploadDir: uploadDir}
}

func (s *imageService) CreateImage(img models.Image) (models.Image, error) {
	if err := s.db.Create(&img).Error; err != nil {
		return models.Image{}, err
	}
	return img, nil
}

func (s *imageService) GetAllImages() ([]models.Image, error) {
	var images []models.Image
	if err := s.db.Order("created_at DESC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (s *imageService) UpdateImage(id uint, title, category string) error {
	updates := map[string]interface{}{}
	if title != "" {
		updates["title"] = title
	}
	if category != "" {
		updates["category"] = category
	}
	if len(updates) == 0 {
		return nil
	}

	res := s.db.Model(&models.Image{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteImage is idempotent: a missing record or a missing backing file is
// treated as already cleaned up.
func (s *imageService) DeleteImage(id uint) error {
	var img models.Image
	if err := s.db.First(&img, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := s.db.Delete(&models.Image{}, id).Error; err != nil {
		return err
	}

	if img.Filename != "" {
		path := filepath.Join(s.uploadDir, img.Filename)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
