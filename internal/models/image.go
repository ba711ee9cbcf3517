package models

import (
	"time"
)

// Image is a gallery entry. Filename is the name of the stored file under
// the upload directory; URL is the public path derived from it at upload
// time. Title and Category are the only admin-editable fields.
type Image struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Filename  string    `gorm:"not null" json:"filename"`
	URL       string    `gorm:"not null" json:"url"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"uploadedAt"`
}
