package contact

import (
	"time"

	"go-contacts-app/internal/domain"
)

type ContactModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:255;not null"`
	PhoneNumber string `gorm:"uniqueIndex;size:32;not null"`
	Email       string `gorm:"uniqueIndex;size:255;not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ContactModel) TableName() string { return "contacts" }

func (m *ContactModel) ToDomain() *domain.Contact {
	return &domain.Contact{
		ID:          m.ID,
		Name:        m.Name,
		PhoneNumber: m.PhoneNumber,
		Email:       m.Email,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromDomain(c *domain.Contact) *ContactModel {
	return &ContactModel{
		ID:          c.ID,
		Name:        c.Name,
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
