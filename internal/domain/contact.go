package domain

import (
	"context"
	"time"
)

type Contact struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ContactRepository interface {
	Create(ctx context.Context, c *Contact) error
	FindByID(ctx context.Context, id uint) (*Contact, error)
	FindByPhoneNumber(ctx context.Context, phone string) (*Contact, error)
	List(ctx context.Context) ([]Contact, error)
	Update(ctx context.Context, c *Contact) error
	Delete(ctx context.Context, id uint) error
}
