package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"go-contacts-app/internal/domain"
	"go-contacts-app/internal/feature/contact"
)

type ContactRepo struct{ db *gorm.DB }

func NewContactRepo(db *gorm.DB) *ContactRepo { return &ContactRepo{db: db} }

func (r *ContactRepo) Create(ctx context.Context, c *domain.Contact) error {
	m := contact.FromDomain(c)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return classifyDupKey(err)
	}
	*c = *m.ToDomain()
	return nil
}

func (r *ContactRepo) FindByID(ctx context.Context, id uint) (*domain.Contact, error) {
	var m contact.ContactModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *ContactRepo) FindByPhoneNumber(ctx context.Context, phone string) (*domain.Contact, error) {
	var m contact.ContactModel
	err := r.db.WithContext(ctx).First(&m, "phone_number = ?", phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *ContactRepo) List(ctx context.Context) ([]domain.Contact, error) {
	var ms []contact.ContactModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Contact, 0, len(ms))
	for i := range ms {
		out = append(out, *ms[i].ToDomain())
	}
	return out, nil
}

func (r *ContactRepo) Update(ctx context.Context, c *domain.Contact) error {
	m := contact.FromDomain(c)
	res := r.db.WithContext(ctx).Model(&contact.ContactModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"name":         m.Name,
			"phone_number": m.PhoneNumber,
			"email":        m.Email,
		})
	if res.Error != nil {
		return classifyDupKey(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ContactRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&contact.ContactModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// classifyDupKey maps a driver unique-violation error to the field-level domain
// error. Index names carry the column name on mysql, postgres and sqlite, so a
// substring check is enough without pinning a driver error type.
func classifyDupKey(err error) error {
	msg := strings.ToLower(err.Error())
	dup := errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "constraint failed")
	if !dup {
		return err
	}
	switch {
	case strings.Contains(msg, "phone_number"):
		return domain.ErrDuplicatePhoneNumber
	case strings.Contains(msg, "email"):
		return domain.ErrDuplicateEmail
	default:
		return domain.ErrDuplicatePhoneNumber
	}
}
