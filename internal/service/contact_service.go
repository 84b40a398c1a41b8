package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"go-contacts-app/internal/core/cache"
	"go-contacts-app/internal/domain"
)

// emailShape is the loose local@domain.tld check the form-request contract uses.
// The stricter client-side rules live in internal/validate.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ContactInput struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

type ContactService struct {
	repo  domain.ContactRepository
	cache *cache.Cache // optional; nil disables read-through caching
	log   *zap.Logger
	rnd   IntN
}

type Option func(*ContactService)

func WithCache(c *cache.Cache) Option { return func(s *ContactService) { s.cache = c } }

// WithRandSource swaps the outcome selector's random source, mainly for tests.
func WithRandSource(r IntN) Option { return func(s *ContactService) { s.rnd = r } }

func NewContactService(repo domain.ContactRepository, log *zap.Logger, opts ...Option) *ContactService {
	s := &ContactService{repo: repo, log: log, rnd: defaultRand{}}
	for _, o := range opts {
		o(s)
	}
	return s
}

const (
	cacheTTL     = 30 * time.Second
	cacheKeyList = "contacts:all"
)

func cacheKeyContact(id uint) string { return fmt.Sprintf("contacts:%d", id) }

// validateInput enforces the server-side contract: presence, type and length
// only. The AU/NZ prefix restriction is deliberately left to the clients.
func validateInput(in ContactInput) error {
	verr := domain.NewValidationError()
	name := strings.TrimSpace(in.Name)
	if name == "" {
		verr.Add("name", "The name field is required.")
	} else if len(name) > 255 {
		verr.Add("name", "The name field must not be greater than 255 characters.")
	}
	if strings.TrimSpace(in.PhoneNumber) == "" {
		verr.Add("phone_number", "The phone number field is required.")
	}
	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		verr.Add("email", "The email field is required.")
	case !emailShape.MatchString(email):
		verr.Add("email", "The email field must be a valid email address.")
	case len(email) > 255:
		verr.Add("email", "The email field must not be greater than 255 characters.")
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

func (s *ContactService) Create(ctx context.Context, in ContactInput) (*domain.Contact, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	c := &domain.Contact{
		Name:        strings.TrimSpace(in.Name),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Email:       strings.TrimSpace(in.Email),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.invalidate(ctx, c.ID)
	s.log.Info("contact created", zap.Uint("id", c.ID), zap.String("name", c.Name))
	return c, nil
}

// Update overwrites all three editable fields and re-reads the row, so callers
// always see store-computed state (updated_at in particular).
func (s *ContactService) Update(ctx context.Context, existing *domain.Contact, in ContactInput) (*domain.Contact, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	c := &domain.Contact{
		ID:          existing.ID,
		Name:        strings.TrimSpace(in.Name),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Email:       strings.TrimSpace(in.Email),
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.invalidate(ctx, existing.ID)
	fresh, err := s.repo.FindByID(ctx, existing.ID)
	if err != nil {
		return nil, fmt.Errorf("reload contact %d: %w", existing.ID, err)
	}
	if fresh == nil {
		return nil, domain.ErrNotFound
	}
	s.log.Info("contact updated", zap.Uint("id", fresh.ID), zap.String("name", fresh.Name))
	return fresh, nil
}

func (s *ContactService) Delete(ctx context.Context, existing *domain.Contact) error {
	if err := s.repo.Delete(ctx, existing.ID); err != nil {
		return err
	}
	s.invalidate(ctx, existing.ID)
	s.log.Info("contact deleted", zap.Uint("id", existing.ID), zap.String("name", existing.Name))
	return nil
}

func (s *ContactService) Get(ctx context.Context, id uint) (*domain.Contact, error) {
	if s.cache != nil {
		return cache.GetOrLoadJSON[domain.Contact](s.cache, ctx, cacheKeyContact(id), cacheTTL,
			func(ctx context.Context) (*domain.Contact, error) {
				return s.repo.FindByID(ctx, id)
			})
	}
	return s.repo.FindByID(ctx, id)
}

func (s *ContactService) GetByPhone(ctx context.Context, phone string) (*domain.Contact, error) {
	return s.repo.FindByPhoneNumber(ctx, phone)
}

func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	if s.cache != nil {
		out, err := cache.GetOrLoadJSON[[]domain.Contact](s.cache, ctx, cacheKeyList, cacheTTL,
			func(ctx context.Context) (*[]domain.Contact, error) {
				cs, err := s.repo.List(ctx)
				if err != nil {
					return nil, err
				}
				return &cs, nil
			})
		if err != nil {
			return nil, err
		}
		if out == nil {
			return []domain.Contact{}, nil
		}
		return *out, nil
	}
	return s.repo.List(ctx)
}

func (s *ContactService) invalidate(ctx context.Context, id uint) {
	if s.cache == nil {
		return
	}
	s.cache.Del(ctx, cacheKeyContact(id), cacheKeyList)
}
