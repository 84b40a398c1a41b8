package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"go-contacts-app/internal/core/database"
	"go-contacts-app/internal/domain"
	"go-contacts-app/internal/feature/contact"
	"go-contacts-app/internal/repo"
	"go-contacts-app/internal/service"
)

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func newTestService(t *testing.T) *service.ContactService {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          filepath.Join(t.TempDir(), "contacts_test.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&contact.ContactModel{}))
	return service.NewContactService(repo.NewContactRepo(db), zap.NewNop())
}

func TestContactService_Create(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.ContactInput{
		Name:        "Alice Johnson",
		PhoneNumber: "+61412345678",
		Email:       "alice.johnson@example.com",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.Name, found.Name)
	assert.Equal(t, created.PhoneNumber, found.PhoneNumber)
	assert.Equal(t, created.Email, found.Email)
}

func TestContactService_Create_TrimsFields(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(context.Background(), service.ContactInput{
		Name:        "  Alice Johnson  ",
		PhoneNumber: " +61412345678 ",
		Email:       " alice@example.com ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", created.Name)
	assert.Equal(t, "+61412345678", created.PhoneNumber)
	assert.Equal(t, "alice@example.com", created.Email)
}

func TestContactService_Create_ValidationFailures(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		in    service.ContactInput
		field string
	}{
		{"missing name", service.ContactInput{PhoneNumber: "+61412345678", Email: "a@b.co"}, "name"},
		{"missing phone", service.ContactInput{Name: "A", Email: "a@b.co"}, "phone_number"},
		{"missing email", service.ContactInput{Name: "A", PhoneNumber: "+61412345678"}, "email"},
		{"bad email shape", service.ContactInput{Name: "A", PhoneNumber: "+61412345678", Email: "not-an-email"}, "email"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.in)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tc.field)
		})
	}
}

func TestContactService_Create_AllowsNonAUNZNumbers(t *testing.T) {
	// the AU/NZ prefix restriction is a client rule; the API stays permissive
	svc := newTestService(t)

	created, err := svc.Create(context.Background(), service.ContactInput{
		Name:        "Carol King",
		PhoneNumber: "+1212345678",
		Email:       "carol@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "+1212345678", created.PhoneNumber)
}

func TestContactService_Create_Duplicates(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, service.ContactInput{Name: "One", PhoneNumber: "+61412345678", Email: "one@example.com"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, service.ContactInput{Name: "Two", PhoneNumber: "+61412345678", Email: "two@example.com"})
	assert.True(t, errors.Is(err, domain.ErrDuplicatePhoneNumber))

	_, err = svc.Create(ctx, service.ContactInput{Name: "Three", PhoneNumber: "+61400000003", Email: "one@example.com"})
	assert.True(t, errors.Is(err, domain.ErrDuplicateEmail))
}

func TestContactService_Update_ReturnsFreshState(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.ContactInput{Name: "Old Name", PhoneNumber: "+61400000000", Email: "old@example.com"})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	updated, err := svc.Update(ctx, created, service.ContactInput{
		Name:        "New Name",
		PhoneNumber: "+61499999999",
		Email:       "new@updated.com",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "+61499999999", updated.PhoneNumber)
	assert.Equal(t, "new@updated.com", updated.Email)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt), "updated_at must strictly advance")

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, fetched)
}

func TestContactService_Delete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.ContactInput{Name: "Doomed", PhoneNumber: "+64210000000", Email: "doomed@example.net"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created))

	found, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.True(t, errors.Is(svc.Delete(ctx, created), domain.ErrNotFound))
}

func TestContactService_List(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, service.ContactInput{Name: "Alice", PhoneNumber: "+61412345678", Email: "alice@example.com"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, service.ContactInput{Name: "Bob", PhoneNumber: "+64219876543", Email: "bob@example.com"})
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Alice", all[0].Name)
	assert.Equal(t, "Bob", all[1].Name)
}
