package service_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Freeeeeet/mergington_activities/internal/model"
	"github.com/Freeeeeet/mergington_activities/internal/repository"
	"github.com/Freeeeeet/mergington_activities/internal/service"
)

var (
	_ service.EventStore = (*repository.EventRepository)(nil)
	_ service.EventStore = (*repository.MemoryEventRepository)(nil)
)

// memorySession сессия в памяти вместо cookie
type memorySession struct {
	username string
	saveErr  error
}

func (s *memorySession) TeacherUsername() (string, bool) {
	return s.username, s.username != ""
}

func (s *memorySession) SetTeacherUsername(username string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.username = username
	return nil
}

func (s *memorySession) ClearTeacherUsername() error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.username = ""
	return nil
}

// failingEventStore журнал, который всегда возвращает ошибку
type failingEventStore struct{}

func (failingEventStore) Create(context.Context, *model.EnrollmentEvent) error {
	return errors.New("journal unavailable")
}

func (failingEventStore) ListByActivity(context.Context, string, int) ([]*model.EnrollmentEvent, error) {
	return nil, errors.New("journal unavailable")
}

type fixture struct {
	activities *service.ActivityService
	auth       *service.AuthService
	events     *repository.MemoryEventRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := zap.NewNop()
	events := repository.NewMemoryEventRepository(100)
	teachers := repository.NewTeacherRepository([]model.TeacherCredential{
		{Username: "mchen", Password: "chess456"},
	})

	return &fixture{
		activities: service.NewActivityService(repository.NewActivityRepository(repository.DefaultActivities()), events, logger),
		auth:       service.NewAuthService(teachers, logger),
		events:     events,
	}
}

func (f *fixture) loggedIn(t *testing.T) *memorySession {
	t.Helper()
	session := &memorySession{}
	if _, err := f.auth.Login(session, "mchen", "chess456"); err != nil {
		t.Fatalf("login: %v", err)
	}
	return session
}
