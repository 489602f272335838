package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/mergington_activities/internal/model"
	"github.com/Freeeeeet/mergington_activities/internal/repository"
	"go.uber.org/zap"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// EventStore журнал записей: память или PostgreSQL
type EventStore interface {
	Create(ctx context.Context, event *model.EnrollmentEvent) error
	ListByActivity(ctx context.Context, activityName string, limit int) ([]*model.EnrollmentEvent, error)
}

type ActivityService struct {
	activityRepo *repository.ActivityRepository
	events       EventStore
	logger       *zap.Logger
}

func NewActivityService(activityRepo *repository.ActivityRepository, events EventStore, logger *zap.Logger) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		events:       events,
		logger:       logger,
	}
}

// ListActivities возвращает весь каталог
func (s *ActivityService) ListActivities() map[string]model.Activity {
	return s.activityRepo.List()
}

// Signup записывает ученика на занятие
func (s *ActivityService) Signup(ctx context.Context, session Session, activityName, email string) (*model.MessageResult, error) {
	teacher, err := RequireTeacher(session)
	if err != nil {
		return nil, err
	}

	activity, err := s.activityRepo.AddParticipant(activityName, email)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Student signed up",
		zap.String("activity", activityName),
		zap.String("email", email),
		zap.String("teacher", teacher),
	)

	// Вместимость не проверяется, только предупреждаем
	if activity.IsOverbooked() {
		s.logger.Warn("Activity is over capacity",
			zap.String("activity", activityName),
			zap.Int("participants", len(activity.Participants)),
			zap.Int("max_participants", activity.MaxParticipants),
		)
	}

	s.record(ctx, model.NewEnrollmentEvent(activityName, email, model.EnrollmentActionSignup, teacher))

	return &model.MessageResult{
		Message: fmt.Sprintf("Signed up %s for %s", email, activityName),
	}, nil
}

// Unregister отписывает ученика от занятия
func (s *ActivityService) Unregister(ctx context.Context, session Session, activityName, email string) (*model.MessageResult, error) {
	teacher, err := RequireTeacher(session)
	if err != nil {
		return nil, err
	}

	if _, err := s.activityRepo.RemoveParticipant(activityName, email); err != nil {
		return nil, err
	}

	s.logger.Info("Student unregistered",
		zap.String("activity", activityName),
		zap.String("email", email),
		zap.String("teacher", teacher),
	)

	s.record(ctx, model.NewEnrollmentEvent(activityName, email, model.EnrollmentActionUnregister, teacher))

	return &model.MessageResult{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activityName),
	}, nil
}

// History возвращает последние события занятия, новые первыми
func (s *ActivityService) History(ctx context.Context, session Session, activityName string, limit int) ([]*model.EnrollmentEvent, error) {
	if _, err := RequireTeacher(session); err != nil {
		return nil, err
	}

	if !s.activityRepo.Exists(activityName) {
		return nil, model.ErrActivityNotFound
	}

	events, err := s.events.ListByActivity(ctx, activityName, clampHistoryLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	return events, nil
}

// record пишет событие в журнал; ошибка журнала не отменяет изменение каталога
func (s *ActivityService) record(ctx context.Context, event *model.EnrollmentEvent) {
	if err := s.events.Create(ctx, event); err != nil {
		s.logger.Error("Failed to record enrollment event",
			zap.String("activity", event.ActivityName),
			zap.String("action", string(event.Action)),
			zap.Error(err),
		)
	}
}

func clampHistoryLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	default:
		return limit
	}
}
