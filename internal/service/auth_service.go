package service

import (
	"fmt"

	"github.com/Freeeeeet/mergington_activities/internal/model"
	"github.com/Freeeeeet/mergington_activities/internal/repository"
	"go.uber.org/zap"
)

type AuthService struct {
	teacherRepo *repository.TeacherRepository
	logger      *zap.Logger
}

func NewAuthService(teacherRepo *repository.TeacherRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		teacherRepo: teacherRepo,
		logger:      logger,
	}
}

// Status читает сессию без побочных эффектов
func (s *AuthService) Status(session Session) model.AuthStatus {
	username, err := RequireTeacher(session)
	if err != nil {
		return model.AuthStatus{IsAuthenticated: false}
	}
	return model.AuthStatus{IsAuthenticated: true, Username: &username}
}

// Login проверяет учётные данные и записывает учителя в сессию
func (s *AuthService) Login(session Session, username, password string) (*model.LoginResult, error) {
	if !s.teacherRepo.Verify(username, password) {
		s.logger.Warn("Teacher login failed", zap.String("username", username))
		return nil, model.ErrInvalidCredentials
	}

	if err := session.SetTeacherUsername(username); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info("Teacher logged in", zap.String("username", username))

	return &model.LoginResult{
		Message:  "Login successful",
		Username: username,
	}, nil
}

// Logout очищает сессию, повторный вызов безопасен
func (s *AuthService) Logout(session Session) (*model.MessageResult, error) {
	username, wasLoggedIn := session.TeacherUsername()

	if err := session.ClearTeacherUsername(); err != nil {
		return nil, fmt.Errorf("clear session: %w", err)
	}

	if wasLoggedIn {
		s.logger.Info("Teacher logged out", zap.String("username", username))
	}

	return &model.MessageResult{Message: "Logged out"}, nil
}
