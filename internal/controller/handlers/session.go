package handlers

import (
	"fmt"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// cookieSession адаптер подписанной cookie-сессии к service.Session
type cookieSession struct {
	session sessions.Session
}

func newSession(c *gin.Context) *cookieSession {
	return &cookieSession{session: sessions.Default(c)}
}

func (s *cookieSession) TeacherUsername() (string, bool) {
	username, ok := s.session.Get(teacherSessionKey).(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}

func (s *cookieSession) SetTeacherUsername(username string) error {
	s.session.Set(teacherSessionKey, username)
	if err := s.session.Save(); err != nil {
		return fmt.Errorf("save cookie session: %w", err)
	}
	return nil
}

func (s *cookieSession) ClearTeacherUsername() error {
	s.session.Delete(teacherSessionKey)
	if err := s.session.Save(); err != nil {
		return fmt.Errorf("save cookie session: %w", err)
	}
	return nil
}
