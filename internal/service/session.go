package service

import "github.com/Freeeeeet/mergington_activities/internal/model"

// Session доступ к полю teacher_username сессии текущего запроса
type Session interface {
	TeacherUsername() (string, bool)
	SetTeacherUsername(username string) error
	ClearTeacherUsername() error
}

// RequireTeacher общая проверка для всех изменяющих операций
func RequireTeacher(session Session) (string, error) {
	if session == nil {
		return "", model.ErrUnauthenticated
	}
	username, ok := session.TeacherUsername()
	if !ok || username == "" {
		return "", model.ErrUnauthenticated
	}
	return username, nil
}
