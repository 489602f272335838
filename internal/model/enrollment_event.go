package model

import (
	"time"

	"github.com/google/uuid"
)

type EnrollmentAction string

const (
	EnrollmentActionSignup     EnrollmentAction = "signup"
	EnrollmentActionUnregister EnrollmentAction = "unregister"
)

// EnrollmentEvent запись журнала о записи или отписке ученика
type EnrollmentEvent struct {
	ID              uuid.UUID        `json:"id"`
	ActivityName    string           `json:"activity_name"`
	Email           string           `json:"email"`
	Action          EnrollmentAction `json:"action"`
	TeacherUsername string           `json:"teacher_username"` // кто выполнил действие
	CreatedAt       time.Time        `json:"created_at"`
}

// NewEnrollmentEvent создаёт событие с новым ID и текущим временем
func NewEnrollmentEvent(activityName, email string, action EnrollmentAction, teacher string) *EnrollmentEvent {
	return &EnrollmentEvent{
		ID:              uuid.New(),
		ActivityName:    activityName,
		Email:           email,
		Action:          action,
		TeacherUsername: teacher,
		CreatedAt:       time.Now().UTC(),
	}
}
