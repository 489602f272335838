package model

// Activity внеклассное занятие из каталога
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"` // не проверяется при записи
	Participants    []string `json:"participants"`     // email учеников в порядке записи
}

// Clone возвращает копию занятия с отдельным списком участников
func (a Activity) Clone() Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	a.Participants = participants
	return a
}

// HasParticipant проверяет записан ли email на занятие
func (a Activity) HasParticipant(email string) bool {
	return a.participantIndex(email) >= 0
}

// IsOverbooked показывает превышение вместимости
func (a Activity) IsOverbooked() bool {
	return len(a.Participants) > a.MaxParticipants
}

func (a Activity) participantIndex(email string) int {
	for i, p := range a.Participants {
		if p == email {
			return i
		}
	}
	return -1
}

// AddParticipant добавляет email в конец списка
func (a *Activity) AddParticipant(email string) error {
	if a.HasParticipant(email) {
		return ErrAlreadyRegistered
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// RemoveParticipant удаляет первое совпадение email
func (a *Activity) RemoveParticipant(email string) error {
	i := a.participantIndex(email)
	if i < 0 {
		return ErrNotRegistered
	}
	a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
	return nil
}
