package repository

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Freeeeeet/mergington_activities/internal/model"
)

type teachersFile struct {
	Teachers []model.TeacherCredential `json:"teachers"`
}

// TeacherRepository учётные данные учителей, только чтение после загрузки
type TeacherRepository struct {
	credentials map[string]string // username -> password
}

// NewTeacherRepository создаёт хранилище из готового списка
func NewTeacherRepository(teachers []model.TeacherCredential) *TeacherRepository {
	credentials := make(map[string]string, len(teachers))
	for _, t := range teachers {
		credentials[t.Username] = t.Password
	}
	return &TeacherRepository{credentials: credentials}
}

// LoadTeacherRepository читает teachers.json
func LoadTeacherRepository(path string) (*TeacherRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read teachers file: %w", err)
	}

	var file teachersFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse teachers file: %w", err)
	}

	return NewTeacherRepository(file.Teachers), nil
}

// Verify сравнивает пароль за постоянное время.
// Пустой сохранённый пароль никогда не совпадает.
func (r *TeacherRepository) Verify(username, password string) bool {
	expected, exists := r.credentials[username]
	if !exists || expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(password)) == 1
}

// Count количество загруженных учителей
func (r *TeacherRepository) Count() int {
	return len(r.credentials)
}
