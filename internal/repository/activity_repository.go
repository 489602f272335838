package repository

import (
	"sort"
	"sync"

	"github.com/Freeeeeet/mergington_activities/internal/model"
)

// ActivityRepository каталог занятий в памяти процесса
type ActivityRepository struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity // name -> Activity
}

// NewActivityRepository создаёт каталог из начальных данных
func NewActivityRepository(seed map[string]model.Activity) *ActivityRepository {
	activities := make(map[string]*model.Activity, len(seed))
	for name, activity := range seed {
		a := activity.Clone()
		activities[name] = &a
	}

	return &ActivityRepository{activities: activities}
}

// List возвращает копию всего каталога
func (r *ActivityRepository) List() map[string]model.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]model.Activity, len(r.activities))
	for name, activity := range r.activities {
		snapshot[name] = activity.Clone()
	}
	return snapshot
}

// Get возвращает копию занятия по имени
func (r *ActivityRepository) Get(name string) (model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, exists := r.activities[name]
	if !exists {
		return model.Activity{}, model.ErrActivityNotFound
	}
	return activity.Clone(), nil
}

// Exists проверяет наличие занятия
func (r *ActivityRepository) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.activities[name]
	return exists
}

// Names возвращает отсортированные имена занятий
func (r *ActivityRepository) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.activities))
	for name := range r.activities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddParticipant записывает email на занятие.
// Проверка и добавление выполняются под одной блокировкой.
func (r *ActivityRepository) AddParticipant(name, email string) (model.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, exists := r.activities[name]
	if !exists {
		return model.Activity{}, model.ErrActivityNotFound
	}

	if err := activity.AddParticipant(email); err != nil {
		return model.Activity{}, err
	}

	return activity.Clone(), nil
}

// RemoveParticipant отписывает email от занятия
func (r *ActivityRepository) RemoveParticipant(name, email string) (model.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, exists := r.activities[name]
	if !exists {
		return model.Activity{}, model.ErrActivityNotFound
	}

	if err := activity.RemoveParticipant(email); err != nil {
		return model.Activity{}, err
	}

	return activity.Clone(), nil
}
