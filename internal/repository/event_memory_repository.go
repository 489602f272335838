package repository

import (
	"context"
	"sync"

	"github.com/Freeeeeet/mergington_activities/internal/model"
)

// DefaultMemoryEventCapacity сколько событий хранится без базы данных
const DefaultMemoryEventCapacity = 1000

// MemoryEventRepository журнал в памяти, старые события вытесняются
type MemoryEventRepository struct {
	mu       sync.RWMutex
	events   []*model.EnrollmentEvent
	capacity int
}

func NewMemoryEventRepository(capacity int) *MemoryEventRepository {
	if capacity <= 0 {
		capacity = DefaultMemoryEventCapacity
	}
	return &MemoryEventRepository{
		events:   make([]*model.EnrollmentEvent, 0, capacity),
		capacity: capacity,
	}
}

// Create добавляет событие в журнал
func (r *MemoryEventRepository) Create(_ context.Context, event *model.EnrollmentEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.events) == r.capacity {
		copy(r.events, r.events[1:])
		r.events = r.events[:len(r.events)-1]
	}

	stored := *event
	r.events = append(r.events, &stored)
	return nil
}

// ListByActivity возвращает последние события занятия, новые первыми
func (r *MemoryEventRepository) ListByActivity(_ context.Context, activityName string, limit int) ([]*model.EnrollmentEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]*model.EnrollmentEvent, 0, limit)
	for i := len(r.events) - 1; i >= 0 && len(events) < limit; i-- {
		if r.events[i].ActivityName != activityName {
			continue
		}
		event := *r.events[i]
		events = append(events, &event)
	}
	return events, nil
}
