package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/mergington_activities/internal/model"
)

func TestMemoryEventRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryEventRepository(10)

	require.NoError(t, repo.Create(ctx, model.NewEnrollmentEvent("Chess Club", "a@x", model.EnrollmentActionSignup, "mchen")))
	require.NoError(t, repo.Create(ctx, model.NewEnrollmentEvent("Art Club", "b@x", model.EnrollmentActionSignup, "mchen")))
	require.NoError(t, repo.Create(ctx, model.NewEnrollmentEvent("Chess Club", "a@x", model.EnrollmentActionUnregister, "mchen")))

	events, err := repo.ListByActivity(ctx, "Chess Club", 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, model.EnrollmentActionUnregister, events[0].Action)
	assert.Equal(t, model.EnrollmentActionSignup, events[1].Action)

	events, err = repo.ListByActivity(ctx, "Chess Club", 1)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestMemoryEventRepository_EvictsOldest(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryEventRepository(3)

	for i := 0; i < 5; i++ {
		email := fmt.Sprintf("s%d@x", i)
		require.NoError(t, repo.Create(ctx, model.NewEnrollmentEvent("Chess Club", email, model.EnrollmentActionSignup, "mchen")))
	}

	events, err := repo.ListByActivity(ctx, "Chess Club", 10)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "s4@x", events[0].Email)
	assert.Equal(t, "s2@x", events[2].Email)
}

func TestMemoryEventRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryEventRepository(0)

	event := model.NewEnrollmentEvent("Chess Club", "a@x", model.EnrollmentActionSignup, "mchen")
	require.NoError(t, repo.Create(ctx, event))
	event.Email = "changed@x"

	events, err := repo.ListByActivity(ctx, "Chess Club", 5)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "a@x", events[0].Email)
	events[0].Email = "changed-again@x"

	events, err = repo.ListByActivity(ctx, "Chess Club", 5)
	require.NoError(t, err)
	assert.Equal(t, "a@x", events[0].Email)
}
