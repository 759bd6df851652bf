package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/shed/internal/domain"
)

func TestStateStore_NotifiesInRegistrationOrder(t *testing.T) {
	store := NewStateStore()

	var order []string
	store.Subscribe(func(domain.AppState) { order = append(order, "first") })
	unsubscribe := store.Subscribe(func(domain.AppState) { order = append(order, "second") })
	store.Subscribe(func(domain.AppState) { order = append(order, "third") })

	store.Dispatch(domain.ErrorRaised{Message: "boom"})
	unsubscribe()
	store.Dispatch(domain.ErrorRaised{Message: "again"})

	assert.Equal(t, []string{"first", "second", "third", "first", "third"}, order)
	assert.Equal(t, "again", store.State().Error)
}

func TestStateStore_ListenerSeesCommittedState(t *testing.T) {
	store := NewStateStore()

	var seen domain.AppState
	store.Subscribe(func(s domain.AppState) { seen = s })

	rec := domain.NewProgressRecord("autumn-leaves")
	store.Dispatch(domain.ProgressCommitted{Record: rec})

	assert.Contains(t, seen.Progress, "autumn-leaves")
	assert.Equal(t, seen, store.State())
}
