package store

import (
	"testing"
	"time"

	"clinicpro-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwapReplacesSnapshotAndClearsCondition(t *testing.T) {
	s := New()
	s.Fail(ConditionLoadError)
	require.Equal(t, ConditionLoadError, s.Condition())

	snap := Empty()
	snap.Customers = []models.Customer{{Name: "Anna"}}
	s.Swap(snap)

	assert.Empty(t, s.Condition())
	current := s.Current()
	require.Len(t, current.Customers, 1)
	assert.Equal(t, "Anna", current.Customers[0].Name)
	assert.False(t, current.RefreshedAt.IsZero())
}

func TestFailRetainsPreviousSnapshot(t *testing.T) {
	s := New()
	snap := Empty()
	snap.Customers = []models.Customer{{Name: "Anna"}}
	s.Swap(snap)

	s.Fail(ConditionMissingTables)

	assert.Equal(t, ConditionMissingTables, s.Condition())
	assert.Len(t, s.Current().Customers, 1)
}

func TestEmptySnapshotHasNonNilCollections(t *testing.T) {
	snap := Empty()
	assert.NotNil(t, snap.Customers)
	assert.NotNil(t, snap.Services)
	assert.NotNil(t, snap.Courses)
	assert.NotNil(t, snap.Inventory)
	assert.NotNil(t, snap.Appointments)
	assert.NotNil(t, snap.Transactions)
}

func TestSubscribeReceivesSwaps(t *testing.T) {
	s := New()
	ch, cancel := s.Subscribe()
	defer cancel()

	snap := Empty()
	snap.Services = []models.Service{{Name: "Consult"}}
	s.Swap(snap)

	select {
	case got := <-ch:
		require.Len(t, got.Services, 1)
		assert.Equal(t, "Consult", got.Services[0].Name)
	case <-time.After(time.Second):
		t.Fatal("no snapshot notification received")
	}
}

func TestSubscribeCancelStopsDelivery(t *testing.T) {
	s := New()
	ch, cancel := s.Subscribe()
	cancel()

	s.Swap(Empty())

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("received snapshot after cancel")
		}
	default:
	}
}

func TestSlowSubscriberDoesNotBlockSwap(t *testing.T) {
	s := New()
	_, cancel := s.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		// Two swaps against a full channel of capacity one must not block.
		s.Swap(Empty())
		s.Swap(Empty())
		s.Swap(Empty())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("swap blocked on a slow subscriber")
	}
}
