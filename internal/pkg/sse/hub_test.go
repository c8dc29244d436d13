package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesOnlyTargetUser(t *testing.T) {
	hub := NewHub()

	chA, cleanupA := hub.Subscribe("user-a")
	defer cleanupA()
	chB, cleanupB := hub.Subscribe("user-b")
	defer cleanupB()

	hub.Publish("user-a", Event{Event: EventCheckIn, Data: "payload"})

	select {
	case ev := <-chA:
		assert.Equal(t, EventCheckIn, ev.Event)
	default:
		t.Fatal("expected an event on user-a's channel")
	}

	select {
	case <-chB:
		t.Fatal("user-b must not receive user-a's event")
	default:
	}
}

func TestHub_PublishToManyStampsUserID(t *testing.T) {
	hub := NewHub()

	chA, cleanupA := hub.Subscribe("user-a")
	defer cleanupA()
	chB, cleanupB := hub.Subscribe("user-b")
	defer cleanupB()

	hub.PublishToMany([]string{"user-a", "user-b"}, Event{Event: EventFinalized})

	evA := <-chA
	evB := <-chB
	assert.Equal(t, "user-a", evA.UserID)
	assert.Equal(t, "user-b", evB.UserID)
}

func TestHub_SubscriberCounts(t *testing.T) {
	hub := NewHub()

	_, cleanup1 := hub.Subscribe("user-a")
	_, cleanup2 := hub.Subscribe("user-a")
	_, cleanup3 := hub.Subscribe("user-b")

	assert.Equal(t, 2, hub.SubscriberCount("user-a"))
	assert.Equal(t, 1, hub.SubscriberCount("user-b"))
	assert.Equal(t, 0, hub.SubscriberCount("user-c"))
	assert.Equal(t, 3, hub.TotalSubscribers())

	cleanup1()
	cleanup2()
	cleanup3()

	assert.Equal(t, 0, hub.SubscriberCount("user-a"))
	assert.Equal(t, 0, hub.TotalSubscribers())
}

func TestHub_PublishDropsWhenChannelFull(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-a")
	defer cleanup()

	// Channel buffer is 10; the extra publishes must not block.
	for i := 0; i < 15; i++ {
		hub.Publish("user-a", Event{Event: EventCheckIn})
	}

	require.Len(t, ch, 10)
}
