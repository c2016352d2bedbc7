package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscriber(t *testing.T) {
	t.Parallel()
	bus := New()
	received := make(chan DomainEvent, 1)

	bus.Subscribe(EventEntityCreated, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(EntityCreatedEvent{Entity: "companies", ID: 7})

	select {
	case e := <-received:
		created, ok := e.(EntityCreatedEvent)
		require.True(t, ok)
		require.Equal(t, "companies", created.Entity)
		require.Equal(t, 7, created.ID)
	case <-time.After(time.Second):
		t.Fatal("subscriber never received the event")
	}
}

func TestSubscriberOnlyGetsItsType(t *testing.T) {
	t.Parallel()
	bus := New()
	deleted := make(chan DomainEvent, 2)

	bus.Subscribe(EventEntityDeleted, func(e DomainEvent) {
		deleted <- e
	})

	bus.Publish(EntityCreatedEvent{Entity: "zones", ID: 1})
	bus.Publish(EntityDeletedEvent{Entity: "zones", ID: 2})

	select {
	case e := <-deleted:
		_, ok := e.(EntityDeletedEvent)
		require.True(t, ok, "only deletion events should arrive")
	case <-time.After(time.Second):
		t.Fatal("subscriber never received the event")
	}

	select {
	case <-deleted:
		t.Fatal("received an event of the wrong type")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPanickingHandlerDoesNotKillBus(t *testing.T) {
	t.Parallel()
	bus := New()
	received := make(chan struct{}, 1)

	bus.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	bus.Subscribe(EventError, func(DomainEvent) { received <- struct{}{} })

	bus.Publish(ErrorEvent{Message: "oops"})

	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("second handler never ran")
	}
}
