package events

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvgen_backend/internal/models"
)

func testEvent() CVGenerated {
	user := &models.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	user.ID = "user-1"
	return CVGenerated{
		User:     user,
		Locale:   "en-us",
		Filename: "Ada Lovelace - en-us.pdf",
		PDF:      []byte("%PDF-1.4"),
	}
}

func TestDispatcherDeliversToAllSubscribers(t *testing.T) {
	d := NewDispatcher(4)

	var calls int32
	received := make(chan CVGenerated, 2)
	for i := 0; i < 2; i++ {
		d.Subscribe(func(event CVGenerated) error {
			atomic.AddInt32(&calls, 1)
			received <- event
			return nil
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Run(ctx)

	d.Publish(testEvent())

	for i := 0; i < 2; i++ {
		select {
		case event := <-received:
			assert.Equal(t, "Ada Lovelace - en-us.pdf", event.Filename)
		case <-time.After(2 * time.Second):
			t.Fatal("subscriber was not invoked")
		}
	}
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestDispatcherIsolatesHandlerFailures(t *testing.T) {
	d := NewDispatcher(4)

	d.Subscribe(func(CVGenerated) error {
		return errors.New("delivery down")
	})
	delivered := make(chan struct{}, 1)
	d.Subscribe(func(CVGenerated) error {
		delivered <- struct{}{}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Run(ctx)

	d.Publish(testEvent())

	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("failing handler blocked the next subscriber")
	}
}

func TestPublishNeverBlocks(t *testing.T) {
	d := NewDispatcher(1)
	// No Run loop: the buffer fills and subsequent publishes must drop.

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10; i++ {
			d.Publish(testEvent())
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a full buffer")
	}
	require.Len(t, d.events, 1)
}
