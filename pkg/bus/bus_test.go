package bus

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishSubscribe(t *testing.T) {
	b := New(8)
	sub := b.Subscribe("mission:abc")
	defer b.Unsubscribe(sub)

	b.Publish(Message{Topic: "mission:abc", Type: "phase_start", MissionID: "abc", Sequence: 1})

	msg := <-sub.C
	assert.Equal(t, "phase_start", msg.Type)
	assert.Equal(t, 1, msg.Sequence)
}

func TestBus_TopicIsolation(t *testing.T) {
	b := New(8)
	subA := b.Subscribe("mission:a")
	subB := b.Subscribe("mission:b")
	defer b.Unsubscribe(subA)
	defer b.Unsubscribe(subB)

	b.Publish(Message{Topic: "mission:a", Type: "status_change"})

	assert.Len(t, subA.C, 1)
	assert.Len(t, subB.C, 0)
}

func TestBus_DropOldestOnOverflow(t *testing.T) {
	const queueSize = 4
	b := New(queueSize)
	sub := b.Subscribe("mission:x")
	defer b.Unsubscribe(sub)

	const published = 10
	for i := 1; i <= published; i++ {
		b.Publish(Message{Topic: "mission:x", Sequence: i})
	}

	// Oldest dropped, newest retained, dropped count equals overflow.
	assert.Equal(t, uint64(published-queueSize), b.Dropped())

	want := published - queueSize + 1
	for msg := range sub.C {
		assert.Equal(t, want, msg.Sequence)
		want++
		if len(sub.C) == 0 {
			break
		}
	}
	assert.Equal(t, published+1, want)
}

func TestBus_UnsubscribeClosesQueue(t *testing.T) {
	b := New(8)
	sub := b.Subscribe("mission:y")
	b.Publish(Message{Topic: "mission:y", Sequence: 1})
	b.Unsubscribe(sub)

	// Queued message still readable, then channel reports closed.
	msg, ok := <-sub.C
	require.True(t, ok)
	assert.Equal(t, 1, msg.Sequence)

	_, ok = <-sub.C
	assert.False(t, ok)

	// Publishing after unsubscribe reaches nobody and does not panic.
	b.Publish(Message{Topic: "mission:y", Sequence: 2})
	assert.Equal(t, 0, b.SubscriberCount("mission:y"))

	// Double unsubscribe is a no-op.
	b.Unsubscribe(sub)
}

func TestBus_ConcurrentPublishUnsubscribe(t *testing.T) {
	b := New(16)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		topic := fmt.Sprintf("mission:%d", i)
		sub := b.Subscribe(topic)

		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b.Publish(Message{Topic: topic, Sequence: j})
			}
		}()
		go func() {
			defer wg.Done()
			for range sub.C {
			}
		}()
		go func() {
			b.Unsubscribe(sub)
		}()
	}
	wg.Wait()
}
