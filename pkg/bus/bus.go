// Package bus provides the in-process topic bus used to fan mission events
// out to local subscribers (WebSocket relays, in-process consumers). Cross-node
// delivery is handled by the events bridge, which republishes persisted events
// onto each node's local bus.
package bus

import (
	"sync"
	"sync/atomic"
)

// DefaultQueueSize is the per-subscriber queue bound. Publishers never block:
// when a subscriber's queue is full the oldest message is dropped and the
// dropped counter incremented. Subscribers that cannot tolerate drops must
// read faster or use the persistent catch-up path.
const DefaultQueueSize = 1024

// Message is a single event flowing through the bus.
type Message struct {
	Topic     string
	Type      string
	MissionID string
	// Sequence is the persisted mission-event sequence, or 0 for
	// transient messages. Consumers use it to dedupe across the
	// catch-up/live boundary.
	Sequence int
	// Payload is the marshaled event envelope, ready for WS delivery.
	Payload []byte
}

// Subscription is one subscriber's bounded queue for a topic.
type Subscription struct {
	C     chan Message
	topic string
}

// Topic returns the topic this subscription is attached to.
func (s *Subscription) Topic() string { return s.topic }

// Bus is an in-process topic-keyed fanout with bounded per-subscriber queues.
//
// Publish holds the subscribers read-lock for the duration of the (entirely
// non-blocking) enqueue, and Unsubscribe closes the queue under the write
// lock, so a send can never race a close.
type Bus struct {
	mu        sync.RWMutex
	topics    map[string]map[*Subscription]bool
	queueSize int
	dropped   atomic.Uint64
}

// New creates a Bus with the given per-subscriber queue size.
// queueSize <= 0 uses DefaultQueueSize.
func New(queueSize int) *Bus {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Bus{
		topics:    make(map[string]map[*Subscription]bool),
		queueSize: queueSize,
	}
}

// Subscribe registers a new subscriber queue for a topic.
func (b *Bus) Subscribe(topic string) *Subscription {
	sub := &Subscription{
		C:     make(chan Message, b.queueSize),
		topic: topic,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.topics[topic] == nil {
		b.topics[topic] = make(map[*Subscription]bool)
	}
	b.topics[topic][sub] = true
	return sub
}

// Unsubscribe removes a subscriber and closes its queue. Messages already
// queued remain readable until the channel is drained. Unsubscribing twice
// is a no-op.
func (b *Bus) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.topics[sub.topic]
	if !ok || !subs[sub] {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(b.topics, sub.topic)
	}
	close(sub.C)
}

// Publish enqueues a message to every subscriber of its topic without
// blocking. On a full queue the oldest message is dropped to guarantee
// liveness.
func (b *Bus) Publish(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.topics[msg.Topic] {
		for {
			select {
			case sub.C <- msg:
			default:
				// Queue full — evict the oldest and retry. Both paths
				// are non-blocking, so a slow reader can never stall
				// the publisher.
				select {
				case <-sub.C:
					b.dropped.Add(1)
				default:
				}
				continue
			}
			break
		}
	}
}

// Dropped returns the total number of messages dropped due to overflow.
func (b *Bus) Dropped() uint64 {
	return b.dropped.Load()
}

// SubscriberCount returns the number of subscribers for a topic.
func (b *Bus) SubscriberCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[topic])
}
