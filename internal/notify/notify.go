package notify

import (
	"errors"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/carehive/ats-admin/internal/events"
	"github.com/carehive/ats-admin/internal/metrics"
)

type Slot string

const (
	SlotError   Slot = "error"
	SlotSuccess Slot = "success"
)

const defaultExpiry = 5 * time.Second

// Notification is a single banner message. When both related ids are set the
// message survives the expiry timer and stays until explicitly cleared, so a
// confirmation can remain visible while a follow-up action (composing a hire
// letter) is still pending.
type Notification struct {
	Message     string
	CompanyID   int
	ApplicantID int
}

func (n Notification) persistent() bool {
	return n.CompanyID != 0 && n.ApplicantID != 0
}

type Option func(*Notification)

func WithRelatedIDs(companyID, applicantID int) Option {
	return func(n *Notification) {
		n.CompanyID = companyID
		n.ApplicantID = applicantID
	}
}

type slotState struct {
	current *Notification
	timer   *time.Timer

	// gen invalidates expiry callbacks that fired before Set or Clear took
	// the lock; Stop alone cannot cancel a timer that already fired.
	gen uint64
}

// Channel holds the two global broadcast slots. Any page may Set a slot at
// any time; the last write wins and there is no queueing.
type Channel struct {
	mu     sync.Mutex
	slots  map[Slot]*slotState
	bus    EventBus.Bus
	expiry time.Duration
}

func NewChannel(bus EventBus.Bus) (*Channel, error) {

	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	return &Channel{
		slots: map[Slot]*slotState{
			SlotError:   {},
			SlotSuccess: {},
		},
		bus:    bus,
		expiry: defaultExpiry,
	}, nil
}

func (c *Channel) SetExpiry(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiry = d
}

// Set replaces the slot's message unconditionally and restarts its expiry
// timer, unless the message is persistent.
func (c *Channel) Set(slot Slot, message string, opts ...Option) {

	notification := Notification{Message: message}
	for _, opt := range opts {
		opt(&notification)
	}

	c.mu.Lock()
	state := c.slots[slot]
	if state.timer != nil {
		state.timer.Stop()
		state.timer = nil
	}
	state.gen++
	state.current = &notification
	if !notification.persistent() {
		gen := state.gen
		state.timer = time.AfterFunc(c.expiry, func() { c.expire(slot, gen) })
	}
	c.mu.Unlock()

	metrics.NotificationsCounter.WithLabelValues(string(slot)).Inc()
	c.bus.Publish(events.NotificationPostedTopic, events.NotificationPosted{
		Slot:    string(slot),
		Message: message,
	})
}

// Get returns the slot's current message, if any.
func (c *Channel) Get(slot Slot) (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.slots[slot]
	if state.current == nil {
		return Notification{}, false
	}
	return *state.current, true
}

func (c *Channel) Clear(slot Slot) {

	c.mu.Lock()
	state := c.slots[slot]
	if state.timer != nil {
		state.timer.Stop()
		state.timer = nil
	}
	state.gen++
	cleared := state.current != nil
	state.current = nil
	c.mu.Unlock()

	if cleared {
		c.bus.Publish(events.NotificationClearedTopic, events.NotificationCleared{Slot: string(slot)})
	}
}

// expire is the timer path. The message is only dropped when no Set or Clear
// took the slot since the timer was armed.
func (c *Channel) expire(slot Slot, gen uint64) {

	c.mu.Lock()
	state := c.slots[slot]
	if state.gen != gen {
		c.mu.Unlock()
		return
	}
	state.timer = nil
	cleared := state.current != nil
	state.current = nil
	c.mu.Unlock()

	if cleared {
		c.bus.Publish(events.NotificationClearedTopic, events.NotificationCleared{Slot: string(slot)})
	}
}
