package realtime

import (
	"errors"
	"sync"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"crewsite/internal/metrics"
)

// Resource types carried in change notifications.
const (
	TypeEvents  = "events"
	TypeTeam    = "team"
	TypeGallery = "gallery"
	TypeVideos  = "videos"
	TypeContent = "content"

	ActionRefresh = "refresh"
)

var (
	ErrHubClosed        = errors.New("hub closed")
	ErrSubscriberClosed = errors.New("subscriber closed")
	ErrBufferFull       = errors.New("subscriber buffer full")
)

// Notification tells clients to re-fetch a resource collection.
type Notification struct {
	Type   string `json:"type"`
	Action string `json:"action"`
}

// Subscriber receives encoded notifications. Deliver must not block;
// any error gets the subscriber dropped from the hub.
type Subscriber interface {
	Deliver(msg []byte) error
	Close()
}

// Hub is the registry of live subscribers.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[Subscriber]struct{}
	closed      bool

	// gauge mirrors len(subscribers) and is only set under mu.
	gauge prometheus.Gauge
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[Subscriber]struct{}),
		gauge:       metrics.LiveSubscribers,
	}
}

func (h *Hub) Register(sub Subscriber) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		sub.Close()
		return ErrHubClosed
	}
	h.subscribers[sub] = struct{}{}
	h.gauge.Set(float64(len(h.subscribers)))
	h.mu.Unlock()
	return nil
}

// Unregister removes and closes sub. Calling it twice is harmless.
func (h *Hub) Unregister(sub Subscriber) {
	h.mu.Lock()
	if _, ok := h.subscribers[sub]; ok {
		delete(h.subscribers, sub)
		h.gauge.Set(float64(len(h.subscribers)))
	}
	h.mu.Unlock()

	sub.Close()
}

// Broadcast sends {type, action:"refresh"} to every subscriber registered at
// call time and returns how many accepted it. Failed subscribers are dropped.
func (h *Hub) Broadcast(resourceType string) int {
	payload, err := json.Marshal(Notification{Type: resourceType, Action: ActionRefresh})
	if err != nil {
		log.Error().Err(err).Str("type", resourceType).Msg("encode notification")
		return 0
	}

	h.mu.RLock()
	snapshot := make([]Subscriber, 0, len(h.subscribers))
	for sub := range h.subscribers {
		snapshot = append(snapshot, sub)
	}
	h.mu.RUnlock()

	metrics.BroadcastsTotal.WithLabelValues(resourceType).Inc()

	delivered := 0
	for _, sub := range snapshot {
		if err := sub.Deliver(payload); err != nil {
			log.Debug().Err(err).Str("type", resourceType).Msg("dropping live subscriber")
			metrics.DroppedSubscribersTotal.Inc()
			h.Unregister(sub)
			continue
		}
		delivered++
	}
	return delivered
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Close disconnects every subscriber and refuses new registrations.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	subs := h.subscribers
	h.subscribers = make(map[Subscriber]struct{})
	h.gauge.Set(0)
	h.mu.Unlock()

	for sub := range subs {
		sub.Close()
	}
}
