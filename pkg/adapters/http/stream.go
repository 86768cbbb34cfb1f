package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/collage/internal/logging"
	"github.com/aretw0/collage/pkg/domain"
)

// EventMessage is the JSON payload pushed to SSE clients.
type EventMessage struct {
	Type      domain.EventType `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
	FrameID   domain.FrameID   `json:"frame_id,omitempty"`
	Context   string           `json:"context,omitempty"`
	Op        string           `json:"op,omitempty"`
	Node      string           `json:"node,omitempty"`
	Failed    bool             `json:"failed,omitempty"`
	Slot      string           `json:"slot,omitempty"`
	Origin    string           `json:"origin,omitempty"`
}

// StreamManager fans coordinator events out to SSE connections.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[chan string]struct{}
	logger      *slog.Logger
}

// NewStreamManager creates a stream manager. A nil logger disables logging.
func NewStreamManager(logger *slog.Logger) *StreamManager {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &StreamManager{
		subscribers: make(map[chan string]struct{}),
		logger:      logger,
	}
}

// Subscribe returns a buffered channel of messages and a function that closes it.
func (sm *StreamManager) Subscribe() (<-chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 16)
	sm.subscribers[ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			sm.mu.Lock()
			defer sm.mu.Unlock()
			delete(sm.subscribers, ch)
			close(ch)
		})
	}
}

// Len returns the number of connected clients.
func (sm *StreamManager) Len() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers)
}

// Broadcast sends msg to every client. Slow clients lose messages instead of
// blocking the caller, which is usually the host loop.
func (sm *StreamManager) Broadcast(msg EventMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		sm.logger.Error("Failed to encode event", "type", msg.Type, "err", err)
		return
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()
	for ch := range sm.subscribers {
		select {
		case ch <- string(data):
		default:
			sm.logger.Warn("SSE: Client buffer full, dropping message", "type", msg.Type)
		}
	}
}

// Hooks returns coordinator hooks that broadcast every event.
func (sm *StreamManager) Hooks() domain.CoordinatorHooks {
	return domain.CoordinatorHooks{
		OnFrameRegistered: func(e *domain.FrameEvent) {
			sm.Broadcast(EventMessage{Type: e.Type, Timestamp: e.Timestamp, FrameID: e.FrameID})
		},
		OnFrameSwept: func(e *domain.FrameEvent) {
			sm.Broadcast(EventMessage{Type: e.Type, Timestamp: e.Timestamp, FrameID: e.FrameID})
		},
		OnRoute: func(e *domain.RouteEvent) {
			sm.Broadcast(EventMessage{
				Type: e.Type, Timestamp: e.Timestamp,
				Context: e.Context.String(), Op: e.Op, Node: e.Node, Failed: e.Failed,
			})
		},
		OnInteraction: func(e *domain.InteractionEvent) {
			sm.Broadcast(EventMessage{
				Type: e.Type, Timestamp: e.Timestamp,
				Context: e.Context.String(), Slot: e.Slot.Name(), Origin: e.Origin.Name(),
			})
		},
	}
}

// FrameClicked broadcasts a frame click. Pass it to SubscribeFrameClicked.
func (sm *StreamManager) FrameClicked(e domain.FrameClickedEvent) {
	sm.Broadcast(EventMessage{Type: e.Type, Timestamp: e.Timestamp, FrameID: e.FrameID})
}

// SubscribeEvents handles GET /events (SSE). The optional "types" query
// parameter is a comma separated list of event types to receive.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	var want map[string]bool
	if q := r.URL.Query().Get("types"); q != "" {
		want = make(map[string]bool)
		for _, t := range strings.Split(q, ",") {
			want[strings.TrimSpace(t)] = true
		}
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.Streams.Subscribe()
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Debug("SSE client disconnected")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if want != nil && !want[eventType(msg)] {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func eventType(msg string) string {
	var head struct {
		Type string `json:"type"`
	}
	_ = json.Unmarshal([]byte(msg), &head)
	return head.Type
}
