package events

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"hotelbooking/internal/domain"
)

// writeTimeout bounds how long a single push may block on a slow peer.
const writeTimeout = 10 * time.Second

// Event is the wire payload pushed to subscribers on a status transition.
type Event struct {
	Entity string    `json:"entity"`
	ID     string    `json:"id,omitempty"`
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

// subscriber serializes writes to one connection. The websocket package
// allows only a single concurrent writer per connection, and broadcasts
// arrive from whichever request goroutine triggered the transition.
type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *subscriber) send(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return s.conn.WriteJSON(ev)
}

// Hub keeps the set of live subscriber connections. Broadcasts are
// best-effort: a failed write drops the connection, never the caller.
type Hub struct {
	subscribers map[*websocket.Conn]*subscriber
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[*websocket.Conn]*subscriber),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.subscribers[conn] = &subscriber{conn: conn}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.subscribers[conn]; exists {
		_ = conn.Close()
		delete(h.subscribers, conn)
	}
}

func (h *Hub) SubscriberCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.subscribers)
}

func (h *Hub) Broadcast(ev Event) {
	h.mutex.RLock()
	subs := make([]*subscriber, 0, len(h.subscribers))
	for _, sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.mutex.RUnlock()

	for _, sub := range subs {
		if err := sub.send(ev); err != nil {
			h.Unregister(sub.conn)
		}
	}
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.subscribers {
		_ = conn.Close()
		delete(h.subscribers, conn)
	}
}

// The methods below satisfy the per-module StatusBroadcaster interfaces.

func (h *Hub) RoomStatusChanged(roomNo string, status domain.RoomStatus) {
	h.Broadcast(Event{Entity: "room", ID: roomNo, Status: string(status), At: time.Now().UTC()})
}

func (h *Hub) SpotStatusChanged(spotID string, status domain.SpotStatus) {
	h.Broadcast(Event{Entity: "parking_spot", ID: spotID, Status: string(status), At: time.Now().UTC()})
}

func (h *Hub) BookingStatusChanged(bookingID string, status domain.BookingStatus) {
	h.Broadcast(Event{Entity: "booking", ID: bookingID, Status: string(status), At: time.Now().UTC()})
}

func (h *Hub) RoomsReset() {
	h.Broadcast(Event{Entity: "room", Status: string(domain.RoomAvailable), At: time.Now().UTC()})
}
