package ws

import (
	"encoding/json"
	"sync"

	"workasana/internal/logger"
)

// Event types pushed to connected clients.
const (
	EventTaskCreated = "task.created"
	EventTaskUpdated = "task.updated"
	EventTaskDeleted = "task.deleted"
)

// TaskEvent is the wire format of a task mutation notification.
type TaskEvent struct {
	Type   string `json:"type"`
	Task   any    `json:"task,omitempty"`
	TaskID int64  `json:"taskId,omitempty"`
}

// Hub fans task events out to every connected client. Clients are
// write-only consumers; a slow client is dropped rather than blocking the
// broadcast.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]bool)}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if h.clients[c] {
		delete(h.clients, c)
		close(c.Send)
	}
	h.mu.Unlock()
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast queues a raw message for every client.
func (h *Hub) Broadcast(msg []byte) {
	h.mu.RLock()
	stale := []*Client{}
	for c := range h.clients {
		select {
		case c.Send <- msg:
		default:
			stale = append(stale, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stale {
		logger.Warn("dropping slow ws client", "user_id", c.UserID)
		h.Unregister(c)
	}
}

// PublishTask broadcasts a created/updated event carrying the full record.
func (h *Hub) PublishTask(eventType string, task any) {
	h.publish(TaskEvent{Type: eventType, Task: task})
}

// PublishTaskDeleted broadcasts a deletion carrying only the id.
func (h *Hub) PublishTaskDeleted(id int64) {
	h.publish(TaskEvent{Type: EventTaskDeleted, TaskID: id})
}

func (h *Hub) publish(ev TaskEvent) {
	msg, err := json.Marshal(ev)
	if err != nil {
		logger.Error("failed to marshal task event", "error", err)
		return
	}
	h.Broadcast(msg)
}
