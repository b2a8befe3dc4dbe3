// Package ws provides the live broadcast channel. Connected clients send
// operator events (hints, lock toggles) and receive fan-out notifications.
package ws

// Subscriber abstracts a connected broadcast client.
type Subscriber interface {
	Send([]byte) error
	Close()
}

// Hub fans broadcast payloads out to every connected client. The client set
// is owned by the run goroutine; all mutations go through the channels.
type Hub struct {
	clients   map[Subscriber]struct{}
	register  chan Subscriber
	unreg     chan Subscriber
	broadcast chan []byte
}

// NewHub creates a Hub and starts its dispatch goroutine.
func NewHub() *Hub {
	h := &Hub{
		clients:   make(map[Subscriber]struct{}),
		register:  make(chan Subscriber),
		unreg:     make(chan Subscriber),
		broadcast: make(chan []byte),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
		case c := <-h.unreg:
			delete(h.clients, c)
		case payload := <-h.broadcast:
			for c := range h.clients {
				if err := c.Send(payload); err != nil {
					c.Close()
					delete(h.clients, c)
				}
			}
		}
	}
}

// Register adds a client to the broadcast set.
func (h *Hub) Register(client Subscriber) {
	h.register <- client
}

// Unregister removes a client.
func (h *Hub) Unregister(client Subscriber) {
	h.unreg <- client
}

// Broadcast sends payload to all connected clients, including the sender
// of the event that triggered it.
func (h *Hub) Broadcast(payload []byte) {
	h.broadcast <- payload
}
