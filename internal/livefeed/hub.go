package livefeed

import (
	"encoding/json"
	"log"

	websocket "github.com/gofiber/contrib/websocket"

	"github.com/arash-p/TeamTrackBack/internal/models"
)

// Hub fans ingested performance samples out to websocket viewers subscribed
// to a session. Delivery is best effort; viewers that fall behind are
// dropped and must reconnect.
type Hub struct {
	viewers    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan *SampleEvent
}

type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	sessionID string
	send      chan []byte
}

type SampleEvent struct {
	Type      string                   `json:"type"`
	SessionID string                   `json:"session_id"`
	Sample    models.PerformanceSample `json:"sample"`
}

func NewHub() *Hub {
	return &Hub{
		viewers:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *SampleEvent, 64),
	}
}

func NewClient(hub *Hub, conn *websocket.Conn, sessionID string) *Client {
	return &Client{
		hub:       hub,
		conn:      conn,
		sessionID: sessionID,
		send:      make(chan []byte, 32),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			set, ok := h.viewers[client.sessionID]
			if !ok {
				set = make(map[*Client]struct{})
				h.viewers[client.sessionID] = set
			}
			set[client] = struct{}{}
		case client := <-h.unregister:
			set, ok := h.viewers[client.sessionID]
			if !ok {
				continue
			}
			if _, exists := set[client]; exists {
				delete(set, client)
				close(client.send)
			}
			if len(set) == 0 {
				delete(h.viewers, client.sessionID)
			}
		case event := <-h.broadcast:
			h.deliver(event)
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Publish hands a sample to the hub without blocking ingestion. If the
// broadcast buffer is full the event is dropped; the feed is a live view,
// not a durable stream.
func (h *Hub) Publish(event *SampleEvent) {
	select {
	case h.broadcast <- event:
	default:
	}
}

func (h *Hub) deliver(event *SampleEvent) {
	encoded, err := json.Marshal(event)
	if err != nil {
		log.Printf("live feed encode sample: %v", err)
		return
	}

	set, ok := h.viewers[event.SessionID]
	if !ok {
		return
	}
	for client := range set {
		select {
		case client.send <- encoded:
		default:
			delete(set, client)
			close(client.send)
		}
	}
	if len(set) == 0 {
		delete(h.viewers, event.SessionID)
	}
}

// ReadPump drains the connection so close frames are processed. Viewers are
// read-only; any payload they send is ignored.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) WritePump() {
	defer func() {
		_ = c.conn.Close()
	}()

	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}
