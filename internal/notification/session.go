package notification

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum inbound message size. Clients only send keep-alive frames.
	maxMessageSize = 512

	// Outbound queue depth per session. A session that falls this far
	// behind is dropped.
	sendBufferSize = 32
)

// Session is one hospital client's persistent connection. It is bound to
// exactly one hospital identity for its whole lifetime and is a member of
// that hospital's group from Join until close.
type Session struct {
	hub        *Hub
	conn       *websocket.Conn
	hospitalID uint

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func NewSession(hub *Hub, conn *websocket.Conn, hospitalID uint) *Session {
	return &Session{
		hub:        hub,
		conn:       conn,
		hospitalID: hospitalID,
		send:       make(chan []byte, sendBufferSize),
		done:       make(chan struct{}),
	}
}

// HospitalID returns the hospital identity the session is bound to.
func (s *Session) HospitalID() uint {
	return s.hospitalID
}

// enqueue hands a payload to the session's writer without blocking.
// Returns false if the session is closing or its buffer is full.
func (s *Session) enqueue(payload []byte) bool {
	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.send <- payload:
		return true
	case <-s.done:
		return false
	default:
		return false
	}
}

// close leaves the group exactly once, stops the writer and releases the
// connection. Safe to call from the read pump, the write pump and the
// hub concurrently.
func (s *Session) close() {
	s.closeOnce.Do(func() {
		s.hub.Leave(s.hospitalID, s)
		close(s.done)
		if s.conn != nil {
			s.conn.Close()
		}
	})
}

// ReadPump consumes inbound frames until the connection drops. Clients
// only send keep-alive/no-op frames, so payloads are discarded; the loop
// exists to detect disconnects and answer pings.
func (s *Session) ReadPump() {
	defer s.close()

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("notification: session for hospital %d closed unexpectedly: %v", s.hospitalID, err)
			}
			return
		}
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
	}
}

// WritePump forwards queued payloads to the client and keeps the
// connection alive with periodic pings. A transport error ends the
// session; queued messages for it are discarded, siblings are unaffected.
func (s *Session) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.close()
	}()

	for {
		select {
		case payload := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-s.done:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
