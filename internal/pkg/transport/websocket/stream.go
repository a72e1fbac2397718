package websocket

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// stream is the default implementation of the Stream interface.
// A single goroutine reads the connection; Close is the only writer after the
// subscription is established.
type stream struct {
	conn            *websocket.Conn
	id              string
	responseTimeout time.Duration

	notifications chan json.RawMessage
	closing       atomic.Bool
	closed        chan struct{}
	done          chan struct{}
	closeOnce     sync.Once

	mu  sync.Mutex
	err error
}

// Compile-time assertion that stream implements the Stream interface.
var _ Stream = (*stream)(nil)

func newStream(conn *websocket.Conn, id string, cfg config) *stream {
	return &stream{
		conn:            conn,
		id:              id,
		responseTimeout: cfg.responseTimeout,
		notifications:   make(chan json.RawMessage, cfg.bufferSize),
		closed:          make(chan struct{}),
		done:            make(chan struct{}),
	}
}

// Notifications implements the Stream interface.
func (s *stream) Notifications() <-chan json.RawMessage {
	return s.notifications
}

// Err implements the Stream interface.
func (s *stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// Close implements the Stream interface.
// eth_unsubscribe is sent on a best-effort basis; the connection is closed either way.
func (s *stream) Close() {
	s.closeOnce.Do(func() {
		s.closing.Store(true)
		close(s.closed)

		_ = s.conn.SetWriteDeadline(time.Now().Add(s.responseTimeout))
		_ = s.conn.WriteJSON(newRequest(unsubscribeMethod, s.id))
		_ = s.conn.Close()
	})

	<-s.done
}

// readLoop delivers notifications for this subscription until the connection fails
// or the stream is closed. It owns the notifications channel.
func (s *stream) readLoop() {
	defer close(s.done)
	defer close(s.notifications)

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if !s.closing.Load() {
				s.setErr(err)
				_ = s.conn.Close()
			}
			return
		}

		var n notification
		if err := json.Unmarshal(data, &n); err != nil {
			continue
		}

		if n.Method != notificationMethod || n.Params.Subscription != s.id {
			continue
		}

		select {
		case s.notifications <- n.Params.Result:
		case <-s.closed:
			return
		}
	}
}

func (s *stream) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = err
}
