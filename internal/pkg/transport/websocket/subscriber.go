// Package websocket provides a JSON-RPC 2.0 subscription client over WebSocket.
// It implements the eth_subscribe / eth_unsubscribe handshake used by Ethereum
// nodes and delivers the raw result of every notification on a channel, leaving
// payload decoding to the caller.
package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ErrProviderReturnedError indicates that the node rejected the subscription request.
var ErrProviderReturnedError = errors.New("provider error")

const (
	subscribeMethod    = "eth_subscribe"
	unsubscribeMethod  = "eth_unsubscribe"
	notificationMethod = "eth_subscription"
)

// request is a JSON-RPC 2.0 request frame.
type request struct {
	JsonRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

func newRequest(method string, params ...any) request {
	if params == nil {
		params = []any{}
	}

	return request{
		JsonRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	}
}

// response is a JSON-RPC 2.0 response frame.
type response struct {
	ID    string `json:"id"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Result json.RawMessage `json:"result"`
}

// Err returns an error if the response includes a JSON-RPC error object.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// notification is a server-initiated subscription frame.
type notification struct {
	Method string `json:"method"`
	Params struct {
		Subscription string          `json:"subscription"`
		Result       json.RawMessage `json:"result"`
	} `json:"params"`
}

// Stream is an open subscription.
type Stream interface {
	// Notifications returns the channel on which notification results are delivered in
	// the order the node sent them. It is closed when the stream ends.
	Notifications() <-chan json.RawMessage

	// Err returns the error that ended the stream, or nil while it is running or when it
	// was ended through Close or context cancellation.
	Err() error

	// Close unsubscribes, closes the connection and waits for the stream to end.
	// It is safe to call more than once.
	Close()
}

// Subscriber opens JSON-RPC subscriptions.
type Subscriber interface {
	// Subscribe dials the node, sends eth_subscribe with params and waits for the
	// subscription ID. The stream is closed when ctx is canceled.
	Subscribe(ctx context.Context, params ...any) (Stream, error)
}

// config holds internal settings for the subscriber.
type config struct {
	handshakeTimeout time.Duration // maximum duration of the WebSocket handshake
	responseTimeout  time.Duration // maximum wait for the subscription response
	bufferSize       int           // notifications buffered before the reader blocks
}

// Option defines a functional option for configuring the subscriber.
type Option func(*config)

// WithHandshakeTimeout sets the maximum duration of the WebSocket handshake.
// Default: 10 seconds.
func WithHandshakeTimeout(d time.Duration) Option {
	return func(c *config) {
		c.handshakeTimeout = d
	}
}

// WithResponseTimeout sets how long Subscribe waits for the node to confirm the
// subscription, and how long Close waits to send eth_unsubscribe.
// Default: 10 seconds.
func WithResponseTimeout(d time.Duration) Option {
	return func(c *config) {
		c.responseTimeout = d
	}
}

// WithBufferSize sets how many notifications are buffered before the connection
// reader waits for the consumer.
// Default: 64.
func WithBufferSize(n int) Option {
	return func(c *config) {
		c.bufferSize = n
	}
}

// subscriber is the default implementation of the Subscriber interface.
type subscriber struct {
	endpoint string
	dialer   *websocket.Dialer
	cfg      config
}

// Compile-time assertion that subscriber implements the Subscriber interface.
var _ Subscriber = (*subscriber)(nil)

// Subscribe implements the Subscriber interface.
func (s *subscriber) Subscribe(ctx context.Context, params ...any) (Stream, error) {
	conn, _, err := s.dialer.DialContext(ctx, s.endpoint, nil)
	if err != nil {
		return nil, err
	}

	id, err := s.subscribe(conn, params)
	if err != nil {
		conn.Close()
		return nil, err
	}

	st := newStream(conn, id, s.cfg)
	go st.readLoop()
	go func() {
		select {
		case <-ctx.Done():
			st.Close()
		case <-st.done:
		}
	}()

	return st, nil
}

// subscribe performs the eth_subscribe exchange and returns the subscription ID.
func (s *subscriber) subscribe(conn *websocket.Conn, params []any) (string, error) {
	req := newRequest(subscribeMethod, params...)

	if err := conn.SetWriteDeadline(time.Now().Add(s.cfg.responseTimeout)); err != nil {
		return "", err
	}
	if err := conn.WriteJSON(req); err != nil {
		return "", err
	}

	if err := conn.SetReadDeadline(time.Now().Add(s.cfg.responseTimeout)); err != nil {
		return "", err
	}
	defer conn.SetReadDeadline(time.Time{})

	for {
		var res response
		if err := conn.ReadJSON(&res); err != nil {
			return "", err
		}

		// Frames for other requests or early notifications are skipped.
		if res.ID != req.ID {
			continue
		}

		if err := res.Err(); err != nil {
			return "", err
		}

		var id string
		if err := json.Unmarshal(res.Result, &id); err != nil {
			return "", fmt.Errorf("invalid subscription id: %w", err)
		}
		return id, nil
	}
}

// NewSubscriber returns a Subscriber for the WebSocket endpoint (ws:// or wss://).
//
// Default configuration:
//   - handshakeTimeout: 10 seconds
//   - responseTimeout:  10 seconds
//   - bufferSize:       64
func NewSubscriber(endpoint string, opts ...Option) *subscriber {
	cfg := config{
		handshakeTimeout: 10 * time.Second,
		responseTimeout:  10 * time.Second,
		bufferSize:       64,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &subscriber{
		endpoint: endpoint,
		dialer: &websocket.Dialer{
			Proxy:            websocket.DefaultDialer.Proxy,
			HandshakeTimeout: cfg.handshakeTimeout,
		},
		cfg: cfg,
	}
}
