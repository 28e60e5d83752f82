// Package websocket accepts deposit notifications pushed by the external chain listener.
package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/byunyourim/BC-Adapter/internal/model"
)

// Path is where the listener is mounted.
const Path = "/ws/deposits"

var errInvalidFrame = errors.New("deposit frame without toAddress or txHash")

// Config bounds what one connection may send.
type Config struct {
	// FramesPerSecond and Burst configure the per-connection token bucket.
	FramesPerSecond float64
	Burst           int
	// MaxFrameBytes closes connections that send larger frames.
	MaxFrameBytes int64
}

func (c Config) withDefaults() Config {
	if c.FramesPerSecond <= 0 {
		c.FramesPerSecond = 100
	}
	if c.Burst <= 0 {
		c.Burst = 50
	}
	if c.MaxFrameBytes <= 0 {
		c.MaxFrameBytes = 64 << 10
	}
	return c
}

// Listener upgrades HTTP requests to websocket connections and forwards each
// JSON frame as a deposit event.
type Listener struct {
	handler  DepositHandler
	cfg      Config
	upgrader websocket.Upgrader
	logger   *zap.Logger

	mu     sync.Mutex
	conns  map[*websocket.Conn]struct{}
	closed bool
	wg     sync.WaitGroup
}

func NewListener(handler DepositHandler, cfg Config, logger *zap.Logger) (*Listener, error) {
	if handler == nil {
		return nil, errors.New("deposit handler is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Listener{
		handler: handler,
		cfg:     cfg.withDefaults(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: logger.Named("deposit_listener"),
		conns:  make(map[*websocket.Conn]struct{}),
	}, nil
}

func (l *Listener) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := l.upgrader.Upgrade(w, r, nil)
	if err != nil {
		l.logger.Warn("upgrade failed", zap.String("remote", r.RemoteAddr), zap.Error(err))
		return
	}
	if !l.track(conn) {
		_ = conn.Close()
		return
	}
	defer l.untrack(conn)

	// Hijacked connections outlive the request context.
	l.serve(context.WithoutCancel(r.Context()), conn)
}

func (l *Listener) serve(ctx context.Context, conn *websocket.Conn) {
	logger := l.logger.With(zap.String("remote", conn.RemoteAddr().String()))
	logger.Info("listener connected")

	conn.SetReadLimit(l.cfg.MaxFrameBytes)
	limiter := rate.NewLimiter(rate.Limit(l.cfg.FramesPerSecond), l.cfg.Burst)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("listener connection lost", zap.Error(err))
			}
			logger.Info("listener disconnected")
			return
		}
		// Slow readers push back on the sender instead of dropping deposits.
		if err := limiter.Wait(ctx); err != nil {
			logger.Warn("rate limiter", zap.Error(err))
			return
		}

		event, err := decodeFrame(data)
		if err != nil {
			logger.Warn("invalid deposit frame", zap.ByteString("frame", data), zap.Error(err))
			continue
		}
		l.handler.OnExternalDeposit(ctx, event)
	}
}

func decodeFrame(data []byte) (model.DepositEvent, error) {
	var event model.DepositEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return model.DepositEvent{}, err
	}
	if event.ToAddress == "" || event.TxHash == "" {
		return model.DepositEvent{}, errInvalidFrame
	}
	return event, nil
}

func (l *Listener) track(conn *websocket.Conn) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return false
	}
	l.conns[conn] = struct{}{}
	l.wg.Add(1)
	return true
}

func (l *Listener) untrack(conn *websocket.Conn) {
	l.mu.Lock()
	delete(l.conns, conn)
	l.mu.Unlock()
	_ = conn.Close()
	l.wg.Done()
}

// Close disconnects every listener and waits for in-flight frames to be handled.
func (l *Listener) Close() {
	l.mu.Lock()
	l.closed = true
	for conn := range l.conns {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"), deadline())
		_ = conn.Close()
	}
	l.mu.Unlock()
	l.wg.Wait()
}

func deadline() time.Time {
	return time.Now().Add(time.Second)
}
