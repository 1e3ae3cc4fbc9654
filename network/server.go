package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/projectile/engine"
	"github.com/lixenwraith/projectile/physics"
	"github.com/lixenwraith/projectile/status"
)

// Metric names reported by /status
const (
	MetricSessionsActive   = "sessions.active"
	MetricSessionsTotal    = "sessions.total"
	MetricFramesSent       = "frames.sent"
	MetricLaunchesApplied  = "launches.applied"
	MetricMessagesRejected = "messages.rejected"
	MetricRangeMax         = "range.max"
)

// Server streams one live simulation per websocket connection
type Server struct {
	config   *Config
	logger   *log.Logger
	upgrader websocket.Upgrader
	metrics  *status.Registry

	// Cached metric pointers
	active   *atomic.Int64
	total    *atomic.Int64
	frames   *atomic.Int64
	applied  *atomic.Int64
	rejected *atomic.Int64
	rangeMax *status.AtomicFloat
}

// NewServer creates a server; nil config or logger fall back to defaults
func NewServer(cfg *Config, logger *log.Logger) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = log.Default()
	}

	metrics := status.NewRegistry()
	return &Server{
		config: cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		metrics:  metrics,
		active:   metrics.Counter(MetricSessionsActive),
		total:    metrics.Counter(MetricSessionsTotal),
		frames:   metrics.Counter(MetricFramesSent),
		applied:  metrics.Counter(MetricLaunchesApplied),
		rejected: metrics.Counter(MetricMessagesRejected),
		rangeMax: metrics.Gauge(MetricRangeMax),
	}
}

// Metrics returns the server metrics registry
func (s *Server) Metrics() *status.Registry {
	return s.metrics
}

// Active returns the number of open sessions
func (s *Server) Active() int {
	return int(s.active.Load())
}

// Handler routes the websocket endpoint and the plain HTTP helpers
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.HandleStream)
	mux.HandleFunc("/trajectory", s.HandleTrajectory)
	mux.HandleFunc("/status", s.HandleStatus)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	return mux
}

// ListenAndServe serves until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Printf("listening on %s", s.config.Address)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve %s: %w", s.config.Address, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// HandleStatus reports the metrics snapshot as JSON
func (s *Server) HandleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.metrics.Snapshot()); err != nil {
		s.logger.Printf("failed to write status: %v", err)
	}
}

// HandleTrajectory answers GET /trajectory?speed=&angle= with the analytical path
// Missing parameters use the configured launch
func (s *Server) HandleTrajectory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var msg ClientMessage
	query := r.URL.Query()
	for key, dst := range map[string]**float64{"speed": &msg.Speed, "angle": &msg.AngleDeg} {
		raw := query.Get(key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid %s: %v", key, err), http.StatusBadRequest)
			return
		}
		*dst = &v
	}

	l, err := s.launch(msg, s.config.Launch)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(NewTrajectoryMessage(l, l.Trajectory(s.config.TimeStep))); err != nil {
		s.logger.Printf("failed to write trajectory: %v", err)
	}
}

// launch merges msg into current and enforces the server speed limit
func (s *Server) launch(msg ClientMessage, current physics.Launch) (physics.Launch, error) {
	l, err := msg.Launch(current)
	if err != nil {
		return current, err
	}
	if limit := s.config.MaxSpeed; limit > 0 && l.Speed > limit {
		return current, fmt.Errorf("%w: speed %v exceeds %v", ErrInvalidLaunch, l.Speed, limit)
	}
	return l, nil
}

// HandleStream upgrades the request and runs a session until either side hangs up
func (s *Server) HandleStream(w http.ResponseWriter, r *http.Request) {
	if limit := s.config.MaxSessions; limit > 0 && s.Active() >= limit {
		http.Error(w, "too many sessions", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("upgrade failed: %v", err)
		return
	}

	s.active.Add(1)
	s.total.Add(1)
	defer s.active.Add(-1)
	s.rangeMax.Max(s.config.Launch.RangeDistance())

	c := newConnection(s, conn)
	if err := c.run(r.Context()); err != nil {
		s.logger.Printf("session %s ended: %v", c.id, err)
	}
}

// connection binds one websocket to one session and its driver
// All writes happen on the driver goroutine
type connection struct {
	id      string
	server  *Server
	conn    *websocket.Conn
	session *engine.Session
	clock   *engine.PausableClock
	driver  *engine.Driver
	seq     uint64
}

func newConnection(s *Server, conn *websocket.Conn) *connection {
	session := engine.NewSession(s.config.Launch, s.config.TimeStep)
	clock := engine.NewPausableClock(nil)
	return &connection{
		id:      uuid.NewString(),
		server:  s,
		conn:    conn,
		session: session,
		clock:   clock,
		driver:  engine.NewDriver(session, clock),
	}
}

func (c *connection) run(parent context.Context) error {
	defer c.conn.Close()

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	frameRate := 0.0
	if c.server.config.FrameInterval > 0 {
		frameRate = float64(time.Second) / float64(c.server.config.FrameInterval)
	}
	hello := HelloMessage{
		Type:      MsgHello,
		Session:   c.id,
		TimeStep:  c.session.TimeStep(),
		FrameRate: frameRate,
	}
	if err := c.writeJSON(hello); err != nil {
		return err
	}
	if err := c.writeTrajectory(); err != nil {
		return err
	}
	c.server.logger.Printf("session %s started", c.id)

	c.conn.SetReadLimit(c.server.config.ReadLimit)
	go c.readLoop(cancel)

	var writeErr error
	err := c.driver.Run(ctx, c.server.config.FrameInterval, func(s *engine.Session) {
		if writeErr != nil {
			return
		}
		c.seq++
		frame := FrameMessage{
			Type:    MsgFrame,
			Seq:     c.seq,
			Elapsed: s.Elapsed(),
			State:   s.State(),
			Landed:  s.Landed(),
			Paused:  c.clock.IsPaused(),
		}
		if writeErr = c.writeJSON(frame); writeErr != nil {
			cancel()
			return
		}
		c.server.frames.Add(1)
	})
	if writeErr != nil {
		return writeErr
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// readLoop decodes client messages and queues them as driver commands
func (c *connection) readLoop(cancel context.CancelFunc) {
	defer cancel()
	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		cmd := c.command(payload)
		if !c.driver.Submit(cmd) {
			c.server.logger.Printf("session %s: command queue full, dropping message", c.id)
		}
	}
}

// command turns a raw client message into work for the driver goroutine
func (c *connection) command(payload []byte) engine.Command {
	msg, err := DecodeClient(payload)
	if err != nil {
		return c.reject(err)
	}

	switch msg.Type {
	case MsgApply:
		return func(s *engine.Session) {
			l, err := c.server.launch(msg, s.Launch())
			if err != nil {
				c.reject(err)(s)
				return
			}
			s.Apply(l)
			c.driver.Rebase()
			c.server.applied.Add(1)
			c.server.rangeMax.Max(l.RangeDistance())
			c.writeTrajectory()
		}
	case MsgReplay:
		return func(s *engine.Session) {
			s.Replay()
			c.driver.Rebase()
		}
	case MsgPause:
		return func(*engine.Session) {
			c.clock.Pause()
		}
	default: // MsgResume
		return func(*engine.Session) {
			c.clock.Resume()
		}
	}
}

func (c *connection) reject(err error) engine.Command {
	c.server.logger.Printf("session %s: rejected message: %v", c.id, err)
	c.server.rejected.Add(1)
	return func(*engine.Session) {
		c.writeJSON(ErrorMessage{Type: MsgError, Message: err.Error()})
	}
}

func (c *connection) writeTrajectory() error {
	return c.writeJSON(NewTrajectoryMessage(c.session.Launch(), c.session.Trajectory()))
}

func (c *connection) writeJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if timeout := c.server.config.WriteTimeout; timeout > 0 {
		c.conn.SetWriteDeadline(time.Now().Add(timeout))
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
