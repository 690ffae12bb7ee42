package stats

import (
	"sync"
	"time"
)

// Snapshot is a copy of the render statistics, safe to hand to other
// goroutines.
type Snapshot struct {
	Frames         uint64  `json:"frames"`
	FPS            uint64  `json:"fps"`
	Uptime         float64 `json:"uptime"`
	LastFrameMs    float64 `json:"last_frame_ms"`
	ViewportWidth  int     `json:"viewport_width"`
	ViewportHeight int     `json:"viewport_height"`
	UploadedBytes  uint64  `json:"uploaded_bytes"`
	WsClients      int     `json:"ws_clients"`
}

// Stats is written by the render thread and read by the API goroutines.
type Stats struct {
	Snapshot

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time
	now          func() time.Time

	mu sync.Mutex
}

func New() *Stats {
	s := &Stats{now: time.Now}
	s.start = s.now()
	s.frameTimer = s.start
	return s
}

// FrameDone records a presented frame that took dt since the previous one.
func (s *Stats) FrameDone(dt time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.Frames++
	s.frameCounter++
	if now.Sub(s.frameTimer) >= time.Second {
		s.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = now
	}

	s.LastFrameMs = float64(dt.Microseconds()) / 1e3
	s.Uptime = now.Sub(s.start).Seconds()
}

func (s *Stats) Uploaded(bytes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UploadedBytes += uint64(bytes)
}

func (s *Stats) SetViewport(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ViewportWidth = width
	s.ViewportHeight = height
}

func (s *Stats) AddWsClients(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.WsClients += delta
}

func (s *Stats) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Snapshot
}
