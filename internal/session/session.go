// Package session ties the pieces of a sorting animation together: it owns
// the rows, shuffles them with the biased source, records a sort pass and
// drains the recorded traces tick by tick into a Renderer while sampling
// captures for the filmstrip.
package session

import (
	"context"
	"image"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/sortviz/internal/capture"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/random"
	"github.com/san-kum/sortviz/internal/sorts"
	"github.com/san-kum/sortviz/internal/trace"
)

// Renderer is the drawing surface a session paints into.
type Renderer interface {
	// Paint colours one cell; value/rowWidth is the normalised colour key.
	Paint(row, col int, value float64, rowWidth int)
	// Snapshot copies the current surface.
	Snapshot(tick int) capture.Capture
}

// Sizer is implemented by renderers that need to follow the row grid and
// its pixel scale.
type Sizer interface {
	Resize(width, height, zoom int)
}

type Option func(*Session)

func WithRenderer(r Renderer) Option {
	return func(s *Session) { s.renderer = r }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithSource replaces the uniform source the biased draws are built on.
func WithSource(src random.Source) Option {
	return func(s *Session) { s.src = src }
}

type Session struct {
	cfg      config.Config
	src      random.Source
	biased   *random.Biased
	renderer Renderer
	logger   *log.Logger

	rows     [][]float64
	sorted   [][]float64
	engine   *trace.Engine
	sampler  *capture.Sampler
	captures []capture.Capture
	busy     bool

	strategy sorts.Strategy
	stats    Stats
	started  time.Time
}

// New validates cfg and builds an idle session with freshly generated rows.
// The session keeps its own copy of cfg.
func New(cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.src == nil {
		s.src = random.NewSource(cfg.Seed)
	}
	biased, err := random.NewBiased(s.src, cfg.Distribution.Alpha, cfg.Distribution.Beta)
	if err != nil {
		return nil, err
	}
	s.biased = biased
	s.generate()
	return s, nil
}

func (s *Session) Config() config.Config { return s.cfg }

func (s *Session) Busy() bool { return s.busy }

// Rows returns the buffers currently shown: the replay rows while a sort is
// being drained, the session rows otherwise.
func (s *Session) Rows() [][]float64 { return s.rows }

// Sorted returns the working rows of the last sort pass, i.e. the state the
// replay converges to. It is nil before the first Start.
func (s *Session) Sorted() [][]float64 { return s.sorted }

func (s *Session) Engine() *trace.Engine { return s.engine }

func (s *Session) Captures() []capture.Capture { return s.captures }

// Filmstrip assembles the captures taken so far.
func (s *Session) Filmstrip() *image.RGBA {
	return capture.Filmstrip(s.captures, s.cfg.Captures, s.cfg.Zoom)
}

func (s *Session) Stats() Stats { return s.stats }

// Reconfigure swaps in a new configuration between sorts. Rows are
// regenerated when their shape or generate policy changes.
func (s *Session) Reconfigure(cfg config.Config) error {
	if s.busy {
		return ErrBusy
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Distribution != s.cfg.Distribution {
		biased, err := random.NewBiased(s.src, cfg.Distribution.Alpha, cfg.Distribution.Beta)
		if err != nil {
			return err
		}
		s.biased = biased
	}
	regen := cfg.Width != s.cfg.Width || cfg.Height != s.cfg.Height ||
		cfg.Generate != s.cfg.Generate || cfg.Zoom != s.cfg.Zoom
	s.cfg = cfg
	if regen {
		s.generate()
	}
	return nil
}

// Resize changes the row grid and regenerates the rows. It is ignored while
// a sort is being drained.
func (s *Session) Resize(width, height int) error {
	cfg := s.cfg
	cfg.Width, cfg.Height = width, height
	return s.Reconfigure(cfg)
}

// generate rebuilds the rows. Captures of the previous grid are dropped
// since they no longer match its shape or scale.
func (s *Session) generate() {
	s.rows = make([][]float64, s.cfg.Height)
	for y := range s.rows {
		s.rows[y] = s.cfg.Row()
	}
	s.captures = nil
	if sz, ok := s.renderer.(Sizer); ok {
		sz.Resize(s.cfg.Width, s.cfg.Height, s.cfg.Zoom)
	}
	s.draw()
}

// Shuffle permutes every row with the biased source. No-op while busy.
func (s *Session) Shuffle() {
	if s.busy {
		return
	}
	for _, row := range s.rows {
		random.Shuffle(s.biased, row, 0, len(row))
	}
	s.draw()
}

// Start shuffles, runs the sort pass synchronously over every row and
// prepares the replay. Calling Start while busy does nothing.
func (s *Session) Start() error {
	if s.busy {
		return nil
	}
	if len(s.rows) == 0 {
		return ErrNoRows
	}

	p := s.cfg.Params()
	p.Random = s.biased
	strategy, err := sorts.New(s.cfg.Algorithm, p)
	if err != nil {
		return err
	}

	s.Shuffle()
	s.captures = nil
	s.snapshot(0)

	rec := trace.NewRecorder(s.rows)
	for y := range s.rows {
		if err := strategy.Sort(rec, y, 0, len(s.rows[y])-1); err != nil {
			// the recorder owns the working rows; put the shuffled copy back
			for i := range s.rows {
				s.rows[i] = rec.Pristine(i)
			}
			return &RowError{Row: y, Algorithm: strategy.Name(), Err: err}
		}
	}

	s.sorted = s.rows
	s.engine = rec.Finish()
	s.rows = s.engine.Rows()
	s.sampler = capture.NewSampler(s.cfg.Captures, s.engine.TotalFrames())
	s.strategy = strategy
	s.stats = newStats(strategy, s.cfg, rec)
	s.started = time.Now()
	s.busy = true

	s.logger.Info("sort started",
		"algorithm", strategy.Name(),
		"rows", len(s.rows),
		"width", s.cfg.Width,
		"frames", s.engine.TotalFrames())
	return nil
}

// Frame advances the replay by up to speed ticks. It reports true once the
// session is idle, either because the replay drained or Stop was called.
func (s *Session) Frame() (bool, error) {
	if !s.busy {
		return true, nil
	}
	for i := 0; i < s.cfg.Speed; i++ {
		done, err := s.engine.Step(s.paint)
		if err != nil {
			s.Stop()
			return true, err
		}
		if s.sampler.Due(s.engine.Tick()) {
			s.snapshot(s.engine.Tick())
		}
		if done {
			s.Stop()
			return true, nil
		}
	}
	return false, nil
}

// Stop ends the replay. The rows keep whatever state the replay reached.
func (s *Session) Stop() {
	if !s.busy {
		return
	}
	s.busy = false
	s.stats.Ticks = s.engine.Tick()
	s.stats.Captures = len(s.captures)
	s.stats.Completed = s.engine.Finished()
	s.stats.Elapsed = time.Since(s.started)

	s.logger.Info("sort stopped",
		"algorithm", s.strategy.Name(),
		"ticks", s.stats.Ticks,
		"completed", s.stats.Completed,
		"captures", s.stats.Captures)
}

// Run starts a sort and drains it without pacing, checking ctx between
// frames.
func (s *Session) Run(ctx context.Context) error {
	if s.busy {
		return ErrBusy
	}
	if err := s.Start(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			s.Stop()
			return ctx.Err()
		default:
		}
		done, err := s.Frame()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (s *Session) paint(row, col int, value float64, width int) {
	if s.renderer != nil {
		s.renderer.Paint(row, col, value, width)
	}
}

func (s *Session) draw() {
	if s.renderer == nil {
		return
	}
	for y, row := range s.rows {
		for x, v := range row {
			s.renderer.Paint(y, x, v, len(row))
		}
	}
}

func (s *Session) snapshot(tick int) {
	if s.renderer == nil {
		return
	}
	s.captures = append(s.captures, s.renderer.Snapshot(tick))
	s.logger.Debug("captured", "tick", tick, "count", len(s.captures))
}
