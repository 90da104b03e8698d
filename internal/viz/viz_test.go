package viz

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/session"
)

func TestViridisEndpoints(t *testing.T) {
	tests := []struct {
		t    float64
		want string
	}{
		{-1, "#440154"},
		{0, "#440154"},
		{1, "#fde725"},
		{2, "#fde725"},
	}
	for _, tt := range tests {
		if got := Viridis(tt.t).Hex(); got != tt.want {
			t.Errorf("Viridis(%v) = %s, want %s", tt.t, got, tt.want)
		}
	}
}

func TestViridisLightens(t *testing.T) {
	prev := -1.0
	for i := 0; i <= 20; i++ {
		l, _, _ := Viridis(float64(i) / 20).Lab()
		if l < prev {
			t.Errorf("lightness dropped at step %d: %v < %v", i, l, prev)
		}
		prev = l
	}
}

func TestSurfacePaint(t *testing.T) {
	s := NewSurface(4, 2, 3)
	if b := s.Image().Bounds(); b.Dx() != 12 || b.Dy() != 6 {
		t.Fatalf("expected 12x6 image, got %v", b)
	}

	s.Paint(1, 2, 4, 4)
	want := RGBA(Viridis(1))
	for y := 3; y < 6; y++ {
		for x := 6; x < 9; x++ {
			if got := s.Image().RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if got := s.Image().RGBAAt(5, 3); got == want {
		t.Error("paint leaked into neighbouring cell")
	}
	if s.Key(1, 2) != 1 {
		t.Errorf("expected key 1, got %v", s.Key(1, 2))
	}
}

func TestSurfaceResizeZoom(t *testing.T) {
	s := NewSurface(4, 2, 1)
	s.Resize(5, 3, 2)
	if s.Zoom() != 2 {
		t.Errorf("expected zoom 2, got %d", s.Zoom())
	}
	if b := s.Snapshot(0).Image.Bounds(); b.Dx() != 10 || b.Dy() != 6 {
		t.Errorf("expected 10x6 snapshot, got %v", b)
	}
	s.Resize(5, 3, 0)
	if s.Zoom() != 1 {
		t.Errorf("expected zoom clamped to 1, got %d", s.Zoom())
	}
}

func TestModelZoomChangeRescalesSurface(t *testing.T) {
	m := newTestModel(t)
	cfg := m.cfg
	cfg.Zoom = 4
	m.reconfigure(cfg)
	if m.err != nil {
		t.Fatalf("reconfigure: %v", m.err)
	}
	if m.surface.Zoom() != 4 {
		t.Errorf("expected surface zoom 4, got %d", m.surface.Zoom())
	}
	if b := m.surface.Image().Bounds(); b.Dx() != cfg.Width*4 {
		t.Errorf("expected width %d, got %d", cfg.Width*4, b.Dx())
	}
}

func TestSurfaceIgnoresOutOfRange(t *testing.T) {
	s := NewSurface(2, 1, 1)
	s.Paint(5, 0, 1, 2)
	s.Paint(0, -1, 1, 2)
	s.Paint(0, 0, 1, 0)
	if s.Key(0, 0) != 0 {
		t.Error("zero row width must be ignored")
	}
}

func TestSurfaceSnapshotIsCopy(t *testing.T) {
	s := NewSurface(2, 1, 1)
	s.Paint(0, 0, 0, 2)
	snap := s.Snapshot(7)
	before := snap.Image.RGBAAt(0, 0)

	s.Paint(0, 0, 2, 2)
	if snap.Tick != 7 {
		t.Errorf("expected tick 7, got %d", snap.Tick)
	}
	if snap.Image.RGBAAt(0, 0) != before {
		t.Error("snapshot changed after paint")
	}
}

func TestSurfaceRender(t *testing.T) {
	s := NewSurface(10, 5, 1)
	out := s.Render(0)
	if lines := strings.Count(out, "\n"); lines != 3 {
		t.Errorf("expected 3 lines for 5 rows, got %d", lines)
	}
	if got := strings.Count(s.Render(4), "▀"); got != 12 {
		t.Errorf("expected 12 sampled cells, got %d", got)
	}
}

func TestThemeCycle(t *testing.T) {
	defer SetTheme("viridis")
	SetTheme("viridis")
	NextTheme()
	if CurrentTheme.Name != "minimal" {
		t.Errorf("expected minimal, got %s", CurrentTheme.Name)
	}
	SetTheme("unknown")
	if CurrentTheme.Name != "viridis" {
		t.Errorf("expected fallback to viridis, got %s", CurrentTheme.Name)
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := *config.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Zoom, cfg.Seed = 16, 4, 1, 3
	surface := NewSurface(cfg.Width, cfg.Height, cfg.Zoom)
	s, err := session.New(cfg, session.WithRenderer(surface), session.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	return NewModel(s, surface, t.TempDir())
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelStartAndDrain(t *testing.T) {
	m := newTestModel(t)
	m = update(m, key(" "))
	if !m.session.Busy() {
		t.Fatal("space should start the session")
	}

	for i := 0; i < 10000 && m.session.Busy(); i++ {
		m = update(m, TickMsg(time.Now()))
	}
	if m.session.Busy() {
		t.Fatal("replay did not drain")
	}
	if !strings.HasPrefix(m.status, "done") {
		t.Errorf("unexpected status %q", m.status)
	}
	if len(m.pending) == 0 {
		t.Error("pending history not recorded")
	}
	if m.View() == "" {
		t.Error("empty view")
	}
}

func TestModelSpaceStops(t *testing.T) {
	m := newTestModel(t)
	m = update(m, key(" "))
	m = update(m, key(" "))
	if m.session.Busy() {
		t.Error("second space should stop")
	}
	if m.status != "stopped" {
		t.Errorf("expected stopped, got %q", m.status)
	}
}

func TestModelCyclesAlgorithm(t *testing.T) {
	m := newTestModel(t)
	m = update(m, key("a"))
	if m.cfg.Algorithm != "Insertion sort" {
		t.Errorf("expected Insertion sort, got %s", m.cfg.Algorithm)
	}
	m = update(m, key("A"))
	m = update(m, key("A"))
	if m.cfg.Algorithm != "Radix sort" {
		t.Errorf("expected wrap to Radix sort, got %s", m.cfg.Algorithm)
	}
	if m.session.Config().Algorithm != m.cfg.Algorithm {
		t.Error("session not reconfigured")
	}
}

func TestModelRefusesChangesWhileSorting(t *testing.T) {
	m := newTestModel(t)
	m = update(m, key(" "))
	m = update(m, key("a"))
	if m.err == nil {
		t.Error("expected busy error")
	}
	if m.cfg.Algorithm != "Bubble sort" {
		t.Errorf("algorithm changed mid-sort: %s", m.cfg.Algorithm)
	}
}

func TestModelSpeedAndPivot(t *testing.T) {
	m := newTestModel(t)
	m = update(m, key("+"))
	m = update(m, key("+"))
	if m.cfg.Speed != 4 {
		t.Errorf("expected speed 4, got %d", m.cfg.Speed)
	}
	for i := 0; i < 5; i++ {
		m = update(m, key("-"))
	}
	if m.cfg.Speed != 1 {
		t.Errorf("speed must not drop below 1, got %d", m.cfg.Speed)
	}

	m = update(m, key("p"))
	if m.cfg.Pivot != "Middle" {
		t.Errorf("expected Middle, got %s", m.cfg.Pivot)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestModelSaveFilmstrip(t *testing.T) {
	m := newTestModel(t)
	m = update(m, key("f"))
	if m.status != "nothing captured yet" {
		t.Errorf("unexpected status %q", m.status)
	}

	m = update(m, key(" "))
	for i := 0; i < 10000 && m.session.Busy(); i++ {
		m = update(m, TickMsg(time.Now()))
	}
	m = update(m, key("f"))
	if m.err != nil {
		t.Fatalf("save failed: %v", m.err)
	}
	if !strings.HasPrefix(m.status, "saved") {
		t.Errorf("unexpected status %q", m.status)
	}
}
