package viz

import (
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorts"
)

const (
	fps             = 60
	historyCapacity = 300
	maxSpeed        = 1 << 12
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model is the interactive controller: it owns the configuration, feeds
// changes to the session between sorts and calls Frame on every tick.
type Model struct {
	session *session.Session
	surface *Surface
	cfg     config.Config

	pending  []float64
	frame    int
	status   string
	err      error
	showHelp bool
	termW    int
	outDir   string
}

// NewModel wraps a session whose renderer is surface. Filmstrips saved with
// F go to outDir.
func NewModel(s *session.Session, surface *Surface, outDir string) Model {
	return Model{
		session: s,
		surface: surface,
		cfg:     s.Config(),
		pending: make([]float64, 0, historyCapacity),
		status:  "ready",
		outDir:  outDir,
	}
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termW = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.session.Stop()
			return m, tea.Quit
		case " ":
			m.toggle()
		case "s":
			m.session.Shuffle()
			m.status = "shuffled"
		case "a":
			m.cycleAlgorithm(1)
		case "A":
			m.cycleAlgorithm(-1)
		case "p":
			m.cyclePivot()
		case "+", "=":
			m.setSpeed(m.cfg.Speed * 2)
		case "-", "_":
			m.setSpeed(m.cfg.Speed / 2)
		case "t":
			NextTheme()
		case "f":
			m.saveFilmstrip()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		m.frame++
		if m.session.Busy() {
			done, err := m.session.Frame()
			m.recordPending()
			if err != nil {
				m.err = err
			}
			if done {
				m.status = fmt.Sprintf("done in %d ticks", m.session.Stats().Ticks)
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) toggle() {
	if m.session.Busy() {
		m.session.Stop()
		m.status = "stopped"
		return
	}
	m.err = nil
	m.pending = m.pending[:0]
	if err := m.session.Start(); err != nil {
		m.err = err
		return
	}
	m.status = "sorting"
	m.recordPending()
}

// reconfigure pushes cfg to the session. Changes are refused mid-sort.
func (m *Model) reconfigure(cfg config.Config) {
	if err := m.session.Reconfigure(cfg); err != nil {
		m.err = err
		return
	}
	m.cfg = cfg
	m.err = nil
}

func (m *Model) cycleAlgorithm(dir int) {
	names := sorts.List()
	i := slices.Index(names, strings.ToLower(m.cfg.Algorithm))
	if i < 0 {
		for j, n := range names {
			if sorts.Title(n) == sorts.Title(m.cfg.Algorithm) {
				i = j
			}
		}
	}
	cfg := m.cfg
	cfg.Algorithm = sorts.Title(names[(i+dir+len(names))%len(names)])
	m.reconfigure(cfg)
}

func (m *Model) cyclePivot() {
	i := slices.Index(sorts.Pivots, sorts.PivotPolicy(m.cfg.Pivot))
	cfg := m.cfg
	cfg.Pivot = string(sorts.Pivots[(i+1)%len(sorts.Pivots)])
	m.reconfigure(cfg)
}

func (m *Model) setSpeed(speed int) {
	cfg := m.cfg
	cfg.Speed = min(max(speed, 1), maxSpeed)
	m.reconfigure(cfg)
}

func (m *Model) recordPending() {
	eng := m.session.Engine()
	if eng == nil {
		return
	}
	m.pending = append(m.pending, float64(eng.Pending()))
	if len(m.pending) > historyCapacity {
		m.pending = m.pending[1:]
	}
}

func (m *Model) saveFilmstrip() {
	caps := m.session.Captures()
	if len(caps) == 0 {
		m.status = "nothing captured yet"
		return
	}
	base := fmt.Sprintf("%s/sortviz-%s", m.outDir, strings.ReplaceAll(strings.ToLower(m.cfg.Algorithm), " ", "-"))
	if err := export.SavePNG(base+".png", m.session.Filmstrip()); err != nil {
		m.err = err
		return
	}
	if err := export.SaveGIF(base+".gif", caps, export.DefaultDelay); err != nil {
		m.err = err
		return
	}
	m.status = "saved " + base + ".png"
}

func (m Model) View() string {
	st := themeStyles(CurrentTheme)

	maxCols := 0
	if m.termW > 60 {
		maxCols = m.termW - 50
	}
	surfaceView := lipgloss.NewStyle().Padding(1, 2).Render(m.surface.Render(maxCols))

	var s strings.Builder
	s.WriteString(st.header.Render(strings.ToUpper(sorts.Title(m.cfg.Algorithm))) + "\n")

	switch {
	case m.err != nil:
		s.WriteString(st.err.Render("ERROR "+m.err.Error()) + "\n\n")
	case m.session.Busy():
		s.WriteString(st.running.Render(AnimatedSpinner(m.frame)+" SORTING") + "\n\n")
	default:
		s.WriteString(st.idle.Render(strings.ToUpper(m.status)) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Rows", fmt.Sprintf("%d × %d", m.cfg.Height, m.cfg.Width))
	row("Speed", fmt.Sprintf("%d ticks/frame", m.cfg.Speed))
	switch sorts.Uses(m.cfg.Algorithm) {
	case "pivot":
		s.WriteString(st.label.Render("Pivot") + st.active.Render(m.cfg.Pivot) + "\n")
	case "shrink_factor":
		row("Shrink", fmt.Sprintf("%.2f", m.cfg.ShrinkFactor))
	case "base":
		row("Base", fmt.Sprintf("%d", m.cfg.Base))
	}
	row("Shape", fmt.Sprintf("α=%.2f β=%.2f", m.cfg.Distribution.Alpha, m.cfg.Distribution.Beta))

	if eng := m.session.Engine(); eng != nil {
		total := eng.TotalFrames()
		row("Tick", fmt.Sprintf("%d / %d", eng.Tick(), total))
		progress := 1.0
		if total > 0 {
			progress = float64(eng.Tick()) / float64(total)
		}
		s.WriteString(ProgressBar(progress, 24) + "\n")
		row("Captures", fmt.Sprintf("%d / %d", len(m.session.Captures()), m.cfg.Captures))
	}

	if len(m.pending) > 1 {
		chart := asciigraph.Plot(m.pending, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Pending ops"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	s.WriteString(st.hint.Render(Separator(28) + "\nSP:Start/Stop S:Shuffle Q:Quit\nA:Algo P:Pivot +/-:Speed\nT:Theme F:Save ?:Help"))
	panel := st.panel.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, surfaceView, panel)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Start/stop sorting       ║
║  S        - Shuffle rows             ║
║  a / A    - Next/previous algorithm  ║
║  P        - Cycle pivot policy       ║
║  + / -    - Double/halve speed       ║
║  T        - Cycle themes             ║
║  F        - Save filmstrip and GIF   ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
