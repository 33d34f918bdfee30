package ui

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/linuxmatters/templeforge/internal/manifest"
)

// Temple palette
var (
	sandLight  = lipgloss.Color("#EDC9AF")
	sandGold   = lipgloss.Color("#D4A24C")
	sandstone  = lipgloss.Color("#C2894B")
	shadowClay = lipgloss.Color("#8B5A2B")
	iceBlue    = lipgloss.Color("#B4D2F0")
)

// AssetStarted is sent before an asset is generated.
type AssetStarted struct {
	Index int
	Total int
	Entry manifest.Entry
}

// AssetWritten is sent once an asset is on disk.
type AssetWritten struct {
	Index   int
	Total   int
	Entry   manifest.Entry
	Bytes   int64
	Elapsed time.Duration
	Image   image.Image // Textures only
}

// GenerationComplete signals a successful run.
type GenerationComplete struct {
	Dir     string
	Summary manifest.Summary
}

// GenerationFailed signals a run that stopped early.
type GenerationFailed struct {
	Err error
}

// FromEvent converts a generator event into the matching UI message.
func FromEvent(ev manifest.Event) tea.Msg {
	if ev.Stage == manifest.Started {
		return AssetStarted{Index: ev.Index, Total: ev.Total, Entry: ev.Entry}
	}
	return AssetWritten{
		Index:   ev.Index,
		Total:   ev.Total,
		Entry:   ev.Entry,
		Bytes:   ev.Result.Bytes,
		Elapsed: ev.Elapsed,
		Image:   ev.Result.Image,
	}
}

// kindTiming accumulates time spent per asset kind.
type kindTiming struct {
	count   int
	elapsed time.Duration
}

// progressQuitMsg is sent when it's time to quit after showing completion
type progressQuitMsg struct{}

// Model is the Bubbletea model for a generation run.
type Model struct {
	progressBar progress.Model
	summaryBar  progress.Model

	current  AssetStarted
	written  int
	total    int
	bytes    int64
	recent   []string
	timings  map[manifest.Kind]*kindTiming
	complete *GenerationComplete
	failed   error

	startTime time.Time

	width           int
	noPreview       bool
	previewLabel    string
	cachedPreview   string
	completionDelay time.Duration
}

const recentLines = 5

// NewModel creates the progress UI. noPreview hides the texture preview.
func NewModel(noPreview bool) *Model {
	p := progress.New(
		progress.WithGradient(string(shadowClay), string(sandLight)),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	summaryBar := progress.New(
		progress.WithGradient(string(shadowClay), string(sandLight)),
		progress.WithWidth(24),
		progress.WithoutPercentage(),
	)

	return &Model{
		progressBar:     p,
		summaryBar:      summaryBar,
		timings:         make(map[manifest.Kind]*kindTiming),
		startTime:       time.Now(),
		completionDelay: time.Second,
		noPreview:       noPreview,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progressBar.Width = max(min(msg.Width-30, 50), 10)
		return m, nil

	case AssetStarted:
		m.current = msg
		m.total = msg.Total
		return m, nil

	case AssetWritten:
		m.written = msg.Index + 1
		m.total = msg.Total
		m.bytes += msg.Bytes

		t := m.timings[msg.Entry.Kind]
		if t == nil {
			t = &kindTiming{}
			m.timings[msg.Entry.Kind] = t
		}
		t.count++
		t.elapsed += msg.Elapsed

		m.recent = append(m.recent, fmt.Sprintf("%-22s %9s  %s", msg.Entry.Path, formatBytes(msg.Bytes), formatDuration(msg.Elapsed)))
		if len(m.recent) > recentLines {
			m.recent = m.recent[len(m.recent)-recentLines:]
		}

		if msg.Image != nil && !m.noPreview {
			m.previewLabel = msg.Entry.Path
			m.cachedPreview = RenderPreview(m.previewLabel, DownsampleImage(msg.Image, DefaultPreviewConfig()))
		}
		return m, nil

	case GenerationComplete:
		m.complete = &msg
		return m, tea.Tick(m.completionDelay, func(time.Time) tea.Msg {
			return progressQuitMsg{}
		})

	case GenerationFailed:
		m.failed = msg.Err
		return m, tea.Quit

	case progressQuitMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		if m.complete != nil || msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.complete != nil {
		return m.renderComplete()
	}
	return m.renderProgress()
}

// CompletionSummary returns the final summary for printing after the UI exits.
// Returns empty string if generation did not complete.
func (m *Model) CompletionSummary() string {
	if m.complete == nil {
		return ""
	}
	return m.renderComplete()
}

// Interrupted reports whether the UI stopped before generation finished.
func (m *Model) Interrupted() bool {
	return m.complete == nil && m.failed == nil
}

func (m *Model) title() string {
	return lipgloss.NewStyle().Bold(true).Foreground(sandGold).Render("Templeforge 🏛")
}

func (m *Model) renderProgress() string {
	var s strings.Builder

	s.WriteString(m.title())
	s.WriteString("\n")
	s.WriteString(lipgloss.NewStyle().Foreground(sandstone).Render("Forging temple assets"))
	s.WriteString("\n\n")

	var percent float64
	if m.total > 0 {
		percent = float64(m.written) / float64(m.total)
	}
	s.WriteString("Progress: ")
	s.WriteString(m.progressBar.ViewAs(percent))
	fmt.Fprintf(&s, "  %d/%d", m.written, m.total)
	s.WriteString("\n\n")

	elapsed := time.Since(m.startTime)
	var eta time.Duration
	if percent > 0 {
		eta = time.Duration(float64(elapsed)/percent) - elapsed
	}
	s.WriteString(lipgloss.NewStyle().Faint(true).Render(
		fmt.Sprintf("Time: %s  │  Written: %s  │  ETA: %s", formatDuration(elapsed), formatBytes(m.bytes), formatDuration(eta))))
	s.WriteString("\n")

	if m.current.Total > 0 && m.written < m.total {
		s.WriteString(lipgloss.NewStyle().Faint(true).Italic(true).Render("Generating " + m.current.Entry.String()))
		s.WriteString("\n")
	}

	if len(m.recent) > 0 {
		s.WriteString("\n")
		s.WriteString(lipgloss.NewStyle().Foreground(sandstone).Render("Recent:"))
		s.WriteString("\n")
		for _, line := range m.recent {
			s.WriteString("  ")
			s.WriteString(lipgloss.NewStyle().Faint(true).Render(line))
			s.WriteString("\n")
		}
	}

	if m.cachedPreview != "" {
		s.WriteString("\n")
		s.WriteString(m.cachedPreview)
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(sandstone).
		Padding(1, 2).
		Render(s.String())
}

func (m *Model) renderComplete() string {
	var s strings.Builder
	sum := m.complete.Summary

	s.WriteString(lipgloss.NewStyle().Bold(true).Foreground(sandGold).Render("✓ Assets Complete!"))
	s.WriteString("\n\n")

	dimLabel := lipgloss.NewStyle().Faint(true)
	fmt.Fprintf(&s, "%s%s\n", dimLabel.Render("Output:   "), m.complete.Dir)
	fmt.Fprintf(&s, "%s%d textures, %d models, %d sounds\n", dimLabel.Render("Files:    "), sum.Textures, sum.Models, sum.Sounds)
	fmt.Fprintf(&s, "%s%s\n\n", dimLabel.Render("Size:     "), formatBytes(sum.Bytes))

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(sandstone)
	labelStyle := lipgloss.NewStyle().Faint(true)
	valueStyle := lipgloss.NewStyle()
	highlightValueStyle := lipgloss.NewStyle().Foreground(iceBlue)

	s.WriteString(headerStyle.Render("Time by kind"))
	s.WriteString("\n")

	totalMs := sum.Elapsed.Milliseconds()
	if totalMs == 0 {
		totalMs = 1
	}

	for _, kind := range []manifest.Kind{manifest.KindTexture, manifest.KindModel, manifest.KindSound} {
		t := m.timings[kind]
		if t == nil {
			continue
		}
		ratio := float64(t.elapsed.Milliseconds()) / float64(totalMs)
		fmt.Fprintf(&s, "  %s%s (~%2d%%)  %s\n",
			labelStyle.Render(fmt.Sprintf("%-12s", fmt.Sprintf("%ss:", kind))),
			valueStyle.Render(fmt.Sprintf("~%-6s", formatDuration(t.elapsed))),
			int(ratio*100),
			m.summaryBar.ViewAs(min(ratio, 1)))
	}

	fmt.Fprintf(&s, "  %s%s", labelStyle.Render(fmt.Sprintf("%-12s", "Total time:")), highlightValueStyle.Render(formatDuration(sum.Elapsed)))

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(sandGold).
		Padding(1, 1).
		Render(s.String()) + "\n"
}

// Helper functions

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func formatBytes(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}

	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}
