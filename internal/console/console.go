// Package console is the interactive sample auditioner: it lists the bank,
// plays the selected sample and adjusts the global volume.
package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/audible-altimeter/internal/audioplayer"
	"github.com/llehouerou/audible-altimeter/internal/driver"
	"github.com/llehouerou/audible-altimeter/internal/keymap"
	"github.com/llehouerou/audible-altimeter/internal/sample"
	"github.com/llehouerou/audible-altimeter/internal/state"
)

const defaultWidth = 60

// Options configures a console Model.
type Options struct {
	Level  int16           // starting volume in dB
	Muted  bool            // start muted
	Step   int16           // dB per volume key press
	Store  state.Interface // persists volume changes; nil disables saving
	Stderr <-chan string   // captured C library output; may be nil
}

// Model is the bubbletea model of the console.
type Model struct {
	player  *audioplayer.Player
	samples []sample.Sample
	rate    int
	opts    Options

	keys     *keymap.Resolver
	helpKeys []key.Binding
	help     help.Model

	cursor int
	level  int16
	muted  bool
	status string
	stderr string
	width  int
}

// New creates a console for the given player and bank.
func New(p *audioplayer.Player, bank *sample.Bank, opts Options) Model {
	if opts.Step <= 0 {
		opts.Step = 3
	}
	keys := keymap.NewResolver(keymap.All)
	return Model{
		player:   p,
		samples:  bank.Samples(),
		rate:     bank.SampleRate(),
		opts:     opts,
		keys:     keys,
		helpKeys: helpBindings(keys, keymap.All),
		help:     help.New(),
		level:    driver.ClampVolume(opts.Level),
		muted:    opts.Muted,
		width:    defaultWidth,
	}
}

// helpBindings builds the footer entries, one per action, labelled with the
// keys the resolver actually maps to it.
func helpBindings(r *keymap.Resolver, bindings []keymap.Binding) []key.Binding {
	result := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		result = append(result, key.NewBinding(
			key.WithKeys(r.KeysFor(b.Action)...),
			key.WithHelp(r.HelpLabel(b.Action), strings.ToLower(b.Description)),
		))
	}
	return result
}

// stderrMsg carries one captured stderr line.
type stderrMsg string

func waitForStderr(ch <-chan string) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-ch
		if !ok {
			return nil
		}
		return stderrMsg(line)
	}
}

func (m Model) Init() tea.Cmd {
	return waitForStderr(m.opts.Stderr)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case stderrMsg:
		m.stderr = string(msg)
		return m, waitForStderr(m.opts.Stderr)

	case tea.KeyMsg:
		return m.handleAction(m.keys.Resolve(msg.String()))
	}
	return m, nil
}

func (m Model) handleAction(action keymap.Action) (tea.Model, tea.Cmd) {
	switch action {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionMoveUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case keymap.ActionMoveDown:
		if m.cursor < len(m.samples)-1 {
			m.cursor++
		}
	case keymap.ActionJumpStart:
		m.cursor = 0
	case keymap.ActionJumpEnd:
		m.cursor = max(len(m.samples)-1, 0)
	case keymap.ActionPlay:
		m.playSelected()
	case keymap.ActionVolumeUp:
		m.setLevel(int32(m.level) + int32(m.opts.Step))
	case keymap.ActionVolumeDown:
		m.setLevel(int32(m.level) - int32(m.opts.Step))
	case keymap.ActionToggleMute:
		m.muted = !m.muted
		m.applyVolume()
	}
	return m, nil
}

func (m *Model) playSelected() {
	if len(m.samples) == 0 {
		m.status = "No samples loaded"
		return
	}
	s := m.samples[m.cursor]
	if m.player.Play(s.ID) {
		m.status = "Played " + s.Name
	} else {
		m.status = "Rejected " + s.Name
	}
}

// setLevel works in int32 so repeated presses cannot wrap around int16.
func (m *Model) setLevel(level int32) {
	level = min(max(level, int32(driver.MinVolume)), int32(driver.MaxVolume))
	m.level = int16(level)
	m.muted = false
	m.applyVolume()
}

// applyVolume pushes the effective level to the player and saves the setting.
func (m *Model) applyVolume() {
	effective := m.level
	if m.muted {
		effective = driver.MinVolume
	}
	m.player.SetVolumeOnAllSamples(effective)
	if m.opts.Store != nil {
		m.opts.Store.SaveVolume(state.VolumeState{Level: m.level, Muted: m.muted})
	}
}

// Level returns the selected volume in dB.
func (m Model) Level() int16 { return m.level }

// Muted reports whether output is muted.
func (m Model) Muted() bool { return m.muted }

// Cursor returns the index of the selected sample.
func (m Model) Cursor() int { return m.cursor }

// Status returns the outcome of the last action.
func (m Model) Status() string { return m.status }

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Audible Altimeter"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d samples · %d Hz", len(m.samples), m.rate)))
	b.WriteString("\n\n")

	nameWidth := max(m.width-14, 8)
	if len(m.samples) == 0 {
		b.WriteString(dimStyle.Render("  (no samples)"))
		b.WriteString("\n")
	}
	for i, s := range m.samples {
		name := ansi.Truncate(s.Name, nameWidth, "…")
		line := fmt.Sprintf("%-*s %6.2fs", nameWidth, name, s.Duration(m.rate).Seconds())
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderVolume(m.level, m.muted))
	b.WriteString("\n")

	if m.status != "" {
		style := statusStyle
		if strings.HasPrefix(m.status, "Rejected") {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	if m.stderr != "" {
		b.WriteString(dimStyle.Render(ansi.Truncate(m.stderr, m.width, "…")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.helpKeys))
	return b.String()
}
