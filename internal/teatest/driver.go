// Package teatest drives bubbletea models synchronously in tests.
//
// A Driver calls Update directly and runs each returned Cmd inline, feeding
// the produced messages back until the model goes quiet. Cmds that do not
// return within the timeout (timers, ticks, cursor blinks) are dropped.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultCmdTimeout = 50 * time.Millisecond
	maxSteps          = 200
)

// Driver owns a model and the messages it has processed.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting reports whether a Cmd produced tea.QuitMsg.
	Quitting bool
	// Seen records every message delivered to Update, in order.
	Seen []tea.Msg

	cmdTimeout time.Duration
	steps      int
}

// Option configures a Driver.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before Init runs.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.deliver(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// WithCmdTimeout overrides how long a single Cmd may block.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.cmdTimeout = timeout }
}

// New wraps model. Options run in order; call Start to run Init.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, cmdTimeout: defaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start runs the model's Init command to completion.
func (d *Driver) Start() *Driver {
	d.T.Helper()
	d.steps = 0
	d.run(d.Model.Init())
	return d
}

// Send delivers msg and runs whatever follows from it.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	d.steps = 0
	d.run(d.deliver(msg))
}

// Key sends a named key: single characters become rune keys, anything else
// is looked up among bubbletea's key names ("enter", "esc", "ctrl+c", "up").
func (d *Driver) Key(name string) {
	d.T.Helper()
	d.Send(keyMsg(d.T, name))
}

// Keys sends each name in turn.
func (d *Driver) Keys(names ...string) {
	d.T.Helper()
	for _, n := range names {
		d.Key(n)
	}
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// View renders the current model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) deliver(msg tea.Msg) tea.Cmd {
	d.Seen = append(d.Seen, msg)
	next, cmd := d.Model.Update(msg)
	d.Model = next
	return cmd
}

func (d *Driver) run(cmd tea.Cmd) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	d.steps++
	if d.steps > maxSteps {
		d.T.Fatalf("teatest: model did not settle after %d commands", maxSteps)
		return
	}

	msg, ok := d.call(cmd)
	if !ok || msg == nil {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			d.run(c)
		}
	case tea.QuitMsg:
		d.Quitting = true
		d.Seen = append(d.Seen, msg)
	default:
		d.run(d.deliver(msg))
	}
}

func (d *Driver) call(cmd tea.Cmd) (tea.Msg, bool) {
	out := make(chan tea.Msg, 1)
	go func() { out <- cmd() }()

	timer := time.NewTimer(d.cmdTimeout)
	defer timer.Stop()
	select {
	case msg := <-out:
		return msg, true
	case <-timer.C:
		return nil, false
	}
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"backspace": tea.KeyBackspace,
	"tab":       tea.KeyTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"ctrl+c":    tea.KeyCtrlC,
	" ":         tea.KeySpace,
}

func keyMsg(t *testing.T, name string) tea.KeyMsg {
	t.Helper()
	if kt, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: kt}
	}
	if r := []rune(name); len(r) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: r}
	}
	t.Fatalf("teatest: unknown key %q", name)
	return tea.KeyMsg{}
}
