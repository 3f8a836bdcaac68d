// pkg/tui/model.go

// Package tui is the full-screen terminal form for interactive wordlist
// generation. It mirrors the questionnaire flow: profile fields grouped
// by kind, toggles for the mutation stages, then an asynchronous run
// with a results preview and save/copy actions.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/output"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/profile"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/wordlist"
)

// fieldID indexes the text inputs of the form.
type fieldID int

const (
	fieldFirst fieldID = iota
	fieldLast
	fieldNickname
	fieldMaiden
	fieldSpouse
	fieldChildren
	fieldPet
	fieldBirthDate
	fieldOtherDates
	fieldPhone
	fieldZip
	fieldKeywords
	fieldInterests
	fieldOutput
	fieldCount
)

// Toggle rows follow the text inputs in focus order.
const (
	toggleNumbers = iota
	toggleSpecials
	toggleLeet
	toggleCombine
	toggleCount
)

// focusCount is the total number of focusable rows.
const focusCount = int(fieldCount) + toggleCount

const (
	previewLimit      = 15
	defaultOutputPath = "pythia-wordlist.txt"
)

type state int

const (
	stateEditing state = iota
	stateGenerating
	stateDone
)

// resultMsg delivers a finished generation run.
type resultMsg struct {
	res *wordlist.Result
	err error
}

// statusMsg delivers the outcome of a save or copy action.
type statusMsg struct {
	text string
	err  error
}

// Model is the bubbletea model for the generation form.
type Model struct {
	opts wordlist.Options
	log  *zap.Logger

	inputs  []textinput.Model
	focus   int
	spinner spinner.Model
	styles  Styles

	optNumbers  bool
	optSpecials bool
	optCombine  bool
	leetLevel   int

	state  state
	cancel context.CancelFunc
	res    *wordlist.Result
	err    error
	status string

	width  int
	height int
}

// New returns a form whose stage toggles start from opts. Engine
// tunables not shown in the form (caps, length band, seed) pass
// through unchanged.
func New(opts wordlist.Options, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}

	inputs := make([]textinput.Model, fieldCount)
	for id := fieldID(0); id < fieldCount; id++ {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[id]
		ti.Prompt = ""
		ti.CharLimit = 128
		ti.Width = 36
		inputs[id] = ti
	}
	inputs[fieldFirst].Focus()

	st := DefaultStyles()
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = st.Spinner

	return Model{
		opts:        opts,
		log:         log,
		inputs:      inputs,
		spinner:     sp,
		styles:      st,
		optNumbers:  opts.EnableNumbers,
		optSpecials: opts.EnableSpecials,
		optCombine:  opts.EnableCombine,
		leetLevel:   opts.LeetLevel,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update routes messages by kind and form state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.state == stateGenerating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case resultMsg:
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		m.state = stateDone
		m.res = msg.res
		m.err = msg.err
		return m, nil

	case statusMsg:
		if msg.err != nil {
			m.status = ""
			m.err = msg.err
		} else {
			m.err = nil
			m.status = msg.text
		}
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateGenerating:
			return m.updateGenerating(msg)
		case stateDone:
			return m.updateDone(msg)
		default:
			return m.updateEditing(msg)
		}
	}

	// Cursor blink and other component messages flow to the focused
	// input.
	if m.state == stateEditing && m.focus < int(fieldCount) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down", "enter":
		return m.moveFocus(1)
	case "shift+tab", "up":
		return m.moveFocus(-1)
	case "ctrl+g":
		return m.startGenerate()
	}

	if m.focus >= int(fieldCount) {
		return m.updateToggle(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) updateToggle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	idx := m.focus - int(fieldCount)
	switch msg.String() {
	case " ":
		switch idx {
		case toggleNumbers:
			m.optNumbers = !m.optNumbers
		case toggleSpecials:
			m.optSpecials = !m.optSpecials
		case toggleLeet:
			m.leetLevel = (m.leetLevel + 1) % 5
		case toggleCombine:
			m.optCombine = !m.optCombine
		}
	case "right":
		if idx == toggleLeet {
			m.leetLevel = (m.leetLevel + 1) % 5
		}
	case "left":
		if idx == toggleLeet {
			m.leetLevel = (m.leetLevel + 4) % 5
		}
	}
	return m, nil
}

func (m Model) updateGenerating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateDone(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "e":
		m.state = stateEditing
		m.status = ""
		m.err = nil
		if m.focus < int(fieldCount) {
			return m, m.inputs[m.focus].Focus()
		}
		return m, nil
	case "s":
		if m.res != nil {
			return m, m.saveCmd()
		}
	case "c":
		if m.res != nil {
			return m, m.copyCmd()
		}
	}
	return m, nil
}

// moveFocus shifts focus by delta, wrapping across inputs and toggles.
func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	if m.focus < int(fieldCount) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + delta + focusCount) % focusCount
	if m.focus < int(fieldCount) {
		return m, m.inputs[m.focus].Focus()
	}
	return m, nil
}

func (m Model) startGenerate() (tea.Model, tea.Cmd) {
	prof := m.profileFromForm()
	opts := m.optionsFromForm()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.state = stateGenerating
	m.status = ""
	m.err = nil
	return m, tea.Batch(m.spinner.Tick, generateCmd(ctx, opts, prof, m.log))
}

// generateCmd runs the pipeline off the UI loop and reports back as a
// resultMsg.
func generateCmd(ctx context.Context, opts wordlist.Options, prof profile.Profile, log *zap.Logger) tea.Cmd {
	return func() tea.Msg {
		pipe, err := wordlist.New(opts, log)
		if err != nil {
			return resultMsg{err: err}
		}
		res, err := pipe.Start(ctx, prof).Wait()
		return resultMsg{res: res, err: err}
	}
}

func (m Model) saveCmd() tea.Cmd {
	path := m.val(fieldOutput)
	if path == "" {
		path = defaultOutputPath
	}
	words := m.res.Candidates
	meta := m.metadata()
	return func() tea.Msg {
		if err := output.WriteFile(context.Background(), path, words, meta); err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{text: fmt.Sprintf("Saved %d candidates to %s", len(words), path)}
	}
}

func (m Model) copyCmd() tea.Cmd {
	words := m.res.Candidates
	return func() tea.Msg {
		if err := output.CopyToClipboard(context.Background(), words); err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{text: fmt.Sprintf("Copied %d candidates to clipboard", len(words))}
	}
}

// Run starts the full-screen form and blocks until the user quits.
// Cancelling ctx tears the program down; that path reports the
// context's error so callers can classify it as a user cancellation.
func Run(ctx context.Context, opts wordlist.Options, log *zap.Logger) error {
	p := tea.NewProgram(New(opts, log), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return cerr.Wrap(err, "run form")
	}
	return nil
}
