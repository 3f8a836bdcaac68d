// pkg/tui/view.go

package tui

import (
	"fmt"
	"strings"
	"time"
)

// View renders the screen for the current state.
func (m Model) View() string {
	switch m.state {
	case stateGenerating:
		return m.viewGenerating()
	case stateDone:
		return m.viewResults()
	default:
		return m.viewForm()
	}
}

func (m Model) titleLine() string {
	return m.styles.Title.Render("pythia") + "  " +
		m.styles.Help.Render("password candidate generator")
}

func (m Model) viewForm() string {
	var b strings.Builder
	b.WriteString(m.titleLine() + "\n\n")

	for _, g := range formGroups {
		b.WriteString(m.styles.Group.Render(g.title) + "\n")
		for _, id := range g.fields {
			style := m.styles.Label
			if m.focus == int(id) {
				style = m.styles.Focused
			}
			b.WriteString(fmt.Sprintf("  %s %s\n",
				style.Render(fmt.Sprintf("%-12s", fieldLabels[id])),
				m.inputs[id].View()))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Group.Render("Stages") + "\n")
	b.WriteString("  " + m.viewToggles() + "\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render("✗ "+m.err.Error()) + "\n\n")
	}

	b.WriteString(m.styles.Help.Render(
		"tab/shift+tab move · space toggle · ctrl+g generate · esc quit"))
	return b.String()
}

func (m Model) viewToggles() string {
	parts := []string{
		m.toggleText(toggleNumbers, checkbox("numbers", m.optNumbers)),
		m.toggleText(toggleSpecials, checkbox("specials", m.optSpecials)),
		m.toggleText(toggleLeet, fmt.Sprintf("leet level %d", m.leetLevel)),
		m.toggleText(toggleCombine, checkbox("combine", m.optCombine)),
	}
	return strings.Join(parts, "   ")
}

func (m Model) toggleText(idx int, text string) string {
	if m.focus == int(fieldCount)+idx {
		return m.styles.Focused.Render(text)
	}
	return m.styles.Toggle.Render(text)
}

func checkbox(label string, on bool) string {
	if on {
		return "[x] " + label
	}
	return "[ ] " + label
}

func (m Model) viewGenerating() string {
	var b strings.Builder
	b.WriteString(m.titleLine() + "\n\n")
	b.WriteString("  " + m.spinner.View() + " Generating candidates...\n\n")
	b.WriteString(m.styles.Help.Render("q cancel"))
	return b.String()
}

func (m Model) viewResults() string {
	var b strings.Builder
	b.WriteString(m.titleLine() + "\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render("✗ "+m.err.Error()) + "\n\n")
		b.WriteString(m.styles.Help.Render("e edit · q quit"))
		return b.String()
	}

	st := m.res.Stats
	b.WriteString("  " + m.styles.Stat.Render(fmt.Sprintf(
		"%d candidates", len(m.res.Candidates))))
	b.WriteString(m.styles.Help.Render(fmt.Sprintf(
		"  from %d seeds, pool %d, in %s",
		st.Seeds, st.PoolSize, st.Duration.Round(time.Millisecond))))
	b.WriteString("\n")
	if st.Sampled {
		b.WriteString("  " + m.styles.Help.Render("pool exceeded the output cap; stratified sample shown") + "\n")
	}
	b.WriteString("\n")

	shown := m.res.Candidates
	if len(shown) > previewLimit {
		shown = shown[:previewLimit]
	}
	for _, word := range shown {
		b.WriteString("  " + m.styles.Preview.Render(word) + "\n")
	}
	if rest := len(m.res.Candidates) - len(shown); rest > 0 {
		b.WriteString("  " + m.styles.Help.Render(fmt.Sprintf("… and %d more", rest)) + "\n")
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("  " + m.styles.Success.Render("✓ "+m.status) + "\n\n")
	}

	b.WriteString(m.styles.Help.Render("s save · c copy · e edit · q quit"))
	return b.String()
}
