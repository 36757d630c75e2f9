package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cardgrid/internal/state"
)

// renderMain composes header, body, and footer.
func (m Model) renderMain() string {
	var body string
	switch {
	case m.snapshot.Mode() == state.ModeLoading:
		body = m.renderLoading()
	case m.snapshot.Mode() == state.ModeError:
		body = m.renderError()
	case m.detailOpen:
		body = m.renderDetail()
	default:
		body = m.renderGrid()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	left := styles.Logo.Render("cardgrid")
	if m.source != "" {
		left += "  " + styles.MutedText.Render(truncate(m.source, max(m.width/2, 10)))
	}

	var right string
	switch m.snapshot.Mode() {
	case state.ModeLoading:
		right = m.spinner.View() + " " + styles.AccentText.Render("loading")
	case state.ModeError:
		right = styles.DangerText.Render("error")
	default:
		right = styles.Text.Render(fmt.Sprintf("%d cards", len(m.snapshot.Items)))
		if !m.snapshot.LastUpdated.IsZero() {
			right += styles.FaintText.Render(" · " + m.snapshot.LastUpdated.Format(time.Kitchen))
		}
	}

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	return styles.Footer.Width(m.width).Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// renderLoading is the full-body progress indicator.
func (m Model) renderLoading() string {
	styles := m.theme.Styles()
	content := m.spinner.View() + " " + styles.Text.Render("Loading cards...")
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, content)
}

// renderError shows the user-facing message, the diagnostic underneath it,
// and the retry action.
func (m Model) renderError() string {
	styles := m.theme.Styles()
	width := min(errorPanelWidth, max(m.width-4, 20))

	var b strings.Builder
	b.WriteString(styles.DangerText.Render(m.snapshot.ErrorMessage))
	if m.snapshot.Err != nil {
		b.WriteString("\n\n")
		b.WriteString(styles.FaintText.Render(m.snapshot.Err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.Button.Render("Try again (r)"))

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 2).
		Width(width).
		Align(lipgloss.Center).
		Render(b.String())

	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, panel)
}
