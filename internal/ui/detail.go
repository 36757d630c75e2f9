package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/five82/cardgrid/internal/cards"
)

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Close) || key.Matches(msg, m.keys.Open) {
		m.detailOpen = false
		return m, nil
	}
	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

func (m *Model) openDetail() {
	if _, ok := m.selectedCard(); !ok {
		return
	}
	m.detailOpen = true
	m.refreshDetail()
	m.detailViewport.GotoTop()
}

// detailWidth leaves room for the viewport's own margin.
func (m Model) detailWidth() int {
	return max(m.width-2, 10)
}

// refreshDetail re-renders the selected card into the viewport.
func (m *Model) refreshDetail() {
	if !m.ready || !m.detailOpen {
		return
	}
	card, ok := m.selectedCard()
	if !ok {
		m.detailOpen = false
		return
	}
	m.detailViewport.Width = m.detailWidth()
	m.detailViewport.Height = m.bodyHeight()
	m.detailViewport.SetContent(m.renderCardMarkdown(card))
}

// renderCardMarkdown renders the card through glamour, falling back to the
// raw markdown if the renderer cannot be built.
func (m Model) renderCardMarkdown(card cards.Card) string {
	src := cardMarkdown(card)
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.theme.MarkdownStyle),
		glamour.WithWordWrap(max(m.detailWidth()-4, 20)),
	)
	if err != nil {
		m.logger.Debug("markdown renderer unavailable", zap.Error(err))
		return src
	}
	out, err := r.Render(src)
	if err != nil {
		m.logger.Debug("markdown render failed", zap.Error(err))
		return src
	}
	return out
}

func (m Model) renderDetail() string {
	return m.detailViewport.View()
}

// cardMarkdown lays out every populated field of a card.
func cardMarkdown(card cards.Card) string {
	var b strings.Builder
	title := card.Title
	if title == "" {
		title = fmt.Sprintf("Card #%d", card.CardID)
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if card.Label != "" {
		fmt.Fprintf(&b, "_%s_\n\n", card.Label)
	}
	if card.Text != "" {
		fmt.Fprintf(&b, "%s\n\n", card.Text)
	}

	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "- **Card:** %d\n", card.CardID)
	if card.Type != "" {
		fmt.Fprintf(&b, "- **Type:** %s\n", titleCase(card.Type))
	}
	if card.HasVideo() {
		fmt.Fprintf(&b, "- **Video:** `%s`\n", card.VideoID)
	}
	if card.HasAudio() {
		fmt.Fprintf(&b, "- **Audio:** %s\n", card.AudioURL)
	}
	return b.String()
}
