package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cardgrid/internal/cards"
	"github.com/five82/cardgrid/internal/prefs"
)

// columnCount returns how many cards sit on one grid row.
func (m Model) columnCount() int {
	if m.columns > 0 {
		return m.columns
	}
	cols := m.width / CardMinWidth
	if cols < 1 {
		return 1
	}
	return min(cols, prefs.MaxColumns)
}

// bodyHeight is the space between header and footer.
func (m Model) bodyHeight() int {
	return max(m.height-headerHeight-footerHeight, 1)
}

// visibleRows is how many grid rows fit in the body.
func (m Model) visibleRows() int {
	return max(m.bodyHeight()/CardHeight, 1)
}

// cardWidth is the outer width of one card, border included.
func (m Model) cardWidth() int {
	return max(m.width/m.columnCount(), 8)
}

func (m Model) totalRows() int {
	n := len(m.snapshot.Items)
	cols := m.columnCount()
	return (n + cols - 1) / cols
}

// moveRows moves the selection by delta rows, keeping the column. Moving past
// the end of a short last row lands on the last card.
func (m *Model) moveRows(delta int) {
	n := len(m.snapshot.Items)
	if n == 0 {
		return
	}
	next := m.selected + delta*m.columnCount()
	switch {
	case next < 0:
		next = m.selected % m.columnCount()
	case next >= n:
		next = n - 1
	}
	m.selected = next
}

// moveColumn moves within the current row without wrapping.
func (m *Model) moveColumn(delta int) {
	n := len(m.snapshot.Items)
	if n == 0 {
		return
	}
	cols := m.columnCount()
	col := m.selected%cols + delta
	if col < 0 || col >= cols {
		return
	}
	if next := m.selected + delta; next < n {
		m.selected = next
	}
}

func (m *Model) clampSelection() {
	n := len(m.snapshot.Items)
	switch {
	case n == 0:
		m.selected = 0
	case m.selected >= n:
		m.selected = n - 1
	case m.selected < 0:
		m.selected = 0
	}
}

// ensureVisible scrolls so the selected row is on screen.
func (m *Model) ensureVisible() {
	row := m.selected / m.columnCount()
	visible := m.visibleRows()
	switch {
	case row < m.topRow:
		m.topRow = row
	case row >= m.topRow+visible:
		m.topRow = row - visible + 1
	}
	if maxTop := max(m.totalRows()-visible, 0); m.topRow > maxTop {
		m.topRow = maxTop
	}
}

// selectedCard returns the card under the cursor.
func (m Model) selectedCard() (cards.Card, bool) {
	if m.selected < 0 || m.selected >= len(m.snapshot.Items) {
		return cards.Card{}, false
	}
	return m.snapshot.Items[m.selected], true
}

// renderGrid draws the visible rows of cards.
func (m Model) renderGrid() string {
	styles := m.theme.Styles()
	items := m.snapshot.Items
	if len(items) == 0 {
		return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("No cards yet. Press r to refresh."))
	}

	cols := m.columnCount()
	width := m.cardWidth()
	end := min(m.topRow+m.visibleRows(), m.totalRows())

	rows := make([]string, 0, end-m.topRow)
	for r := m.topRow; r < end; r++ {
		cells := make([]string, 0, cols)
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(items) {
				break
			}
			cells = append(cells, m.renderCard(items[i], width, i == m.selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().Height(m.bodyHeight()).MaxHeight(m.bodyHeight()).Render(body)
}

// renderCard draws one card box of the given outer width.
func (m Model) renderCard(card cards.Card, width int, selected bool) string {
	styles := m.theme.Styles()
	box := styles.Card
	if selected {
		box = styles.CardSelected
	}
	// Border and horizontal padding take four cells.
	inner := max(width-4, 4)

	badge := cardBadge(card)
	head := styles.TypeBadge(card.Type).Render(truncate(badge, inner-2))
	if ind := mediaIndicator(card); ind != "" {
		head += " " + styles.AccentText.Render(ind)
	}

	title := card.Title
	if title == "" {
		title = fmt.Sprintf("Card #%d", card.CardID)
	}

	lines := []string{
		head,
		styles.Text.Bold(true).Render(truncate(title, inner)),
		styles.MutedText.Render(truncate(card.Label, inner)),
	}
	text := wrapLines(card.Text, inner, CardTextLines)
	for len(text) < CardTextLines {
		text = append(text, "")
	}
	for _, l := range text {
		lines = append(lines, styles.FaintText.Render(l))
	}

	return box.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// cardBadge labels a card by its type, or by its id when untyped.
func cardBadge(card cards.Card) string {
	if card.Type == "" {
		return fmt.Sprintf("#%d", card.CardID)
	}
	return titleCase(card.Type)
}

// mediaIndicator marks cards that carry playable media. Fetched cards never
// carry an audio URL, so the type is checked too.
func mediaIndicator(card cards.Card) string {
	switch {
	case card.HasVideo():
		return "▶"
	case card.HasAudio(), strings.EqualFold(card.Type, "audio"):
		return "♪"
	default:
		return ""
	}
}
