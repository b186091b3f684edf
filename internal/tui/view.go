package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/drawpoker/internal/deck"
)

// View renders the current screen above the message log
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.screen {
	case screenMenu:
		body = m.renderMenu()
	case screenNumber:
		body = m.renderNumber()
	case screenConfirm:
		body = m.renderConfirm()
	case screenGame:
		body = m.renderGame()
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Muted).
		Width(max(m.width-2, 1))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		body,
		"",
		logStyle.Render(m.renderLog()),
		m.renderHelp(),
	)
}

func (m *Model) renderHeader() string {
	title := m.styles.Header.Render("Draw Poker")
	info := m.styles.Info.Render(fmt.Sprintf(" jokers %d • exchange rounds %d",
		m.settings.Jokers, m.settings.Exchanges))
	return title + info
}

func (m *Model) renderMenu() string {
	items := []struct {
		key   string
		label string
	}{
		{"g", "Start game"},
		{"j", fmt.Sprintf("Jokers (%d)", m.settings.Jokers)},
		{"c", fmt.Sprintf("Exchange rounds (%d)", m.settings.Exchanges)},
		{"r", "Reset settings"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(m.styles.HandInfo.Render("Main menu"))
	b.WriteString("\n\n")
	for _, item := range items {
		b.WriteString(m.styles.Actions.Render("[" + item.key + "]"))
		b.WriteString(" ")
		b.WriteString(m.styles.Text.Render(item.label))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderNumber() string {
	p := m.number
	var b strings.Builder
	b.WriteString(m.styles.HandInfo.Render(p.name))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Text.Render(fmt.Sprintf("Enter a value from %d to %d (currently %d).", p.min, p.max, p.current)))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	return b.String()
}

func (m *Model) renderConfirm() string {
	p := m.confirm
	var b strings.Builder
	b.WriteString(m.styles.HandInfo.Render(p.title))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Text.Render(p.question))
	b.WriteString(" ")
	b.WriteString(m.styles.Actions.Render("(Y/n)"))
	return b.String()
}

func (m *Model) renderGame() string {
	s := m.session
	var b strings.Builder

	if s.IsFirstRound() && !s.IsOver() {
		b.WriteString(m.styles.Text.Render("Your opening hand:"))
		b.WriteString("\n")
	}
	b.WriteString(RenderHand(s.Hand(), m.selection, m.cfg.WideCards, m.styles))
	b.WriteString("\n")

	if s.IsOver() {
		b.WriteString(m.styles.Success.Render(fmt.Sprintf("Final hand: %s", s.Category())))
		b.WriteString("\n")
		b.WriteString(m.styles.Info.Render("Press Enter to return to the menu."))
		return b.String()
	}

	b.WriteString(m.styles.HandInfo.Render(fmt.Sprintf("Current hand: %s", s.Category())))
	b.WriteString(m.styles.Info.Render(fmt.Sprintf("  •  %d exchange(s) left  •  %d card(s) in the deck",
		s.RoundsLeft(), s.Remaining())))
	b.WriteString("\n")

	limit := s.MaxSelectable()
	prompt := fmt.Sprintf("Type the numbers of the cards to exchange (1-%d).", deck.HandSize)
	if limit < deck.HandSize {
		prompt += fmt.Sprintf(" The deck only allows %d this round.", limit)
	}
	b.WriteString(m.styles.Text.Render(prompt))
	b.WriteString("\n")
	b.WriteString(m.styles.Info.Render("Press Enter with nothing typed to keep this hand."))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	return b.String()
}

func (m *Model) renderLog() string {
	if m.testMode {
		lines := make([]string, 0, logHeight)
		start := max(len(m.gameLog)-logHeight, 0)
		for _, e := range m.gameLog[start:] {
			lines = append(lines, e.style.Render(e.text))
		}
		return strings.Join(lines, "\n")
	}
	return m.logView.View()
}

func (m *Model) renderHelp() string {
	var help string
	switch m.screen {
	case screenMenu:
		help = "g/j/c/r/q to choose • Enter to quit • Ctrl+C to exit"
	case screenNumber:
		help = "Enter to save • empty Enter or Esc to cancel • Ctrl+C to exit"
	case screenConfirm:
		help = "y/n • Enter means yes • Ctrl+C to exit"
	case screenGame:
		help = "Enter to submit • Ctrl+C to exit"
	}
	return m.styles.Help.Render(help)
}
