package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/width"

	"github.com/lox/drawpoker/internal/deck"
)

// faceWidth is the number of terminal columns inside each card box
const faceWidth = 2

// cardWidth is the number of columns one boxed card takes, borders included
const cardWidth = faceWidth + 2

// RenderHand draws the hand as five boxed cards with their position numbers
// underneath. Selected positions get a highlighted border.
func RenderHand(h deck.Hand, selected [deck.HandSize]bool, wide bool, st Styles) string {
	var top, suits, ranks, bottom, labels strings.Builder

	for i, c := range h {
		border := st.Text
		if selected[i] {
			border = st.Selected
		}
		face := faceStyle(c, st)
		suit, rank := cardFaces(c, wide)
		bar := strings.Repeat("━", faceWidth)

		top.WriteString(border.Render("┏" + bar + "┓"))
		suits.WriteString(border.Render("┃") + face.Render(pad(suit)) + border.Render("┃"))
		ranks.WriteString(border.Render("┃") + face.Render(pad(rank)) + border.Render("┃"))
		bottom.WriteString(border.Render("┗" + bar + "┛"))

		label := strconv.Itoa(i + 1)
		if wide {
			label = width.Widen.String(label)
		}
		labelStyle := st.Label
		if selected[i] {
			labelStyle = st.Selected
		}
		labels.WriteString(labelStyle.Render(runewidth.FillRight(" "+label, cardWidth)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		top.String(), suits.String(), ranks.String(), bottom.String(), labels.String())
}

// cardFaces returns the two lines printed inside a card box
func cardFaces(c deck.Card, wide bool) (string, string) {
	switch {
	case c.IsJoker():
		return "★", ""
	case wide:
		return c.WideSuit(), c.WideRank()
	default:
		return c.Suit.Symbol(), c.Rank.String()
	}
}

func faceStyle(c deck.Card, st Styles) lipgloss.Style {
	switch {
	case c.IsJoker():
		return st.Joker
	case c.IsRed():
		return st.RedCard
	default:
		return st.BlackCard
	}
}

func pad(s string) string {
	return runewidth.FillRight(s, faceWidth)
}

// FormatCards renders cards inline, coloured by suit, for log lines
func FormatCards(h deck.Hand, st Styles) string {
	parts := make([]string, len(h))
	for i, c := range h {
		text := c.ShortForm()
		if c.IsJoker() {
			text = "★"
		}
		parts[i] = faceStyle(c, st).Render(text)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
