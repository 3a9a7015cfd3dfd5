package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/sebastiantruijens/moviesearch/internal/app"
	"github.com/sebastiantruijens/moviesearch/internal/tmdb"
)

const (
	cardWidth  = 28 // including border
	cardHeight = 5  // including border
	cardGap    = 1
	gridLeft   = 1
)

// Card is one selectable cell of the grid.
type Card struct {
	Movie    tmdb.Movie
	ImageURL string
}

// Grid renders movies as selectable cards. It holds presentation state only:
// cursor and scroll offset.
type Grid struct {
	cards  []Card
	cursor int
	offset int // first visible row
	width  int
	height int
	locked bool
	dimmed bool
	links  tmdb.Links
	keys   keyMap
}

func NewGrid(links tmdb.Links, keys keyMap) Grid {
	return Grid{links: links, keys: keys, width: 80, height: cardHeight}
}

// SetMovies replaces the cards. Missing posters get the placeholder image.
func (g *Grid) SetMovies(movies []tmdb.Movie) {
	g.cards = make([]Card, len(movies))
	for i, m := range movies {
		g.cards[i] = Card{Movie: m, ImageURL: g.links.PosterURL(m.PosterPath)}
	}
	g.cursor = min(g.cursor, max(len(g.cards)-1, 0))
	g.clampOffset()
}

func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.ensureVisible()
}

// SetDimmed marks the cards as placeholder content from a previous key.
func (g *Grid) SetDimmed(dimmed bool) {
	g.dimmed = dimmed
}

func (g Grid) Cards() []Card {
	return g.cards
}

func (g Grid) Cursor() int {
	return g.cursor
}

func (g Grid) Offset() int {
	return g.offset
}

// SetScrollLocked suspends scrolling and selection while something covers
// the grid.
func (g *Grid) SetScrollLocked(locked bool) {
	g.locked = locked
}

func (g Grid) ScrollLocked() bool {
	return g.locked
}

// ScrollTop moves the cursor and the viewport back to the first card.
func (g *Grid) ScrollTop() {
	g.cursor = 0
	g.offset = 0
}

func (g Grid) columns() int {
	return max(1, (g.width-gridLeft+cardGap)/(cardWidth+cardGap))
}

func (g Grid) visibleRows() int {
	return max(1, g.height/cardHeight)
}

func (g Grid) rows() int {
	cols := g.columns()
	return (len(g.cards) + cols - 1) / cols
}

func (g *Grid) ensureVisible() {
	row := g.cursor / g.columns()
	if row < g.offset {
		g.offset = row
	}
	if row >= g.offset+g.visibleRows() {
		g.offset = row - g.visibleRows() + 1
	}
	g.clampOffset()
}

func (g *Grid) clampOffset() {
	g.offset = max(0, min(g.offset, g.rows()-g.visibleRows()))
}

func (g *Grid) move(delta int) {
	if len(g.cards) == 0 {
		return
	}
	g.cursor = max(0, min(g.cursor+delta, len(g.cards)-1))
	g.ensureVisible()
}

func (g *Grid) scroll(delta int) {
	g.offset += delta
	g.clampOffset()
	// keep the cursor on screen
	cols := g.columns()
	row := g.cursor / cols
	if row < g.offset {
		g.cursor = min(g.offset*cols, len(g.cards)-1)
	} else if row >= g.offset+g.visibleRows() {
		g.cursor = min((g.offset+g.visibleRows()-1)*cols, len(g.cards)-1)
	}
}

func (g Grid) selectCmd(i int) tea.Cmd {
	if i < 0 || i >= len(g.cards) {
		return nil
	}
	return emit(app.Select{Movie: g.cards[i].Movie})
}

func (g Grid) Update(msg tea.Msg) (Grid, tea.Cmd) {
	if g.locked {
		return g, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, g.keys.Up):
			g.move(-g.columns())
		case key.Matches(msg, g.keys.Down):
			g.move(g.columns())
		case key.Matches(msg, g.keys.Left):
			g.move(-1)
		case key.Matches(msg, g.keys.Right):
			g.move(1)
		case key.Matches(msg, g.keys.Select):
			return g, g.selectCmd(g.cursor)
		}

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			g.scroll(-1)
		case tea.MouseButtonWheelDown:
			g.scroll(1)
		case tea.MouseButtonLeft:
			if msg.Action != tea.MouseActionPress {
				return g, nil
			}
			if i, ok := g.HitTest(msg.X, msg.Y); ok {
				g.cursor = i
				return g, g.selectCmd(i)
			}
		}
	}

	return g, nil
}

// HitTest maps a point relative to the grid's top-left corner to a card.
func (g Grid) HitTest(x, y int) (int, bool) {
	x -= gridLeft
	if x < 0 || y < 0 {
		return 0, false
	}
	if x%(cardWidth+cardGap) >= cardWidth {
		return 0, false
	}
	col := x / (cardWidth + cardGap)
	row := y / cardHeight
	if col >= g.columns() || row >= g.visibleRows() {
		return 0, false
	}
	i := (g.offset+row)*g.columns() + col
	if i >= len(g.cards) {
		return 0, false
	}
	return i, true
}

func (g Grid) renderCard(i int) string {
	c := g.cards[i]
	inner := cardWidth - 4

	title := ansi.Truncate(c.Movie.Title, inner, "…")
	meta := fmt.Sprintf("%s · ★ %.1f", c.Movie.Year(), c.Movie.VoteAverage)
	poster := "▣ poster"
	if c.ImageURL == tmdb.PosterPlaceholder {
		poster = "□ no image"
	}

	style := cardStyle
	switch {
	case g.dimmed:
		style = placeholderCardStyle
	case i == g.cursor:
		style = selectedCardStyle
	}
	if i == g.cursor && !g.dimmed {
		title = highlightedTextStyle.Render(title)
	} else {
		title = subtitleStyle.Render(title)
	}

	body := strings.Join([]string{
		title,
		scoreStyle.Render(meta),
		mutedTextStyle.Render(poster),
	}, "\n")

	return style.Width(cardWidth - 2).Render(body)
}

func (g Grid) View() string {
	if len(g.cards) == 0 {
		return ""
	}

	cols := g.columns()
	var rows []string
	for r := g.offset; r < g.offset+g.visibleRows() && r < g.rows(); r++ {
		var cells []string
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(g.cards) {
				break
			}
			if c > 0 {
				cells = append(cells, strings.Repeat(" ", cardGap))
			}
			cells = append(cells, g.renderCard(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.NewStyle().
		PaddingLeft(gridLeft).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
