package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sebastiantruijens/moviesearch/internal/app"
	"github.com/sebastiantruijens/moviesearch/internal/tmdb"
)

const (
	closeLabel     = "[ x ]"
	maxPanelWidth  = 84
	maxPanelHeight = 26
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// Overlay shows one movie above everything else. Every dismissal path emits
// the same CloseOverlay event.
type Overlay struct {
	movie    *tmdb.Movie
	links    tmdb.Links
	keys     keyMap
	viewport viewport.Model
	width    int
	height   int
}

func NewOverlay(links tmdb.Links, keys keyMap) Overlay {
	vp := viewport.New(0, 0)
	return Overlay{links: links, keys: keys, viewport: vp, width: 80, height: 24}
}

func (o *Overlay) Open(movie tmdb.Movie) {
	o.movie = &movie
	o.layout()
	o.viewport.SetContent(o.content())
	o.viewport.GotoTop()
}

func (o *Overlay) Close() {
	o.movie = nil
}

func (o Overlay) IsOpen() bool {
	return o.movie != nil
}

func (o Overlay) Movie() *tmdb.Movie {
	return o.movie
}

// SetSize sets the area the overlay covers.
func (o *Overlay) SetSize(width, height int) {
	o.width = width
	o.height = height
	o.layout()
	if o.movie != nil {
		o.viewport.SetContent(o.content())
	}
}

// panel returns the content panel's position; the gaps around it are even so
// that centring is exact.
func (o Overlay) panel() rect {
	w := min(o.width-4, maxPanelWidth)
	h := min(o.height-2, maxPanelHeight)
	if (o.width-w)%2 != 0 {
		w--
	}
	if (o.height-h)%2 != 0 {
		h--
	}
	w, h = max(w, 20), max(h, 8)
	return rect{x: (o.width - w) / 2, y: (o.height - h) / 2, w: w, h: h}
}

func (o Overlay) innerWidth() int {
	return o.panel().w - 4 // border and padding
}

func (o Overlay) closeButton() rect {
	p := o.panel()
	w := lipgloss.Width(closeLabel)
	return rect{x: p.x + 2 + o.innerWidth() - w, y: p.y + 1, w: w, h: 1}
}

func (o *Overlay) layout() {
	p := o.panel()
	o.viewport.Width = o.innerWidth()
	o.viewport.Height = p.h - 2 - 3 // border, header + blank, footer
}

func (o Overlay) content() string {
	if o.movie == nil {
		return ""
	}
	m := o.movie
	width := o.innerWidth()

	var sb strings.Builder
	sb.WriteString(subtitleStyle.Render("Release Date: "))
	sb.WriteString(normalTextStyle.Render(tmdb.FormatReleaseDate(m.ReleaseDate)))
	sb.WriteString("\n")
	sb.WriteString(subtitleStyle.Render("Rating: "))
	sb.WriteString(scoreStyle.Render(tmdb.FormatRating(m.VoteAverage)))
	sb.WriteString("\n\n")

	overview := m.Overview
	if overview == "" {
		overview = "No overview available."
	}
	sb.WriteString(normalTextStyle.Width(width).Render(overview))
	sb.WriteString("\n\n")

	sb.WriteString(subtitleStyle.Render("Backdrop:"))
	sb.WriteString("\n")
	sb.WriteString(mutedTextStyle.Render(o.links.BackdropURL(m.BackdropPath)))
	sb.WriteString("\n")
	sb.WriteString(subtitleStyle.Render("More Info:"))
	sb.WriteString("\n")
	sb.WriteString(mutedTextStyle.Render(o.links.MovieURL(m.ID)))

	return sb.String()
}

func (o Overlay) Update(msg tea.Msg) (Overlay, tea.Cmd) {
	if o.movie == nil {
		return o, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, o.keys.Escape):
			return o, emit(app.CloseOverlay{Via: app.ViaEscape})
		case key.Matches(msg, o.keys.Close):
			return o, emit(app.CloseOverlay{Via: app.ViaCloseControl})
		case key.Matches(msg, o.keys.Open):
			return o, openBrowserCmd(o.links.MovieURL(o.movie.ID))
		case key.Matches(msg, o.keys.Copy):
			return o, copyLinkCmd(o.links.MovieURL(o.movie.ID))
		}

	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
			switch {
			case o.closeButton().contains(msg.X, msg.Y):
				return o, emit(app.CloseOverlay{Via: app.ViaCloseControl})
			case !o.panel().contains(msg.X, msg.Y):
				return o, emit(app.CloseOverlay{Via: app.ViaBackdrop})
			}
			return o, nil
		}
	}

	var cmd tea.Cmd
	o.viewport, cmd = o.viewport.Update(msg)
	return o, cmd
}

func (o Overlay) View() string {
	if o.movie == nil {
		return ""
	}
	p := o.panel()
	width := o.innerWidth()

	title := titleStyle.Render(truncate(o.movie.Title+" ("+o.movie.Year()+")", width-lipgloss.Width(closeLabel)-1))
	gap := max(1, width-lipgloss.Width(title)-lipgloss.Width(closeLabel))
	header := title + strings.Repeat(" ", gap) + closeButtonStyle.Render(closeLabel)

	footer := mutedTextStyle.Render(truncate("esc/x close · o open in browser · y copy link · ↑/↓ scroll", width))

	body := lipgloss.JoinVertical(lipgloss.Left, header, "", o.viewport.View(), footer)
	box := panelStyle.
		Width(p.w - 2).
		Height(p.h - 2).
		Render(body)

	return lipgloss.Place(o.width, o.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(accentColor))
}
