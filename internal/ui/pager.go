package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sebastiantruijens/moviesearch/internal/app"
)

const (
	pageRange  = 5 // pages shown around the current one
	pageMargin = 1 // pages always shown at each end
	pagerLeft  = 1
	ellipsis   = "…"
	prevLabel  = "‹"
	nextLabel  = "›"
)

// Indicator is one clickable item of the pagination control. Page is 0 for
// items that cannot be activated.
type Indicator struct {
	Label   string
	Page    int
	Current bool
}

// Pager renders page controls for an externally owned current page.
type Pager struct {
	p    paginator.Model
	keys keyMap
}

func NewPager(keys keyMap) Pager {
	p := paginator.New()
	p.Type = paginator.Arabic
	p.PerPage = 1
	p.ArabicFormat = "page %d of %d"
	return Pager{p: p, keys: keys}
}

// Sync sets the 1-based current page and the total page count.
func (pg *Pager) Sync(current, total int) {
	pg.p.TotalPages = max(total, 0)
	pg.p.Page = max(0, min(current-1, pg.p.TotalPages-1))
}

// Visible reports whether there is more than one page.
func (pg Pager) Visible() bool {
	return pg.p.TotalPages > 1
}

func (pg Pager) Current() int {
	return pg.p.Page + 1
}

func (pg Pager) Total() int {
	return pg.p.TotalPages
}

// Pages returns the page numbers to display, with 0 marking a gap.
func (pg Pager) Pages() []int {
	total := pg.p.TotalPages
	current := pg.Current()

	if total <= pageRange+2*pageMargin {
		pages := make([]int, total)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	lo := max(1, current-pageRange/2)
	hi := min(total, lo+pageRange-1)
	lo = max(1, hi-pageRange+1)

	var pages []int
	for i := 1; i <= pageMargin; i++ {
		pages = append(pages, i)
	}
	if lo > pageMargin+1 {
		pages = append(pages, 0)
	}
	for i := max(lo, pageMargin+1); i <= min(hi, total-pageMargin); i++ {
		pages = append(pages, i)
	}
	if hi < total-pageMargin {
		pages = append(pages, 0)
	}
	for i := total - pageMargin + 1; i <= total; i++ {
		pages = append(pages, i)
	}
	return pages
}

// Indicators returns the previous control, the page items and the next control.
func (pg Pager) Indicators() []Indicator {
	if !pg.Visible() {
		return nil
	}

	current := pg.Current()
	items := []Indicator{{Label: prevLabel}}
	if !pg.p.OnFirstPage() {
		items[0].Page = current - 1
	}

	for _, n := range pg.Pages() {
		if n == 0 {
			items = append(items, Indicator{Label: ellipsis})
			continue
		}
		items = append(items, Indicator{Label: strconv.Itoa(n), Page: n, Current: n == current})
	}

	next := Indicator{Label: nextLabel}
	if !pg.p.OnLastPage() {
		next.Page = current + 1
	}
	return append(items, next)
}

func (pg Pager) changeTo(page int) tea.Cmd {
	if page < 1 || page > pg.p.TotalPages || page == pg.Current() {
		return nil
	}
	return emit(app.PageChange{Page: page})
}

func (pg Pager) Update(msg tea.Msg) (Pager, tea.Cmd) {
	if !pg.Visible() {
		return pg, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, pg.keys.NextPage):
			return pg, pg.changeTo(pg.Current() + 1)
		case key.Matches(msg, pg.keys.PrevPage):
			return pg, pg.changeTo(pg.Current() - 1)
		}

	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
			if page, ok := pg.HitTest(msg.X); ok {
				return pg, pg.changeTo(page)
			}
		}
	}

	return pg, nil
}

func (pg Pager) renderIndicator(ind Indicator) string {
	label := " " + ind.Label + " "
	switch {
	case ind.Current:
		return currentPageStyle.Render(label)
	case ind.Page == 0:
		return disabledPageStyle.Render(label)
	default:
		return pageStyle.Render(label)
	}
}

// HitTest maps a column on the pager line to a page number.
func (pg Pager) HitTest(x int) (int, bool) {
	pos := pagerLeft
	for _, ind := range pg.Indicators() {
		w := lipgloss.Width(pg.renderIndicator(ind))
		if x >= pos && x < pos+w {
			return ind.Page, ind.Page != 0
		}
		pos += w
	}
	return 0, false
}

func (pg Pager) View() string {
	if !pg.Visible() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", pagerLeft))
	for _, ind := range pg.Indicators() {
		sb.WriteString(pg.renderIndicator(ind))
	}
	sb.WriteString("  ")
	sb.WriteString(mutedTextStyle.Render(pg.p.View()))
	return sb.String()
}
