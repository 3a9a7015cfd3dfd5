package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/sebastiantruijens/moviesearch/internal/app"
	"github.com/sebastiantruijens/moviesearch/internal/logger"
	"github.com/sebastiantruijens/moviesearch/internal/query"
	"github.com/sebastiantruijens/moviesearch/internal/tmdb"
)

const sweepInterval = time.Minute

type focus int

const (
	focusSearch focus = iota
	focusGrid
)

// Options tunes the model.
type Options struct {
	RequestTimeout time.Duration
	MinQueryLength int
	ToastDuration  time.Duration
}

// Model is the root of the terminal UI. It forwards component events to the
// orchestrator and runs the effects it returns.
type Model struct {
	orch    *app.Orchestrator
	client  *query.Client
	opts    Options
	keys    keyMap
	search  SearchBar
	grid    Grid
	pager   Pager
	overlay Overlay
	toaster Toaster
	spinner spinner.Model
	help    help.Model
	focus   focus
	width   int
	height  int
}

// New creates the root model
func New(orch *app.Orchestrator, client *query.Client, links tmdb.Links, opts Options) Model {
	keys := defaultKeyMap()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(primaryColor)

	h := help.New()
	h.Styles.ShortKey = mutedTextStyle
	h.Styles.ShortDesc = mutedTextStyle

	m := Model{
		orch:    orch,
		client:  client,
		opts:    opts,
		keys:    keys,
		search:  NewSearchBar(),
		grid:    NewGrid(links, keys),
		pager:   NewPager(keys),
		overlay: NewOverlay(links, keys),
		spinner: sp,
		help:    h,
		focus:   focusSearch,
		width:   80,
		height:  24,
	}
	m.layout()
	return m
}

func sweepTick() tea.Cmd {
	return tea.Tick(sweepInterval, func(time.Time) tea.Msg {
		return sweepMsg{}
	})
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, sweepTick())
}

// Update handles messages and user input
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case eventMsg:
		return m.dispatch(msg.event)

	case fetchDoneMsg:
		return m.dispatch(app.FetchDone{Key: msg.key, Page: msg.page, Err: msg.err})

	case toastExpiredMsg:
		m.toaster.Dismiss(msg.id)
		return m, nil

	case sweepMsg:
		if n := m.client.Cache().Sweep(); n > 0 {
			logger.Debug("evicted expired searches", "count", n)
		}
		return m, sweepTick()

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case openBrowserMsg:
		if msg.err != nil {
			logger.Warn("failed to open browser", "error", msg.err)
			cmd = m.toast(app.LevelError, "Could not open the browser")
		}
		return m, cmd

	case copyLinkMsg:
		if msg.err != nil {
			logger.Warn("failed to copy link", "error", msg.err)
			cmd = m.toast(app.LevelError, "Could not copy the link")
		} else {
			cmd = m.toast(app.LevelInfo, "Link copied to clipboard")
		}
		return m, cmd
	}

	// Anything else (cursor blink) belongs to the focused input
	if m.focus == focusSearch {
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	if m.overlay.IsOpen() {
		m.overlay, cmd = m.overlay.Update(msg)
		return m, cmd
	}

	if m.focus == focusSearch {
		switch {
		case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.Escape):
			m.focusGrid()
			return m, nil
		}
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Search), key.Matches(msg, m.keys.Focus):
		cmd = m.focusSearch()
		return m, cmd
	case key.Matches(msg, m.keys.NextPage), key.Matches(msg, m.keys.PrevPage):
		m.pager, cmd = m.pager.Update(msg)
		return m, cmd
	}

	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.overlay.IsOpen() {
		// the wheel still reaches the grid, which ignores it while locked
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			m.grid, _ = m.grid.Update(msg)
		}
		msg.Y -= maxToasts
		m.overlay, cmd = m.overlay.Update(msg)
		return m, cmd
	}

	top := m.gridTop()
	switch {
	case msg.Y == top+m.gridHeight():
		m.pager, cmd = m.pager.Update(msg)
	case msg.Y >= top && msg.Y < top+m.gridHeight():
		msg.Y -= top
		m.grid, cmd = m.grid.Update(msg)
		if cmd != nil {
			m.focusGrid()
		}
	}
	return m, cmd
}

// dispatch hands ev to the orchestrator and runs the resulting effects.
func (m Model) dispatch(ev app.Event) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	for _, eff := range m.orch.Dispatch(ev) {
		switch eff := eff.(type) {
		case app.Fetch:
			cmds = append(cmds, m.fetch(eff.Key))
		case app.Notify:
			cmds = append(cmds, m.toaster.Push(eff.Notification))
		case app.ScrollTop:
			m.grid.ScrollTop()
		case app.LockScroll:
			m.grid.SetScrollLocked(true)
			if sel := m.orch.Selected(); sel != nil {
				m.overlay.Open(*sel)
			}
		case app.UnlockScroll:
			m.grid.SetScrollLocked(false)
			m.overlay.Close()
		}
	}

	if sub, ok := ev.(app.Submit); ok && strings.TrimSpace(sub.Text) != "" {
		m.focusGrid()
	}

	m.sync()
	return m, tea.Batch(cmds...)
}

func (m Model) fetch(k query.Key) tea.Cmd {
	client := m.client
	timeout := m.opts.RequestTimeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		page, err := client.Fetch(ctx, k)
		return fetchDoneMsg{key: k, page: page, err: err}
	}
}

func (m *Model) toast(level app.Level, text string) tea.Cmd {
	return m.toaster.Push(app.Notification{
		ID:       uuid.NewString(),
		Level:    level,
		Text:     text,
		Duration: m.opts.ToastDuration,
	})
}

// sync copies orchestrator state into the presentation components.
func (m *Model) sync() {
	r := m.orch.Result()
	m.grid.SetMovies(m.orch.Movies())
	m.grid.SetDimmed(r.IsPlaceholder)
	m.pager.Sync(m.orch.Page(), m.orch.TotalPages())
}

func (m *Model) focusGrid() {
	m.focus = focusGrid
	m.search.Blur()
}

func (m *Model) focusSearch() tea.Cmd {
	m.focus = focusSearch
	return m.search.Focus()
}

// quit releases the scroll lock before the program exits.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.grid.SetScrollLocked(false)
	m.overlay.Close()
	return m, tea.Quit
}

func (m *Model) layout() {
	m.grid.SetSize(m.width, m.gridHeight())
	m.overlay.SetSize(m.width, m.height-maxToasts)
	m.help.Width = m.width
}

// gridTop is the first screen row of the result grid.
func (m Model) gridTop() int {
	return lipgloss.Height(m.headerView())
}

// gridHeight leaves room for the pager and help lines.
func (m Model) gridHeight() int {
	return max(cardHeight, m.height-lipgloss.Height(m.headerView())-2)
}

func (m Model) headerView() string {
	var sb strings.Builder
	sb.WriteString(m.toaster.View(m.width))
	sb.WriteString("\n")
	sb.WriteString(titleStyle.Render(" 🎬 Movie Search"))
	sb.WriteString("\n")
	sb.WriteString(m.search.View())
	sb.WriteString("\n")
	sb.WriteString(m.statusView())
	return sb.String()
}

func (m Model) statusView() string {
	r := m.orch.Result()

	switch m.orch.Phase() {
	case app.PhaseLoading:
		return " " + m.spinner.View() + normalTextStyle.Render(fmt.Sprintf("Searching \"%s\"...", r.Key.Query))

	case app.PhaseLoaded:
		line := fmt.Sprintf(" %d results · page %d of %d", m.orch.TotalResults(), m.orch.Page(), max(m.orch.TotalPages(), 1))
		s := subtitleStyle.Render(line)
		if r.IsFetching {
			s += mutedTextStyle.Render(" · updating…")
		}
		return s

	case app.PhaseError:
		return " " + errorStyle.Render("Something went wrong.")

	default:
		if m.orch.Query() == "" {
			return " " + mutedTextStyle.Render("Type a movie title and press Enter")
		}
		return " " + mutedTextStyle.Render(fmt.Sprintf("Type at least %d characters to search", m.opts.MinQueryLength))
	}
}

func (m Model) helpView() string {
	switch {
	case m.overlay.IsOpen():
		return m.help.View(overlayKeyMap{m.keys})
	case m.focus == focusSearch:
		return m.help.View(searchKeyMap{m.keys})
	default:
		return m.help.View(m.keys)
	}
}

// View renders the current UI
func (m Model) View() string {
	if m.overlay.IsOpen() {
		return lipgloss.JoinVertical(lipgloss.Left, m.toaster.View(m.width), m.overlay.View())
	}

	body := ""
	if m.orch.Phase() != app.PhaseError {
		body = m.grid.View()
	}
	area := lipgloss.NewStyle().
		Height(m.gridHeight()).
		MaxHeight(m.gridHeight()).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		area,
		m.pager.View(),
		" "+m.helpView(),
	)
}
