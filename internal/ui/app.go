package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwhitby/rolodex/internal/config"
	"github.com/mwhitby/rolodex/internal/deeplink"
	"github.com/mwhitby/rolodex/internal/directory"
	"github.com/mwhitby/rolodex/internal/prefs"
	"github.com/mwhitby/rolodex/internal/query"
)

// chromeHeight is the number of lines around the record pane:
// header, search bar, footer status, footer help.
const chromeHeight = 4

// Options configures the UI.
type Options struct {
	Context context.Context
	Fetcher directory.Fetcher
	Prefs   *prefs.Store
	Config  config.Config
	Seed    deeplink.Seed
}

// Model is the root application state for Bubble Tea. Every mutation
// of the query state happens inside Update, so reads and writes within
// one message are atomic with respect to each other.
type Model struct {
	// Configuration
	ctx     context.Context
	fetcher directory.Fetcher
	prefs   *prefs.Store
	cfg     config.Config

	// UI state
	keys   keyMap
	help   help.Model
	theme  Theme
	width  int
	height int
	ready  bool

	// Data state
	collection directory.Collection
	companies  []string
	companyIdx int // 0 selects no filter, i+1 selects companies[i]

	// Query state and its derived view
	qry  query.Query
	view query.View

	// Search input and debounce generation. Each keystroke bumps the
	// generation; a pending commit whose generation no longer matches
	// is stale and dropped.
	searchInput textinput.Model
	debounceGen int

	// Record pane
	pane  viewport.Model
	pager paginator.Model
	spin  spinner.Model
}

// New creates the root model. The query state is seeded from the deep
// link before the first derivation, so a seeded start is identical to
// typing the same search and picking the same company by hand.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	dark := opts.Prefs != nil && opts.Prefs.DarkMode()

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search names"
	ti.CharLimit = 64
	ti.SetValue(opts.Seed.Search)

	pg := paginator.New()
	pg.Type = paginator.Dots

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	vp := viewport.New(0, 0)

	pageSize := opts.Config.PageSize
	if pageSize < 1 {
		pageSize = 1
	}

	return Model{
		ctx:     ctx,
		fetcher: opts.Fetcher,
		prefs:   opts.Prefs,
		cfg:     opts.Config,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		theme:   ThemeFor(dark),
		qry: query.Query{
			Search:   opts.Seed.Search,
			Company:  opts.Seed.Company,
			Page:     1,
			PageSize: pageSize,
		},
		searchInput: ti,
		pane:        vp,
		pager:       pg,
		spin:        sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		m.spin.Tick,
	}
	if m.fetcher != nil {
		cmds = append(cmds, loadDirectoryCmd(m.ctx, m.fetcher))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.pane, cmd = m.pane.Update(msg)
		if msg.Button == tea.MouseButtonWheelDown {
			m.advanceIfNearBottom()
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.pane.Width = msg.Width
		m.pane.Height = max(msg.Height-chromeHeight, 1)
		m.ready = true
		m.refreshPane()
		return m, nil

	case recordsLoadedMsg:
		m.collection.Ready(msg)
		m.companies = query.Companies(m.collection.Items)
		m.alignCompanyCursor()
		m.rederive()
		return m, nil

	case loadFailedMsg:
		m.collection.Fail(msg.err)
		return m, nil

	case searchDebouncedMsg:
		if msg.gen != m.debounceGen {
			// A newer keystroke restarted the quiet period.
			return m, nil
		}
		m.commitSearch(msg.value)
		return m, nil

	case spinner.TickMsg:
		if m.collection.Status != directory.StatusPending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchInput.Focused() {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.ToggleDark):
		m.theme = ThemeFor(!m.theme.Dark)
		if m.prefs != nil {
			// Write failures lose the preference for the next
			// session, nothing more.
			_ = m.prefs.SetDarkMode(m.theme.Dark)
		}
		m.refreshPane()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.ToggleSort):
		m.qry.Sort = m.qry.Sort.Toggle()
		m.qry.Page = 1
		m.rederive()
		return m, nil

	case key.Matches(msg, m.keys.NextCompany):
		m.cycleCompany(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevCompany):
		m.cycleCompany(-1)
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.movePage(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.movePage(-1)
		return m, nil

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down),
		key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.pane, cmd = m.pane.Update(msg)
		if key.Matches(msg, m.keys.Down) || key.Matches(msg, m.keys.PageDown) {
			m.advanceIfNearBottom()
		}
		return m, cmd
	}

	return m, nil
}

// handleSearchKey processes keyboard input while the search input is
// focused. Text changes do not commit directly: they restart the
// debounce quiet period.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.searchInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		// Enter commits immediately and cancels any pending tick.
		m.searchInput.Blur()
		m.debounceGen++
		m.commitSearch(m.searchInput.Value())
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.scheduleSearchCommit())
}

// scheduleSearchCommit starts a new debounce generation for the current
// input value. Older generations are invalidated immediately, so a tick
// from a superseded keystroke can never commit an intermediate value.
func (m *Model) scheduleSearchCommit() tea.Cmd {
	m.debounceGen++
	gen := m.debounceGen
	value := m.searchInput.Value()
	return tea.Tick(m.cfg.DebounceInterval(), func(time.Time) tea.Msg {
		return searchDebouncedMsg{gen: gen, value: value}
	})
}

// commitSearch applies a debounced (or confirmed) search value. A
// changed filter invalidates the old page position, so the page resets
// to 1 before re-clamping.
func (m *Model) commitSearch(value string) {
	if value == m.qry.Search {
		return
	}
	m.qry.Search = value
	m.qry.Page = 1
	m.rederive()
}

// cycleCompany steps the company filter through "" plus the distinct
// companies present in the directory.
func (m *Model) cycleCompany(delta int) {
	if len(m.companies) == 0 {
		return
	}
	n := len(m.companies) + 1
	m.companyIdx = ((m.companyIdx+delta)%n + n) % n
	if m.companyIdx == 0 {
		m.qry.Company = ""
	} else {
		m.qry.Company = m.companies[m.companyIdx-1]
	}
	m.qry.Page = 1
	m.rederive()
}

// movePage moves directly to an adjacent page, clamped to the current
// page count. Unlike filter changes, this keeps the other dimensions.
func (m *Model) movePage(delta int) {
	if m.collection.Status != directory.StatusReady {
		return
	}
	next := query.ClampPage(m.qry.Page+delta, m.view.PageCount)
	if next == m.qry.Page {
		return
	}
	m.qry.Page = next
	m.rederive()
}

// advanceIfNearBottom advances to the next page when the scroll
// position is within the near-bottom threshold of the pane's end. It
// only ever moves forward and never past the page count; only the
// current page's slice is shown, so advancing swaps the page rather
// than accumulating it.
func (m *Model) advanceIfNearBottom() {
	if m.collection.Status != directory.StatusReady {
		return
	}
	if m.qry.Page >= m.view.PageCount {
		return
	}
	below := m.pane.TotalLineCount() - (m.pane.YOffset + m.pane.Height)
	if below >= m.nearBottomThreshold() {
		return
	}
	m.qry.Page++
	m.rederive()
}

func (m Model) nearBottomThreshold() int {
	if m.cfg.NearBottom > 0 {
		return m.cfg.NearBottom
	}
	return 5
}

// rederive recomputes the derived view after any query or collection
// change. Clamping reads the freshly derived page count, never a stale
// one.
func (m *Model) rederive() {
	m.view = query.Derive(m.collection.Items, m.qry)
	m.qry.Page = query.ClampPage(m.qry.Page, m.view.PageCount)
	m.syncPager()
	m.refreshPane()
}

func (m *Model) syncPager() {
	m.pager.TotalPages = max(m.view.PageCount, 1)
	m.pager.Page = m.qry.Page - 1
}

// alignCompanyCursor points the cycle cursor at the seeded company when
// it exists in the directory. An unknown seeded company still filters
// (to an empty set); cycling then starts over from "all".
func (m *Model) alignCompanyCursor() {
	m.companyIdx = 0
	if m.qry.Company == "" {
		return
	}
	for i, name := range m.companies {
		if strings.EqualFold(name, m.qry.Company) {
			m.companyIdx = i + 1
			return
		}
	}
}

// refreshPane rebuilds the record pane content for the current page and
// theme, scrolled back to the top.
func (m *Model) refreshPane() {
	if !m.ready {
		return
	}
	m.pane.SetContent(m.renderRecords())
	m.pane.GotoTop()
}

// Messages

type recordsLoadedMsg []directory.Record

type loadFailedMsg struct{ err error }

type searchDebouncedMsg struct {
	gen   int
	value string
}

// Commands

func loadDirectoryCmd(ctx context.Context, fetcher directory.Fetcher) tea.Cmd {
	return func() tea.Msg {
		records, err := fetcher.FetchRecords(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return recordsLoadedMsg(records)
	}
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
