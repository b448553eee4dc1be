package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/playzone/internal/leaderboard"
	"github.com/vovakirdan/playzone/internal/registry"
	"github.com/vovakirdan/playzone/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show game list sidebar
	sidebarWidth       = 24  // Width of game list sidebar
	maxScores          = 100 // Max scores to load
	leaderboardSize    = 20
	leaderboardTimeout = 10 * time.Second
)

var leaderboardSorts = []string{
	storage.SortTotalScore,
	storage.SortGamesPlayed,
	storage.SortBestStreak,
}

type scoreboardTab int

const (
	tabScores scoreboardTab = iota
	tabLeaderboard
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Tab      key.Binding
	Sort     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Tab, k.Sort, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Tab, k.Sort, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev game"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next game"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev game"),
		),
		Tab: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "scores/leaderboard"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// leaderboardMsg carries a fetched ranking.
type leaderboardMsg struct {
	sortBy  string
	records []leaderboard.Record
	source  leaderboard.Source
	err     error
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen: local
// score history per game, aggregate stats and the leaderboard.
type ScoreboardModel struct {
	games       []registry.GameInfo
	gameCursor  int
	services    Services
	scores      []storage.ScoreEntry
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool

	tab       scoreboardTab
	sortIdx   int
	lbTable   table.Model
	lbRecords []leaderboard.Record
	lbSource  leaderboard.Source
	lbErr     error
	lbLoading bool
	userID    string
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(svc Services, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		games:       registry.List(),
		services:    svc,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	if svc.Profiles != nil {
		if id, err := svc.Profiles.EnsureUserID(); err == nil {
			m.userID = id
		}
	}

	m.table = m.createTable()
	m.lbTable = m.createLeaderboardTable()

	if len(m.games) > 0 {
		m.loadScores(m.games[0].ID)
	}

	return m
}

func styledTable(columns []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// createTable creates the local scores table.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if tableWidth > 40 {
		columns[1].Width = 12
		columns[2].Width = min(tableWidth-22, 20)
	}

	return styledTable(columns, m.height-10)
}

// createLeaderboardTable creates the ranking table.
func (m *ScoreboardModel) createLeaderboardTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 20},
		{Title: "Total", Width: 8},
		{Title: "Games", Width: 7},
		{Title: "Streak", Width: 7},
		{Title: "Favourite", Width: 20},
	}
	if m.width < 80 {
		columns = columns[:5]
	}
	return styledTable(columns, m.height-10)
}

// loadScores loads scores for the given game ID.
func (m *ScoreboardModel) loadScores(gameID string) {
	m.scores = nil
	if m.services.Store != nil {
		scores, err := m.services.Store.TopScores(gameID, maxScores)
		if err != nil {
			m.services.logger().Warn("cannot load scores", "game", gameID, "err", err)
		}
		m.scores = scores
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) updateLeaderboardRows() {
	wide := len(m.lbTable.Columns()) > 5
	rows := make([]table.Row, len(m.lbRecords))
	for i, r := range m.lbRecords {
		player := r.Avatar + " " + r.Username
		if r.ID != "" && r.ID == m.userID {
			player += " (you)"
		}
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			strconv.Itoa(r.TotalScore),
			strconv.Itoa(r.GamesPlayed),
			strconv.Itoa(r.BestStreak),
		}
		if wide {
			row = append(row, r.FavoriteGame)
		}
		rows[i] = row
	}
	m.lbTable.SetRows(rows)
	m.lbTable.GotoTop()
}

func (m ScoreboardModel) sortBy() string {
	return leaderboardSorts[m.sortIdx]
}

// fetchLeaderboard loads the ranking off the UI goroutine.
func (m ScoreboardModel) fetchLeaderboard() tea.Cmd {
	syncer, sortBy := m.services.Leaderboard, m.sortBy()
	return func() tea.Msg {
		if syncer == nil {
			return leaderboardMsg{sortBy: sortBy, err: fmt.Errorf("leaderboard is not available")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), leaderboardTimeout)
		defer cancel()
		recs, src, err := syncer.Top(ctx, sortBy, leaderboardSize)
		return leaderboardMsg{sortBy: sortBy, records: recs, source: src, err: err}
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab):
			if m.tab == tabScores {
				m.tab = tabLeaderboard
				m.lbLoading = true
				return m, m.fetchLeaderboard()
			}
			m.tab = tabScores
			return m, nil

		case m.tab == tabLeaderboard && key.Matches(msg, m.keys.Sort):
			m.sortIdx = (m.sortIdx + 1) % len(leaderboardSorts)
			m.lbLoading = true
			return m, m.fetchLeaderboard()

		case m.tab == tabScores && (key.Matches(msg, m.keys.NextGame) || key.Matches(msg, m.keys.Right)):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.loadScores(m.games[m.gameCursor].ID)
			}
			return m, nil

		case m.tab == tabScores && (key.Matches(msg, m.keys.PrevGame) || key.Matches(msg, m.keys.Left)):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + len(m.games) - 1) % len(m.games)
				m.loadScores(m.games[m.gameCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			if m.tab == tabLeaderboard {
				m.lbTable, cmd = m.lbTable.Update(msg)
			} else {
				m.table, cmd = m.table.Update(msg)
			}
			return m, cmd
		}

	case leaderboardMsg:
		if msg.sortBy != m.sortBy() {
			return m, nil // stale
		}
		m.lbLoading = false
		m.lbRecords, m.lbSource, m.lbErr = msg.records, msg.source, msg.err
		m.updateLeaderboardRows()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.lbTable = m.createLeaderboardTable()
		m.updateLeaderboardRows()
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

var (
	sbTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	sbBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	sbDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sbEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString(sbTitleStyle.Render(centerText(m.title(), m.width)))
	b.WriteString("\n")
	if line := m.totalsLine(); line != "" {
		b.WriteString(centerStyled(sbDimStyle, line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.tab == tabLeaderboard:
		b.WriteString(centerText(sbBoxStyle.Render(m.renderLeaderboard()), m.width))
	case m.showSidebar:
		b.WriteString(m.renderWideLayout())
	default:
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(sbDimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) title() string {
	if m.tab == tabLeaderboard {
		return "LEADERBOARD - by " + m.sortBy()
	}
	if len(m.games) > 0 {
		return "HIGH SCORES - " + m.games[m.gameCursor].Title
	}
	return "HIGH SCORES"
}

func (m ScoreboardModel) totalsLine() string {
	if m.services.Stats == nil {
		return ""
	}
	ctx := context.Background()
	t := m.services.Stats.Stats(ctx)
	line := fmt.Sprintf("Games played %d  Total score %d  Best streak %d",
		t.GamesPlayed, t.TotalScore, t.BestStreak)
	if m.tab == tabScores && len(m.games) > 0 {
		line += fmt.Sprintf("  |  Best %d", m.services.Stats.HighScore(ctx, m.games[m.gameCursor].ID))
	}
	return line
}

// renderWideLayout renders the scoreboard with sidebar for game selection.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := sbBoxStyle.Width(sidebarWidth)

	var sidebar strings.Builder
	sidebar.WriteString("Games\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.games {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.gameCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + truncate(g.Title, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", sbBoxStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the scoreboard with game tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.games))
	plain := 0
	for i, g := range m.games {
		name := truncate(g.Title, 10)
		plain += len(name) + 3
		if i == m.gameCursor {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(" " + name + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if plain > m.width-4 && len(m.games) > 0 {
		tabLine = fmt.Sprintf("< %s >", m.games[m.gameCursor].Title)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(sbBoxStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		return sbEmptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

func (m ScoreboardModel) renderLeaderboard() string {
	switch {
	case m.lbLoading && len(m.lbRecords) == 0:
		return sbEmptyStyle.Render("Loading leaderboard...")
	case m.lbErr != nil:
		return sbEmptyStyle.Render("Leaderboard unavailable:\n" + m.lbErr.Error())
	case len(m.lbRecords) == 0:
		return sbEmptyStyle.Render("Nobody is on the leaderboard yet.\nSet a username with 'playzone profile set'.")
	}
	source := "local mirror"
	if m.lbSource == leaderboard.SourceRemote {
		source = "online"
	}
	return m.lbTable.View() + "\n" + sbDimStyle.Render("source: "+source)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(svc Services, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(svc, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
