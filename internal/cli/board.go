package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/twillhq/talentboard/internal/alerts"
	"github.com/twillhq/talentboard/internal/app"
	"github.com/twillhq/talentboard/internal/cli/formatter"
)

func newBoardCmd(a *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive pipeline board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return fmt.Errorf("board needs a terminal; use alerts or role list instead")
			}
			now, err := a.evalTime(flags)
			if err != nil {
				return err
			}
			m := newBoardModel(a, flags.advisor, now)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

type boardMode int

const (
	boardRoles boardMode = iota
	boardCandidates
)

// boardLoadedMsg carries the role list and dashboard alerts.
type boardLoadedMsg struct {
	roles  []app.RoleListItem
	alerts *app.DashboardAlertsResponse
	err    error
}

// roleLoadedMsg carries one role's overview.
type roleLoadedMsg struct {
	overview *app.RoleOverview
	err      error
}

type alertClearedMsg struct {
	name string
	err  error
}

type boardKeyMap struct {
	Open    key.Binding
	Back    key.Binding
	Clear   key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func newBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open role")),
		Back:    key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear alert")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type boardHelp struct {
	keys boardKeyMap
	mode boardMode
}

func (h boardHelp) ShortHelp() []key.Binding {
	if h.mode == boardCandidates {
		return []key.Binding{h.keys.Clear, h.keys.Back, h.keys.Refresh, h.keys.Quit}
	}
	return []key.Binding{h.keys.Open, h.keys.Refresh, h.keys.Quit}
}

func (h boardHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// boardModel lists roles with their alert counts and drills into a role's
// candidates.
type boardModel struct {
	app     *App
	advisor string
	now     time.Time

	mode     boardMode
	roles    []app.RoleListItem
	alerts   *app.DashboardAlertsResponse
	overview *app.RoleOverview

	table  table.Model
	help   help.Model
	keys   boardKeyMap
	status string
	err    error

	loading bool
	height  int
}

func newBoardModel(a *App, advisor string, now time.Time) boardModel {
	t := table.New(
		table.WithColumns(roleColumns()),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(formatter.ColorHeader).Bold(true)
	styles.Selected = styles.Selected.Foreground(formatter.ColorGreen).Bold(true)
	t.SetStyles(styles)

	return boardModel{
		app:     a,
		advisor: advisor,
		now:     now,
		table:   t,
		help:    help.New(),
		keys:    newBoardKeyMap(),
		loading: true,
	}
}

func roleColumns() []table.Column {
	return []table.Column{
		{Title: "Role", Width: 26},
		{Title: "Client", Width: 16},
		{Title: "Priority", Width: 14},
		{Title: "Active", Width: 7},
		{Title: "Prob", Width: 5},
		{Title: "Alerts", Width: 6},
	}
}

func candidateColumns() []table.Column {
	return []table.Column{
		{Title: "Candidate", Width: 22},
		{Title: "Stage", Width: 20},
		{Title: "In stage", Width: 9},
		{Title: "Wait", Width: 9},
		{Title: "Next", Width: 30},
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadBoard()
}

func (m boardModel) loadBoard() tea.Cmd {
	a, advisor, now := m.app, m.advisor, m.now
	return func() tea.Msg {
		ctx := context.Background()
		roles, err := a.Roles.List(ctx, advisor)
		if err != nil {
			return boardLoadedMsg{err: err}
		}
		resp, err := a.Alerts.DashboardAlerts(ctx, app.DashboardAlertsRequest{Now: &now, AdvisorID: advisor})
		return boardLoadedMsg{roles: roles, alerts: resp, err: err}
	}
}

func (m boardModel) loadRole(roleID string) tea.Cmd {
	a, now := m.app, m.now
	return func() tea.Msg {
		ov, err := a.Roles.Overview(context.Background(), roleID, now)
		return roleLoadedMsg{overview: ov, err: err}
	}
}

func (m boardModel) clearAlert(candidateID, name string) tea.Cmd {
	a, now := m.app, m.now
	return func() tea.Msg {
		_, err := a.Candidates.ClearAlert(context.Background(), candidateID, now)
		return alertClearedMsg{name: name, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.help.Width = msg.Width
		if h := msg.Height - 10; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case boardLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.roles = msg.roles
		m.alerts = msg.alerts
		if m.mode == boardRoles {
			m.showRoles()
		}
		return m, nil

	case roleLoadedMsg:
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.overview = msg.overview
		m.mode = boardCandidates
		m.showCandidates()
		return m, nil

	case alertClearedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = "Cleared alert for " + msg.name
		cmds := []tea.Cmd{m.loadBoard()}
		if m.overview != nil {
			cmds = append(cmds, m.loadRole(m.overview.Role.ID))
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m boardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Refresh):
		m.status = ""
		cmds := []tea.Cmd{m.loadBoard()}
		if m.mode == boardCandidates && m.overview != nil {
			cmds = append(cmds, m.loadRole(m.overview.Role.ID))
		}
		return m, tea.Batch(cmds...)

	case m.mode == boardRoles && key.Matches(msg, m.keys.Open):
		i := m.table.Cursor()
		if i < 0 || i >= len(m.roles) {
			return m, nil
		}
		m.status = ""
		return m, m.loadRole(m.roles[i].Role.ID)

	case m.mode == boardCandidates && key.Matches(msg, m.keys.Back):
		m.mode = boardRoles
		m.overview = nil
		m.status = ""
		m.showRoles()
		return m, nil

	case m.mode == boardCandidates && key.Matches(msg, m.keys.Clear):
		if m.overview == nil {
			return m, nil
		}
		i := m.table.Cursor()
		if i < 0 || i >= len(m.overview.Candidates) {
			return m, nil
		}
		c := m.overview.Candidates[i].Candidate
		return m, m.clearAlert(c.ID, c.Name)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// showRoles swaps the table to the role list. Rows are emptied first so the
// previous rows never render against the new columns.
func (m *boardModel) showRoles() {
	counts := roleAlertCounts(m.alerts)
	rows := make([]table.Row, 0, len(m.roles))
	for _, it := range m.roles {
		rows = append(rows, table.Row{
			it.Role.Title,
			it.ClientName,
			string(it.Role.Priority),
			fmt.Sprintf("%d/%d", it.ActiveCount, it.TotalCount),
			fmt.Sprintf("%d%%", it.Probability),
			fmt.Sprint(counts[it.Role.ID]),
		})
	}
	m.table.SetRows(nil)
	m.table.SetColumns(roleColumns())
	m.table.SetRows(rows)
	m.clampCursor(len(rows))
}

func (m *boardModel) showCandidates() {
	rows := make([]table.Row, 0, len(m.overview.Candidates))
	for _, v := range m.overview.Candidates {
		next := make([]string, len(v.Options))
		for i, s := range v.Options {
			next[i] = s.Label()
		}
		rows = append(rows, table.Row{
			v.Candidate.Name,
			v.Candidate.CurrentStage.Label(),
			formatter.BusinessDays(v.DaysInStage),
			string(v.WaitLevel),
			strings.Join(next, ", "),
		})
	}
	m.table.SetRows(nil)
	m.table.SetColumns(candidateColumns())
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// clampCursor keeps the cursor on a real row. Emptying the table parks the
// cursor at -1, so it is raised as well as lowered.
func (m *boardModel) clampCursor(n int) {
	switch cur := m.table.Cursor(); {
	case n == 0:
		m.table.SetCursor(0)
	case cur < 0:
		m.table.SetCursor(0)
	case cur >= n:
		m.table.SetCursor(n - 1)
	}
}

// roleAlertCounts counts alerting candidates per role across all categories.
func roleAlertCounts(resp *app.DashboardAlertsResponse) map[string]int {
	counts := make(map[string]int)
	if resp == nil {
		return counts
	}
	for _, b := range resp.Alerts.Buckets() {
		for _, r := range b.Roles {
			counts[r.RoleID] += len(r.Candidates)
		}
	}
	return counts
}

func (m boardModel) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading board...")
	}

	var b strings.Builder
	b.WriteString(formatter.Header("talentboard") + "  " + formatter.Dim("as of "+m.now.Format("Mon Jan 2 15:04 MST")) + "\n")
	b.WriteString(m.alertLine() + "\n\n")

	if m.mode == boardCandidates && m.overview != nil {
		b.WriteString(fmt.Sprintf("%s  %s  %s\n\n",
			formatter.Bold(m.overview.Role.Title),
			formatter.Dim(m.overview.ClientName),
			formatter.RenderProbability(m.overview.Probability, 10)))
	}

	if m.mode == boardRoles && len(m.roles) == 0 {
		b.WriteString("  " + formatter.Dim("No roles.") + "\n")
	} else {
		b.WriteString(m.table.View() + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString("\n" + formatter.StyleGreen.Render(m.status) + "\n")
	}

	b.WriteString("\n" + m.help.View(boardHelp{keys: m.keys, mode: m.mode}))
	return b.String()
}

func (m boardModel) alertLine() string {
	if m.alerts == nil || m.alerts.Alerts.TotalCount == 0 {
		return formatter.StyleGreen.Render("No alerts")
	}
	critical, urgent := 0, 0
	for _, bucket := range m.alerts.Alerts.Buckets() {
		n := 0
		for _, r := range bucket.Roles {
			n += len(r.Candidates)
		}
		if bucket.Category.Tier() == alerts.TierCritical {
			critical += n
		} else {
			urgent += n
		}
	}
	return fmt.Sprintf("%s %d   %s %d",
		formatter.TierBadge(alerts.TierCritical), critical,
		formatter.TierBadge(alerts.TierUrgent), urgent)
}
