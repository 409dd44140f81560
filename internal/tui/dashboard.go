package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/tidvakt/internal/cli/formatter"
	"github.com/alexanderramin/tidvakt/internal/domain"
	"github.com/alexanderramin/tidvakt/internal/service"
)

// Deps are the engines the dashboard drives.
type Deps struct {
	Timer  service.TimerService
	Ledger service.LedgerService
	Week   service.WeekService
	Clock  domain.Clock
}

type tickMsg time.Time

type dataMsg struct {
	timers []*domain.RunningTimer
	today  *service.Aggregate
	week   *service.WeekStatus
	err    error
}

type statusMsg struct {
	text  string
	isErr bool
}

// Model is the live dashboard: a one-second tick drives both the display
// and the timer policy.
type Model struct {
	deps Deps
	keys keyMap
	help help.Model

	timers []*domain.RunningTimer
	today  *service.Aggregate
	week   *service.WeekStatus

	status string
	isErr  bool

	width  int
	height int
}

func NewModel(deps Deps) Model {
	return Model{deps: deps, keys: keys, help: help.New()}
}

// Run starts the dashboard in the alternate screen.
func Run(deps Deps) error {
	_, err := tea.NewProgram(NewModel(deps), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadData(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) loadData() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		now := m.deps.Clock.Now()

		timers, err := m.deps.Timer.List(ctx)
		if err != nil {
			return dataMsg{err: err}
		}
		today, err := m.deps.Ledger.Aggregate(ctx, now, now)
		if err != nil {
			return dataMsg{err: err}
		}
		week, err := m.deps.Week.Status(ctx, domain.WeekKeyFor(now))
		if err != nil {
			return dataMsg{err: err}
		}
		return dataMsg{timers: timers, today: today, week: week}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case dataMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			m.isErr = true
			return m, nil
		}
		m.timers = msg.timers
		m.today = msg.today
		m.week = msg.week
		return m, nil

	case statusMsg:
		m.status = msg.text
		m.isErr = msg.isErr
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.runTick(), tickCmd())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// runTick evaluates the auto-pause/auto-stop policy and refreshes the data
// when a transition was applied.
func (m Model) runTick() tea.Cmd {
	return func() tea.Msg {
		events, err := m.deps.Timer.Tick(context.Background(), m.deps.Clock.Now())
		if err != nil {
			return statusMsg{text: err.Error(), isErr: true}
		}
		if len(events) == 0 {
			return nil
		}
		return m.loadData()()
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any keypress counts as operator activity.
	touch := func() {
		ctx := context.Background()
		for _, t := range m.timers {
			if !t.Paused() {
				_ = m.deps.Timer.RecordActivity(ctx, t.ID)
			}
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Start):
		touch()
		if len(m.timers) > 0 {
			return m, nil
		}
		return m, func() tea.Msg {
			if _, err := m.deps.Timer.Start(context.Background(), "", "", ""); err != nil {
				return statusMsg{text: err.Error(), isErr: true}
			}
			return m.loadData()()
		}

	case key.Matches(msg, m.keys.Pause):
		touch()
		if len(m.timers) == 0 {
			return m, nil
		}
		t := m.timers[0]
		return m, func() tea.Msg {
			ctx := context.Background()
			var err error
			if t.Paused() {
				err = m.deps.Timer.Resume(ctx, t.ID)
			} else {
				err = m.deps.Timer.Pause(ctx, t.ID)
			}
			if err != nil {
				return statusMsg{text: err.Error(), isErr: true}
			}
			return m.loadData()()
		}

	case key.Matches(msg, m.keys.Stop):
		if len(m.timers) == 0 {
			return m, nil
		}
		t := m.timers[0]
		return m, func() tea.Msg {
			if _, err := m.deps.Timer.Stop(context.Background(), t.ID); err != nil {
				return statusMsg{text: err.Error(), isErr: true}
			}
			return m.loadData()()
		}
	}

	touch()
	return m, nil
}

func (m Model) View() string {
	if m.width < 30 {
		return "Terminal too small"
	}
	w := m.width - 4

	sections := []string{
		m.renderTimerPanel(w),
		m.renderSummaryPanel(w),
	}
	if m.status != "" {
		style := mutedStyle
		if m.isErr {
			style = errorStyle
		}
		sections = append(sections, style.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTimerPanel(w int) string {
	now := m.deps.Clock.Now()

	if len(m.timers) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Center,
			timerStyle.Width(w-6).Render("00:00:00"),
			mutedStyle.Render("■  STOPPED"),
			mutedStyle.Render("Press s to start tracking"),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	for i, t := range m.timers {
		indicator := runningStyle.Render("●  RUNNING")
		if t.Paused() {
			indicator = pausedStyle.Render("⏸  PAUSED")
		}
		line := lipgloss.JoinVertical(lipgloss.Center,
			timerStyle.Width(w-6).Render(formatter.Elapsed(t.Elapsed(now))),
			indicator,
		)
		if label := describe(t); label != "" {
			line = lipgloss.JoinVertical(lipgloss.Center, line, mutedStyle.Render(label))
		}
		rows = append(rows, line)
		if i < len(m.timers)-1 {
			rows = append(rows, "")
		}
	}
	return activePanelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (m Model) renderSummaryPanel(w int) string {
	var rows []string

	if m.today != nil {
		rows = append(rows, fmt.Sprintf("%s  %s",
			titleStyle.Render("Today"), formatter.Minutes(m.today.TotalMinutes)))
	}
	if m.week != nil {
		rows = append(rows, fmt.Sprintf("%s  %s  %s",
			titleStyle.Render("Week "+m.week.WeekKey),
			formatter.Minutes(m.week.TotalMinutes),
			formatter.WeekStatePill(m.week.State)))
	}
	if len(rows) == 0 {
		rows = append(rows, mutedStyle.Render("Loading..."))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func describe(t *domain.RunningTimer) string {
	switch {
	case t.Customer != "" && t.Project != "":
		return t.Customer + " / " + t.Project
	case t.Customer != "":
		return t.Customer
	default:
		return t.Project
	}
}
