// Package tui is a small terminal browser for an owner's pending
// reminders: a refreshing table with cancel-by-row.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/camontes/resinabot/internal/models"
	"github.com/camontes/resinabot/internal/storage"
)

const refreshEvery = 30 * time.Second

type refreshMsg struct{}

type remindersMsg struct {
	reminders []models.Reminder
	err       error
}

type Model struct {
	store  storage.Provider
	owner  string
	table  table.Model
	rows   []models.Reminder
	status string
}

func NewModel(store storage.Provider, owner string) Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Reminder", Width: 44},
			{Title: "In", Width: 10},
			{Title: "Due", Width: 17},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	return Model{store: store, owner: owner, table: t}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadReminders, scheduleRefresh())
}

func scheduleRefresh() tea.Cmd {
	return tea.Tick(refreshEvery, func(time.Time) tea.Msg {
		return refreshMsg{}
	})
}

func (m Model) loadReminders() tea.Msg {
	reminders, err := m.store.ListByOwner(m.owner)
	return remindersMsg{reminders: reminders, err: err}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Refresh):
			return m, m.loadReminders
		case key.Matches(msg, keys.Cancel):
			return m.cancelSelected()
		}

	case refreshMsg:
		return m, tea.Batch(m.loadReminders, scheduleRefresh())

	case remindersMsg:
		if msg.err != nil {
			m.status = dangerStyle.Render(fmt.Sprintf("load failed: %v", msg.err))
			return m, nil
		}
		m.rows = msg.reminders
		m.table.SetRows(m.tableRows())
		m.status = fmt.Sprintf("%d reminder(s), refreshed %s", len(m.rows), time.Now().Format("15:04:05"))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) cancelSelected() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return m, nil
	}
	target := m.rows[idx]
	deleted, err := m.store.DeleteReminder(target.ID)
	if err != nil {
		m.status = dangerStyle.Render(fmt.Sprintf("cancel failed: %v", err))
		return m, nil
	}
	if !deleted {
		// Delivered while we were looking at it.
		m.status = "reminder already gone"
	} else {
		m.status = fmt.Sprintf("cancelled %q", target.Description)
	}
	return m, m.loadReminders
}

func (m Model) tableRows() []table.Row {
	now := time.Now()
	rows := make([]table.Row, 0, len(m.rows))
	for i, r := range m.rows {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			r.Description,
			fmt.Sprintf("%d min", r.RemainingMinutes(now)),
			r.DueAt.Local().Format("2006-01-02 15:04"),
		})
	}
	return rows
}

func (m Model) View() string {
	header := titleStyle.Render(fmt.Sprintf("Resin reminders: %s", m.owner))
	help := statusStyle.Render("r refresh · d cancel · q quit")
	body := m.table.View()
	if len(m.rows) == 0 {
		body = statusStyle.Render("No active reminders.")
	}
	return docStyle.Render(header + "\n\n" + body + "\n\n" + m.status + "\n" + help)
}

// Run launches the browser and blocks until the user quits.
func Run(store storage.Provider, owner string) error {
	_, err := tea.NewProgram(NewModel(store, owner), tea.WithAltScreen()).Run()
	return err
}
