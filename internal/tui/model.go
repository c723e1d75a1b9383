package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskhero/internal/engine"
	"taskhero/internal/ui"
)

type boardModel struct {
	ctx      context.Context
	svc      *engine.Service
	interval time.Duration
	keys     keyMap

	width  int
	height int

	snap     *engine.Snapshot
	selected int

	adding bool
	input  textinput.Model

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	snap *engine.Snapshot
	err  error
}

type toggledMsg struct {
	id        int64
	completed bool
	err       error
}

type addedMsg struct {
	task *engine.Task
	err  error
}

type goalMsg struct {
	tier   engine.Tier
	stored uint32
	err    error
}

type tickMsg time.Time

func newBoardModel(ctx context.Context, svc *engine.Service, interval time.Duration) boardModel {
	if interval <= 0 {
		interval = time.Second
	}
	in := textinput.New()
	in.Placeholder = "name | description | due date | priority"
	in.CharLimit = 256
	in.Width = 60

	return boardModel{
		ctx:      ctx,
		svc:      svc,
		interval: interval,
		keys:     defaultKeyMap(),
		input:    in,
		loading:  true,
		lastLog:  "Loading…",
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.tickCmd())
}

func (m boardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// loadCmd runs every evaluation pass and persists the result.
func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.svc.Refresh(m.ctx)
		return loadedMsg{snap: snap, err: err}
	}
}

func (m boardModel) toggleCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		completed, err := m.svc.ToggleTask(m.ctx, id)
		return toggledMsg{id: id, completed: completed, err: err}
	}
}

func (m boardModel) addCmd(in engine.AddTaskInput) tea.Cmd {
	return func() tea.Msg {
		task, err := m.svc.AddTask(m.ctx, in)
		return addedMsg{task: task, err: err}
	}
}

func (m boardModel) goalCmd(tier engine.Tier, delta int) tea.Cmd {
	if m.snap == nil {
		return nil
	}
	next := int(m.snap.State.Goal(tier)) + delta
	return func() tea.Msg {
		stored, err := m.svc.SetGoal(m.ctx, tier, next)
		return goalMsg{tier: tier, stored: stored, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		return m, tea.Batch(m.loadCmd(), m.tickCmd())
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = failed("Load failed", msg.err)
			return m, nil
		}
		m.snap = msg.snap
		m.clampSelection()
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = failed("Update failed", msg.err)
			return m, nil
		}
		if msg.completed {
			m.lastLog = fmt.Sprintf("Completed #%d.", msg.id)
		} else {
			m.lastLog = fmt.Sprintf("Reopened #%d.", msg.id)
		}
		return m, m.loadCmd()
	case addedMsg:
		if msg.err != nil {
			m.lastLog = failed("Add failed", msg.err)
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Added #%d %s.", msg.task.ID, msg.task.Name)
		return m, m.loadCmd()
	case goalMsg:
		if msg.err != nil {
			m.lastLog = failed("Goal update failed", msg.err)
			return m, nil
		}
		m.lastLog = fmt.Sprintf("%s goal set to %d.", msg.tier, msg.stored)
		return m, m.loadCmd()
	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateBoard(msg)
	}
	return m, nil
}

func (m boardModel) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.adding = false
		m.input.Blur()
		m.input.Reset()
		m.lastLog = "Add cancelled."
		return m, nil
	case tea.KeyEnter:
		in, err := parseQuickAdd(m.input.Value())
		if err != nil {
			m.lastLog = err.Error()
			return m, nil
		}
		m.adding = false
		m.input.Blur()
		m.input.Reset()
		return m, m.addCmd(in)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m boardModel) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		m.lastLog = "Refreshing…"
		return m, m.loadCmd()
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.snap != nil && m.selected < len(m.snap.Tasks)-1 {
			m.selected++
		}
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.lastLog = "New task: enter to save, esc to cancel."
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Toggle):
		if m.snap == nil || len(m.snap.Tasks) == 0 {
			m.lastLog = "No tasks yet. Press a to add one."
			return m, nil
		}
		return m, m.toggleCmd(m.snap.Tasks[m.selected].ID)
	case key.Matches(msg, m.keys.BronzeUp):
		return m, m.goalCmd(engine.TierBronze, 1)
	case key.Matches(msg, m.keys.BronzeDown):
		return m, m.goalCmd(engine.TierBronze, -1)
	case key.Matches(msg, m.keys.SilverUp):
		return m, m.goalCmd(engine.TierSilver, 1)
	case key.Matches(msg, m.keys.SilverDown):
		return m, m.goalCmd(engine.TierSilver, -1)
	case key.Matches(msg, m.keys.GoldUp):
		return m, m.goalCmd(engine.TierGold, 1)
	case key.Matches(msg, m.keys.GoldDown):
		return m, m.goalCmd(engine.TierGold, -1)
	}
	return m, nil
}

func failed(what string, err error) string {
	return ui.Warn.Render(ui.IconWarn + " " + what + ": " + err.Error())
}

func (m *boardModel) clampSelection() {
	n := 0
	if m.snap != nil {
		n = len(m.snap.Tasks)
	}
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// parseQuickAdd splits "name | description | due | priority". Priority is
// optional; the other three are required by AddTask.
func parseQuickAdd(s string) (engine.AddTaskInput, error) {
	parts := strings.Split(s, "|")
	if len(parts) < 3 {
		return engine.AddTaskInput{}, errors.New("use: name | description | due date | priority")
	}
	in := engine.AddTaskInput{
		Name:        strings.TrimSpace(parts[0]),
		Description: strings.TrimSpace(parts[1]),
		DueDate:     strings.TrimSpace(parts[2]),
		Priority:    engine.DefaultPriority,
	}
	if len(parts) > 3 {
		in.Priority = engine.ParsePriority(parts[3])
	}
	return in, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	left := m.renderTasks()
	right := m.renderAchievements()

	colW := 0
	if m.width > 0 {
		colW = m.width/2 - 4
		if colW < 24 {
			colW = 24
		}
	}
	leftPanel := ui.Panel
	rightPanel := ui.Panel
	if colW > 0 {
		leftPanel = leftPanel.Width(colW)
		rightPanel = rightPanel.Width(colW)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel.Render(left), rightPanel.Render(right))

	return header + "\n" + body + "\n" + m.renderFooter()
}

func (m boardModel) renderHeader() string {
	if m.snap == nil {
		return ui.Heading(ui.IconHero, "TaskHero")
	}
	return ui.Heading(ui.IconHero, fmt.Sprintf("TaskHero | %s | Points %d | %d/%d done",
		m.snap.Today, m.snap.State.Points, m.snap.Completed, len(m.snap.Tasks)))
}

func (m boardModel) renderTasks() string {
	lines := []string{ui.PanelTitle.Render("Tasks")}
	if m.snap == nil {
		return strings.Join(append(lines, "Loading…"), "\n")
	}
	if len(m.snap.Tasks) == 0 {
		lines = append(lines, ui.Muted.Render("(empty, press a to add)"))
	}
	for i, t := range m.snap.Tasks {
		row := fmt.Sprintf("%s %s %s", ui.Checkbox(t.Completed), t.Name, ui.Muted.Render("("+t.Priority.String()+", due "+t.DueDate+")"))
		if i == m.selected {
			row = ui.SelectedRow.Render("> ") + row
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}
	if m.selected >= 0 && m.selected < len(m.snap.Tasks) {
		t := m.snap.Tasks[m.selected]
		lines = append(lines, "", ui.PanelTitle.Render("Details"),
			ui.LabelValue("Name", t.Name),
			ui.LabelValue("Description", t.Description),
			ui.LabelValue("Due", t.DueDate),
			ui.LabelValue("Priority", fmt.Sprintf("%s (%d pts)", t.Priority, t.Points())),
			ui.LabelValue("Completed", t.Completed))
	}
	lines = append(lines, "", ui.PanelTitle.Render("Keys"))
	lines = append(lines, m.keys.helpLines()...)
	return strings.Join(lines, "\n")
}

func (m boardModel) renderAchievements() string {
	if m.snap == nil {
		return ui.PanelTitle.Render("Achievements") + "\nLoading…"
	}
	st := m.snap.State
	lines := []string{
		ui.PanelTitle.Render("Achievements"),
		st.AchievementMessage,
		"",
	}
	for _, p := range m.snap.Progress {
		name := p.Tier.String()
		bar := ui.ProgressBar(int(p.PointsRequired-p.PointsToGo), int(p.PointsRequired), 14)
		lines = append(lines, fmt.Sprintf("%s %s %d to go | tasks %d/%d",
			ui.TierText(name, fmt.Sprintf("%-7s", name)), bar, p.PointsToGo, p.Completed, p.Goal))
	}
	lines = append(lines, "", ui.PanelTitle.Render("Completed Challenges"))
	done := engine.CompletedChallenges(st.Points)
	if len(done) == 0 {
		lines = append(lines, ui.Muted.Render("(none yet)"))
	}
	for _, t := range done {
		lines = append(lines, ui.TierText(t.String(), t.String()+" level challenge completed!"))
	}
	lines = append(lines,
		"",
		ui.PanelTitle.Render(ui.IconGift+" Daily reward"),
		fmt.Sprintf("%d pts: %s", st.DailyReward, st.DailyRewardMessage),
		"",
		ui.PanelTitle.Render(ui.IconFlame+" Weekly challenge"),
		ui.WeekStrip(m.snap.Week[:]),
		st.WeeklyChallengeMessage,
	)
	return strings.Join(lines, "\n")
}

func (m boardModel) renderFooter() string {
	if m.adding {
		return m.input.View() + "\n" + m.lastLog
	}
	return m.lastLog
}
