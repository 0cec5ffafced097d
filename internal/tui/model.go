package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Toastaspiring/game-themed-to-do-list/internal/engine"
	"github.com/Toastaspiring/game-themed-to-do-list/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	tasks        []engine.Task
	achievements []engine.Achievement
	streak       engine.StreakState

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	tasks        []engine.Task
	achievements []engine.Achievement
	streak       engine.StreakState
}

type toggledMsg struct {
	res *engine.ToggleResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{
			tasks:        m.svc.Tasks(),
			achievements: m.svc.Achievements(),
			streak:       m.svc.Streak(),
		}
	}
}

func (m boardModel) toggleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.ToggleTask(m.ctx, id)
		return toggledMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.tasks = msg.tasks
		m.achievements = msg.achievements
		m.streak = msg.streak
		if m.selected >= len(m.tasks) {
			m.selected = len(m.tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Toggle failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res == nil {
			m.lastLog = "Task not found."
			return m, m.loadCmd()
		}
		if msg.res.Completed {
			m.lastLog = "Completed: " + msg.res.Task.Title
			if n := len(msg.res.Unlocked); n > 0 {
				m.lastLog += fmt.Sprintf(" — %d new badge(s)!", n)
			}
		} else {
			m.lastLog = "Reopened: " + msg.res.Task.Title
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			if m.selected < 0 || m.selected >= len(m.tasks) {
				return m, nil
			}
			t := m.tasks[m.selected]
			if t.Completed {
				m.lastLog = "Reopening " + t.Title + "…"
			} else {
				m.lastLog = "Completing " + t.Title + "…"
			}
			return m, m.toggleCmd(t.ID)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	leftW := 28
	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	streak := "no streak"
	if m.streak.Current > 0 {
		streak = fmt.Sprintf("%s %d day(s)", ui.IconFlame, m.streak.Current)
	}
	unlocked := 0
	for _, a := range m.achievements {
		if a.Unlocked {
			unlocked++
		}
	}
	return fmt.Sprintf("gtd | %s | %s %d/%d badges", streak, ui.IconTrophy, unlocked, len(m.achievements))
}

func (m boardModel) renderSidebar() string {
	lines := []string{"Recent badges"}
	recent := 0
	for i := len(m.achievements) - 1; i >= 0 && recent < 5; i-- {
		a := m.achievements[i]
		if !a.Unlocked {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s %s", a.Icon, a.Title))
		recent++
	}
	if recent == 0 {
		lines = append(lines, "(none yet)")
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- enter/space: toggle")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Tasks")
	if len(m.tasks) == 0 {
		out = append(out, "(empty)")
		return strings.Join(out, "\n")
	}
	for i, t := range m.tasks {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s%s %s %s", cursor, mark, ui.CategoryIcon(string(t.Category)), t.Title)
		if t.Category == engine.CategoryDaily && t.Streak > 0 {
			line += fmt.Sprintf(" (%s %d)", ui.IconFlame, t.Streak)
		}
		if t.Theme != "" {
			line += " #" + string(t.Theme)
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func padRight(s string, w int) string {
	if len([]rune(s)) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len([]rune(s)))
}
