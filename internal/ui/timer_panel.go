package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dhyan/internal/config"
	"dhyan/internal/domain"
	"dhyan/internal/theme"
)

// timerRefreshInterval is how often the panel polls the engine snapshot
const timerRefreshInterval = 250 * time.Millisecond

// goalPlaceholder is shown when no focus goal has been written
const goalPlaceholder = "What do you want to focus on?"

// TimerPanel renders the session timer, the focus goal and the current quote
type TimerPanel struct {
	editingGoal bool
	goal        string
	goalInput   textinput.Model
	progress    progress.Model
	quoteIndex  int
	quotes      *config.QuoteConfig
	width       int
}

// NewTimerPanel creates the panel. quotes may be nil to disable the quote line.
func NewTimerPanel(quotes *config.QuoteConfig) *TimerPanel {
	ti := textinput.New()
	ti.Placeholder = goalPlaceholder
	ti.CharLimit = 120
	ti.Width = 50
	ti.PromptStyle = theme.FilterPromptStyle

	if quotes == nil {
		quotes = &config.QuoteConfig{}
	}

	return &TimerPanel{
		goalInput: ti,
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		quotes:    quotes,
		width:     60,
	}
}

// Init starts the snapshot polling and quote rotation loops
func (p *TimerPanel) Init() tea.Cmd {
	cmds := []tea.Cmd{pollTimerCmd()}
	if cmd := p.scheduleQuote(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func pollTimerCmd() tea.Cmd {
	return tea.Tick(timerRefreshInterval, func(time.Time) tea.Msg {
		return timerTickMsg{}
	})
}

func (p *TimerPanel) scheduleQuote() tea.Cmd {
	if !p.quotes.Enabled || len(p.quotes.Quotes) < 2 || p.quotes.Interval <= 0 {
		return nil
	}
	return tea.Tick(p.quotes.Interval, func(time.Time) tea.Msg {
		return rotateQuoteMsg{}
	})
}

// RotateQuote advances to the next quote and schedules the following rotation
func (p *TimerPanel) RotateQuote() tea.Cmd {
	p.quoteIndex = p.quotes.Next(p.quoteIndex)
	return p.scheduleQuote()
}

// Quote returns the quote currently shown
func (p *TimerPanel) Quote() string {
	return p.quotes.Get(p.quoteIndex)
}

// Goal returns the focus goal text
func (p *TimerPanel) Goal() string {
	return p.goal
}

// SetGoal replaces the focus goal text
func (p *TimerPanel) SetGoal(goal string) {
	p.goal = strings.TrimSpace(goal)
}

// EditingGoal reports whether the goal input has focus
func (p *TimerPanel) EditingGoal() bool {
	return p.editingGoal
}

// StartEditingGoal focuses the goal input prefilled with the current goal
func (p *TimerPanel) StartEditingGoal() tea.Cmd {
	p.editingGoal = true
	p.goalInput.SetValue(p.goal)
	p.goalInput.CursorEnd()
	return p.goalInput.Focus()
}

// UpdateGoal handles input while the goal is being edited.
// enter saves the goal and esc discards the edit.
func (p *TimerPanel) UpdateGoal(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			p.SetGoal(p.goalInput.Value())
			p.stopEditing()
			return nil
		case tea.KeyEsc:
			p.stopEditing()
			return nil
		}
	}

	var cmd tea.Cmd
	p.goalInput, cmd = p.goalInput.Update(msg)
	return cmd
}

func (p *TimerPanel) stopEditing() {
	p.editingGoal = false
	p.goalInput.Blur()
}

// SetWidth resizes the panel and its progress bar
func (p *TimerPanel) SetWidth(width int) {
	p.width = width
	p.progress.Width = max(min(width-4, 60), 10)
	p.goalInput.Width = max(width-6, 10)
}

// View renders the panel for the given engine snapshot
func (p *TimerPanel) View(session domain.Session) string {
	accent := theme.SessionColor(string(session.Type))

	tabs := make([]string, 0, len(domain.SessionTypes))
	for _, t := range domain.SessionTypes {
		if t == session.Type {
			tabs = append(tabs, theme.TabActiveStyle.Foreground(accent).Render(t.Label()))
			continue
		}
		tabs = append(tabs, theme.TabStyle.Render(t.Label()))
	}

	state := "paused"
	if session.Running {
		state = "running"
	}

	clock := theme.ClockStyle.Foreground(accent).Render(session.Formatted())
	status := theme.SessionCountStyle.Render(fmt.Sprintf("%s · focus sessions completed: %d", state, session.Count))

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		clock,
		p.progress.ViewAs(session.Progress()),
		status,
		"",
		p.goalView(),
	}
	if quote := p.Quote(); quote != "" {
		lines = append(lines, theme.QuoteStyle.Render("“"+quote+"”"))
	}

	return theme.PanelStyle.Width(max(p.width-2, 20)).Render(strings.Join(lines, "\n"))
}

func (p *TimerPanel) goalView() string {
	if p.editingGoal {
		return p.goalInput.View()
	}
	if p.goal == "" {
		return theme.TaskDueStyle.Render(goalPlaceholder)
	}
	return theme.FocusGoalStyle.Render("Focusing on: " + p.goal)
}
