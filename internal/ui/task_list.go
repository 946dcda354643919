package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"dhyan/internal/domain"
	"dhyan/internal/services"
	"dhyan/internal/theme"
)

// TaskFilter selects which tasks the panel shows
type TaskFilter int

const (
	FilterAll TaskFilter = iota
	FilterUpcoming
	FilterOverdue
)

// Label returns the display name of the filter
func (f TaskFilter) Label() string {
	switch f {
	case FilterUpcoming:
		return "upcoming"
	case FilterOverdue:
		return "overdue"
	}
	return "all"
}

// Next returns the filter that follows f in the cycle
func (f TaskFilter) Next() TaskFilter {
	return (f + 1) % 3
}

// TaskItem implements list.Item
type TaskItem struct {
	Overdue  bool
	Task     domain.Task
	Upcoming bool
}

// FilterValue implements list.Item
func (i TaskItem) FilterValue() string {
	return i.Task.Title + " " + i.Task.Description
}

// TaskDelegate renders one task per line
type TaskDelegate struct{}

// Height implements list.ItemDelegate
func (d TaskDelegate) Height() int {
	return 1
}

// Spacing implements list.ItemDelegate
func (d TaskDelegate) Spacing() int {
	return 0
}

// Update implements list.ItemDelegate
func (d TaskDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate
func (d TaskDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(TaskItem)
	if !ok {
		return
	}

	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}
	fmt.Fprint(w, cursor+renderTaskLine(item, index == m.Index(), m.Width()-len(cursor)))
}

// renderTaskLine renders checkbox, title, priority and due date of a task
func renderTaskLine(item TaskItem, selected bool, width int) string {
	t := item.Task

	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}

	title := t.Title
	switch {
	case t.Completed:
		title = theme.TaskCompletedStyle.Render(title)
	case selected:
		title = theme.TaskSelectedStyle.Render(title)
	default:
		title = theme.TaskTitleStyle.Render(title)
	}

	parts := []string{check, title, theme.PriorityStyle(string(t.Priority)).Render(priorityBadge(t.Priority))}

	if t.DueDate != nil {
		due := "due " + formatDue(t)
		switch {
		case item.Overdue:
			parts = append(parts, theme.TaskOverdueStyle.Render(due+" (overdue)"))
		case item.Upcoming:
			parts = append(parts, theme.TaskUpcomingStyle.Render(due))
		default:
			parts = append(parts, theme.TaskDueStyle.Render(due))
		}
	}

	line := strings.Join(parts, " ")
	if t.Description != "" {
		line += theme.TaskDueStyle.Render(" · " + truncate(t.Description, max(width-len(stripAnsi(line))-3, 0)))
	}
	return line
}

func priorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return "!!!"
	case domain.PriorityLow:
		return "!"
	}
	return "!!"
}

// formatDue renders the due date relative to today when close
func formatDue(t domain.Task) string {
	today := domain.DateOf(time.Now())
	due := *t.DueDate
	var day string
	switch {
	case due == today:
		day = "today"
	case due == domain.DateOf(time.Now().AddDate(0, 0, 1)):
		day = "tomorrow"
	default:
		day = due.String()
	}
	return day + " " + t.DueTime
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return ""
	}
	return string(runes[:width-1]) + "…"
}

// TaskList is the task panel: a filterable list over the TaskStore
type TaskList struct {
	filter TaskFilter
	keys   KeyMap
	list   list.Model
	now    func() time.Time
	store  *services.TaskStore
	width  int
}

// NewTaskList creates a task panel showing all tasks
func NewTaskList(store *services.TaskStore, keys KeyMap) *TaskList {
	l := list.New(nil, TaskDelegate{}, 80, 10)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.KeyMap = taskListKeyMap(keys)

	tl := &TaskList{
		keys:  keys,
		list:  l,
		now:   time.Now,
		store: store,
	}
	tl.Refresh()
	return tl
}

// taskListKeyMap limits the list to navigation and search so task action
// keys never reach its paging shortcuts
func taskListKeyMap(keys KeyMap) list.KeyMap {
	km := list.DefaultKeyMap()
	km.CursorUp = keys.Navigation.Up.Binding
	km.CursorDown = keys.Navigation.Down.Binding
	km.Filter = keys.Navigation.Filter.Binding
	km.ClearFilter = keys.Navigation.Cancel.Binding
	km.CancelWhileFiltering = keys.Navigation.Cancel.Binding
	km.NextPage = key.NewBinding(key.WithKeys("pgdown"))
	km.PrevPage = key.NewBinding(key.WithKeys("pgup"))
	km.GoToStart = key.NewBinding(key.WithKeys("home"))
	km.GoToEnd = key.NewBinding(key.WithKeys("end"))
	km.ShowFullHelp.SetEnabled(false)
	km.CloseFullHelp.SetEnabled(false)
	km.Quit.SetEnabled(false)
	km.ForceQuit.SetEnabled(false)
	return km
}

// Refresh rebuilds the items from the store using the current filter
func (tl *TaskList) Refresh() tea.Cmd {
	var tasks []domain.Task
	switch tl.filter {
	case FilterUpcoming:
		tasks = tl.store.Upcoming()
	case FilterOverdue:
		tasks = tl.store.Overdue()
	default:
		tasks = tl.store.All()
	}

	now := tl.now()
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = TaskItem{
			Overdue:  t.IsOverdue(now),
			Task:     t,
			Upcoming: t.IsUpcoming(now),
		}
	}
	return tl.list.SetItems(items)
}

// CycleFilter moves to the next filter and refreshes
func (tl *TaskList) CycleFilter() tea.Cmd {
	tl.filter = tl.filter.Next()
	tl.list.Select(0)
	return tl.Refresh()
}

// Filter returns the active filter
func (tl *TaskList) Filter() TaskFilter {
	return tl.filter
}

// SelectedTask returns the highlighted task, nil when the list is empty
func (tl *TaskList) SelectedTask() *domain.Task {
	item, ok := tl.list.SelectedItem().(TaskItem)
	if !ok {
		return nil
	}
	t := item.Task
	return &t
}

// SelectID highlights the task with id if it is visible
func (tl *TaskList) SelectID(id string) {
	for i, listItem := range tl.list.VisibleItems() {
		if item, ok := listItem.(TaskItem); ok && item.Task.ID == id {
			tl.list.Select(i)
			return
		}
	}
}

// Searching reports whether the user is typing a search query
func (tl *TaskList) Searching() bool {
	return tl.list.FilterState() == list.Filtering
}

// SearchApplied reports whether a search query narrows the list
func (tl *TaskList) SearchApplied() bool {
	return tl.list.FilterState() == list.FilterApplied
}

// SetSize sets the panel dimensions. One line is reserved for the header.
func (tl *TaskList) SetSize(width, height int) {
	tl.width = width
	tl.list.SetSize(width, max(height-1, 1))
}

// Update forwards navigation and search input to the list
func (tl *TaskList) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	tl.list, cmd = tl.list.Update(msg)
	return cmd
}

// View renders the header line and the list
func (tl *TaskList) View() string {
	by, order := tl.store.Sort()
	stats := tl.store.Stats()

	header := theme.PanelTitleStyle.Render("Tasks") +
		theme.TaskDueStyle.Render(fmt.Sprintf("  %d pending · %d done · %d overdue   filter: %s   sort: %s %s",
			stats.Pending, stats.Completed, stats.Overdue, tl.filter.Label(), by.Label(), order))

	if len(tl.list.Items()) == 0 {
		return header + "\n" + theme.TaskDueStyle.Render(tl.emptyMessage())
	}
	return header + "\n" + tl.list.View()
}

func (tl *TaskList) emptyMessage() string {
	switch tl.filter {
	case FilterUpcoming:
		return "  Nothing coming up."
	case FilterOverdue:
		return "  Nothing overdue."
	}
	return fmt.Sprintf("  No tasks yet. Press %s to add one.", tl.keys.Tasks.New.Binding.Help().Key)
}
