package ui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"dhyan/internal/config"
	"dhyan/internal/domain"
	"dhyan/internal/logging"
	"dhyan/internal/services"
	"dhyan/internal/theme"
)

// volumeStep is the ambient volume change per key press
const volumeStep = 0.1

// noticeDuration is how long a notice stays on the bottom line
const noticeDuration = 6 * time.Second

type uiState int

const (
	stateMain uiState = iota
	stateCommandPalette
	stateConfirmingDelete
	stateEditingTask
	stateHelp
	statePickingSound
)

// keyAction pairs a binding with the message it dispatches
type keyAction struct {
	binding key.Binding
	msg     tea.Msg
}

type Model struct {
	audio           *services.AudioManager
	commandPalette  *CommandPalette
	completions     int           // Last seen engine completion count
	deleteConfirm   *Dialog       // Delete confirmation dialog
	deleteConfirmed *bool         // Pointer so the huh form can write through updates
	devMode         bool          // Development mode (shows version info in headers)
	errorManager    *ErrorManager // Error display and auto-clearing
	height          int
	helpScreen      *Dialog
	keys            KeyMap
	notice          string
	noticeGen       int
	soundPicker     *Dialog
	state           uiState
	taskForm        *Dialog
	taskList        *TaskList
	taskToDelete    *domain.Task
	tasks           *services.TaskStore
	timer           *services.TimerEngine
	timerPanel      *TimerPanel
	tipIndex        int
	width           int
}

func NewModel(
	errorClearDelay time.Duration,
	devMode bool,
	quotes *config.QuoteConfig,
	keysConfig config.KeyBindingsConfig,
	timer *services.TimerEngine,
	audio *services.AudioManager,
	tasks *services.TaskStore,
) *Model {
	keys := NewKeyMap(keysConfig)

	return &Model{
		audio:        audio,
		completions:  timer.Snapshot().Completions,
		devMode:      devMode,
		errorManager: NewErrorManager(errorClearDelay),
		keys:         keys,
		state:        stateMain,
		taskList:     NewTaskList(tasks, keys),
		tasks:        tasks,
		timer:        timer,
		timerPanel:   NewTimerPanel(quotes),
	}
}

// ShowError displays err on the bottom line once the program starts
func (m *Model) ShowError(err error) {
	m.errorManager.SetError(err)
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.timerPanel.Init()}
	if m.errorManager.HasError() {
		cmds = append(cmds, m.errorManager.ClearAfterDelay())
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Background loops run whatever dialog is open
	switch msg := msg.(type) {
	case timerTickMsg:
		return m, tea.Batch(pollTimerCmd(), m.observeTimer())
	case rotateQuoteMsg:
		m.tipIndex++
		return m, m.timerPanel.RotateQuote()
	case clearErrorMsg:
		m.errorManager.handleClear(msg)
		return m, nil
	case clearNoticeMsg:
		if msg.generation == m.noticeGen {
			m.notice = ""
		}
		return m, nil
	case soundResultMsg:
		if msg.err != nil {
			return m, m.setError(fmt.Errorf("failed to play %s: %w", msg.sound.Name, msg.err))
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.timerPanel.SetWidth(msg.Width)
	}

	switch m.state {
	case stateMain:
		return m.updateMain(msg)
	case stateCommandPalette:
		return m.updateCommandPalette(msg)
	case stateConfirmingDelete:
		return m.updateConfirmingDelete(msg)
	case stateEditingTask:
		return m.updateEditingTask(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case statePickingSound:
		return m.updatePickingSound(msg)
	}
	return m, nil
}

// observeTimer announces session completions seen since the last poll
func (m *Model) observeTimer() tea.Cmd {
	snapshot := m.timer.Snapshot()
	if snapshot.Completions == m.completions {
		return nil
	}
	m.completions = snapshot.Completions

	message := "Session complete! Up next: " + snapshot.Type.Label()
	if snapshot.Type == domain.SessionFocus {
		message = "Break over. Ready to focus?"
	}
	logging.Logger.Debug("Session completion observed", "next", snapshot.Type)
	return m.setNotice(message)
}

// keyActions lists the bindings handled on the main screen
func (m *Model) keyActions() []keyAction {
	k := m.keys
	return []keyAction{
		{k.Application.Quit.Binding, QuitMsg{}},
		{k.Application.Help.Binding, ShowHelpMsg{}},
		{k.Application.CommandPalette.Binding, ShowCommandPaletteMsg{}},
		{k.Timer.StartPause.Binding, ToggleTimerMsg{}},
		{k.Timer.Reset.Binding, ResetTimerMsg{}},
		{k.Timer.StartFocus.Binding, SwitchSessionMsg{Type: domain.SessionFocus}},
		{k.Timer.ShortBreak.Binding, SwitchSessionMsg{Type: domain.SessionShortBreak}},
		{k.Timer.LongBreak.Binding, SwitchSessionMsg{Type: domain.SessionLongBreak}},
		{k.Timer.FocusGoal.Binding, EditFocusGoalMsg{}},
		{k.Sound.Picker.Binding, ShowSoundPickerMsg{}},
		{k.Sound.Stop.Binding, StopSoundMsg{}},
		{k.Sound.Mute.Binding, ToggleMuteMsg{}},
		{k.Sound.VolumeUp.Binding, AdjustVolumeMsg{Delta: volumeStep}},
		{k.Sound.VolumeDown.Binding, AdjustVolumeMsg{Delta: -volumeStep}},
		{k.Tasks.New.Binding, NewTaskMsg{}},
		{k.Tasks.Edit.Binding, EditTaskMsg{}},
		{k.Tasks.Toggle.Binding, ToggleTaskMsg{}},
		{k.Tasks.Delete.Binding, DeleteTaskMsg{}},
		{k.Tasks.CycleSort.Binding, CycleSortMsg{}},
		{k.Tasks.ToggleOrder.Binding, ToggleSortOrderMsg{}},
		{k.Tasks.CycleFilter.Binding, CycleFilterMsg{}},
	}
}

func (m *Model) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// Action messages dispatched from the palette arrive here too
		if model, cmd, handled := m.handleAction(msg); handled {
			return model, cmd
		}
		return m, m.taskList.Update(msg)
	}

	if key.Matches(keyMsg, m.keys.Application.ForceQuit.Binding) {
		return m, tea.Quit
	}
	if m.timerPanel.EditingGoal() {
		return m, m.timerPanel.UpdateGoal(msg)
	}
	// Search input owns the keyboard while typing
	if m.taskList.Searching() {
		return m, m.taskList.Update(msg)
	}
	if m.taskList.SearchApplied() && key.Matches(keyMsg, m.keys.Navigation.Cancel.Binding) {
		return m, m.taskList.Update(msg)
	}

	dispatcher := NewActionDispatcher(m.taskList.SelectedTask())
	for _, action := range m.keyActions() {
		if !key.Matches(keyMsg, action.binding) {
			continue
		}
		// Task actions without a selection are ignored
		actionMsg := dispatcher.Dispatch(KeyDefinition{Msg: action.msg})
		if actionMsg == nil {
			return m, nil
		}
		model, cmd, _ := m.handleAction(actionMsg)
		return model, cmd
	}

	return m, m.taskList.Update(msg)
}

// handleAction performs an action message. handled is false for messages
// that are not actions.
func (m *Model) handleAction(msg tea.Msg) (model tea.Model, cmd tea.Cmd, handled bool) {
	switch msg := msg.(type) {
	case QuitMsg:
		return m, tea.Quit, true

	case ShowHelpMsg:
		m.helpScreen = NewDialog("Help", NewHelpScreen(&m.keys), m.devMode)
		m.state = stateHelp
		// Send initial WindowSizeMsg so viewport can initialize
		initCmd := m.helpScreen.Init()
		updated, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.helpScreen = updated.(*Dialog)
		return m, tea.Batch(initCmd, sizeCmd), true

	case ShowCommandPaletteMsg:
		var title string
		if task := m.taskList.SelectedTask(); task != nil {
			title = task.Title
		}
		m.commandPalette = NewCommandPalette(title, m.keys)
		m.state = stateCommandPalette
		initCmd := m.commandPalette.Init()
		_, sizeCmd := m.commandPalette.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return m, tea.Batch(initCmd, sizeCmd), true

	case ToggleTimerMsg:
		m.timer.Toggle()
		return m, nil, true

	case ResetTimerMsg:
		m.timer.Reset()
		return m, nil, true

	case SwitchSessionMsg:
		if m.timer.Snapshot().Running {
			return m, m.setNotice("Pause the timer before switching sessions"), true
		}
		if err := m.timer.SwitchSession(msg.Type); err != nil {
			return m, m.setError(err), true
		}
		return m, nil, true

	case EditFocusGoalMsg:
		return m, m.timerPanel.StartEditingGoal(), true

	case ShowSoundPickerMsg:
		m.soundPicker = NewDialog("Ambient Sound", NewSoundPicker(m.audio), m.devMode)
		m.state = statePickingSound
		return m, m.soundPicker.Init(), true

	case StopSoundMsg:
		m.audio.PauseSound()
		return m, nil, true

	case ToggleMuteMsg:
		m.audio.ToggleMute()
		return m, nil, true

	case AdjustVolumeMsg:
		m.audio.AdjustVolume(msg.Delta)
		return m, nil, true

	case NewTaskMsg:
		m.taskForm = NewDialog("Add Task", NewTaskForm(m.tasks, nil), m.devMode)
		m.state = stateEditingTask
		return m, m.taskForm.Init(), true

	case EditTaskMsg:
		task, ok := m.tasks.Get(msg.TaskID)
		if !ok {
			return m, m.setError(fmt.Errorf("%w: task %q", domain.ErrNotFound, msg.TaskID)), true
		}
		m.taskForm = NewDialog("Edit Task", NewTaskForm(m.tasks, &task), m.devMode)
		m.state = stateEditingTask
		return m, m.taskForm.Init(), true

	case ToggleTaskMsg:
		_, err := m.tasks.Toggle(context.Background(), msg.TaskID)
		return m, m.afterTaskChange(msg.TaskID, "failed to update task", err), true

	case DeleteTaskMsg:
		task, ok := m.tasks.Get(msg.TaskID)
		if !ok {
			return m, m.setError(fmt.Errorf("%w: task %q", domain.ErrNotFound, msg.TaskID)), true
		}
		m.taskToDelete = &task
		m.deleteConfirm = m.createDeleteDialog(task)
		m.state = stateConfirmingDelete
		return m, m.deleteConfirm.Init(), true

	case CycleSortMsg:
		by, order := m.tasks.Sort()
		i := slices.Index(domain.SortKeys, by)
		m.tasks.SetSort(domain.SortKeys[(i+1)%len(domain.SortKeys)], order)
		return m, m.taskList.Refresh(), true

	case ToggleSortOrderMsg:
		by, order := m.tasks.Sort()
		m.tasks.SetSort(by, order.Toggle())
		return m, m.taskList.Refresh(), true

	case CycleFilterMsg:
		return m, m.taskList.CycleFilter(), true
	}

	return m, nil, false
}

// afterTaskChange refreshes the list and reports err. Persistence failures keep
// the in-memory change, so the list is refreshed either way.
func (m *Model) afterTaskChange(selectID, action string, err error) tea.Cmd {
	refreshCmd := m.taskList.Refresh()
	if selectID != "" {
		m.taskList.SelectID(selectID)
	}
	if err == nil {
		return refreshCmd
	}

	logging.Logger.Warn("Task change failed", "action", action, "error", err)
	if errors.Is(err, domain.ErrPersistenceFailure) {
		return tea.Batch(refreshCmd, m.setError(fmt.Errorf("%s: changes are kept for this session only: %w", action, err)))
	}
	return tea.Batch(refreshCmd, m.setError(fmt.Errorf("%s: %w", action, err)))
}

func (m *Model) setError(err error) tea.Cmd {
	m.errorManager.SetError(err)
	return m.errorManager.ClearAfterDelay()
}

func (m *Model) setNotice(notice string) tea.Cmd {
	m.notice = notice
	m.noticeGen++
	generation := m.noticeGen
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg{generation: generation}
	})
}

func (m *Model) updateCommandPalette(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.commandPalette.Update(msg)
	m.commandPalette = updated.(*CommandPalette)

	if !m.commandPalette.Completed {
		return m, cmd
	}

	result := m.commandPalette.Result
	m.state = stateMain
	m.commandPalette = nil
	if result.Cancelled || result.Action == nil {
		return m, nil
	}

	dispatcher := NewActionDispatcher(m.taskList.SelectedTask())
	actionMsg := dispatcher.Dispatch(*result.Action)
	if actionMsg == nil {
		return m, m.setNotice("Select a task first")
	}
	model, actionCmd, _ := m.handleAction(actionMsg)
	return model, actionCmd
}

func (m *Model) updateEditingTask(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.taskForm.Update(msg)
	m.taskForm = updated.(*Dialog)

	form, ok := m.taskForm.Content().(*TaskForm)
	if !ok || !form.Completed {
		return m, cmd
	}

	result := form.Result()
	m.state = stateMain
	m.taskForm = nil
	if result.Cancelled {
		return m, nil
	}
	return m, m.afterTaskChange(result.Task.ID, "failed to save task", result.Error)
}

func (m *Model) updatePickingSound(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.soundPicker.Update(msg)
	m.soundPicker = updated.(*Dialog)

	picker, ok := m.soundPicker.Content().(*SoundPicker)
	if !ok || !picker.Completed {
		return m, cmd
	}

	result := picker.Result()
	m.state = stateMain
	m.soundPicker = nil
	if result.Cancelled {
		return m, nil
	}
	return m, playSoundCmd(m.audio, result.Sound)
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateMain
		m.helpScreen = nil
		return m, nil
	}
	return m, cmd
}

// createDeleteDialog builds the confirmation shown before deleting a task
func (m *Model) createDeleteDialog(task domain.Task) *Dialog {
	m.deleteConfirmed = new(bool)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q?", task.Title)).
				Description("This cannot be undone.").
				Value(m.deleteConfirmed).
				Affirmative("Delete").
				Negative("Keep"),
		),
	)
	return NewDialog("Delete Task", form, m.devMode)
}

func (m *Model) updateConfirmingDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Navigation.Cancel.Binding) {
		m.closeDeleteDialog()
		return m, nil
	}

	updated, cmd := m.deleteConfirm.Update(msg)
	m.deleteConfirm = updated.(*Dialog)

	form, ok := m.deleteConfirm.Content().(*huh.Form)
	if !ok {
		return m, cmd
	}
	switch form.State {
	case huh.StateAborted:
		m.closeDeleteDialog()
		return m, nil
	case huh.StateCompleted:
		task := m.taskToDelete
		confirmed := *m.deleteConfirmed
		m.closeDeleteDialog()
		if !confirmed || task == nil {
			return m, nil
		}
		logging.Logger.Info("Deleting task from TUI", "id", task.ID)
		err := m.tasks.Delete(context.Background(), task.ID)
		return m, m.afterTaskChange("", "failed to delete task", err)
	}
	return m, cmd
}

func (m *Model) closeDeleteDialog() {
	m.state = stateMain
	m.deleteConfirm = nil
	m.deleteConfirmed = nil
	m.taskToDelete = nil
}

func (m *Model) View() string {
	switch m.state {
	case stateMain:
		return m.mainView()
	case stateCommandPalette:
		if m.commandPalette != nil {
			return bottomAnchoredOverlay(m.mainView(), m.commandPalette.View(), m.width, m.height)
		}
	case stateConfirmingDelete:
		if m.deleteConfirm != nil {
			return m.deleteConfirm.View()
		}
	case stateEditingTask:
		if m.taskForm != nil {
			return m.taskForm.View()
		}
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	case statePickingSound:
		if m.soundPicker != nil {
			return m.soundPicker.View()
		}
	}
	return ""
}

// mainView stacks header, timer, sound line, tasks and the bottom lines.
// The task list gets whatever height is left.
func (m *Model) mainView() string {
	top := renderHeader(m.devMode, "") + "\n" +
		m.timerPanel.View(m.timer.Snapshot()) + "\n" +
		renderSoundStatus(m.audio.State()) + "\n"

	// Bottom section - fixed 2 lines (error, notice or tip) plus the help line
	var bottom string
	switch {
	case m.errorManager.HasError():
		bottom = theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width))
	case m.notice != "":
		bottom = theme.QuoteStyle.Render(m.notice) + "\n "
	case len(GetTips()) > 0:
		bottom = RenderTip(GetTips()[m.tipIndex%len(GetTips())]) + "\n "
	default:
		bottom = " \n "
	}
	bottom += "\n" + m.shortHelpView()

	if m.height > 0 {
		used := strings.Count(top, "\n") + strings.Count(bottom, "\n") + 2
		m.taskList.SetSize(m.width, max(m.height-used, 3))
	}

	return top + "\n" + m.taskList.View() + "\n" + bottom
}

func (m *Model) shortHelpView() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		help := b.Help()
		parts = append(parts, theme.HelpShortcutStyle.Render(help.Key)+" "+theme.HelpLabelStyle.Render(help.Desc))
	}
	return strings.Join(parts, theme.HelpLabelStyle.Render(" • "))
}
