package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tablero/internal/config"
)

// keyMap holds the board bindings built from the configured key mappings.
// It implements help.KeyMap.
type keyMap struct {
	PrevColumn key.Binding
	NextColumn key.Binding
	PrevTask   key.Binding
	NextTask   key.Binding

	MoveTaskLeft  key.Binding
	MoveTaskRight key.Binding
	MoveTaskUp    key.Binding
	MoveTaskDown  key.Binding

	AddTask         key.Binding
	EditTask        key.Binding
	DeleteTask      key.Binding
	ViewTask        key.Binding
	GenerateTasks   key.Binding
	SuggestSubtasks key.Binding
	SaveForm        key.Binding

	ShowHelp key.Binding
	Quit     key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		PrevColumn: key.NewBinding(key.WithKeys(km.PrevColumn, "left"), key.WithHelp(km.PrevColumn+"/←", "previous column")),
		NextColumn: key.NewBinding(key.WithKeys(km.NextColumn, "right"), key.WithHelp(km.NextColumn+"/→", "next column")),
		PrevTask:   key.NewBinding(key.WithKeys(km.PrevTask, "up"), key.WithHelp(km.PrevTask+"/↑", "previous task")),
		NextTask:   key.NewBinding(key.WithKeys(km.NextTask, "down"), key.WithHelp(km.NextTask+"/↓", "next task")),

		MoveTaskLeft:  key.NewBinding(key.WithKeys(km.MoveTaskLeft), key.WithHelp(km.MoveTaskLeft, "move task to previous column")),
		MoveTaskRight: key.NewBinding(key.WithKeys(km.MoveTaskRight), key.WithHelp(km.MoveTaskRight, "move task to next column")),
		MoveTaskUp:    key.NewBinding(key.WithKeys(km.MoveTaskUp), key.WithHelp(km.MoveTaskUp, "move task up")),
		MoveTaskDown:  key.NewBinding(key.WithKeys(km.MoveTaskDown), key.WithHelp(km.MoveTaskDown, "move task down")),

		AddTask:         key.NewBinding(key.WithKeys(km.AddTask), key.WithHelp(km.AddTask, "add task")),
		EditTask:        key.NewBinding(key.WithKeys(km.EditTask), key.WithHelp(km.EditTask, "edit task")),
		DeleteTask:      key.NewBinding(key.WithKeys(km.DeleteTask), key.WithHelp(km.DeleteTask, "delete task")),
		ViewTask:        key.NewBinding(key.WithKeys(km.ViewTask, "enter"), key.WithHelp(km.ViewTask, "view task")),
		GenerateTasks:   key.NewBinding(key.WithKeys(km.GenerateTasks), key.WithHelp(km.GenerateTasks, "generate tasks with AI")),
		SuggestSubtasks: key.NewBinding(key.WithKeys(km.SuggestSubtasks), key.WithHelp(km.SuggestSubtasks, "suggest subtasks")),
		SaveForm:        key.NewBinding(key.WithKeys(km.SaveForm), key.WithHelp(km.SaveForm, "save form")),

		ShowHelp: key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "toggle help")),
		Quit:     key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddTask, k.ViewTask, k.GenerateTasks, k.ShowHelp, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevColumn, k.NextColumn, k.PrevTask, k.NextTask},
		{k.MoveTaskLeft, k.MoveTaskRight, k.MoveTaskUp, k.MoveTaskDown},
		{k.AddTask, k.EditTask, k.DeleteTask, k.ViewTask},
		{k.GenerateTasks, k.SuggestSubtasks, k.SaveForm, k.ShowHelp, k.Quit},
	}
}
