package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tablero/internal/models"
)

// CreateTaskForm creates a huh form for adding/editing a task.
// The form writes through the given pointers as the user types.
func CreateTaskForm(
	title *string,
	description *string,
	priority *models.Priority,
	confirm *bool,
	descriptionLines int,
) *huh.Form {
	options := make([]huh.Option[models.Priority], 0, len(models.Priorities()))
	for _, p := range models.Priorities() {
		options = append(options, huh.NewOption(p.String(), p))
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder(models.DefaultTaskTitle).
			Value(title),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Markdown is supported...").
			CharLimit(5000).
			Lines(descriptionLines).
			Value(description),

		huh.NewSelect[models.Priority]().
			Key("priority").
			Title("Priority").
			Options(options...).
			Value(priority),

		huh.NewConfirm().
			Key("confirm").
			Title("Save this task?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(formKeyMap()).WithShowHelp(false)
}

// formKeyMap is huh's default keymap with shift+enter added to the text area newline keys.
func formKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter", "new line"),
	)
	return km
}
