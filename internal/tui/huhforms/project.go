package huhforms

import "charm.land/huh/v2"

// CreateProjectForm creates the assistant prompt asking for a project name
func CreateProjectForm(name *string, confirm *bool) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Project Name").
			Description("The assistant will suggest starter tasks for it").
			Placeholder("e.g. Launch a bakery website").
			Value(name),

		huh.NewConfirm().
			Key("confirm").
			Title("Generate tasks?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(formKeyMap()).WithShowHelp(false)
}
