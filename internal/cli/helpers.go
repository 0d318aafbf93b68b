package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/tablero/internal/models"
)

// DateLayout is how task creation dates are shown
const DateLayout = "Jan 2, 2006"

// ParsePriority maps a priority flag onto a models.Priority
func ParsePriority(priority string) (models.Priority, error) {
	return models.ParsePriority(priority)
}

// ReadDescription returns value, or all of stdin when value is "-"
func ReadDescription(cmd *cobra.Command, value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// FormatCreated renders the task's creation time as a local calendar date
func FormatCreated(task *models.Task) string {
	return task.Created().Local().Format(DateLayout)
}

// Formatter builds the OutputFormatter from the --json and --quiet flags
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// AddOutputFlags registers --json and --quiet on cmd
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")
}

// ChangedFlags returns the flags among names that were set on the command line
func ChangedFlags(fs *pflag.FlagSet, names ...string) []string {
	var changed []string
	fs.Visit(func(f *pflag.Flag) {
		if slices.Contains(names, f.Name) {
			changed = append(changed, f.Name)
		}
	})
	return changed
}
