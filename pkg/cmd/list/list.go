package list

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/lens/internal/state"
	"github.com/Paintersrp/lens/internal/vault"
)

func NewCmdList(s *state.State) *cobra.Command {
	var custom bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print every note's display name, aliases, and path.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s, custom)
		},
	}

	cmd.Flags().BoolVarP(&custom, "custom", "c", false, "only notes with a custom display property")

	return cmd
}

func run(s *state.State, customOnly bool) error {
	snapshot, err := s.Index.AcquireSnapshot()
	if err != nil {
		return fmt.Errorf("acquire index: %w", err)
	}

	for _, rec := range snapshot.Records() {
		if customOnly && !rec.IsCustom {
			continue
		}

		line := rec.DisplayName
		if rec.IsCustom {
			line += fmt.Sprintf("  (%s.md)", vault.Basename(rec.Path))
		}
		if len(rec.Aliases) > 0 {
			line += fmt.Sprintf("  [aka: %s]", strings.Join(rec.Aliases, ", "))
		}
		fmt.Println(line)
	}

	return nil
}
