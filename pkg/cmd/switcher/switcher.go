package switcher

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/lens/internal/note"
	"github.com/Paintersrp/lens/internal/state"
	"github.com/Paintersrp/lens/internal/suggest"
	"github.com/Paintersrp/lens/internal/tui/finder"
)

func NewCmdSwitcher(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "switch [query]",
		Aliases: []string{"s", "sw"},
		Short:   "Quickly switch to a note by its display name.",
		Long: heredoc.Doc(`
			Opens the quick switcher. With no query the most recently opened
			notes are listed; typing filters every note by display name,
			filename, and aliases. Selecting a note opens it in the configured
			editor. When nothing matches, the switcher offers to create a new
			note named after the query.

			Examples:
			  lens switch           // recent notes
			  lens sw roadmap       // pre-filled query
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return run(s, query)
		},
	}

	return cmd
}

func run(s *state.State, query string) error {
	sel, err := finder.Run(s, finder.ModeSwitch, query)
	if err != nil {
		return fmt.Errorf("switcher error: %w", err)
	}
	if sel == nil {
		return nil
	}

	path := sel.Path
	if sel.Kind == suggest.KindCreate {
		n := note.New(
			s.Vault.Dir(),
			sel.Query,
			s.Config.Search.DisplayProperty,
			nil,
		)
		created, err := n.Create()
		if err != nil {
			return fmt.Errorf("create note: %w", err)
		}
		path = created
	}

	s.TouchRecent(path)
	return note.Open(path, s.Config.Editor, s.Config.EditorArgs)
}
