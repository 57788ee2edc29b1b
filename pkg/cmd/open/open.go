package open

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/lens/internal/fzf"
	"github.com/Paintersrp/lens/internal/note"
	"github.com/Paintersrp/lens/internal/state"
)

func NewCmdOpen(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "open [query]",
		Aliases: []string{"o"},
		Short:   "Open a note, browsing by display name with a preview.",
		Long: heredoc.Doc(`
			Fuzzy-find over every note's display name with a rendered markdown
			preview, then open the selection in the configured editor.

			Examples:
			  lens open            // browse everything
			  lens o roadmap       // pre-filled query
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
	snapshot, err := s.Index.AcquireSnapshot()
	if err != nil {
		return fmt.Errorf("acquire index: %w", err)
	}

	finder := fzf.NewFuzzyFinder(snapshot, "Select note to open.")

	var path string
	if query == "" {
		path, err = finder.Run()
	} else {
		path, err = finder.RunWithQuery(query)
	}
	if err != nil {
		if fzf.IsAbort(err) {
			fmt.Println("No note selected")
			return nil
		}
		return fmt.Errorf("file selection error: %w", err)
	}

	s.TouchRecent(path)
	return note.Open(path, s.Config.Editor, s.Config.EditorArgs)
}
