package new

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/textinput"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/lens/internal/note"
	"github.com/Paintersrp/lens/internal/state"
)

func NewCmdNew(s *state.State) *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:     "new [title] [tags]",
		Aliases: []string{"n"},
		Short:   "Create a new note titled by the display property.",
		Long: heredoc.Doc(`
			Creates a markdown note whose front matter sets the configured
			display property to the given title; the filename is a sanitized
			form of the title. With no argument you are prompted for one.

			              [title]    [tags]
			  lens new "Roadmap sync" "planning meetings"
		`),
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := ""
			var tags []string
			if len(args) > 0 {
				title = args[0]
			}
			if len(args) > 1 {
				tags = strings.Fields(args[1])
			}
			return run(s, title, tags, open)
		},
	}

	cmd.Flags().BoolVarP(&open, "open", "o", false, "open the new note in the editor")

	return cmd
}

func run(s *state.State, title string, tags []string, open bool) error {
	if strings.TrimSpace(title) == "" {
		input := textinput.New("Note title:")
		input.Placeholder = "My New Note"

		entered, err := input.RunPrompt()
		if err != nil {
			return err
		}
		title = entered
	}

	n := note.New(s.Vault.Dir(), title, s.Config.Search.DisplayProperty, tags)
	path, err := n.Create()
	if err != nil {
		return fmt.Errorf("create note: %w", err)
	}

	fmt.Println("Created", path)

	if open {
		s.TouchRecent(path)
		return note.Open(path, s.Config.Editor, s.Config.EditorArgs)
	}
	return nil
}
