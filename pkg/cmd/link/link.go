package link

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/lens/internal/state"
	"github.com/Paintersrp/lens/internal/tui/finder"
	"github.com/Paintersrp/lens/internal/vault"
)

func NewCmdLink(s *state.State) *cobra.Command {
	var print bool

	cmd := &cobra.Command{
		Use:     "link [query]",
		Aliases: []string{"l"},
		Short:   "Pick a note and copy a display-name link to it.",
		Long: heredoc.Doc(`
			Opens the link completer over every note in the vault. The picked
			note becomes a wikilink whose label is the note's display name,
			copied to the clipboard ready to paste into the current document:

			  [[meeting-2024-05-02|Roadmap sync]]

			Examples:
			  lens link           // browse all notes
			  lens link roadmap   // pre-filled query
			  lens link -p        // print instead of copying
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return run(s, query, print)
		},
	}

	cmd.Flags().BoolVarP(&print, "print", "p", false, "print the link instead of copying it")

	return cmd
}

func run(s *state.State, query string, print bool) error {
	sel, err := finder.Run(s, finder.ModeLink, query)
	if err != nil {
		return fmt.Errorf("link picker error: %w", err)
	}
	if sel == nil {
		return nil
	}

	target := vault.Basename(sel.Path)
	link := fmt.Sprintf("[[%s]]", target)
	if sel.IsCustom {
		link = fmt.Sprintf("[[%s|%s]]", target, sel.Display)
	}

	if print {
		fmt.Println(link)
		return nil
	}

	if err := clipboard.WriteAll(link); err != nil {
		// Clipboard access is environment-dependent; fall back to stdout
		// rather than failing the command.
		fmt.Println(link)
		return nil
	}

	fmt.Printf("Copied %s to clipboard\n", link)
	return nil
}
