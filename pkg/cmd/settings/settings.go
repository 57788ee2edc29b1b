package settings

import (
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/lens/internal/state"
)

func NewCmdSettings(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"set"},
		Short:   "Show or change display and search settings.",
		Long: heredoc.Doc(`
			Without arguments, prints the current settings. Subcommands change
			the display property and search toggles; a property change takes
			effect on the next search, when the index is rebuilt.

			Examples:
			  lens settings
			  lens settings property title
			  lens settings include-filename false
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			show(s)
			return nil
		},
	}

	cmd.AddCommand(
		newCmdProperty(s),
		newCmdIncludeFilename(s),
		newCmdIncludeAliases(s),
		newCmdEditor(s),
	)

	return cmd
}

func show(s *state.State) {
	sc := s.Config.Search
	fmt.Println("vaultdir:         ", s.Config.VaultDir)
	fmt.Println("editor:           ", s.Config.Editor)
	fmt.Println("display property: ", sc.DisplayProperty)
	fmt.Println("include filename: ", sc.IncludeFilename)
	fmt.Println("include aliases:  ", sc.IncludeAliases)
	fmt.Println("recent limit:     ", sc.RecentLimit)
	fmt.Println("max results:      ", sc.MaxResults)
}

func newCmdProperty(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "property [key]",
		Short: "Change the front-matter key used for display names.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.Config.ChangeDisplayProperty(args[0]); err != nil {
				return err
			}
			// The whole index derives from the property key, so drop it.
			s.Index.SetProperty(args[0])
			fmt.Println("Display property set to", args[0])
			return nil
		},
	}
}

func newCmdIncludeFilename(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "include-filename [true|false]",
		Short: "Toggle matching against filenames in addition to display names.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			include, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("expected true or false, got %q", args[0])
			}
			return s.Config.SetIncludeFilename(include)
		},
	}
}

func newCmdIncludeAliases(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "include-aliases [true|false]",
		Short: "Toggle matching against front-matter aliases.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			include, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("expected true or false, got %q", args[0])
			}
			return s.Config.SetIncludeAliases(include)
		},
	}
}

func newCmdEditor(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "editor [command]",
		Short: "Change the editor used to open notes.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.Config.ChangeEditor(args[0])
		},
	}
}
