package root

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/lens/internal/state"
	"github.com/Paintersrp/lens/pkg/cmd/link"
	"github.com/Paintersrp/lens/pkg/cmd/list"
	"github.com/Paintersrp/lens/pkg/cmd/new"
	"github.com/Paintersrp/lens/pkg/cmd/open"
	"github.com/Paintersrp/lens/pkg/cmd/settings"
	"github.com/Paintersrp/lens/pkg/cmd/switcher"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "lens",
		Short: "Find and link markdown notes by their display property instead of their filename.",
		Long: `lens indexes the front matter of every note in your vault and lets you
switch between notes, insert links, and open files using the configured
display property (by default "title") rather than raw filenames.`,
		// Quick switcher by default, mirroring how the tool is used most.
		RunE: switcher.NewCmdSwitcher(s).RunE,
	}

	cmd.AddCommand(
		switcher.NewCmdSwitcher(s),
		link.NewCmdLink(s),
		open.NewCmdOpen(s),
		list.NewCmdList(s),
		new.NewCmdNew(s),
		settings.NewCmdSettings(s),
	)

	return cmd, nil
}
