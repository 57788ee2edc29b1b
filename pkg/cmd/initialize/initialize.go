package initialize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/erikgeiser/promptkit/textinput"

	"github.com/Paintersrp/lens/internal/config"
	"github.com/Paintersrp/lens/internal/state"
)

// Run sets up the config file and vault directory. It runs before any state
// is constructed, since state requires a configured vault.
func Run(args []string) error {
	home, err := state.GetHomeDir()
	if err != nil {
		return err
	}

	if err := config.EnsureConfigExists(home); err != nil {
		return err
	}

	cfg, err := config.Load(home)
	if err != nil {
		return err
	}

	vaultDir := ""
	if len(args) > 0 {
		vaultDir = args[0]
	}

	if strings.TrimSpace(vaultDir) == "" {
		input := textinput.New("Vault directory:")
		input.Placeholder = "~/notes"
		entered, err := input.RunPrompt()
		if err != nil {
			return err
		}
		vaultDir = entered
	}

	vaultDir = expandHome(vaultDir, home)

	info, err := os.Stat(vaultDir)
	if err != nil {
		return fmt.Errorf("vault directory %s: %w", vaultDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("vault path %s is not a directory", vaultDir)
	}

	if err := cfg.ChangeVaultDir(vaultDir); err != nil {
		return err
	}

	fmt.Println("Vault set to", vaultDir)
	return nil
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return filepath.Clean(path)
}
