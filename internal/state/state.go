package state

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/Paintersrp/lens/internal/config"
	"github.com/Paintersrp/lens/internal/constants"
	"github.com/Paintersrp/lens/internal/display"
	"github.com/Paintersrp/lens/internal/recent"
	indexsvc "github.com/Paintersrp/lens/internal/services/index"
	"github.com/Paintersrp/lens/internal/suggest"
	"github.com/Paintersrp/lens/internal/vault"
)

// IndexService exposes the shared display index snapshots produced by the
// vault index service.
type IndexService interface {
	AcquireSnapshot() (*display.Index, error)
	QueueUpdate(string)
	SetProperty(string)
	Stats() indexsvc.Stats
	Close() error
}

type State struct {
	Config     *config.Config
	Vault      *vault.Vault
	Watcher    *VaultWatcher
	Index      IndexService
	Recents    *recent.List
	Home       string
	RecentPath string
}

func NewState() (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	if cfg.VaultDir == "" {
		return nil, errors.New(
			"no vault directory configured; run 'lens init [vault-dir]' first",
		)
	}

	v := vault.New(cfg.VaultDir, cfg.IgnoredFolders)

	watcher, err := NewVaultWatcher(v.Dir())
	if err != nil {
		return nil, fmt.Errorf("failed to create vault watcher: %w", err)
	}

	indexService := indexsvc.NewService(v, cfg.Search.DisplayProperty)
	watcher.OnChange(func(rel string) {
		indexService.QueueUpdate(rel)
	})
	watcher.OnClose(func() {
		_ = indexService.Close()
	})

	recentPath := config.GetRecentPath(home)
	recents, err := recent.Load(recentPath, cfg.Search.RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent files: %w", err)
	}

	return &State{
		Config:     cfg,
		Vault:      v,
		Watcher:    watcher,
		Index:      indexService,
		Recents:    recents,
		Home:       home,
		RecentPath: recentPath,
	}, nil
}

// Policy returns the engine policy from the current config. Read per search
// call so settings changes take effect immediately.
func (s *State) Policy() suggest.Policy {
	return suggest.Policy{
		IncludeFilename: s.Config.Search.IncludeFilename,
		IncludeAliases:  s.Config.Search.IncludeAliases,
	}
}

// Limits returns the switcher output bounds from the current config.
func (s *State) Limits() suggest.Limits {
	return suggest.Limits{
		Recent:     s.Config.Search.RecentLimit,
		MaxResults: s.Config.Search.MaxResults,
	}
}

// TouchRecent records path as most recently opened and persists the list.
func (s *State) TouchRecent(path string) {
	if s == nil || s.Recents == nil {
		return
	}
	s.Recents.Touch(path)
	_ = s.Recents.Save(s.RecentPath)
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}
	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.ReadInConfig()

	if err := config.EnsureConfigExists(home); err != nil {
		return nil, err
	}

	return config.Load(home)
}

// Close releases resources associated with the state, including the vault
// watcher and shared index service.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.Watcher != nil {
		if err := s.Watcher.Close(); err != nil {
			errs = append(errs, err)
		}
		s.Watcher = nil
	}
	if s.Index != nil {
		if err := s.Index.Close(); err != nil && !errors.Is(err, indexsvc.ErrClosed) {
			errs = append(errs, err)
		}
		s.Index = nil
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
