package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/lens/internal/constants"
)

// SearchConfig holds the per-query policy knobs the suggestion engine reads
// on every call.
type SearchConfig struct {
	DisplayProperty string `yaml:"display_property" json:"display_property"`
	IncludeFilename bool   `yaml:"include_filename" json:"include_filename"`
	IncludeAliases  bool   `yaml:"include_aliases"  json:"include_aliases"`
	RecentLimit     int    `yaml:"recent_limit"     json:"recent_limit"`
	MaxResults      int    `yaml:"max_results"      json:"max_results"`

	filenameSet bool `yaml:"-" json:"-"`
	aliasesSet  bool `yaml:"-" json:"-"`
}

// UnmarshalYAML tracks which of the search toggles were explicitly present so
// absent toggles can default to enabled.
func (sc *SearchConfig) UnmarshalYAML(value *yaml.Node) error {
	type plain SearchConfig
	var raw plain
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*sc = SearchConfig(raw)
	if value.Kind == yaml.MappingNode {
		for i := 0; i < len(value.Content); i += 2 {
			switch strings.ToLower(value.Content[i].Value) {
			case "include_filename":
				sc.filenameSet = true
			case "include_aliases":
				sc.aliasesSet = true
			}
		}
	}
	return nil
}

type Config struct {
	VaultDir       string       `yaml:"vaultdir"        json:"vault_dir"`
	Editor         string       `yaml:"editor"          json:"editor"`
	EditorArgs     string       `yaml:"editorargs"      json:"editor_args"`
	IgnoredFolders []string     `yaml:"ignored_folders" json:"ignored_folders"`
	Search         SearchConfig `yaml:"search"          json:"search"`

	path string `yaml:"-"`
}

func GetConfigPath(homeDir string) string {
	return filepath.Join(
		homeDir,
		constants.ConfigDir,
		constants.ConfigFile+"."+constants.ConfigFileType,
	)
}

func GetRecentPath(homeDir string) string {
	return filepath.Join(homeDir, constants.ConfigDir, constants.RecentFile)
}

// EnsureConfigExists creates the config directory and an empty config file on
// first run.
func EnsureConfigExists(homeDir string) error {
	configPath := GetConfigPath(homeDir)
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		file, err := os.Create(configPath)
		if err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		file.Close()
	} else if err != nil {
		return fmt.Errorf("failed to check config file existence: %w", err)
	}

	return nil
}

// Load reads the config file under the home directory and applies defaults
// for anything unset.
func Load(homeDir string) (*Config, error) {
	path := GetConfigPath(homeDir)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{path: path}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ensureDefaults()
	return cfg, nil
}

func (cfg *Config) ensureDefaults() {
	if strings.TrimSpace(cfg.Search.DisplayProperty) == "" {
		cfg.Search.DisplayProperty = constants.DefaultDisplayProperty
	}
	if cfg.Search.RecentLimit <= 0 {
		cfg.Search.RecentLimit = constants.DefaultRecentLimit
	}
	if cfg.Search.MaxResults <= 0 {
		cfg.Search.MaxResults = constants.DefaultMaxResults
	}
	if !cfg.Search.filenameSet {
		cfg.Search.IncludeFilename = true
	}
	if !cfg.Search.aliasesSet {
		cfg.Search.IncludeAliases = true
	}
	if cfg.Editor == "" {
		cfg.Editor = "nvim"
	}
}

func (cfg *Config) GetConfigPath() string {
	return cfg.path
}

func (cfg *Config) Save() error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(cfg.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ChangeDisplayProperty switches the front-matter key used for display names
// and persists the change. Callers are responsible for rebuilding the index.
func (cfg *Config) ChangeDisplayProperty(key string) error {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return fmt.Errorf("display property cannot be empty")
	}
	cfg.Search.DisplayProperty = trimmed
	return cfg.Save()
}

func (cfg *Config) ChangeEditor(editor string) error {
	if strings.TrimSpace(editor) == "" {
		return fmt.Errorf("editor cannot be empty")
	}
	cfg.Editor = editor
	return cfg.Save()
}

func (cfg *Config) SetIncludeFilename(include bool) error {
	cfg.Search.IncludeFilename = include
	return cfg.Save()
}

func (cfg *Config) SetIncludeAliases(include bool) error {
	cfg.Search.IncludeAliases = include
	return cfg.Save()
}

func (cfg *Config) ChangeVaultDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return fmt.Errorf("vault directory cannot be empty")
	}
	cfg.VaultDir = dir
	return cfg.Save()
}
