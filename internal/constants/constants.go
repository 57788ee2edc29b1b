package constants

const (
	Version        = `0.1.0`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.lens-cli/`
	RecentFile     = `recent.yaml`

	// DefaultDisplayProperty is the front-matter key consulted for a note's
	// display name when the user has not configured one.
	DefaultDisplayProperty = `title`

	DefaultRecentLimit = 10
	DefaultMaxResults  = 50
)
