package config

import (
	"os"
)

// Config is the merged waypoint configuration
type Config struct {
	Store     Store     `koanf:"store"`
	Clipboard Clipboard `koanf:"clipboard"`
	Expand    Expand    `koanf:"expand"`
	List      List      `koanf:"list"`

	// Sources lists the settings files that were merged, in load order
	Sources []string `koanf:"-"`
}

// Store locates the shortcut file
type Store struct {
	Path     string      `koanf:"path"`
	FileName string      `koanf:"filename"`
	Mode     os.FileMode `koanf:"mode"`
}

// Clipboard selects the clipboard sink
type Clipboard struct {
	Backend string `koanf:"backend"`
}

// Expand controls the default expansion path
type Expand struct {
	Print bool `koanf:"print"`
}

// List controls --list output
type List struct {
	Format string `koanf:"format"`
}
