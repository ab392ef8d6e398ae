package config

import "github.com/spf13/pflag"

// Overrides holds command-line settings that take priority over the file.
type Overrides struct {
	ConfigPath string
	Debug      bool
	LogFile    string
	Root       string
	Mods       []string
	TagRGB     bool
}

// Register binds the overrides to persistent command flags.
func (o *Overrides) Register(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&o.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&o.LogFile, "log-file", "", "Write logs to this file as well")
	fs.StringVar(&o.Root, "root", "", "Game directory for relative data paths")
	fs.StringSliceVar(&o.Mods, "mod", nil, "Mod directory layered over the game data (repeatable)")
	fs.BoolVar(&o.TagRGB, "tag-rgb", false, "Write integer RGB colors with the rgb tag")
}

// apply applies CLI overrides to the config.
func (o Overrides) apply(cfg *Config) {
	if o.Debug {
		cfg.Logging.Level = "debug"
	}
	if o.LogFile != "" {
		cfg.Logging.LogFile = o.LogFile
	}
	if o.Root != "" {
		cfg.Data.Root = o.Root
	}
	if len(o.Mods) > 0 {
		cfg.Data.Mods = append(cfg.Data.Mods, o.Mods...)
	}
	if o.TagRGB {
		cfg.Color.TagRGB = true
	}
}
