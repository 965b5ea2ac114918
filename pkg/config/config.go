// Package config loads gridboard settings from a TOML file.
//
// Every field has a working default so a missing config file is never an
// error. Settings merge in order: defaults, then file values, then any
// command-line overrides applied by the caller.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridboard/pkg/arrange"
	"github.com/matzehuels/gridboard/pkg/board"
	"github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/grid"
)

// Config is the root of the on-disk configuration.
type Config struct {
	Grid    GridConfig    `toml:"grid"`
	Arrange ArrangeConfig `toml:"arrange"`
	Storage StorageConfig `toml:"storage"`
	Server  ServerConfig  `toml:"server"`

	// Presence marks which widget types have data in display mode. Types not
	// listed default to present so a fresh install shows the whole board.
	Presence map[string]bool `toml:"presence"`
}

// GridConfig describes the canvas geometry.
type GridConfig struct {
	Columns     int     `toml:"columns"`
	RowHeight   float64 `toml:"row_height"`
	ColumnWidth float64 `toml:"column_width"`
	Margin      float64 `toml:"margin"`
}

// ArrangeConfig tunes the auto-arrange pass.
type ArrangeConfig struct {
	RowTolerance float64 `toml:"row_tolerance"`
	HGap         float64 `toml:"h_gap"`
	VGap         float64 `toml:"v_gap"`
}

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	// Backend is one of "memory", "file", "redis" or "mongo".
	Backend string `toml:"backend"`

	File  FileStorageConfig  `toml:"file"`
	Redis RedisStorageConfig `toml:"redis"`
	Mongo MongoStorageConfig `toml:"mongo"`
}

// FileStorageConfig configures the local JSON document store.
type FileStorageConfig struct {
	Dir string `toml:"dir"`
}

// RedisStorageConfig configures the Redis backend.
type RedisStorageConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	// TTLSeconds of 0 keeps boards forever.
	TTLSeconds int `toml:"ttl_seconds"`
}

// MongoStorageConfig configures the MongoDB backend.
type MongoStorageConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServerConfig configures the HTTP board service.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	gc := grid.DefaultConfig()
	return Config{
		Grid: GridConfig{
			Columns:     gc.Columns,
			RowHeight:   gc.RowHeight,
			ColumnWidth: gc.ColumnWidth,
			Margin:      gc.Margin,
		},
		Arrange: ArrangeConfig{
			RowTolerance: arrange.DefaultRowTolerance,
			HGap:         arrange.DefaultHGap,
			VGap:         arrange.DefaultVGap,
		},
		Storage: StorageConfig{
			Backend: BackendFile,
			Redis: RedisStorageConfig{
				Addr: "localhost:6379",
			},
			Mongo: MongoStorageConfig{
				URI:        "mongodb://localhost:27017",
				Database:   "gridboard",
				Collection: "boards",
			},
		},
		Server: ServerConfig{
			Addr: ":8090",
		},
	}
}

// DefaultPath returns the conventional config file location,
// $XDG_CONFIG_HOME/gridboard/config.toml or ~/.config/gridboard/config.toml.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "gridboard", "config.toml")
}

// Load reads path and merges it over the defaults. A missing file returns
// the defaults without error; a file that exists but does not parse or
// validate is always an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to read config file")
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse config file")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the settings for values the engine cannot work with.
func (c Config) Validate() error {
	if c.Grid.Columns <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid.columns must be positive")
	}
	if c.Grid.RowHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid.row_height must be positive")
	}
	if c.Grid.ColumnWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid.column_width must be positive")
	}
	if c.Arrange.RowTolerance < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "arrange.row_tolerance must not be negative")
	}
	if c.Arrange.HGap < 0 || c.Arrange.VGap < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "arrange gaps must not be negative")
	}
	switch c.Storage.Backend {
	case BackendMemory, BackendFile, BackendRedis, BackendMongo:
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"storage.backend must be one of memory, file, redis or mongo")
	}
	return nil
}

// GridConfig converts the geometry settings into the engine's type.
func (c Config) GridConfig() grid.Config {
	return grid.Config{
		Columns:     c.Grid.Columns,
		RowHeight:   c.Grid.RowHeight,
		ColumnWidth: c.Grid.ColumnWidth,
		Margin:      c.Grid.Margin,
	}
}

// ArrangeOptions converts the arrange settings into the engine's type.
func (c Config) ArrangeOptions() arrange.Options {
	return arrange.Options{
		RowTolerance: c.Arrange.RowTolerance,
		HGap:         c.Arrange.HGap,
		VGap:         c.Arrange.VGap,
	}
}

// BoardPresence converts the presence settings into the engine's type.
// Types without an entry are treated as present.
func (c Config) BoardPresence() board.Presence {
	p := make(board.Presence, len(board.WidgetTypes))
	for _, t := range board.WidgetTypes {
		p[t] = true
	}
	for name, has := range c.Presence {
		if t, ok := board.ParseWidgetType(name); ok {
			p[t] = has
		}
	}
	return p
}
