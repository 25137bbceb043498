package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"

	"github.com/dom314/dom/pkg/aggregate"
	"github.com/dom314/dom/pkg/db"
	"github.com/dom314/dom/pkg/model"
)

// FileName is the config file looked up in the XDG config directories
const FileName = "config.toml"

type Config struct {
	// Database configuration
	Database db.Config `toml:"database"`
	// Cache is the feed cache configuration
	Cache Cache `toml:"cache"`
	// Aggregate configures group views
	Aggregate Aggregate `toml:"aggregate"`
	// Player is the external media player used by `dom play`
	Player Player `toml:"player"`
	// Log is the optional logging configuration
	Log Log `toml:"log"`
	// Picks are extra podcasts listed by the picks discovery backend
	Picks []Pick `toml:"picks"`
}

type Cache struct {
	// FetchTimeout bounds a single feed fetch, 0 disables the limit
	FetchTimeout time.Duration `toml:"fetch_timeout"`
	// WipeSchedule is a cron spec used by `dom watch` to drop and reload cached feeds
	WipeSchedule string `toml:"wipe_schedule"`
}

type Aggregate struct {
	// Policy is either "fail" or "partial"
	Policy string `toml:"policy"`
	// Concurrency limits parallel feed fetches, 0 means unbounded
	Concurrency int `toml:"concurrency"`
}

type Player struct {
	Command StringSlice `toml:"command"`
	GUIArgs StringSlice `toml:"gui_args"`
}

type Log struct {
	// Level is a logrus level name
	Level string `toml:"level"`
	// Filename to write the log to (instead of stderr)
	Filename string `toml:"filename"`
	// MaxSize is the maximum size of the log file in MB
	MaxSize int `toml:"max_size"`
	// MaxBackups is the maximum number of log file backups to keep after rotation
	MaxBackups int `toml:"max_backups"`
	// MaxAge is the maximum number of days to keep the logs for
	MaxAge int `toml:"max_age"`
	// Compress old backups
	Compress bool `toml:"compress"`
}

type Pick struct {
	Title       string `toml:"title"`
	FeedURL     string `toml:"feed_url"`
	Description string `toml:"description"`
	Backend     string `toml:"backend"`
}

// Podcast converts a configured pick into a discovery entry
func (p Pick) Podcast() model.Podcast {
	return model.Podcast{
		Backend:     p.Backend,
		FeedURL:     p.FeedURL,
		Title:       p.Title,
		Description: p.Description,
	}
}

// LoadConfig loads TOML configuration from a file path
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", path)
	}

	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse toml")
	}

	config := Config{}
	if err := tree.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal toml")
	}

	// An explicit "0s" disables the timeout, only a missing key gets the default
	if !tree.Has("cache.fetch_timeout") {
		config.Cache.FetchTimeout = model.DefaultFetchTimeout
	}

	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	config := Config{}
	config.Cache.FetchTimeout = model.DefaultFetchTimeout
	config.applyDefaults()
	return &config
}

// Locate returns the config file to load. An explicit path always wins,
// otherwise XDG config directories are searched. Empty string means no file.
func Locate(path string) string {
	if path != "" {
		return path
	}

	found, err := xdg.SearchConfigFile(filepath.Join(model.AppName, FileName))
	if err != nil {
		return ""
	}

	return found
}

// Load reads the config file found by Locate, falling back to defaults
func Load(path string) (*Config, error) {
	found := Locate(path)
	if found == "" {
		return Default(), nil
	}

	return LoadConfig(found)
}

func (c *Config) validate() error {
	var result *multierror.Error

	if c.Database.Dir == "" {
		result = multierror.Append(result, errors.New("database directory is required"))
	}

	if c.Cache.FetchTimeout < 0 {
		result = multierror.Append(result, errors.New("fetch timeout can't be negative"))
	}

	if _, err := cron.ParseStandard(c.Cache.WipeSchedule); err != nil {
		result = multierror.Append(result, errors.Wrapf(err, "invalid wipe schedule %q", c.Cache.WipeSchedule))
	}

	if _, err := aggregate.ParsePolicy(c.Aggregate.Policy); err != nil {
		result = multierror.Append(result, err)
	}

	if c.Aggregate.Concurrency < 0 {
		result = multierror.Append(result, errors.New("concurrency can't be negative"))
	}

	for i, pick := range c.Picks {
		if pick.FeedURL == "" {
			result = multierror.Append(result, errors.Errorf("feed URL is required for pick #%d", i+1))
		}
	}

	return result.ErrorOrNil()
}

func (c *Config) applyDefaults() {
	if c.Database.Dir == "" {
		c.Database.Dir = filepath.Join(xdg.DataHome, model.AppName, "database")
	}

	if c.Cache.WipeSchedule == "" {
		c.Cache.WipeSchedule = model.DefaultWipeSchedule
	}

	if c.Aggregate.Policy == "" {
		c.Aggregate.Policy = string(aggregate.PolicyPartial)
	}

	if len(c.Player.Command) == 0 {
		c.Player.Command = StringSlice{model.DefaultPlayerCommand}
	}

	if c.Player.GUIArgs == nil {
		c.Player.GUIArgs = StringSlice{model.DefaultPlayerGUIArg}
	}

	if c.Log.Filename != "" {
		if c.Log.MaxSize == 0 {
			c.Log.MaxSize = model.DefaultLogMaxSize
		}
		if c.Log.MaxAge == 0 {
			c.Log.MaxAge = model.DefaultLogMaxAge
		}
		if c.Log.MaxBackups == 0 {
			c.Log.MaxBackups = model.DefaultLogMaxBackups
		}
	}

	for i := range c.Picks {
		if c.Picks[i].Backend == "" {
			c.Picks[i].Backend = model.DefaultBackend
		}
		if c.Picks[i].Title == "" {
			c.Picks[i].Title = c.Picks[i].FeedURL
		}
	}
}

// StringSlice is a toml extension that lets you to specify either a string
// value (a slice with just one element) or a string slice.
type StringSlice []string

func (s *StringSlice) UnmarshalTOML(v interface{}) error {
	switch value := v.(type) {
	case string:
		*s = []string{value}
		return nil
	case []interface{}:
		out := make([]string, 0, len(value))
		for _, item := range value {
			str, ok := item.(string)
			if !ok {
				return errors.Errorf("unexpected %T in string slice", item)
			}
			out = append(out, str)
		}
		*s = out
		return nil
	case []string:
		*s = value
		return nil
	}

	return errors.New("failed to decode string slice field")
}
