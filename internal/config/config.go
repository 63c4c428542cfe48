// Package config resolves lvlds command settings from defaults, a YAML file,
// a dotenv file, the process environment and command-line flags, in that
// order of increasing precedence.
package config

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlds/core"
)

// ErrInvalid is the cause of every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// EnvPrefix prefixes every environment override, e.g. LVLDS_CLUSTERS.
const EnvPrefix = "LVLDS_"

// Config holds the settings shared by lvlds commands.
type Config struct {
	Clusters int    `yaml:"clusters"`
	Mode     string `yaml:"mode"`
	Directed bool   `yaml:"directed"`
	Storage  string `yaml:"storage"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings: four clusters, node rendering of a
// bidirectional dense graph, info logging.
func Default() Config {
	return Config{
		Clusters: 4,
		Mode:     core.RenderNodes.String(),
		Storage:  core.StorageDense.String(),
		LogLevel: log.InfoLevel.String(),
	}
}

// Sources names the optional inputs of Load. Empty paths are skipped.
type Sources struct {
	ConfigFile string
	EnvFile    string
	// LookupEnv reads the process environment; nil means os.LookupEnv.
	LookupEnv func(key string) (string, bool)
	// Flags carries explicit command-line values; only changed flags apply.
	Flags *pflag.FlagSet
}

// Load applies every source over Default and validates the result.
func Load(src Sources) (Config, error) {
	cfg := Default()
	if src.ConfigFile != "" {
		if err := cfg.LoadYAML(src.ConfigFile); err != nil {
			return cfg, err
		}
	}

	lookup := src.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if src.EnvFile != "" {
		fileEnv, err := godotenv.Read(src.EnvFile)
		if err != nil {
			return cfg, errors.Wrapf(err, "reading env file %s", src.EnvFile)
		}
		process := lookup
		lookup = func(key string) (string, bool) {
			if v, ok := process(key); ok {
				return v, true
			}
			v, ok := fileEnv[key]
			return v, ok
		}
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return cfg, err
	}

	if src.Flags != nil {
		if err := cfg.ApplyFlags(src.Flags); err != nil {
			return cfg, err
		}
	}

	return cfg, cfg.Validate()
}

// LoadYAML decodes path over c. Keys absent from the file keep their value;
// unknown keys are an error.
func (c *Config) LoadYAML(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening config file")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return errors.Wrapf(err, "decoding config file %s", path)
	}

	return nil
}

// ApplyEnv overrides fields from LVLDS_CLUSTERS, LVLDS_MODE, LVLDS_DIRECTED,
// LVLDS_STORAGE and LVLDS_LOG_LEVEL when set.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "CLUSTERS"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(ErrInvalid, "%sCLUSTERS=%q", EnvPrefix, v)
		}
		c.Clusters = n
	}
	if v, ok := lookup(EnvPrefix + "DIRECTED"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(ErrInvalid, "%sDIRECTED=%q", EnvPrefix, v)
		}
		c.Directed = b
	}
	if v, ok := lookup(EnvPrefix + "MODE"); ok {
		c.Mode = v
	}
	if v, ok := lookup(EnvPrefix + "STORAGE"); ok {
		c.Storage = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}

	return nil
}

// ApplyFlags copies changed flags named clusters, mode, directed and storage.
// Flags missing from fs are ignored.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	changed := func(name string) bool {
		f := fs.Lookup(name)
		return f != nil && f.Changed
	}

	var err error
	if changed("clusters") {
		if c.Clusters, err = fs.GetInt("clusters"); err != nil {
			return errors.Wrap(err, "clusters flag")
		}
	}
	if changed("mode") {
		if c.Mode, err = fs.GetString("mode"); err != nil {
			return errors.Wrap(err, "mode flag")
		}
	}
	if changed("directed") {
		if c.Directed, err = fs.GetBool("directed"); err != nil {
			return errors.Wrap(err, "directed flag")
		}
	}
	if changed("storage") {
		if c.Storage, err = fs.GetString("storage"); err != nil {
			return errors.Wrap(err, "storage flag")
		}
	}

	return nil
}

// Validate reports the first unusable field, wrapping ErrInvalid.
func (c Config) Validate() error {
	if c.Clusters < 1 {
		return errors.Wrapf(ErrInvalid, "clusters must be at least 1, got %d", c.Clusters)
	}
	if _, err := core.ParseRenderMode(c.Mode); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	if _, err := core.ParseStorage(c.Storage); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}

	return nil
}

// RenderMode returns the parsed Mode. Call after Validate.
func (c Config) RenderMode() core.RenderMode {
	m, _ := core.ParseRenderMode(c.Mode)
	return m
}

// StorageKind returns the parsed Storage. Call after Validate.
func (c Config) StorageKind() core.Storage {
	s, _ := core.ParseStorage(c.Storage)
	return s
}

// GraphOptions translates Directed and Storage into core options.
func (c Config) GraphOptions() []core.GraphOption {
	opts := []core.GraphOption{core.WithStorage(c.StorageKind())}
	if c.Directed {
		opts = append(opts, core.WithDirected())
	}

	return opts
}

// Level returns the parsed LogLevel, falling back to info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}

	return lvl
}
