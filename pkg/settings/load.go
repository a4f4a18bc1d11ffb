package settings

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment overrides. Sections are separated
// by a double underscore: LINEAR_CIRCULAR__RESERVE_SLOT=false.
const EnvPrefix = "LINEAR_"

const delim = "."

var validate = validator.New()

// RegisterFlags adds the configuration flags to f. Flag names mirror the
// config keys so that posflag can map them directly.
func RegisterFlags(f *pflag.FlagSet) {
	def := Default()
	f.String("conf", "config.yaml", "configuration file")
	f.Int("stack.capacity", def.Stack.Capacity, "stack capacity")
	f.Int("queue.capacity", def.Queue.Capacity, "linear queue capacity")
	f.Int("circular.capacity", def.Circular.Capacity, "circular queue slots")
	f.Bool("circular.reserve_slot", def.Circular.ReserveSlot, "keep one circular queue slot free")
	f.String("logger.log_level", def.Logger.LogLevel, "log level (debug, info, warn, error)")
	f.String("logger.file_log_name", def.Logger.FileLogName, "log file; empty logs to stderr")
}

// Load reads the configuration in increasing priority: defaults, yaml file,
// environment, flags. A missing yaml file is not an error. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(delim)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, errors.Wrapf(err, "load config file %s", path)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "stat config file %s", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, delim, envKey), nil); err != nil {
		return nil, errors.Wrap(err, "load env")
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, delim, k), nil); err != nil {
			return nil, errors.Wrap(err, "load flags")
		}
	}

	conf := Default()
	if err := k.UnmarshalWithConf("", &conf, koanf.UnmarshalConf{Tag: "mapstructure"}); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Validate checks field ranges and cross-field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if c.Circular.ReserveSlot && c.Circular.Capacity < 2 {
		return errors.New("invalid config: circular.capacity must be at least 2 with circular.reserve_slot")
	}
	return nil
}

// envKey maps LINEAR_CIRCULAR__RESERVE_SLOT to circular.reserve_slot.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", delim)
}
