package config

import (
	_ "embed"
	"errors"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	wperrors "github.com/arthur-debert/waypoint/pkg/errors"
	"github.com/arthur-debert/waypoint/pkg/logging"
	"github.com/arthur-debert/waypoint/pkg/paths"
)

// EnvPrefix marks environment variables read as settings
const EnvPrefix = "WAYPOINT_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load merges, in order: embedded defaults, each existing file in files,
// WAYPOINT_* environment variables and finally overrides (flattened keys
// such as "store.path", typically from command line flags).
func Load(files []string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, wperrors.Wrap(err, wperrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Settings files
	var sources []string
	for _, path := range files {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, wperrors.Wrapf(err, wperrors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		sources = append(sources, path)
		logger.Debug().Str("path", path).Msg("Config file loaded")
	}

	// 3. Env vars
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, wperrors.Wrap(err, wperrors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, wperrors.Wrap(err, wperrors.ErrConfigLoad, "failed to load overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToFileModeHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, wperrors.Wrap(err, wperrors.ErrConfigValid, "failed to unmarshal configuration")
	}
	cfg.Sources = sources

	// 6. Post-process
	postProcessConfig(&cfg)

	logger.Debug().
		Strs("sources", cfg.Sources).
		Str("storePath", cfg.Store.Path).
		Str("clipboard", cfg.Clipboard.Backend).
		Msg("Configuration loaded")

	return &cfg, nil
}

func postProcessConfig(cfg *Config) {
	cfg.Store.Path = paths.ExpandHome(strings.TrimSpace(cfg.Store.Path))
	if cfg.Store.FileName == "" {
		cfg.Store.FileName = paths.StoreFileName
	}
	if cfg.Store.Mode == 0 {
		cfg.Store.Mode = 0644
	}
	cfg.Clipboard.Backend = strings.ToLower(strings.TrimSpace(cfg.Clipboard.Backend))
	cfg.List.Format = strings.ToLower(strings.TrimSpace(cfg.List.Format))
}

// stringToFileModeHookFunc reads file modes written as octal strings ("0644")
func stringToFileModeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(os.FileMode(0)) {
			return data, nil
		}
		s := strings.TrimSpace(data.(string))
		if s == "" {
			return os.FileMode(0), nil
		}
		mode, err := strconv.ParseUint(strings.TrimPrefix(s, "0o"), 8, 32)
		if err != nil {
			return nil, err
		}
		return os.FileMode(mode), nil
	}
}
