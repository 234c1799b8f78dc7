package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	FrequenciesKey = "TREEKIT_FREQUENCIES"
	VerboseKey     = "TREEKIT_VERBOSE"

	DefaultFrequencies = "frequencies.txt"
)

var DEFAULT_ENV_FILES = []string{".env", ".env.local"}

// Config holds the settings shared by all commands.
type Config struct {
	// Frequencies is the path of the frequency table used by the huffman
	// commands when no --file flag is given.
	Frequencies string

	// Verbose enables debug output.
	Verbose bool
}

func fileExists(filepath string) bool {
	info, err := os.Stat(filepath)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// Load builds a Config from the default env files, any extra files, and the
// process environment.  Files are read in order and later files win; the
// process environment wins over all files.  Missing files are skipped.
func Load(extraFilepaths ...string) (*Config, error) {
	filepaths := append(append([]string{}, DEFAULT_ENV_FILES...), extraFilepaths...)
	foundEnvFiles := lo.Filter(filepaths, func(filepath string, index int) bool {
		return fileExists(filepath)
	})

	envMap := map[string]string{}
	if len(foundEnvFiles) > 0 {
		var err error
		if envMap, err = godotenv.Read(foundEnvFiles...); err != nil {
			return nil, errors.Wrap(err, "read env files")
		}
	}

	return FromMap(envMap, os.LookupEnv)
}

// FromMap builds a Config from values read out of env files, letting lookup
// (normally os.LookupEnv) override them.
func FromMap(envMap map[string]string, lookup func(string) (string, bool)) (*Config, error) {
	get := func(key string) (string, bool) {
		if lookup != nil {
			if v, ok := lookup(key); ok {
				return v, true
			}
		}
		v, ok := envMap[key]
		return v, ok
	}

	cfg := &Config{Frequencies: DefaultFrequencies}
	if v, ok := get(FrequenciesKey); ok && v != "" {
		cfg.Frequencies = v
	}
	if v, ok := get(VerboseKey); ok && v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", VerboseKey)
		}
		cfg.Verbose = verbose
	}
	return cfg, nil
}
