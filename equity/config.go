package equity

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"voyager.com/holdem/util"
)

const (
	// DefaultNumOpponents models a full nine-handed table.
	DefaultNumOpponents = 8

	// DefaultTrials keeps the estimate within about a percentage point
	// while staying fast enough for interactive use.
	DefaultTrials = 10000

	defaultCacheSize = 512
)

// SimConfig drives one estimator.
type SimConfig struct {
	NumOpponents int   `yaml:"numOpponents"`
	Trials       int   `yaml:"trials"`
	Workers      int   `yaml:"workers"`
	Seed         int64 `yaml:"seed"`
	CacheSize    int   `yaml:"cacheSize"`
}

// DefaultSimConfig is the nine-handed setup used when no config file
// is given. Seed 0 means seed from the OS entropy pool.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		NumOpponents: DefaultNumOpponents,
		Trials:       DefaultTrials,
		Workers:      util.Env.GetSimWorkers(1),
		Seed:         0,
		CacheSize:    defaultCacheSize,
	}
}

// ParseSimConfig reads a simulation config file. Fields missing from
// the YAML keep their defaults.
func ParseSimConfig(configFile string) (SimConfig, error) {
	bytes, err := ioutil.ReadFile(configFile)
	if err != nil {
		return SimConfig{}, errors.Wrap(err, fmt.Sprintf("Error reading simulation config file [%s]", configFile))
	}

	data := DefaultSimConfig()
	err = yaml.Unmarshal(bytes, &data)
	if err != nil {
		return SimConfig{}, errors.Wrap(err, fmt.Sprintf("Error parsing simulation YAML file [%s]", configFile))
	}

	return data, nil
}
