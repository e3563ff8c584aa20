package rewards

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/rewardshaping/pkg/encoding"
)

var _ Config = (*FileConfig)(nil)

// FileConfig describes a weighted set of rewards in JSON or YAML.
type FileConfig struct {
	Rewards []RewardSpec `json:"rewards" yaml:"rewards"`
}

type RewardSpec struct {
	// Name keys the reward in reports. Defaults to Type.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Type string `json:"type" yaml:"type"`
	// Weight defaults to 1 when omitted.
	Weight *float64       `json:"weight,omitempty" yaml:"weight,omitempty"`
	Args   map[string]any `json:"args,omitempty" yaml:"args,omitempty"`
}

func (s RewardSpec) key() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Type
}

func (s RewardSpec) weight() float64 {
	if s.Weight == nil {
		return 1
	}
	return *s.Weight
}

// LoadJSON loads config from JSON reader.
func LoadJSON(r io.Reader) (*FileConfig, error) {
	var c FileConfig
	dec := json.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &c, nil
}

// LoadYAML loads config from YAML reader.
func LoadYAML(r io.Reader) (*FileConfig, error) {
	var c FileConfig
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &c, nil
}

// Validate checks the structure only. Args are checked when built.
func (c *FileConfig) Validate() error {
	if len(c.Rewards) == 0 {
		return fmt.Errorf("%w: no rewards configured", ErrInvalidConfig)
	}
	seen := make(map[string]struct{}, len(c.Rewards))
	var errs []error
	for i, s := range c.Rewards {
		if s.Type == "" {
			errs = append(errs, fmt.Errorf("%w: reward %d has no type", ErrInvalidConfig, i))
			continue
		}
		if _, dup := seen[s.key()]; dup {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateReward, s.key()))
		}
		seen[s.key()] = struct{}{}
	}
	return errors.Join(errs...)
}

func (c *FileConfig) Serialize() ([]byte, error) { return encoding.ToJSON(c) }

func (c *FileConfig) Deserialize(data []byte) error { return encoding.FromJSON(data, c) }

// Build instantiates every reward through reg.
func (c *FileConfig) Build(reg Registry) (*Combined, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	comb := &Combined{config: c}
	for _, s := range c.Rewards {
		r, err := reg.New(s.Type, s.Args)
		if err != nil {
			return nil, fmt.Errorf("reward %s: %w", s.key(), err)
		}
		comb.entries = append(comb.entries, Entry{Name: s.key(), Type: s.Type, Weight: s.weight(), Reward: r})
	}
	return comb, nil
}

// Fingerprint hashes the canonical JSON form of the config so runs with
// identical settings can be grouped.
func (c *FileConfig) Fingerprint() (uint64, error) {
	// json.Marshal sorts map keys, which keeps Args stable.
	data, err := json.Marshal(c)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}

func configArgs(cfg Config) (map[string]any, error) {
	if cfg == nil {
		return nil, nil
	}
	return encoding.ToMap(cfg)
}
