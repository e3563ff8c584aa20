package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/rewardshaping/internal/core/rewards"
	"github.com/zeusync/rewardshaping/pkg/encoding"
)

var defaultsFormat string

var defaultsCmd = &cobra.Command{
	Use:   "defaults [type...]",
	Short: "Print the default arguments of registered rewards",
	Long: `Print the default arguments of the named reward types, or of every
registered type when none is given. With --format yaml the output is a
complete rewards config that eval accepts.`,
	RunE: runDefaults,
}

func init() {
	defaultsCmd.Flags().StringVarP(&defaultsFormat, "format", "f", "json", "json or yaml")
}

func runDefaults(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = kit.Registry.Names()
	}

	cfg := &rewards.FileConfig{}
	byName := make(map[string]json.RawMessage, len(names))
	for _, name := range names {
		r, err := kit.Registry.New(name, nil)
		if err != nil {
			return err
		}
		data, err := r.GetConfig().Serialize()
		if err != nil {
			return fmt.Errorf("serialize %s: %w", name, err)
		}
		byName[name] = data

		spec := rewards.RewardSpec{Type: name}
		if spec.Args, err = encoding.ToMap(r.GetConfig()); err != nil {
			return fmt.Errorf("serialize %s: %w", name, err)
		}
		cfg.Rewards = append(cfg.Rewards, spec)
	}

	var out []byte
	var err error
	switch defaultsFormat {
	case "json":
		out, err = encoding.ToJSON(byName)
		out = append(out, '\n')
	case "yaml":
		out, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("unknown format %q", defaultsFormat)
	}
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
