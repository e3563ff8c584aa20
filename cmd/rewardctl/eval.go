package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/zeusync/rewardshaping/internal/core/observability/log"
	"github.com/zeusync/rewardshaping/internal/core/observability/report"
	"github.com/zeusync/rewardshaping/internal/core/replay"
	"github.com/zeusync/rewardshaping/internal/core/rewards"
)

var (
	configPath string
	jobs       int
)

var evalCmd = &cobra.Command{
	Use:   "eval --config rewards.yaml episode.jsonl...",
	Short: "Replay episodes through a reward config",
	Long: `Replay every episode through its own instance of the configured rewards,
then print the merged per-term report and each car's return.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVarP(&configPath, "config", "c", "", "rewards config (.yaml, .yml or .json)")
	evalCmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "episodes evaluated in parallel")
	_ = evalCmd.MarkFlagRequired("config")
}

func loadConfig(path string) (*rewards.FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	if filepath.Ext(path) == ".json" {
		return rewards.LoadJSON(f)
	}
	return rewards.LoadYAML(f)
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load %s: %w", configPath, err)
	}
	// fail before spawning anything when the config cannot be built
	if _, err = cfg.Build(kit.Registry); err != nil {
		return err
	}
	fingerprint, err := cfg.Fingerprint()
	if err != nil {
		return err
	}

	logger := kit.Log.With(
		log.String("run_id", uuid.NewString()),
		log.String("config", fmt.Sprintf("%016x", fingerprint)),
	)
	logger.Info("evaluation started", log.Int("episodes", len(args)), log.Int("jobs", jobs))

	results := make([]replay.Result, len(args))
	reports := make([]*report.Report, len(args))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(jobs, 1))
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			ep, err := replay.LoadFile(path)
			if err != nil {
				return err
			}
			comb, err := cfg.Build(kit.Registry)
			if err != nil {
				return err
			}
			reports[i] = report.New()
			results[i], err = replay.NewEvaluator(logger).Evaluate(ctx, comb, ep, reports[i])
			return err
		})
	}
	if err = g.Wait(); err != nil {
		logger.Error("evaluation failed", log.Error(err))
		return err
	}

	merged := report.New()
	for _, r := range reports {
		merged.Merge(r)
	}
	logger.Info("evaluation finished", merged.Fields()...)

	out := cmd.OutOrStdout()
	if err = merged.Fprint(out); err != nil {
		return err
	}
	fmt.Fprintln(out)
	for _, res := range results {
		cars := make([]int, 0, len(res.Returns))
		for id := range res.Returns {
			cars = append(cars, id)
		}
		sort.Ints(cars)
		for _, id := range cars {
			fmt.Fprintf(out, "%s\tcar %d\t%d steps\treturn %.4f\n", res.Episode, id, res.Steps, res.Returns[id])
		}
	}
	return nil
}
