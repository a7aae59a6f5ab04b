package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aglyzov/go-idx/internal/perf"
)

const Version = "0.1.0"

var RootCmd = &cobra.Command{
	Use:   "dsperf",
	Short: "Performance testing tool for go-idx data structures",
	Long: fmt.Sprintf(`dsperf (v%s)

Runs timed scenarios against the binary heap, splay tree, segment tree,
trie and hash table with seeded fake data. Every flag can also be set
through a DSPERF_* environment variable or a .env file.

Scenarios: %s`, Version, strings.Join(perf.ScenarioNames(), ", ")),
	SilenceUsage: true,
	PreRunE:      processConfig,
	RunE:         run,
}

func init() {
	cobra.OnInitialize(initConfig)

	def := perf.DefaultConfig()

	key := "ops"
	RootCmd.Flags().Int(key, def.Ops, "Operations per scenario")
	key = "seed"
	RootCmd.Flags().Int64(key, def.Seed, "Seed of the fake data generator")
	key = "buckets"
	RootCmd.Flags().Int(key, def.Buckets, "Bucket count of the hash table")
	key = "skip"
	RootCmd.Flags().String(key, "", "Scenarios to skip (comma separated - e.g. heap-insert,trie-search)")
	key = "csv"
	RootCmd.Flags().String(key, "", "Optional path to save results as CSV")
	key = "metrics"
	RootCmd.Flags().Bool(key, false, "Print recorded latencies in Prometheus text format")
}

// initConfig reads env files and DSPERF_* environment variables.
func initConfig() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	viper.SetEnvPrefix("dsperf")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func processConfig(cmd *cobra.Command, _ []string) error {
	return viper.BindPFlags(cmd.Flags())
}

// readConfig builds the run configuration from flags and environment.
func readConfig() perf.Config {
	cfg := perf.Config{
		Ops:     viper.GetInt("ops"),
		Seed:    viper.GetInt64("seed"),
		Buckets: viper.GetInt("buckets"),
	}

	for _, name := range strings.Split(viper.GetString("skip"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			cfg.Skip = append(cfg.Skip, name)
		}
	}

	return cfg
}

func run(cmd *cobra.Command, _ []string) error {
	var (
		out = cmd.OutOrStdout()
		cfg = readConfig()
	)

	fmt.Fprintln(out, "Configuration:", cfg)
	fmt.Fprintln(out)

	runner, err := perf.NewRunner(cfg)
	if err != nil {
		return err
	}

	results, err := runner.Run()
	if err != nil {
		log.Printf("(dsperf) - run aborted: %v\n", err)
	}

	if werr := perf.WriteTable(out, results); werr != nil {
		return werr
	}
	if err != nil {
		return err
	}

	if viper.GetBool("metrics") {
		fmt.Fprintln(out)
		runner.WriteMetrics(out)
	}

	if csvPath := viper.GetString("csv"); csvPath != "" {
		fmt.Fprintf(out, "\nExporting results to CSV: %s\n", csvPath)

		if err := writeCSVFile(csvPath, cfg, results); err != nil {
			return fmt.Errorf("failed to export results to CSV: %w", err)
		}
	}

	return nil
}

func writeCSVFile(path string, cfg perf.Config, results []perf.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := perf.WriteCSV(f, cfg, results); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
