package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mfigueredo/blocksched/internal/catalog"
	"github.com/mfigueredo/blocksched/internal/config"
	"github.com/mfigueredo/blocksched/internal/engine"
	"github.com/mfigueredo/blocksched/internal/logging"
	"github.com/mfigueredo/blocksched/internal/lp"
)

var solvers = map[string]func(cfg *config.Config) lp.Solver{
	"greedy": func(cfg *config.Config) lp.Solver { return lp.NewGreedySolver() },
	"cbc":    func(cfg *config.Config) lp.Solver { return lp.NewCBCSolver(cfg.SolverTimeout) },
}

// App holds the application dependencies
type App struct {
	cfg    *config.Config
	logger *zap.Logger
}

var (
	configPath string
	verbose    bool
	app        *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "blocksched",
		Short: "Assign students to course sections and time blocks",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				_ = app.logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the config file (defaults to ./blocksched.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(scheduleCmd(), auditCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initApp() error {
	logger, err := logging.NewLogger(verbose)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	app = &App{cfg: cfg, logger: logger}
	return nil
}

func scheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Solve the request assignment model and write the schedule record",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(app.cfg)
			if err != nil {
				return err
			}
			for _, finding := range cat.Validate() {
				app.logger.Warn("catalog finding", zap.String("detail", finding))
			}

			solver := solvers[app.cfg.Solver](app.cfg)
			scheduler := engine.NewScheduler(solver, app.cfg.Blocks, app.cfg.Overflow, app.logger)

			schedule, err := scheduler.Build(cat)
			if err != nil {
				return err
			}

			record, err := json.MarshalIndent(schedule, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding schedule: %w", err)
			}
			if err := os.WriteFile(app.cfg.Output, record, 0644); err != nil {
				return fmt.Errorf("writing %v: %w", app.cfg.Output, err)
			}

			reportStats(schedule.Stats)
			return nil
		},
	}
}

func auditCmd() *cobra.Command {
	var scheduleFile string
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Recompute conflicts and violations from a produced schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(app.cfg)
			if err != nil {
				return err
			}
			if scheduleFile == "" {
				scheduleFile = app.cfg.Output
			}

			record, err := os.ReadFile(scheduleFile)
			if err != nil {
				return fmt.Errorf("reading %v: %w", scheduleFile, err)
			}
			var schedule engine.Schedule
			if err := json.Unmarshal(record, &schedule); err != nil {
				return fmt.Errorf("parsing %v: %w", scheduleFile, err)
			}

			findings := engine.NewAuditor(app.cfg.Overflow).Audit(&schedule, cat.Courses)
			for _, finding := range findings {
				app.logger.Warn("violation", zap.String("detail", finding))
			}
			if len(findings) > 0 {
				return fmt.Errorf("%v violations found", len(findings))
			}

			app.logger.Info("no violations found")
			return nil
		},
	}
	cmd.Flags().StringVar(&scheduleFile, "schedule", "", "schedule record to audit (defaults to the configured output file)")
	return cmd
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Data.Interchange != "" {
		return catalog.FromJSON(cfg.Data.Interchange)
	}
	return catalog.LoadCSV(catalog.Paths{
		Courses:   cfg.Data.Courses,
		Rooms:     cfg.Data.Rooms,
		Lecturers: cfg.Data.Lecturers,
		Requests:  cfg.Data.Requests,
	})
}

func reportStats(stats engine.Stats) {
	fmt.Printf("Total Requests: %v\n", stats.TotalRequests)
	fmt.Printf("Fulfilled Requests: %v\n", stats.FulfilledRequests)
	fmt.Printf("Fulfillment Rate: %.2f%%\n", stats.FulfillmentRate()*100)

	fmt.Println("\nPriority-wise Statistics:")
	for _, priority := range catalog.Priorities {
		stat := stats.PriorityStats[priority.String()]
		if stat == nil || stat.Total == 0 {
			continue
		}
		rate := float64(stat.Fulfilled) / float64(stat.Total) * 100
		fmt.Printf("%v: %.2f%% fulfilled (%v/%v)\n", priority, rate, stat.Fulfilled, stat.Total)
	}
}
