package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"rrsim/internal/job"
	"rrsim/internal/logging"
	"rrsim/internal/report"
	"rrsim/internal/sched"
)

type runOptions struct {
	configPath string
	quantum    int64
	tasks      []string
	traceCSV   string
	quiet      bool
	logLevel   string
	logFormat  string
}

func newRunCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a round-robin simulation",
		Long: `Run loads tasks from --task flags or the config file (falling back to a
built-in demo workload), runs them to completion and prints the trace and
performance metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sched.Load(opts.configPath)
			if err != nil {
				return err
			}

			// flags win over file and environment
			flags := cmd.Flags()
			if flags.Changed("quantum") {
				cfg.Quantum = opts.quantum
			}
			if flags.Changed("trace-csv") {
				cfg.TraceCSV = opts.traceCSV
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = opts.logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = opts.logFormat
			}
			if len(opts.tasks) > 0 {
				specs, err := job.ParseAll(opts.tasks)
				if err != nil {
					return err
				}
				cfg.Tasks = specs
			}
			if len(cfg.Tasks) == 0 {
				cfg.Tasks = job.Demo()
			}

			return runSimulation(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, opts.quiet)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML simulation file")
	f.Int64VarP(&opts.quantum, "quantum", "q", 20, "Time quantum per turn (or RRSIM_QUANTUM env)")
	f.StringArrayVarP(&opts.tasks, "task", "t", nil, "Task as name:burst (repeatable)")
	f.StringVar(&opts.traceCSV, "trace-csv", "", "Write the slice trace to this CSV file")
	f.BoolVar(&opts.quiet, "quiet", false, "Do not print the per-slice trace")
	f.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	f.StringVar(&opts.logFormat, "log-format", "console", "Log format (console, json)")

	return cmd
}

func runSimulation(out, errOut io.Writer, cfg sched.Config, quiet bool) (err error) {
	logger := logging.NewLoggerWithWriter(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, errOut)

	schedOpts := []sched.Option{sched.WithLogger(logger)}
	if !quiet {
		schedOpts = append(schedOpts, sched.WithSink(report.ConsoleTrace{W: out}))
	}
	if cfg.TraceCSV != "" {
		trace, terr := report.NewCSVTrace(cfg.TraceCSV)
		if terr != nil {
			return terr
		}
		defer func() {
			if cerr := trace.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		schedOpts = append(schedOpts, sched.WithSink(trace))
	}

	s, err := sched.New(cfg.Quantum, schedOpts...)
	if err != nil {
		return err
	}
	for _, spec := range cfg.Tasks {
		if _, err := s.Add(spec.Name, spec.Burst); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, " Round Robin Scheduler Simulation ")
	s.Run()
	fmt.Fprintln(out, "Simulation Complete ")

	return report.WriteMetrics(out, s.Metrics())
}
