// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ezrec/isaconform/config"
	"github.com/ezrec/isaconform/cpu"
	"github.com/ezrec/isaconform/report"
	"github.com/ezrec/isaconform/suite"
	"github.com/ezrec/isaconform/testcase"
)

// options are the command line settings shared by every subcommand.
type options struct {
	configFile    string
	catalogs      []string
	noBuiltin     bool
	tests         []string
	stopOnFailure bool
	stepLimit     uint64
	width         uint64
	noColor       bool
	logOutput     bool
	verbose       bool
}

// rootFlags registers the flags shared by every subcommand.
func (opt *options) rootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&opt.configFile, "config", "", "TOML configuration file")
	flags.StringArrayVar(&opt.catalogs, "catalog", nil, "Test catalog file or directory (repeatable)")
	flags.BoolVar(&opt.noBuiltin, "no-builtin", false, "Omit the built-in test catalog")
	flags.BoolVarP(&opt.verbose, "verbose", "v", false, "Verbose mode")
}

// runFlags registers the flags of the run subcommand.
func (opt *options) runFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringArrayVar(&opt.tests, "test", nil, "Run only the named test (repeatable)")
	flags.BoolVar(&opt.stopOnFailure, "stop-on-failure", false, "Stop at the first failing test")
	flags.Uint64Var(&opt.stepLimit, "step-limit", 0, "Clock steps before a test times out (0 = unbounded)")
	flags.Uint64Var(&opt.width, "width", 0, "Program counter units per instruction")
	flags.BoolVar(&opt.noColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&opt.logOutput, "log", false, "Write structured log records to stderr")
}

// settings loads the configuration file, if any, and applies the flags
// that were given on the command line over it.
func (opt *options) settings(cmd *cobra.Command) (cfg *config.Config, err error) {
	if len(opt.configFile) != 0 {
		cfg, err = config.Load(opt.configFile)
		if err != nil {
			return
		}
	} else {
		cfg = config.Default()
	}

	flags := cmd.Flags()
	cfg.Catalogs = append(cfg.Catalogs, opt.catalogs...)
	if flags.Changed("no-builtin") {
		cfg.Builtin = !opt.noBuiltin
	}
	if flags.Changed("test") {
		cfg.Tests = opt.tests
	}
	if flags.Changed("stop-on-failure") {
		cfg.Policy = policyFlag(opt.stopOnFailure).String()
	}
	if flags.Changed("step-limit") {
		cfg.StepLimit = opt.stepLimit
	}
	if flags.Changed("width") {
		cfg.InstructionWidth = opt.width
	}
	if flags.Changed("no-color") {
		cfg.Color = !opt.noColor
	}
	if flags.Changed("log") {
		cfg.Log = opt.logOutput
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opt.verbose
	}

	return
}

// policyFlag maps the --stop-on-failure flag onto a suite policy.
func policyFlag(stopOnFailure bool) suite.Policy {
	if stopOnFailure {
		return suite.StopOnFailure
	}
	return suite.RunEvery
}

// loadCatalog parses a catalog file, or every catalog in a directory.
func loadCatalog(path string, verbose bool) (s *suite.Suite, err error) {
	ld := &suite.Loader{Verbose: verbose}

	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if info.IsDir() {
		return ld.ParseFS(os.DirFS(path))
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return ld.Parse(inf)
}

// catalog assembles the suite named by the settings.
func catalog(cfg *config.Config) (s *suite.Suite, err error) {
	s = suite.New()
	if cfg.Builtin {
		s = suite.Default()
	}

	for _, path := range cfg.Catalogs {
		var loaded *suite.Suite
		loaded, err = loadCatalog(path, cfg.Verbose)
		if err != nil {
			err = fmt.Errorf("%v: %w", path, err)
			return
		}

		s, err = s.Merge(loaded)
		if err != nil {
			err = fmt.Errorf("%v: %w", path, err)
			return
		}
	}

	if len(cfg.Tests) != 0 {
		s, err = s.Subset(cfg.Tests...)
	}

	return
}

// run executes the suite on the reference device, returning true if
// every test case passed.
func run(ctx context.Context, cfg *config.Config) (passed bool, err error) {
	policy, err := cfg.RunPolicy()
	if err != nil {
		return
	}

	s, err := catalog(cfg)
	if err != nil {
		return
	}

	console := report.NewConsole(os.Stdout)
	console.Color = cfg.Color

	var sink report.Sink = console
	if cfg.Log {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		sink = report.Multi(console, &report.Logger{Logger: logger})
	}

	runner := suite.NewRunner(sink)
	runner.Verbose = cfg.Verbose
	runner.Policy = policy
	runner.Driver.Verbose = cfg.Verbose
	runner.Driver.Evaluator.Verbose = cfg.Verbose
	runner.Driver.StepLimit = cfg.StepLimit
	runner.Driver.InstructionWidth = cfg.InstructionWidth

	dev := cpu.NewDevice(cfg.MemorySize)
	dev.Cpu.Verbose = cfg.Verbose

	sum, err := runner.RunAll(ctx, s, dev)
	if err != nil {
		return
	}

	passed = sum.Passed
	return
}

func main() {
	opt := &options{}

	var rootCmd = &cobra.Command{
		Use:   "conform",
		Short: "Instruction set conformance test runner",
		Long: `Runs catalogs of instruction set test cases against a device under test,
checking register assertions at scheduled instruction addresses.`,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	opt.rootFlags(rootCmd)

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the test suite on the reference device",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := opt.settings(cmd)
			if err != nil {
				log.Fatal(err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			passed, err := run(ctx, cfg)
			if err != nil {
				log.Fatal(err)
			}
			if !passed {
				stop()
				os.Exit(1)
			}
		},
	}

	opt.runFlags(runCmd)

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the test names in run order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := opt.settings(cmd)
			if err != nil {
				log.Fatal(err)
			}

			s, err := catalog(cfg)
			if err != nil {
				log.Fatal(err)
			}

			for _, name := range s.Names() {
				fmt.Println(name)
			}
		},
	}

	var dumpCmd = &cobra.Command{
		Use:   "dump NAME",
		Short: "Print the compiled program and schedule of a test",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := opt.settings(cmd)
			if err != nil {
				log.Fatal(err)
			}

			s, err := catalog(cfg)
			if err != nil {
				log.Fatal(err)
			}

			tc, ok := s.Get(args[0])
			if !ok {
				log.Fatalf("%v: %v", args[0], suite.ErrUnknownTest)
			}

			prog, sch := testcase.Compile(tc)
			for addr, word := range prog.Words() {
				fmt.Printf("%4d: %08x  %v\n", addr, word, cpu.Code(word))
			}
			for addr, directives := range sch.All() {
				for _, text := range directives {
					fmt.Printf("%4d: ? %v\n", addr, text)
				}
			}
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
