package cli

import (
	"fmt"
	"os"
	"os/signal"
	"stegano/internal/logging"
	"stegano/pkg/config"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
)

type rootOpts struct {
	configPath    string
	logLevel      string
	cpuProfile    string
	memProfileDir string
}

// app holds what the root command sets up for its subcommands.
type app struct {
	config *config.File
	logger *logging.Logger

	// profilerMu guards profiler, which the signal handler may stop concurrently with the command teardown.
	profilerMu sync.Mutex
	profiler   *profiler
}

// stopProfiling only returns once the profiles are written, whichever caller ends up writing them.
func (a *app) stopProfiling() {
	a.profilerMu.Lock()
	defer a.profilerMu.Unlock()
	if a.profiler == nil {
		return
	}
	if err := a.profiler.Stop(); err != nil {
		a.logger.WithError(err).Error("Error writing profiles")
	}
	a.profiler = nil
}

func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{})
}

func newRootCommand(a *app) *cobra.Command {
	opts := rootOpts{}

	rootCmd := &cobra.Command{
		Use:           "stegano",
		Short:         "Hides encrypted messages in images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.stopProfiling()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file, flags take precedence over it")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level, one of debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&opts.cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&opts.memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	rootCmd.AddCommand(ImageCommands(a), ServeAppCommand(a))
	return rootCmd
}

func (a *app) setup(opts rootOpts) error {
	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logging.SetLevel(level)

	a.config = cfg
	a.logger = logging.BuildLogger()

	if opts.cpuProfile != "" || opts.memProfileDir != "" {
		p, err := startProfiler(opts.cpuProfile, opts.memProfileDir)
		if err != nil {
			return err
		}
		a.profilerMu.Lock()
		a.profiler = p
		a.profilerMu.Unlock()
		go a.stopProfilingOnSignal()
	}
	return nil
}

// stopProfilingOnSignal writes the profiles gathered so far when the process is interrupted, since deferred calls
// do not run on os.Exit.
func (a *app) stopProfilingOnSignal() {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	a.stopProfiling()
	os.Exit(0)
}

func Execute() error {
	a := &app{}
	defer a.stopProfiling()

	if err := newRootCommand(a).Execute(); err != nil {
		return fmt.Errorf("stegano: %w", err)
	}
	return nil
}
