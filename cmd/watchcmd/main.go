// Command watchcmd periodically runs a command and redraws the terminal with
// its output, in the manner of watch(1).
package main

import (
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/khooz/Watch-Cmd/audio"
	"github.com/khooz/Watch-Cmd/config"
	"github.com/khooz/Watch-Cmd/session"
)

const version = "1.0.0"

func main() {
	log.SetFlags(0)
	os.Exit(run())
}

func run() int {
	cfg := &config.Config{}
	exitCode := 0

	root := newRootCmd(cfg, &exitCode)
	if err := root.Execute(); err != nil {
		return 2
	}
	return exitCode
}

func newRootCmd(cfg *config.Config, exitCode *int) *cobra.Command {
	var intervalMs int64

	root := &cobra.Command{
		Use:   "watchcmd [flags] -- command [args...]",
		Short: "Run a command periodically and show its output full-screen",
		Long: `watchcmd runs the given command at a fixed interval and redraws the
terminal with its combined output. Keys: q quits, r or Space refreshes
immediately, s saves a snapshot when a shots directory is configured.`,
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.IntervalMs = config.ClampInterval(intervalMs)
			cfg.Command = args
			if err := cfg.Validate(); err != nil {
				return err
			}
			*exitCode = watch(cfg)
			return nil
		},
	}

	flags := root.Flags()
	// Everything after the first non-flag token belongs to the watched
	// command, so `watchcmd -n 500 ls -la` needs no `--`.
	flags.SetInterspersed(false)
	flags.Int64VarP(&intervalMs, "interval", "n", 2000, "refresh interval in milliseconds")
	flags.BoolVarP(&cfg.Beep, "beep", "b", false, "beep when the command exits non-zero")
	flags.BoolVar(&cfg.ColorEnabled, "color", false, "force color output")
	flags.BoolVar(&cfg.ColorDisabled, "no-color", false, "disable color output")
	flags.BoolVarP(&cfg.ShowDiffs, "differences", "d", false, "highlight changes between updates")
	flags.BoolVar(&cfg.PermanentDiff, "permanent", false, "diff against the first run instead of the previous one")
	flags.BoolVarP(&cfg.ErrExit, "errexit", "e", false, "freeze and exit when the command fails")
	flags.BoolVarP(&cfg.ChgExit, "chgexit", "g", false, "exit when the output changes")
	flags.BoolVar(&cfg.NoRerun, "no-rerun", false, "do not rerun the command on terminal resize")
	flags.BoolVarP(&cfg.NoTitle, "no-title", "t", false, "suppress the header and separator")
	flags.BoolVarP(&cfg.NoWrap, "no-wrap", "w", false, "truncate long lines instead of wrapping")
	flags.BoolVarP(&cfg.ExecMode, "exec", "x", false, "run the command directly instead of through sh -c")
	flags.IntVar(&cfg.EquExitCycles, "equexit", 0, "exit after N consecutive unchanged updates")
	flags.StringVar(&cfg.ShotsDir, "shotsdir", "", "directory for snapshot files saved with the s key")

	return root
}

// watch enables the terminal, runs the session loop and restores the
// terminal on every exit path.
func watch(cfg *config.Config) int {
	if cfg.ShotsDir != "" {
		if err := os.MkdirAll(cfg.ShotsDir, 0o755); err != nil {
			log.Printf("watchcmd: shots directory: %v", err)
			return 1
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Printf("watchcmd: %v", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		log.Printf("watchcmd: %v", err)
		return 1
	}

	// Restore the terminal before the process exit code is reported,
	// whatever path ends the loop.
	defer screen.Fini()

	var notify session.Notifier
	if cfg.Beep {
		beeper := audio.NewBeeper(func() { _ = screen.Beep() })
		defer beeper.Close()
		notify = beeper
	}

	s := session.New(cfg, screen, session.Pump(screen), notify)
	return s.Run()
}
