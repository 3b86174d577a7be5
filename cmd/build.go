package cmd

import (
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/petal-dev/petal/internal/build"
	"github.com/petal-dev/petal/internal/watcher"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile the project stylesheet",
	Long: `Compile static/css/input.css to static/css/output.css with the
downloaded CSS binary. Use --minify for production output and --watch to
rebuild on changes.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

var (
	buildMinify bool
	buildWatch  bool
)

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().BoolVar(&buildMinify, "minify", false, "minify the output stylesheet")
	buildCmd.Flags().BoolVarP(&buildWatch, "watch", "w", false, "rebuild when sources change")
}

func runBuild(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	root := projectRoot()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	runner := build.NewRunner(root, logger)
	if err := runner.CSS(cmd.Context(), cfg, buildMinify); err != nil {
		return err
	}
	color.Green("✓ Built %s", build.OutputPath(cfg))

	if !buildWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	w, err := watcher.New(
		[]string{"**/*.go", "**/input.css"},
		[]string{"**/output.css", "**/.petal/**", "**/.git/**"},
		0,
	)
	if err != nil {
		return err
	}
	defer w.Close()

	w.OnChange(func(ev watcher.Event) {
		if err := runner.CSS(ctx, cfg, buildMinify); err != nil {
			logger.Error(ctx, err, "rebuild failed")
			return
		}
		logger.Info(ctx, "rebuilt stylesheet", "changed", len(ev.Paths))
	})
	if err := w.Add(root); err != nil {
		return err
	}

	logger.Info(ctx, "watching for changes, Ctrl-C to stop")
	w.Start(ctx)
	return nil
}
