package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/petal-dev/petal/internal/build"
	"github.com/petal-dev/petal/internal/server"
	"github.com/petal-dev/petal/internal/watcher"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"dev"},
	Short:   "Start the development server",
	Long: `Start the development server: component previews at /, static assets
under /static/, and live reload over /ws. File changes trigger a CSS
rebuild and a browser refresh.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	root := projectRoot()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg, err := newRegistry()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runner := build.NewRunner(root, logger)
	if err := runner.CSS(ctx, cfg, false); err != nil {
		// Serve previews anyway; styles catch up on the first rebuild.
		logger.Warn(ctx, err, "initial css build failed")
	}

	srv := server.New(cfg, reg, root, logger)

	if cfg.Live {
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
			if err := runner.CSS(ctx, cfg, false); err != nil {
				logger.Error(ctx, err, "rebuild failed")
			}
			srv.NotifyReload()
		})
		if err := w.Add(root); err != nil {
			return err
		}
		go w.Start(ctx)
	}

	return srv.Start(ctx)
}
