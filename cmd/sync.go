package cmd

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/petal-dev/petal/internal/config"
	"github.com/petal-dev/petal/internal/errors"
	"github.com/petal-dev/petal/internal/scaffold"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync project files with petal.yml",
	Long: `Bring the project tree back in line with petal.yml: recreate missing
directories, regenerate the Tailwind entry stylesheet, re-wire component
imports in the application entry point, and download the CSS binary if it
is missing or stale. Run this after editing petal.yml by hand.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

var syncForce bool

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().BoolVarP(&syncForce, "force", "f", false, "regenerate files even if present")
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := newLogger().WithComponent("sync")
	root := projectRoot()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	for area, dir := range cfg.Paths {
		full := filepath.Join(root, filepath.FromSlash(dir))
		if err := os.MkdirAll(full, 0o755); err != nil {
			return errors.NewIO("sync", full, err)
		}
		logger.Debug(ctx, "ensured directory", "area", area, "dir", dir)
	}

	sctx := scaffold.NewContext(cfg, projectName(root))
	cssPath := filepath.Join(root, cfg.Path(config.PathCSS), "input.css")
	if _, err := os.Stat(cssPath); os.IsNotExist(err) || syncForce {
		if err := scaffold.RenderToFile("input.css", scaffold.InputCSS, sctx, cssPath); err != nil {
			return err
		}
		logger.Debug(ctx, "regenerated stylesheet", "path", cssPath)
	}

	if len(cfg.Components) > 0 {
		if err := wireAppImport(cfg, root); err != nil {
			return err
		}
	}

	binary := filepath.Join(root, cfg.BinaryPath())
	if _, err := os.Stat(binary); os.IsNotExist(err) || cfg.Binary == nil {
		if err := downloadBinary(ctx, cfg, root, syncForce); err != nil {
			return err
		}
	}

	if err := config.Save(cfg, configPath()); err != nil {
		return err
	}

	color.Green("✓ Project synced")
	return nil
}
