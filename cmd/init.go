package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/petal-dev/petal/internal/config"
	"github.com/petal-dev/petal/internal/errors"
	"github.com/petal-dev/petal/internal/release"
	"github.com/petal-dev/petal/internal/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a petal project",
	Long: `Initialize a petal project in the project directory: create the
component and static directory layout, scaffold the Tailwind entry
stylesheet and an application entry point, download the CSS build binary,
and write petal.yml.

Re-running init on an existing project keeps its configuration and only
fills in whatever is missing.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var (
	initStyle        string
	initTheme        string
	initApp          string
	initForce        bool
	initSkipDownload bool
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initStyle, "style", "daisy", "CSS style: daisy or vanilla")
	initCmd.Flags().StringVar(&initTheme, "theme", "dark", "daisyUI theme")
	initCmd.Flags().StringVar(&initApp, "app", "main.go", "application entry point")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "re-download the CSS binary even if current")
	initCmd.Flags().BoolVar(&initSkipDownload, "skip-download", false, "skip downloading the CSS binary")
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := newLogger()
	root := projectRoot()

	if err := os.MkdirAll(root, 0o755); err != nil {
		return errors.NewIO("init", root, err)
	}

	cfg, err := config.Load(configPath())
	fresh := false
	switch {
	case err == nil:
		color.Yellow("existing petal.yml found, keeping its settings")
	case stderrors.Is(err, errors.ErrNotInitialized):
		fresh = true
		cfg = config.Default()
		cfg.Style = initStyle
		cfg.Theme = initTheme
		cfg.AppPath = filepath.ToSlash(initApp)
	default:
		return err
	}

	for _, area := range []string{
		config.PathComponents, config.PathUI, config.PathStatic,
		config.PathCSS, config.PathJS, config.PathIcons,
	} {
		dir := filepath.Join(root, cfg.Path(area))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.NewIO("init", dir, err)
		}
	}

	sctx := scaffold.NewContext(cfg, projectName(root))
	if fresh {
		cssPath := filepath.Join(root, cfg.Path(config.PathCSS), "input.css")
		if err := scaffold.RenderToFile("input.css", scaffold.InputCSS, sctx, cssPath); err != nil {
			return err
		}

		appPath := filepath.Join(root, filepath.FromSlash(cfg.AppPath))
		if _, err := os.Stat(appPath); os.IsNotExist(err) {
			if err := scaffold.RenderToFile("app", scaffold.AppEntry, sctx, appPath); err != nil {
				return err
			}
		}

		if err := ensureGoModule(root); err != nil {
			return err
		}
	}

	if !initSkipDownload {
		if err := downloadBinary(ctx, cfg, root, initForce); err != nil {
			// A failed download does not abort init; sync retries it.
			logger.Warn(ctx, err, "binary download failed, run 'petal sync' to retry")
		}
	}

	if err := config.Save(cfg, configPath()); err != nil {
		return err
	}

	color.Green("✓ Project initialized")
	if fresh {
		fmt.Println("\nNext steps:")
		fmt.Println("  1. Add components with 'petal add'")
		fmt.Println("  2. Adjust settings in petal.yml (then run 'petal sync')")
		fmt.Println("  3. Start the dev server with 'petal serve'")
	}
	return nil
}

// downloadBinary fetches the CSS binary unless the recorded version is
// already the latest, and records its provenance in cfg.
func downloadBinary(ctx context.Context, cfg *config.ProjectConfig, root string, force bool) error {
	client := release.NewClient()

	if !force && cfg.Binary != nil {
		info, err := client.FetchInfo(ctx, cfg.Style)
		if err != nil {
			return err
		}
		if release.UpToDate(cfg.Binary.Version, info.TagName) {
			color.Green("✓ CSS binary already on latest version %s", cfg.Binary.Version)
			return nil
		}
	}

	destDir := filepath.Join(root, filepath.FromSlash(config.BinDir))
	meta, dest, err := client.Download(ctx, cfg, destDir)
	if err != nil {
		return err
	}
	cfg.Binary = meta
	color.Green("✓ Downloaded CSS binary %s to %s", meta.Version, dest)
	return nil
}

func projectName(root string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		return filepath.Base(root)
	}
	return filepath.Base(abs)
}

// ensureGoModule writes a minimal go.mod so scaffolded component
// packages resolve, unless the project already has one.
func ensureGoModule(root string) error {
	path := filepath.Join(root, "go.mod")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	content := fmt.Sprintf("module %s\n\ngo 1.24\n\nrequire github.com/a-h/templ v0.3.906\n", projectName(root))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.NewIO("init", path, err)
	}
	return nil
}
