package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/petal-dev/petal/internal/config"
	"github.com/petal-dev/petal/internal/scaffold"
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a component or block to the project",
	Long: `Add a component or block from the catalog: scaffold its source files
into the project, record it in petal.yml, and wire its package into the
application entry point. Dependencies of blocks are installed first.

Run 'petal list' to see what is available.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var addForce bool

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().BoolVarP(&addForce, "force", "f", false, "overwrite existing component files")
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	root := projectRoot()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg, err := newRegistry()
	if err != nil {
		return err
	}

	def, err := reg.Get(name)
	if err != nil {
		fmt.Println("Available:", reg.Names())
		return err
	}

	sctx := scaffold.NewContext(cfg, projectName(root))
	installed, err := scaffold.Install(reg, def, cfg, root, addForce, sctx)
	if err != nil {
		return err
	}
	if !installed {
		color.Yellow("files for %s (or a dependency) already exist; use --force to overwrite", name)
		return nil
	}

	if err := wireAppImport(cfg, root); err != nil {
		return err
	}

	if err := config.Save(cfg, configPath()); err != nil {
		return err
	}

	color.Green("✓ Added %s", name)
	return nil
}

// wireAppImport makes sure the application entry point imports the
// scaffolded ui package. Projects without a go.mod are left alone.
func wireAppImport(cfg *config.ProjectConfig, root string) error {
	module, err := scaffold.ModulePath(root)
	if err != nil || module == "" {
		return err
	}
	importPath := module + "/" + filepath.ToSlash(cfg.Path(config.PathUI))
	appPath := filepath.Join(root, filepath.FromSlash(cfg.AppPath))
	_, err = scaffold.InjectImport(appPath, importPath)
	return err
}
