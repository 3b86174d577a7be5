package cmd

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/petal-dev/petal/internal/config"
	"github.com/petal-dev/petal/internal/errors"
)

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an installed component from the project",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

var removeKeepFiles bool

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().BoolVar(&removeKeepFiles, "keep-files", false, "untrack the component but keep its files")
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]
	root := projectRoot()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	installedPath, err := cfg.ComponentPath(name)
	if err != nil {
		return err
	}
	if err := cfg.RemoveComponent(name); err != nil {
		return err
	}

	if !removeKeepFiles {
		target := filepath.Join(root, filepath.FromSlash(installedPath))
		if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
			return errors.NewIO("remove", target, err)
		}
	}

	if err := config.Save(cfg, configPath()); err != nil {
		return err
	}

	color.Green("✓ Removed %s", name)
	return nil
}
