package cmd

import (
	"fmt"
	"os"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade petal to the latest release",
	Args:  cobra.NoArgs,
	RunE:  runUpgrade,
}

var upgradeCheck bool

func init() {
	rootCmd.AddCommand(upgradeCmd)
	upgradeCmd.Flags().BoolVar(&upgradeCheck, "check", false, "only check for a newer release")
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return fmt.Errorf("creating update source: %w", err)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return fmt.Errorf("initializing updater: %w", err)
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return fmt.Errorf("detecting latest release: %w", err)
	}
	if !found || !latest.GreaterThan(version) {
		color.Green("✓ petal %s is up to date", version)
		return nil
	}

	fmt.Printf("New version available: %s (current %s)\n", latest.Version(), version)
	if upgradeCheck {
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locating executable: %w", err)
	}
	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return fmt.Errorf("updating: %w", err)
	}

	color.Green("✓ Updated to %s", latest.Version())
	return nil
}
