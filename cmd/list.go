package cmd

import (
	stderrors "errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/petal-dev/petal/internal/errors"
	"github.com/petal-dev/petal/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available components and blocks",
	Long: `List the catalog of components and blocks. Inside a petal project,
installed entries are marked.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listCategory string

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listCategory, "category", "", "only show entries in this category")
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := newRegistry()
	if err != nil {
		return err
	}

	// The catalog is listable outside a project; installed markers just
	// disappear.
	cfg, err := loadConfig()
	if err != nil {
		if !stderrors.Is(err, errors.ErrNotInitialized) {
			return err
		}
		cfg = nil
	}

	printKind := func(title string, kind registry.Kind) {
		defs := reg.ByKind(kind)
		if listCategory != "" {
			filtered := defs[:0]
			for _, def := range defs {
				if def.HasCategory(listCategory) {
					filtered = append(filtered, def)
				}
			}
			defs = filtered
		}
		if len(defs) == 0 {
			return
		}

		color.New(color.Bold).Println(title)
		for _, def := range defs {
			marker := "  "
			if cfg != nil && cfg.HasComponent(def.Name) {
				marker = color.GreenString("✓ ")
			}
			fmt.Printf("%s%-12s %s\n", marker, def.Name, def.Description)
		}
		fmt.Println()
	}

	printKind("Components", registry.KindComponent)
	printKind("Blocks", registry.KindBlock)

	if cfg != nil && cfg.Binary != nil {
		fmt.Printf("CSS binary: %s %s (downloaded %s)\n",
			cfg.Binary.Style, cfg.Binary.Version,
			cfg.Binary.DownloadedAt.Format("2006-01-02"))
	}
	return nil
}
