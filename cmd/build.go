package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the portfolio as a static website",
	Long: `Renders the gallery and one page per project into the output directory,
copies the catalog and assets next to them, and publishes any files matching
static_include. The result can be hosted from any static file server.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	generator := site.NewSiteGenerator(newLoader(cfg), outputDir, renderer)
	generator.MaxCardTags = cfg.MaxCardTags
	generator.Locale = localeOf(cfg)
	generator.StaticInclude = cfg.StaticInclude
	generator.Reporter = progress.NewReporter()
	generator.Logger = logger

	res, err := generator.Generate(context.Background())
	if err != nil {
		if res != nil && res.Pages > 0 {
			fmt.Printf("Wrote %s with the load error shown\n", outputDir)
		}
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages, %d projects", outputDir, res.Pages, res.Projects)
	if res.Included > 0 {
		fmt.Printf(", %d extra files", res.Included)
	}
	fmt.Println(")")
	return nil
}
