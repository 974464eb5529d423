package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/gallery"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects from the catalog",
	Long:  `Prints the projects that match a tag and a text query, exactly as the gallery would show them.`,
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show [slug]",
	Short: "Show one project's case study",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the tag vocabulary",
	RunE:  runTags,
}

func init() {
	listCmd.Flags().String("tag", gallery.AllTag, "only projects with this exact tag")
	listCmd.Flags().StringP("query", "q", "", "case-insensitive text filter")
	listCmd.Flags().Bool("json", false, "output projects as JSON")
	tagsCmd.Flags().Bool("json", false, "output tags as JSON")
	rootCmd.AddCommand(listCmd, showCmd, tagsCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	tag, _ := cmd.Flags().GetString("tag")
	query, _ := cmd.Flags().GetString("query")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	state := gallery.FilterState{Tag: tag, Query: query}
	view := &terminalView{out: cmd.OutOrStdout(), maxTags: cfg.MaxCardTags}

	if jsonOutput {
		c, err := newLoader(cfg).Load(context.Background())
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(state.Visible(c))
	}

	g := gallery.New(view, gallery.WithState(state), gallery.WithLocale(localeOf(cfg)), gallery.WithLogger(logger))
	return g.Load(context.Background(), newLoader(cfg))
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := newLoader(cfg).Load(context.Background())
	if err != nil {
		(&terminalView{out: cmd.ErrOrStderr()}).ShowError(err)
		return err
	}
	p, ok := c.Lookup(args[0])
	if !ok {
		return fmt.Errorf("project %q not found; run `folio list` to see slugs", args[0])
	}
	(&terminalView{out: cmd.OutOrStdout()}).ShowDetail(p)
	return nil
}

func runTags(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := newLoader(cfg).Load(context.Background())
	if err != nil {
		return err
	}
	tags := gallery.TagVocabularyFor(c, localeOf(cfg))

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(tags)
	}
	for _, t := range tags {
		fmt.Fprintln(cmd.OutOrStdout(), t)
	}
	return nil
}
