package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/folio/internal/catalog"
	"github.com/ziadkadry99/folio/internal/gallery"
)

// handleSearchProjects filters the catalog the same way the gallery does.
func (s *Server) handleSearchProjects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, err := s.source.Load(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	state := gallery.FilterState{
		Tag:   request.GetString("tag", gallery.AllTag),
		Query: request.GetString("query", ""),
	}
	projects := state.Visible(c)
	if len(projects) == 0 {
		return mcp.NewToolResultText("No matches. Try a different search or filter."), nil
	}

	return mcp.NewToolResultText(formatProjectList(state, projects)), nil
}

// handleListTags returns the tag vocabulary, one tag per line.
func (s *Server) handleListTags(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, err := s.source.Load(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(strings.Join(gallery.TagVocabularyFor(c, s.locale), "\n")), nil
}

// handleGetProject returns one project's case study.
func (s *Server) handleGetProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := request.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: slug"), nil
	}

	c, err := s.source.Load(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	p, ok := c.Lookup(slug)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"No project %q. Use search_projects to find valid slugs.", slug,
		)), nil
	}

	return mcp.NewToolResultText(formatProject(p)), nil
}

func formatProjectList(state gallery.FilterState, projects []catalog.Project) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d project(s)", len(projects)))
	if tag := state.ActiveTag(); tag != gallery.AllTag {
		sb.WriteString(fmt.Sprintf(" tagged %q", tag))
	}
	if state.Query != "" {
		sb.WriteString(fmt.Sprintf(" matching %q", state.Query))
	}
	sb.WriteString(":\n")

	for _, p := range projects {
		sb.WriteString(fmt.Sprintf("\n- %s (slug: %s)\n", p.Title, p.Slug))
		if p.Stack != "" {
			sb.WriteString(fmt.Sprintf("  Stack: %s\n", p.Stack))
		}
		if p.Description != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", p.Description))
		}
		if len(p.Tags) > 0 {
			sb.WriteString(fmt.Sprintf("  Tags: %s\n", strings.Join(p.Tags, ", ")))
		}
	}
	return sb.String()
}

func formatProject(p catalog.Project) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n", p.Title))
	if p.Subtitle != "" {
		sb.WriteString(p.Subtitle + "\n")
	}

	meta := p.Category
	if p.Stack != "" {
		meta += " • " + p.Stack
	}
	sb.WriteString(fmt.Sprintf("\n%s\n", meta))
	if len(p.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(p.Tags, ", ")))
	}

	section := func(title, body string) {
		if body != "" {
			sb.WriteString(fmt.Sprintf("\n## %s\n%s\n", title, body))
		}
	}
	section("Description", p.Description)
	section("Problem", p.Problem)
	section("Approach", p.Approach)
	if len(p.Controls) > 0 {
		sb.WriteString("\n## Controls\n")
		for _, c := range p.Controls {
			sb.WriteString(fmt.Sprintf("- %s\n", c))
		}
	}
	section("Impact", p.Impact)

	if p.Repo != "" || p.Demo != "" {
		sb.WriteString("\n## Links\n")
		if p.Repo != "" {
			sb.WriteString(fmt.Sprintf("Repo: %s\n", p.Repo))
		}
		if p.Demo != "" {
			sb.WriteString(fmt.Sprintf("Docs/Demo: %s\n", p.Demo))
		}
	}
	return sb.String()
}
