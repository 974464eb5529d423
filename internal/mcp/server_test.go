package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"golang.org/x/text/language"

	"github.com/ziadkadry99/folio/internal/catalog"
)

type stubSource struct {
	catalog *catalog.Catalog
	err     error
}

func (s *stubSource) Load(context.Context) (*catalog.Catalog, error) {
	return s.catalog, s.err
}

func strPtr(s string) *string { return &s }

func testServer() *Server {
	c := catalog.New([]catalog.Record{
		{Title: "Router", Stack: "Go", Tags: []string{"go", "net"}, Description: "Packet router."},
		{Title: "Parser", Stack: "Rust", Tags: []string{"rust"}, Problem: "Slow parsing.",
			Controls: []string{"fuzzing", "benchmarks"}, Repo: strPtr("https://example.com/parser")},
	})
	return NewServer(&stubSource{catalog: c}, language.English)
}

func resultText(t *testing.T, r *mcp.CallToolResult) string {
	t.Helper()
	if len(r.Content) == 0 {
		t.Fatal("empty result")
	}
	tc, ok := r.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", r.Content[0])
	}
	return tc.Text
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"search_projects", searchProjectsTool, "search_projects"},
		{"list_tags", listTagsTool, "list_tags"},
		{"get_project", getProjectTool, "get_project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := testServer()
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
}

func TestHandleSearchProjects(t *testing.T) {
	srv := testServer()
	ctx := context.Background()

	t.Run("all", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleSearchProjects(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := resultText(t, result)
		if !strings.Contains(text, "Found 2 project(s)") {
			t.Errorf("unexpected text:\n%s", text)
		}
		if strings.Index(text, "Router") > strings.Index(text, "Parser") {
			t.Error("projects should keep catalog order")
		}
	})

	t.Run("tag and query", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"tag": "go", "query": "ROUTER"}

		result, err := srv.handleSearchProjects(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := resultText(t, result)
		if !strings.Contains(text, "Found 1 project(s) tagged \"go\" matching \"ROUTER\"") || strings.Contains(text, "Parser") {
			t.Errorf("unexpected text:\n%s", text)
		}
	})

	t.Run("tag is case sensitive", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"tag": "Go"}

		result, err := srv.handleSearchProjects(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text := resultText(t, result); !strings.Contains(text, "No matches") {
			t.Errorf("expected no matches, got:\n%s", text)
		}
	})

	t.Run("load failure", func(t *testing.T) {
		bad := NewServer(&stubSource{err: &catalog.LoadError{Source: "p.json", Err: errors.New("boom")}}, language.English)
		req := mcp.CallToolRequest{}
		result, err := bad.handleSearchProjects(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected tool error")
		}
	})
}

func TestHandleListTags(t *testing.T) {
	srv := testServer()
	result, err := srv.handleListTags(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resultText(t, result); got != "All\ngo\nnet\nrust" {
		t.Errorf("tags = %q", got)
	}
}

func TestHandleGetProject(t *testing.T) {
	srv := testServer()
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"slug": "parser"}

		result, err := srv.handleGetProject(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := resultText(t, result)
		for _, want := range []string{"# Parser", "Project • Rust", "## Problem\nSlow parsing.", "- fuzzing", "Repo: https://example.com/parser"} {
			if !strings.Contains(text, want) {
				t.Errorf("missing %q in:\n%s", want, text)
			}
		}
		if strings.Contains(text, "Docs/Demo") {
			t.Error("demo link should be omitted")
		}
	})

	t.Run("unknown", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"slug": "nope"}

		result, err := srv.handleGetProject(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for unknown slug")
		}
	})

	t.Run("missing slug", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleGetProject(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing slug")
		}
	})
}
