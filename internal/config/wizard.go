package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectCatalog returns the first well-known catalog location that exists
// in the current directory, or the default path.
func detectCatalog() (path string, found bool) {
	for _, candidate := range catalogCandidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return DefaultCatalog, false
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your portfolio.")
	fmt.Println()

	defaults := DefaultConfig()

	catalogPath, found := detectCatalog()
	if found {
		fmt.Printf("Found project data at %s\n\n", catalogPath)
	}

	// 1. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: defaults.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	// 2. Tagline.
	taglinePrompt := promptui.Prompt{
		Label:   "Tagline (leave blank to skip the hero)",
		Default: "",
	}
	tagline, err := taglinePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("tagline: %w", err)
	}

	// 3. Catalog location.
	catalogPrompt := promptui.Prompt{
		Label:   "Projects JSON (path or http(s) URL)",
		Default: catalogPath,
	}
	catalogPath, err = catalogPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("catalog path: %w", err)
	}

	// 4. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the built site",
		Default: defaults.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 5. Dev server port.
	portPrompt := promptui.Prompt{
		Label:    "Dev server port",
		Default:  strconv.Itoa(defaults.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(strings.TrimSpace(portStr))

	// 6. Tag ordering locale.
	localePrompt := promptui.Select{
		Label: "Sort tags for locale",
		Items: []string{"en", "de", "fr", "es", "sv", "ja"},
	}
	_, locale, err := localePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("locale selection: %w", err)
	}

	// 7. Extra files to publish.
	includePrompt := promptui.Prompt{
		Label:   "Extra files to publish (comma-separated globs, blank for none)",
		Default: "",
	}
	includeStr, err := includePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("static include: %w", err)
	}

	cfg := defaults
	cfg.Title = title
	cfg.Tagline = tagline
	cfg.Catalog = catalogPath
	cfg.OutputDir = outputDir
	cfg.Port = port
	cfg.Locale = locale
	cfg.StaticInclude = splitAndTrim(includeStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if !found && !strings.Contains(catalogPath, "://") {
		if _, err := os.Stat(catalogPath); os.IsNotExist(err) {
			fmt.Printf("\nNote: create %s (a JSON array of projects) before running folio build.\n", catalogPath)
		}
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
