package config

const (
	// DefaultPath is the config file read when --config is not given.
	DefaultPath = ".folio.yml"
	// DefaultCatalog is where the projects data file lives.
	DefaultCatalog = "assets/projects.json"
	// DefaultPort is the dev server port.
	DefaultPort = 8080
	// DefaultMaxCardTags is how many tag pills a card shows.
	DefaultMaxCardTags = 4
)

// catalogCandidates are checked, in order, by the init wizard to suggest a
// catalog path.
var catalogCandidates = []string{
	"assets/projects.json",
	"projects.json",
	"data/projects.json",
	"static/projects.json",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:       "Portfolio",
		Catalog:     DefaultCatalog,
		OutputDir:   "site",
		Port:        DefaultPort,
		Locale:      "en",
		MaxCardTags: DefaultMaxCardTags,
		Snippet: SnippetConfig{
			Language: "bash",
		},
		Watch: true,
	}
}
