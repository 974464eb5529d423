package config

// Config is the top-level folio configuration, corresponding to .folio.yml.
//
// MaxCardTags caps the tag pills on a card. Zero means the default of 4 and
// a negative value shows every tag.
type Config struct {
	Title           string        `yaml:"title" koanf:"title"`
	Tagline         string        `yaml:"tagline" koanf:"tagline"`
	Contact         string        `yaml:"contact" koanf:"contact"`
	Catalog         string        `yaml:"catalog" koanf:"catalog"`
	OutputDir       string        `yaml:"output_dir" koanf:"output_dir"`
	Port            int           `yaml:"port" koanf:"port"`
	Locale          string        `yaml:"locale" koanf:"locale"`
	MaxCardTags     int           `yaml:"max_card_tags" koanf:"max_card_tags"`
	StaticInclude   []string      `yaml:"static_include" koanf:"static_include"`
	Snippet         SnippetConfig `yaml:"snippet" koanf:"snippet"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Watch           bool          `yaml:"watch" koanf:"watch"`
}

// SnippetConfig is the copyable code block shown in the Resources section.
// An empty Code hides the section.
type SnippetConfig struct {
	Code     string `yaml:"code" koanf:"code"`
	Language string `yaml:"language" koanf:"language"`
}
