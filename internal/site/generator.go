package site

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/ziadkadry99/folio/internal/catalog"
	"github.com/ziadkadry99/folio/internal/gallery"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/render"
)

// SiteGenerator writes the gallery as a static site: an index page, one
// page per project with its detail view open, the raw catalog and the
// embedded assets.
type SiteGenerator struct {
	Source      gallery.Source
	OutputDir   string
	Renderer    *render.Renderer
	MaxCardTags int
	Locale      language.Tag

	// StaticInclude globs are matched under IncludeRoot and copied into
	// the output as-is.
	StaticInclude []string
	IncludeRoot   string

	Reporter progress.Reporter
	Logger   *zap.Logger
}

// Result summarizes a build.
type Result struct {
	Pages    int
	Projects int
	Included int
}

// NewSiteGenerator creates a SiteGenerator with quiet defaults.
func NewSiteGenerator(source gallery.Source, outputDir string, renderer *render.Renderer) *SiteGenerator {
	return &SiteGenerator{
		Source:      source,
		OutputDir:   outputDir,
		Renderer:    renderer,
		MaxCardTags: render.DefaultMaxCardTags,
		Locale:      language.English,
		IncludeRoot: ".",
		Reporter:    progress.Nop{},
		Logger:      zap.NewNop(),
	}
}

// Generate builds the site. When the catalog fails to load the index page
// is still written, showing the load-error card, and the load error is
// returned alongside the partial result.
func (g *SiteGenerator) Generate(ctx context.Context) (*Result, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}
	res := &Result{}

	if err := g.writeAssets(); err != nil {
		return res, err
	}

	c, loadErr := g.Source.Load(ctx)
	if loadErr != nil {
		g.Logger.Warn("catalog failed to load", zap.Error(loadErr))
		if err := g.writeIndex(nil, loadErr); err != nil {
			return res, err
		}
		res.Pages = 1
		return res, loadErr
	}
	res.Projects = c.Len()

	if err := g.writeCatalog(c); err != nil {
		return res, err
	}

	projects := c.Projects()
	g.Reporter.Start(len(projects) + 1)
	defer g.Reporter.Finish()

	if err := g.writeIndex(c, nil); err != nil {
		return res, err
	}
	res.Pages++
	g.Reporter.Update(res.Pages, "index.html")

	for _, p := range projects {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := g.writeDetail(c, p); err != nil {
			return res, err
		}
		res.Pages++
		g.Reporter.Update(res.Pages, "projects/"+p.Slug+".html")
	}

	n, err := g.copyIncludes()
	res.Included = n
	if err != nil {
		return res, err
	}

	g.Logger.Info("site built",
		zap.String("output", g.OutputDir),
		zap.Int("pages", res.Pages),
		zap.Int("included", res.Included))
	return res, nil
}

// newGallery renders the gallery into a fresh page for links.
func (g *SiteGenerator) newGallery(links render.Links, c *catalog.Catalog, loadErr error) (*render.Page, *gallery.Gallery) {
	page := render.NewPage(links, g.MaxCardTags)
	gal := gallery.New(page, gallery.WithLocale(g.Locale))
	if loadErr != nil {
		gal.Fail(loadErr)
	} else {
		gal.SetCatalog(c)
	}
	return page, gal
}

func (g *SiteGenerator) writeIndex(c *catalog.Catalog, loadErr error) error {
	page, _ := g.newGallery(render.Links{Static: true}, c, loadErr)
	return g.writePage("index.html", page)
}

func (g *SiteGenerator) writeDetail(c *catalog.Catalog, p catalog.Project) error {
	page, gal := g.newGallery(render.Links{Static: true, Base: "../"}, c, nil)
	if err := gal.OpenDetail(p.Slug); err != nil {
		return err
	}
	return g.writePage(filepath.Join("projects", p.Slug+".html"), page)
}

func (g *SiteGenerator) writePage(rel string, page *render.Page) error {
	var buf bytes.Buffer
	if err := g.Renderer.WritePage(&buf, render.PageData{Page: page, State: gallery.DefaultState()}); err != nil {
		return fmt.Errorf("rendering %s: %w", rel, err)
	}
	return g.writeFile(rel, buf.Bytes())
}

// writeCatalog publishes the catalog where the pages expect to find it.
// The source bytes are copied when available so the published file matches
// what the author wrote.
func (g *SiteGenerator) writeCatalog(c *catalog.Catalog) error {
	data := c.Raw()
	if data == nil {
		var err error
		data, err = json.MarshalIndent(c.Projects(), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding catalog: %w", err)
		}
	}
	return g.writeFile(filepath.Join("assets", "projects.json"), data)
}

func (g *SiteGenerator) writeAssets() error {
	for _, name := range render.AssetNames {
		data, err := render.Assets.ReadFile("assets/" + name)
		if err != nil {
			return fmt.Errorf("reading embedded %s: %w", name, err)
		}
		if err := g.writeFile(filepath.Join("static", name), data); err != nil {
			return err
		}
	}
	return nil
}

// copyIncludes copies every file matching StaticInclude. Matches inside
// the output directory are skipped so repeated builds do not nest.
func (g *SiteGenerator) copyIncludes() (int, error) {
	if len(g.StaticInclude) == 0 {
		return 0, nil
	}
	root := g.IncludeRoot
	if root == "" {
		root = "."
	}
	outRel, err := relativeTo(root, g.OutputDir)
	if err != nil {
		return 0, err
	}
	fsys := os.DirFS(root)

	seen := make(map[string]bool)
	copied := 0
	for _, pattern := range g.StaticInclude {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return copied, fmt.Errorf("matching %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] || within(m, outRel) {
				continue
			}
			seen[m] = true
			info, err := fs.Stat(fsys, m)
			if err != nil {
				return copied, fmt.Errorf("stat %s: %w", m, err)
			}
			if info.IsDir() {
				continue
			}
			if err := g.copyFile(fsys, m); err != nil {
				return copied, err
			}
			copied++
		}
	}
	return copied, nil
}

func (g *SiteGenerator) copyFile(fsys fs.FS, rel string) error {
	src, err := fsys.Open(rel)
	if err != nil {
		return fmt.Errorf("opening %s: %w", rel, err)
	}
	defer src.Close()

	dst := filepath.Join(g.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", rel, err)
	}
	return out.Close()
}

func (g *SiteGenerator) writeFile(rel string, data []byte) error {
	path := filepath.Join(g.OutputDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// relativeTo returns target relative to root in slash form, or "" when
// target lies outside root.
func relativeTo(root, target string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absRoot, absTarget)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", nil
	}
	return filepath.ToSlash(rel), nil
}

func within(path, dir string) bool {
	if dir == "" {
		return false
	}
	return dir == "." || path == dir || strings.HasPrefix(path, dir+"/")
}
