package render

// pageTemplate is the html/template for the gallery page. Grid and tag
// fragments arrive pre-escaped as template.HTML; everything else is
// escaped by the template engine.
const pageTemplate = `<!DOCTYPE html>
<html lang="en"{{if eq .Theme "light"}} class="light"{{end}}>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if .Detail.Open}}{{.Detail.Title}} · {{end}}{{.Title}}</title>
  <link rel="stylesheet" href="{{.Links.Asset "style.css"}}">
</head>
<body data-mode="{{if .Links.Static}}static{{else}}live{{end}}"{{if .LiveReload}} data-live-reload="true"{{end}} data-catalog="{{.Links.Catalog}}">
  <div class="progress" id="progressBar"></div>
  <header class="nav">
    <a class="nav__brand" href="{{.Links.Index}}">{{.Title}}</a>
    <nav class="nav__links">
      <a href="#projects">Projects</a>
      {{if .Snippet}}<a href="#resources">Resources</a>{{end}}
      <a href="#contact">Contact</a>
    </nav>
    {{if .Links.Static}}
    <button class="icon-btn" id="themeToggle" type="button" aria-label="Toggle theme"><span class="icon">{{.ThemeIcon}}</span></button>
    {{else}}
    <form method="post" action="/theme" class="nav__theme">
      <input type="hidden" name="return" value="{{.ReturnTo}}">
      <button class="icon-btn" id="themeToggle" type="submit" aria-label="Toggle theme"><span class="icon">{{.ThemeIcon}}</span></button>
    </form>
    {{end}}
    <button class="icon-btn nav__menu" id="menuBtn" type="button" aria-expanded="false" aria-controls="mobileMenu">☰</button>
  </header>
  <div class="mobile" id="mobileMenu" hidden>
    <a class="mobile__link" href="#projects">Projects</a>
    {{if .Snippet}}<a class="mobile__link" href="#resources">Resources</a>{{end}}
    <a class="mobile__link" href="#contact">Contact</a>
    <button class="btn btn--ghost" id="themeToggle2" type="button">Toggle theme</button>
  </div>

  <main>
    {{if .Tagline}}<section class="hero"><div class="hero__left"><h1>{{.Title}}</h1><p class="muted">{{.Tagline}}</p></div></section>{{end}}

    <section class="section" id="projects">
      <div class="section__head">
        <h2>Projects</h2>
        <form class="search" method="get" action="{{.Links.Index}}">
          {{if ne .State.ActiveTag "All"}}<input type="hidden" name="tag" value="{{.State.ActiveTag}}">{{end}}
          <input id="searchInput" type="search" name="q" value="{{.State.Query}}" placeholder="Search projects, stacks, controls..." autocomplete="off">
        </form>
      </div>
      <div class="filters" id="tagFilters">
{{.TagsHTML}}      </div>
      <div class="grid" id="projectsGrid"{{if .Failed}} data-state="error"{{end}}>
{{.GridHTML}}      </div>
      {{if not .Failed}}<template id="emptyTemplate">{{.EmptyHTML}}</template>{{end}}
    </section>

    {{if .Snippet}}
    <section class="section" id="resources">
      <h2>Resources</h2>
      <div class="panel snippet">
        <div id="copySnippet">{{.Snippet}}</div>
        <button class="btn" id="copyBtn" type="button">Copy</button>
      </div>
    </section>
    {{end}}

    <section class="section" id="contact">
      <h2>Contact</h2>
      {{if .Contact}}<p><a class="link" href="{{.Contact}}">{{.Contact}}</a></p>{{end}}
    </section>
  </main>

  <dialog class="modal" id="modal"{{if .Detail.Open}} open{{end}}>
    <div class="modal__panel">
      <a class="icon-btn modal__close" id="modalClose" href="{{.CloseHref}}" aria-label="Close">✕</a>
      <h3 id="modalTitle">{{.Detail.Title}}</h3>
      <p class="muted" id="modalMeta">{{.Detail.Meta}}</p>
      <div class="pills" id="modalBadges">{{range .Detail.Badges}}<span class="pill">{{.}}</span>{{end}}</div>
      <h4>Problem</h4>
      <p id="modalProblem">{{.Detail.Problem}}</p>
      <h4>Approach</h4>
      <p id="modalApproach">{{.Detail.Approach}}</p>
      <h4>Controls</h4>
      <ul id="modalControls">{{range .Detail.Controls}}<li>{{.}}</li>{{end}}</ul>
      <h4>Impact</h4>
      <p id="modalImpact">{{.Detail.Impact}}</p>
      <div class="project__actions">
        <a class="link" id="modalRepo" href="{{.Detail.Repo}}" target="_blank" rel="noopener"{{if not .Detail.Repo}} hidden style="display:none"{{end}}>Repo →</a>
        <a class="link" id="modalDemo" href="{{.Detail.Demo}}" target="_blank" rel="noopener"{{if not .Detail.Demo}} hidden style="display:none"{{end}}>Docs/Demo →</a>
      </div>
    </div>
  </dialog>

  <div class="toast" id="toast" role="status" hidden></div>
  <footer class="footer">© <span id="year">{{.Year}}</span> {{.Title}}</footer>
  <script src="{{.Links.Asset "script.js"}}"></script>
</body>
</html>`
