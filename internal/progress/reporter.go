// Package progress reports page-by-page progress of a static site build.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter is told how many pages a build will write, then about each page
// as it lands on disk.
type Reporter interface {
	Start(pages int)
	Update(written int, page string)
	Finish()
}

// NewReporter picks a progress bar for interactive builds and plain log lines
// when CI or GITHUB_ACTIONS is set.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{Out: os.Stderr}
	}
	return &TerminalReporter{}
}

// TerminalReporter draws a bar that names the page being written.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(pages int) {
	r.bar = progressbar.NewOptions(pages,
		progressbar.OptionSetDescription("Writing gallery pages"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(written int, page string) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(page)
	_ = r.bar.Set(written)
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter writes one line per page. A build that stops early ends with
// a line showing how far it got.
type CIReporter struct {
	Out io.Writer

	pages   int
	written int
}

func (r *CIReporter) out() io.Writer {
	if r.Out == nil {
		return os.Stderr
	}
	return r.Out
}

func (r *CIReporter) Start(pages int) {
	r.pages, r.written = pages, 0
	fmt.Fprintf(r.out(), "gallery: writing %d pages (index + %d projects)\n", pages, max(pages-1, 0))
}

func (r *CIReporter) Update(written int, page string) {
	r.written = written
	fmt.Fprintf(r.out(), "gallery: [%d/%d] %s\n", written, r.pages, page)
}

func (r *CIReporter) Finish() {
	if r.written < r.pages {
		fmt.Fprintf(r.out(), "gallery: stopped after %d of %d pages\n", r.written, r.pages)
		return
	}
	fmt.Fprintf(r.out(), "gallery: %d pages written\n", r.written)
}

// Nop discards progress; library callers and tests use it.
type Nop struct{}

func (Nop) Start(int)          {}
func (Nop) Update(int, string) {}
func (Nop) Finish()            {}
