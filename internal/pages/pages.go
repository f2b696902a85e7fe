// Package pages loads the documents shown one per screen by the pager and
// renders them into fixed-height slabs.
package pages

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ErrNoPages is returned when the given paths hold no readable page.
var ErrNoPages = errors.New("no pages found")

const tabWidth = 4

// Page is one screenful of content
type Page struct {
	Title  string
	Body   string
	Source string // file the page came from, empty for in-memory pages
}

// Deck is an ordered set of pages
type Deck struct {
	pages []Page
}

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))

// FromStrings builds a deck from in-memory page texts.
func FromStrings(texts ...string) *Deck {
	d := &Deck{}
	for _, t := range texts {
		d.pages = append(d.pages, newPage(t, ""))
	}
	return d
}

// Load reads every path into a deck. Directories contribute their regular
// files in name order. A file is split into several pages on form feeds
// and on lines consisting of "---".
func Load(paths ...string) (*Deck, error) {
	d := &Deck{}
	for _, p := range paths {
		files, err := expand(p)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			data, err := os.ReadFile(f)
			if err != nil {
				return nil, fmt.Errorf("failed to read page file: %w", err)
			}
			for _, chunk := range split(string(data)) {
				d.pages = append(d.pages, newPage(chunk, f))
			}
		}
	}
	if len(d.pages) == 0 {
		return nil, ErrNoPages
	}
	return d, nil
}

func expand(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}
	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() && !strings.HasPrefix(e.Name(), ".") {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func split(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var chunks []string
	for _, sheet := range strings.Split(text, "\f") {
		var cur []string
		flush := func() {
			chunk := strings.Join(cur, "\n")
			if strings.TrimSpace(chunk) != "" {
				chunks = append(chunks, chunk)
			}
			cur = nil
		}
		for _, line := range strings.Split(sheet, "\n") {
			if strings.TrimSpace(line) == "---" {
				flush()
				continue
			}
			cur = append(cur, line)
		}
		flush()
	}
	return chunks
}

func newPage(text, source string) Page {
	text = strings.Trim(strings.ReplaceAll(text, "\t", strings.Repeat(" ", tabWidth)), "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if t := strings.TrimSpace(l); t != "" {
			return Page{
				Title:  t,
				Body:   strings.Join(lines[i+1:], "\n"),
				Source: source,
			}
		}
	}
	return Page{Title: "(untitled)", Source: source}
}

// Len returns the number of pages
func (d *Deck) Len() int {
	return len(d.pages)
}

// Page returns page i
func (d *Deck) Page(i int) (Page, bool) {
	if i < 0 || i >= len(d.pages) {
		return Page{}, false
	}
	return d.pages[i], true
}

// Render lays the deck out as one string where page i starts on line
// i*height and every page occupies exactly height lines of at most width
// cells.
func (d *Deck) Render(width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	out := make([]string, 0, len(d.pages)*height)
	for _, p := range d.pages {
		out = append(out, renderPage(p, width, height)...)
	}
	return strings.Join(out, "\n")
}

func renderPage(p Page, width, height int) []string {
	lines := make([]string, 0, height)
	lines = append(lines, titleStyle.Render(ansi.Truncate(p.Title, width, "…")))

	body := strings.Split(p.Body, "\n")
	room := height - 1
	if len(body) > room && room > 0 {
		body = append(body[:room-1], "…")
	}
	for _, l := range body {
		if len(lines) == height {
			break
		}
		lines = append(lines, ansi.Truncate(l, width, "…"))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

// Find locates a page by 1-based number or by title. Titles match by
// case-insensitive substring first, then by closest edit distance.
func (d *Deck) Find(query string) (int, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(q); err == nil {
		if n >= 1 && n <= len(d.pages) {
			return n - 1, true
		}
		return 0, false
	}

	for i, p := range d.pages {
		if strings.Contains(strings.ToLower(p.Title), q) {
			return i, true
		}
	}

	best, bestDist := -1, len(q)/2+1
	for i, p := range d.pages {
		dist := levenshtein.ComputeDistance(q, strings.ToLower(p.Title))
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best, best >= 0
}

// Demo returns the deck shown when no files are given.
func Demo() *Deck {
	return FromStrings(
		"Welcome to vpager\n\nDrag with the mouse or scroll the wheel.\nWhen you let go the pager settles on a whole page.\n\nPress ? for help.",
		"Snapping\n\nA drag has to pass the snap threshold beyond a page\nboundary before the next page is committed.\nShorter drags roll back to the nearest page.",
		"Threshold\n\nPress + and - to change the threshold.\nThe new value is saved to the config file.",
		"Jumping\n\nj and k move one page, g and G go to the ends.\nPress : and type a page number or a title.",
		"The end\n\nPress q to quit.",
	)
}
