// Package cms loads the site's editorial pages from markdown files with YAML
// front matter, falling back to built-in copy when a file is absent.
package cms

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/patrickmn/go-cache"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// ErrNotFound indicates no markdown file or fallback exists for a slug.
var ErrNotFound = errors.New("cms: not found")

// Page is an editorial page ready for rendering.
type Page struct {
	Slug      string
	Title     string
	Summary   string
	Hero      Hero
	Body      template.HTML
	Cards     []Card
	Team      []Card
	Steps     []Step
	Points    []string
	UpdatedAt time.Time
	SEO       SEO
}

// Hero is the page banner copy.
type Hero struct {
	Badge     string `yaml:"badge"`
	Heading   string `yaml:"heading"`
	Highlight string `yaml:"highlight"`
	Lead      string `yaml:"lead"`
	Image     string `yaml:"image"`
}

// Card is a generic feature/value/contact tile.
type Card struct {
	Icon        string   `yaml:"icon"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Stat        string   `yaml:"stat"`
	Label       string   `yaml:"label"`
	Image       string   `yaml:"image"`
	Details     []string `yaml:"details"`
}

// Step is one entry of a numbered process.
type Step struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// SEO holds optional metadata overrides.
type SEO struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	OGImage     string `yaml:"og_image"`
}

type frontMatter struct {
	Title     string   `yaml:"title"`
	Summary   string   `yaml:"summary"`
	UpdatedAt string   `yaml:"updated_at"`
	Hero      Hero     `yaml:"hero"`
	Cards     []Card   `yaml:"cards"`
	Team      []Card   `yaml:"team"`
	Steps     []Step   `yaml:"steps"`
	Points    []string `yaml:"points"`
	SEO       SEO      `yaml:"seo"`
}

const (
	defaultContentDir = "content"
	pagesKind         = "pages"
)

// Client reads pages from a content directory and caches rendered results.
type Client struct {
	contentDir string
	cache      *cache.Cache
	md         goldmark.Markdown
	policy     *bluemonday.Policy
}

// NewClient builds a client rooted at dir. ttl bounds how long a rendered
// page is reused; zero disables caching (useful in dev mode).
func NewClient(dir string, ttl time.Duration) *Client {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = defaultContentDir
	}
	c := &Client{
		contentDir: dir,
		md:         goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Typographer)),
		policy:     bluemonday.UGCPolicy(),
	}
	if ttl > 0 {
		c.cache = cache.New(ttl, 2*ttl)
	}
	return c
}

// ContentDir returns the configured directory.
func (c *Client) ContentDir() string { return c.contentDir }

// GetPage returns the page for slug.
func (c *Client) GetPage(ctx context.Context, slug string) (Page, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Page{}, ErrNotFound
	}
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	if c.cache != nil {
		if v, ok := c.cache.Get(slug); ok {
			return clonePage(v.(Page)), nil
		}
	}

	page, err := c.readMarkdown(slug)
	if errors.Is(err, ErrNotFound) {
		page, err = fallbackPage(slug)
	}
	if err != nil {
		return Page{}, err
	}
	if c.cache != nil {
		c.cache.SetDefault(slug, clonePage(page))
	}
	return clonePage(page), nil
}

// Flush drops cached pages.
func (c *Client) Flush() {
	if c.cache != nil {
		c.cache.Flush()
	}
}

func (c *Client) readMarkdown(slug string) (Page, error) {
	file := filepath.Join(c.contentDir, pagesKind, slug+".md")
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Page{}, ErrNotFound
		}
		return Page{}, err
	}
	fm, body := splitFrontMatter(string(data))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("cms: parse front matter %s: %w", file, err)
		}
	}
	rendered, err := c.render(body)
	if err != nil {
		return Page{}, fmt.Errorf("cms: render %s: %w", file, err)
	}
	page := Page{
		Slug:      slug,
		Title:     strings.TrimSpace(front.Title),
		Summary:   strings.TrimSpace(front.Summary),
		Hero:      front.Hero,
		Body:      rendered,
		Cards:     front.Cards,
		Team:      front.Team,
		Steps:     front.Steps,
		Points:    front.Points,
		UpdatedAt: parseDate(front.UpdatedAt),
		SEO:       front.SEO,
	}
	if page.UpdatedAt.IsZero() {
		if info, err := os.Stat(file); err == nil {
			page.UpdatedAt = info.ModTime()
		}
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	return page, nil
}

// render converts markdown to sanitized HTML.
func (c *Client) render(body string) (template.HTML, error) {
	if strings.TrimSpace(body) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(body), &buf); err != nil {
		return "", err
	}
	return template.HTML(c.policy.SanitizeBytes(buf.Bytes())), nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if runes[0] >= 'a' && runes[0] <= 'z' {
			runes[0] -= 'a' - 'A'
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.Trim(strings.TrimSpace(strings.ToLower(slug)), "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}

func clonePage(src Page) Page {
	cp := src
	cp.Cards = cloneCards(src.Cards)
	cp.Team = cloneCards(src.Team)
	cp.Steps = append([]Step(nil), src.Steps...)
	cp.Points = append([]string(nil), src.Points...)
	return cp
}

func cloneCards(src []Card) []Card {
	if src == nil {
		return nil
	}
	out := make([]Card, len(src))
	for i, c := range src {
		c.Details = append([]string(nil), c.Details...)
		out[i] = c
	}
	return out
}
