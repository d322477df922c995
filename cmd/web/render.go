package main

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"almil.org/almil-web/internal/format"
	"almil.org/almil-web/internal/i18n"
	mw "almil.org/almil-web/internal/middleware"
)

// templateSet owns the parsed templates. Every page under pages/ is parsed
// together with layout/ and fragments/ into its own tree, so each page can
// define "content" without clashing. Fragments are also addressable alone.
type templateSet struct {
	dir   string
	dev   bool
	funcs template.FuncMap

	mu     sync.RWMutex
	pages  map[string]*template.Template
	shared *template.Template
}

func newTemplateSet(dir string, dev bool, bundle *i18n.Bundle) (*templateSet, error) {
	ts := &templateSet{dir: dir, dev: dev, funcs: templateFuncs(bundle)}
	// Parse once up front so broken templates fail at startup, also in dev.
	if err := ts.load(); err != nil {
		return nil, err
	}
	return ts, nil
}

func templateFuncs(bundle *i18n.Bundle) template.FuncMap {
	return template.FuncMap{
		"t": func(lang, key string, args ...any) string {
			return bundle.T(lang, key, args...)
		},
		// digits and a leading plus only, so the URL is safe to trust
		"tel": func(display string) template.URL {
			return template.URL(format.TelHref(display))
		},
		"step": format.Step,
		"plus": format.Plus,
		"date": format.Date,
	}
}

func (ts *templateSet) load() error {
	shared, err := collect(filepath.Join(ts.dir, "layout"), filepath.Join(ts.dir, "fragments"))
	if err != nil {
		return err
	}
	if len(shared) == 0 {
		return fmt.Errorf("no layout templates found under %s", ts.dir)
	}
	pageFiles, err := collect(filepath.Join(ts.dir, "pages"))
	if err != nil {
		return err
	}
	base, err := template.New("_root").Funcs(ts.funcs).ParseFiles(shared...)
	if err != nil {
		return err
	}
	pages := make(map[string]*template.Template, len(pageFiles))
	for _, f := range pageFiles {
		clone, err := base.Clone()
		if err != nil {
			return err
		}
		t, err := clone.ParseFiles(f)
		if err != nil {
			return err
		}
		pages[strings.TrimSuffix(filepath.Base(f), ".tmpl")] = t
	}
	ts.mu.Lock()
	ts.shared, ts.pages = base, pages
	ts.mu.Unlock()
	return nil
}

// collect recursively discovers .tmpl files. Missing directories are skipped.
func collect(dirs ...string) ([]string, error) {
	var files []string
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == dir && errors.Is(err, fs.ErrNotExist) {
					return filepath.SkipDir
				}
				return err
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), ".tmpl") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func (ts *templateSet) page(name string) (*template.Template, error) {
	if ts.dev {
		if err := ts.load(); err != nil {
			return nil, err
		}
	}
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	t, ok := ts.pages[name]
	if !ok {
		return nil, fmt.Errorf("unknown page template %q", name)
	}
	return t, nil
}

func (ts *templateSet) fragments() (*template.Template, error) {
	if ts.dev {
		if err := ts.load(); err != nil {
			return nil, err
		}
	}
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.shared, nil
}

// renderPage executes the base layout for a page. Output is buffered so a
// template error still yields a clean 500.
func (s *site) renderPage(w http.ResponseWriter, r *http.Request, name string, status int, data any) {
	t, err := s.templates.page(name)
	if err != nil {
		s.templateError(w, r, err)
		return
	}
	s.execute(w, r, t, "base", status, data)
}

// renderFragment executes a single named fragment, used for htmx swaps.
func (s *site) renderFragment(w http.ResponseWriter, r *http.Request, name string, status int, data any) {
	t, err := s.templates.fragments()
	if err != nil {
		s.templateError(w, r, err)
		return
	}
	s.execute(w, r, t, name, status, data)
}

func (s *site) execute(w http.ResponseWriter, r *http.Request, t *template.Template, name string, status int, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		s.templateError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *site) templateError(w http.ResponseWriter, r *http.Request, err error) {
	mw.Log(r.Context()).Error("render template", zap.Error(err))
	msg := "internal server error"
	if s.templates.dev {
		msg = fmt.Sprintf("template error: %v", err)
	}
	http.Error(w, msg, http.StatusInternalServerError)
}
