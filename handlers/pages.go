package handlers

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"jacsonsite/i18n"
	"jacsonsite/models"
	"jacsonsite/store"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFiles embed.FS

func staticFS() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

var pageNames = []string{"home.html", "about.html", "detail.html", "contact.html", "notfound.html"}

// pages holds one parsed template set (layout plus page) per public page.
type pages struct {
	sets map[string]*template.Template
}

func loadPages() (*pages, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)
	funcMap := template.FuncMap{
		// Replaced per request with the caller's language.
		"T": func(key string) string { return key },
		"markdown": func(content string) template.HTML {
			var buf bytes.Buffer
			if err := md.Convert([]byte(content), &buf); err != nil {
				return template.HTML("")
			}
			return template.HTML(buf.String())
		},
		"safeURL": safeURL,
	}

	p := &pages{sets: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcMap).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		p.sets[name] = tmpl
	}
	return p, nil
}

// safeURL lets admin-entered links through html/template, which would
// otherwise rewrite tel: links to #ZgotmplZ. Unknown schemes become "#".
func safeURL(raw string) template.URL {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return "#"
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto", "tel":
		return template.URL(raw)
	}
	return "#"
}

func (s *Server) renderTemplate(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) {
	lang := i18n.DetectLanguage(r)

	base, ok := s.pages.sets[name]
	if !ok {
		sendInternalError(w, r, "rendering page", fmt.Errorf("unknown template %s", name))
		return
	}
	tmpl, err := base.Clone()
	if err != nil {
		sendInternalError(w, r, "rendering page", err)
		return
	}
	tmpl.Funcs(template.FuncMap{
		"T": func(key string) string {
			return i18n.T(lang, key)
		},
	})

	if data == nil {
		data = map[string]any{}
	}
	if _, exists := data["AppName"]; !exists {
		data["AppName"] = s.cfg.AppName
	}
	data["Lang"] = lang
	data["Year"] = time.Now().Year()
	data["Settings"] = s.siteSettings(r)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		sendInternalError(w, r, "rendering "+name, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// siteSettings falls back to a text logo with the app name when the
// settings document is absent.
func (s *Server) siteSettings(r *http.Request) models.SiteSettings {
	var settings models.SiteSettings
	if _, err := s.store.LoadSingleton(r.Context(), models.SettingsKey, &settings); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("Error loading settings for page: %v", err)
		}
		settings = models.SiteSettings{LogoType: models.LogoText, LogoTextLine1: s.cfg.AppName}
	}
	return settings
}

func (s *Server) renderNotFound(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, r, http.StatusNotFound, "notfound.html", nil)
}

func (s *Server) homePageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var hero models.HeroContent
	if _, err := s.store.LoadSingleton(ctx, models.HeroKey, &hero); err != nil && !errors.Is(err, store.ErrNotFound) {
		sendInternalError(w, r, "loading hero", err)
		return
	}
	sections, err := s.store.ListSections(ctx, true)
	if err != nil {
		sendInternalError(w, r, "listing sections", err)
		return
	}
	services, err := s.store.Services().List(ctx)
	if err != nil {
		sendInternalError(w, r, "listing services", err)
		return
	}
	projects, err := s.store.Projects().List(ctx)
	if err != nil {
		sendInternalError(w, r, "listing projects", err)
		return
	}
	companies, err := s.store.ListCompanies(ctx)
	if err != nil {
		sendInternalError(w, r, "listing companies", err)
		return
	}

	s.renderTemplate(w, r, http.StatusOK, "home.html", map[string]any{
		"Hero":      hero,
		"Sections":  sections,
		"Services":  services,
		"Projects":  projects,
		"Companies": companies,
	})
}

func (s *Server) aboutPageHandler(w http.ResponseWriter, r *http.Request) {
	var about models.AboutPageContent
	if _, err := s.store.LoadSingleton(r.Context(), models.AboutKey, &about); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.renderNotFound(w, r)
			return
		}
		sendInternalError(w, r, "loading about page", err)
		return
	}
	s.renderTemplate(w, r, http.StatusOK, "about.html", map[string]any{"About": about})
}

func (s *Server) contactPageHandler(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, r, http.StatusOK, "contact.html", nil)
}

func (s *Server) servicePageHandler(w http.ResponseWriter, r *http.Request) {
	s.catalogPage(w, r, s.store.Services(), "Services")
}

func (s *Server) projectPageHandler(w http.ResponseWriter, r *http.Request) {
	s.catalogPage(w, r, s.store.Projects(), "Projects")
}

func (s *Server) catalogPage(w http.ResponseWriter, r *http.Request, c store.Catalog, kind string) {
	item, err := c.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.renderNotFound(w, r)
			return
		}
		sendInternalError(w, r, "loading "+strings.ToLower(kind), err)
		return
	}
	s.renderTemplate(w, r, http.StatusOK, "detail.html", map[string]any{"Item": item, "Kind": kind})
}
