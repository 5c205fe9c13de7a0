package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/northhaven/kinship/pkg/family"
	"github.com/northhaven/kinship/pkg/store"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// pages maps page names to parsed templates. Each page is parsed
// together with the shared layout, which it fills via the "content"
// block.
var pages = func() map[string]*template.Template {
	names := []string{"home", "tree", "profile", "timeline", "sources"}
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		out[name] = template.Must(template.ParseFS(templateFS,
			"templates/layout.tmpl", "templates/"+name+".tmpl"))
	}
	return out
}()

// basePage carries the fields the shared layout needs on every page.
type basePage struct {
	SiteTitle string
	Active    string // nav highlight: home, tree, profile, timeline, sources
	Notices   []store.Notice
	Warning   string // page-level degradation message, e.g. "no people loaded"
}

func (s *Server) base(active string) basePage {
	return basePage{
		SiteTitle: s.cfg.Title,
		Active:    active,
		Notices:   s.store.Notices,
	}
}

// personOption is one entry in a person picker.
type personOption struct {
	ID   string
	Name string
}

func (s *Server) personOptions() []personOption {
	opts := make([]personOption, len(s.store.People))
	for i := range s.store.People {
		p := &s.store.People[i]
		opts[i] = personOption{ID: p.ID, Name: p.DisplayName()}
	}
	return opts
}

type homePage struct {
	basePage
	Intro template.HTML
}

type treePage struct {
	basePage
	People      []personOption
	SelectedID  string
	Generations int
	SVG         template.HTML
}

type profilePage struct {
	basePage
	People     []personOption
	SelectedID string
	Person     *family.Person
	Parents    []family.DisplayRef
	Siblings   []family.DisplayRef
	Spouses    []family.DisplayRef
	Children   []family.DisplayRef
	Notes      template.HTML
}

type timelineEntry struct {
	Date        string
	Title       string
	Description template.HTML
	Involved    []family.DisplayRef
	Sources     []string
}

type timelinePage struct {
	basePage
	Entries []timelineEntry
}

type sourcesPage struct {
	basePage
	Acknowledgments template.HTML
}

// render executes the named page template. Template failures after the
// handlers validated their data indicate a programming error, so they
// are logged and surfaced as a 500.
func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := pages[name]
	if !ok {
		s.logger.Error("unknown page template", "name", name)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error("execute template", "name", name, "err", err)
	}
}
