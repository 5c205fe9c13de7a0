package web

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/northhaven/kinship/pkg/family"
	"github.com/northhaven/kinship/pkg/pedigree"
	"github.com/northhaven/kinship/pkg/timeline"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, "home", homePage{
		basePage: s.base("home"),
		Intro:    renderMarkdown(s.cfg.Intro),
	})
}

// selectedPerson resolves the ?profile= parameter, falling back to the
// first loaded person when the parameter is absent or unresolvable.
// Returns false only when no people loaded at all.
func (s *Server) selectedPerson(r *http.Request) (string, bool) {
	id := r.URL.Query().Get("profile")
	if id != "" {
		if _, ok := family.Find(s.store.People, id); ok {
			return id, true
		}
	}
	return s.store.FirstPersonID()
}

// generations resolves the ?generations= parameter, falling back to the
// configured bound when absent or not a non-negative integer.
func (s *Server) generations(r *http.Request) int {
	raw := r.URL.Query().Get("generations")
	if raw == "" {
		return s.cfg.MaxGenerations
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return s.cfg.MaxGenerations
	}
	return n
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	page := treePage{
		basePage:    s.base("tree"),
		People:      s.personOptions(),
		Generations: s.generations(r),
	}

	id, ok := s.selectedPerson(r)
	if !ok {
		page.Warning = "No people available to display the tree."
		s.render(w, "tree", page)
		return
	}
	page.SelectedID = id

	g := pedigree.Build(s.store.People, id, page.Generations)
	svg, err := pedigree.RenderSVG(r.Context(), pedigree.ToDOT(g))
	if err != nil {
		s.logger.Error("render pedigree", "person", id, "err", err)
		page.Warning = "The family tree could not be rendered."
		s.render(w, "tree", page)
		return
	}
	page.SVG = template.HTML(svg)
	s.render(w, "tree", page)
}

// handleTreeSVG serves the bare pedigree image for embedding and
// download.
func (s *Server) handleTreeSVG(w http.ResponseWriter, r *http.Request) {
	id, ok := s.selectedPerson(r)
	if !ok {
		http.Error(w, "no people loaded", http.StatusNotFound)
		return
	}
	g := pedigree.Build(s.store.People, id, s.generations(r))
	svg, err := pedigree.RenderSVG(r.Context(), pedigree.ToDOT(g))
	if err != nil {
		s.logger.Error("render pedigree", "person", id, "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Content-Length", strconv.Itoa(len(svg)))
	if _, err := w.Write(svg); err != nil {
		s.logger.Debug("write svg", "err", err)
	}
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	page := profilePage{
		basePage: s.base("profile"),
		People:   s.personOptions(),
	}

	id, ok := s.selectedPerson(r)
	if !ok {
		page.Warning = "No people data available."
		s.render(w, "profile", page)
		return
	}
	page.SelectedID = id

	person, ok := family.Find(s.store.People, id)
	if !ok {
		// selectedPerson only returns loaded IDs; this is unreachable
		// unless the store was mutated, which it never is.
		page.Warning = fmt.Sprintf("Person %q not found.", id)
		s.render(w, "profile", page)
		return
	}

	page.Person = person
	page.Parents = family.ResolveLinks(s.store.People, person.Parents)
	page.Siblings = family.ResolveLinks(s.store.People, person.Siblings)
	page.Spouses = family.ResolveLinks(s.store.People, person.Spouses)
	page.Children = family.ResolveLinks(s.store.People, person.Children)
	page.Notes = renderMarkdown(person.Notes)
	s.render(w, "profile", page)
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	page := timelinePage{basePage: s.base("timeline")}

	events := timeline.Chronological(s.store.Events)
	if len(events) == 0 {
		page.Warning = "No events available in the timeline."
		s.render(w, "timeline", page)
		return
	}

	page.Entries = make([]timelineEntry, len(events))
	for i, ev := range events {
		page.Entries[i] = timelineEntry{
			Date:        ev.Date,
			Title:       ev.Title,
			Description: renderMarkdown(ev.Description),
			Involved:    family.ResolveLinks(s.store.People, ev.PeopleInvolved),
			Sources:     ev.Sources,
		}
	}
	s.render(w, "timeline", page)
}

func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	s.render(w, "sources", sourcesPage{
		basePage:        s.base("sources"),
		Acknowledgments: renderMarkdown(s.cfg.Acknowledgments),
	})
}
