package family

import "net/url"

// Find returns the person with the given ID, or false if no record
// matches. The scan is linear; collections are expected to hold tens to
// low hundreds of records, so an index would buy nothing.
func Find(people []Person, id string) (*Person, bool) {
	for i := range people {
		if people[i].ID == id {
			return &people[i], true
		}
	}
	return nil, false
}

// DisplayRef is a label/navigation pair for rendering a person
// reference whether or not the underlying record resolves. An
// unresolved reference is expected data, not an error: Label falls back
// to the raw identifier and Resolved is false so renderers can skip the
// link.
type DisplayRef struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Resolved bool   `json:"resolved"`
}

// Href returns the profile deep link for the reference
// ("?profile=<id>", query-escaped). Renderers that support navigation
// turn this into a clickable action; those that don't show Label alone.
func (r DisplayRef) Href() string {
	return "?profile=" + url.QueryEscape(r.ID)
}

// ResolveLink produces a DisplayRef for id. It never fails: a known
// identifier yields the person's display name, an unknown one degrades
// to the raw identifier with Resolved set to false.
func ResolveLink(people []Person, id string) DisplayRef {
	if p, ok := Find(people, id); ok {
		return DisplayRef{ID: id, Label: p.DisplayName(), Resolved: true}
	}
	return DisplayRef{ID: id, Label: id}
}

// ResolveLinks maps ResolveLink over a relation list, preserving order.
// A nil or empty list yields nil.
func ResolveLinks(people []Person, ids []string) []DisplayRef {
	if len(ids) == 0 {
		return nil
	}
	refs := make([]DisplayRef, len(ids))
	for i, id := range ids {
		refs[i] = ResolveLink(people, id)
	}
	return refs
}
