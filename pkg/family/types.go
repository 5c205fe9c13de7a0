package family

// =============================================================================
// Person - Genealogical Record
// =============================================================================

// Person is a single genealogical record. Every field except ID is
// optional: absent dates and places decode as empty strings, absent
// relation lists as nil slices. Relation lists hold opaque identifiers
// that are not required to resolve against the loaded collection —
// dangling references are valid data and are rendered as the raw
// identifier (see [ResolveLink]).
type Person struct {
	ID         string      `json:"id"`
	FullName   string      `json:"full_name,omitempty"`
	BirthDate  string      `json:"birth_date,omitempty"`
	BirthPlace string      `json:"birth_place,omitempty"`
	DeathDate  string      `json:"death_date,omitempty"`
	DeathPlace string      `json:"death_place,omitempty"`
	Parents    []string    `json:"parents,omitempty"`
	Siblings   []string    `json:"siblings,omitempty"`
	Spouses    []string    `json:"spouses,omitempty"`
	Children   []string    `json:"children,omitempty"`
	Residences []Residence `json:"residences,omitempty"`
	Notes      string      `json:"notes,omitempty"`
	Sources    []string    `json:"sources,omitempty"`
}

// DisplayName returns the full name if set, otherwise the ID.
func (p *Person) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.ID
}

// Residence is a place a person is known to have lived, with an
// optional free-form period (e.g., "1850–1872").
type Residence struct {
	Location string `json:"location,omitempty"`
	Period   string `json:"period,omitempty"`
}

// =============================================================================
// Event - Timeline Entry
// =============================================================================

// Event is a dated entry in the family timeline. Date is kept as a
// string and compared lexicographically downstream; zero-padded ISO 8601
// dates therefore sort chronologically, and nothing validates that the
// source actually uses them.
type Event struct {
	Date           string   `json:"date,omitempty"`
	Title          string   `json:"title,omitempty"`
	Description    string   `json:"description,omitempty"`
	PeopleInvolved []string `json:"people_involved,omitempty"`
	Sources        []string `json:"sources,omitempty"`
}
