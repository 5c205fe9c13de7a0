package store

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/northhaven/kinship/pkg/errors"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const peopleJSON = `[
  {"id": "p1", "full_name": "Ann", "parents": ["p2"]},
  {"id": "p2", "full_name": "Bob"}
]`

const eventsJSON = `[
  {"date": "1850-05-05", "title": "B"},
  {"date": "1900-01-01", "title": "A"}
]`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	people := writeFile(t, dir, "people.json", peopleJSON)
	events := writeFile(t, dir, "events.json", eventsJSON)

	st := Load(people, events, testLogger())

	if len(st.People) != 2 {
		t.Errorf("len(People) = %d, want 2", len(st.People))
	}
	if len(st.Events) != 2 {
		t.Errorf("len(Events) = %d, want 2", len(st.Events))
	}
	if len(st.Notices) != 0 {
		t.Errorf("Notices = %v, want none", st.Notices)
	}
	if st.People[0].FullName != "Ann" || st.People[0].Parents[0] != "p2" {
		t.Errorf("People[0] = %+v, decoded wrong", st.People[0])
	}
}

func TestLoadMissingSource(t *testing.T) {
	dir := t.TempDir()
	events := writeFile(t, dir, "events.json", eventsJSON)

	st := Load(filepath.Join(dir, "nope.json"), events, testLogger())

	if len(st.People) != 0 {
		t.Errorf("People = %v, want empty for missing source", st.People)
	}
	if len(st.Events) != 2 {
		t.Errorf("len(Events) = %d, want 2 (other source unaffected)", len(st.Events))
	}
	if len(st.Notices) != 1 {
		t.Fatalf("Notices = %v, want exactly one", st.Notices)
	}
	if st.Notices[0].Code != errors.ErrCodeFileNotFound {
		t.Errorf("notice code = %v, want FILE_NOT_FOUND", st.Notices[0].Code)
	}
}

func TestLoadMalformedSource(t *testing.T) {
	dir := t.TempDir()
	people := writeFile(t, dir, "people.json", "{broken")
	events := writeFile(t, dir, "events.json", eventsJSON)

	st := Load(people, events, testLogger())

	if len(st.People) != 0 {
		t.Errorf("People = %v, want empty for malformed source", st.People)
	}
	if len(st.Notices) != 1 {
		t.Fatalf("Notices = %v, want exactly one", st.Notices)
	}
	n := st.Notices[0]
	if n.Code != errors.ErrCodeParse {
		t.Errorf("notice code = %v, want PARSE_ERROR", n.Code)
	}
	if n.Source != people {
		t.Errorf("notice source = %q, want %q", n.Source, people)
	}
}

func TestLoadBothSourcesMissing(t *testing.T) {
	dir := t.TempDir()

	st := Load(filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json"), testLogger())

	if st == nil {
		t.Fatal("Load returned nil; it must always return a usable store")
	}
	if len(st.Notices) != 2 {
		t.Errorf("Notices = %v, want one per missing source", st.Notices)
	}
	if _, ok := st.FirstPersonID(); ok {
		t.Error("FirstPersonID should report absence with no people loaded")
	}
}

func TestFirstPersonID(t *testing.T) {
	dir := t.TempDir()
	people := writeFile(t, dir, "people.json", peopleJSON)
	events := writeFile(t, dir, "events.json", eventsJSON)

	st := Load(people, events, testLogger())

	id, ok := st.FirstPersonID()
	if !ok || id != "p1" {
		t.Errorf("FirstPersonID() = %q, %v; want p1, true", id, ok)
	}
}
