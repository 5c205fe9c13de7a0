// Package store loads and indexes the two JSON data sources (people and
// events) backing the Kinship site.
//
// The store is built exactly once at startup and passed to every
// consumer; from that point the collections are read-only, so concurrent
// access from multiple web sessions needs no locking.
//
// Loading never fails the process. A missing or malformed source yields
// an empty collection plus a [Notice] describing what happened, and the
// surrounding UI renders the notice instead of aborting — a genealogy
// site with half its data is still a genealogy site.
package store

import (
	"encoding/json"
	"io/fs"
	"os"

	stderrors "errors"

	"github.com/charmbracelet/log"

	"github.com/northhaven/kinship/pkg/errors"
	"github.com/northhaven/kinship/pkg/family"
)

// Notice is a user-visible degradation report for one data source. The
// web server shows notices in a banner; the CLI logs them as warnings.
type Notice struct {
	Source  string      // path of the affected source file
	Code    errors.Code // FILE_NOT_FOUND or PARSE_ERROR
	Message string
}

// Store holds the loaded collections. Treat a Store as immutable after
// Load returns.
type Store struct {
	People  []family.Person
	Events  []family.Event
	Notices []Notice
}

// Load reads the people and events sources and returns a usable Store
// regardless of what it finds. Per-source failures are reported through
// Store.Notices and logged; they are deliberately not returned as
// errors because nothing upstream can do better than proceeding with
// the data that did load.
func Load(peoplePath, eventsPath string, logger *log.Logger) *Store {
	st := &Store{}

	if err := loadJSON(peoplePath, &st.People); err != nil {
		st.People = nil
		st.Notices = append(st.Notices, noticeFor(peoplePath, err))
		logger.Warn("people source unavailable", "path", peoplePath, "err", err)
	}
	if err := loadJSON(eventsPath, &st.Events); err != nil {
		st.Events = nil
		st.Notices = append(st.Notices, noticeFor(eventsPath, err))
		logger.Warn("events source unavailable", "path", eventsPath, "err", err)
	}

	logger.Debug("store loaded",
		"people", len(st.People),
		"events", len(st.Events),
		"notices", len(st.Notices))
	return st
}

// FirstPersonID returns the identifier of the first loaded person, the
// fallback target for profile and tree deep links. Returns false when
// no people loaded at all.
func (s *Store) FirstPersonID() (string, bool) {
	if len(s.People) == 0 {
		return "", false
	}
	return s.People[0].ID, true
}

// loadJSON decodes the file at path into v. The returned error carries
// a FILE_NOT_FOUND or PARSE_ERROR code for the caller to classify.
func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "file not found: %s", path)
		}
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrap(errors.ErrCodeParse, err, "parse %s", path)
	}
	return nil
}

func noticeFor(path string, err error) Notice {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	return Notice{Source: path, Code: code, Message: errors.UserMessage(err)}
}
