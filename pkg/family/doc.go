// Package family defines the genealogical domain records and identifier
// lookup used throughout Kinship.
//
// # Records
//
//   - [Person]: a family member with vital dates, relation lists
//     (parents, siblings, spouses, children), residences, notes, and
//     source citations
//   - [Event]: a dated timeline entry involving zero or more people
//
// Records are loaded once by pkg/store and treated as immutable for the
// process lifetime. Relation lists hold opaque identifiers resolved on
// demand rather than eagerly materialized object graphs, which keeps
// Person values acyclic and trivially copyable.
//
// # Lookup
//
// [Find] resolves an identifier to a record. [ResolveLink] turns an
// identifier into a [DisplayRef] — a label plus profile link — and
// never fails: identifiers absent from the collection ("dangling
// references") degrade to the raw identifier with no link. Dangling
// references are a first-class, expected outcome in hand-maintained
// genealogical data, not an error condition.
package family
