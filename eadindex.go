// Package eadindex extracts component records from EAD finding aids and
// prepares them for a search index. Every nested component (<c>, <c01>
// ... <c12>) becomes an independent record carrying the identifiers and
// titles of its ancestor components, so hierarchy that was implicit in
// document nesting survives flattening.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., etree/, sqlite/, bleve/).
package eadindex
