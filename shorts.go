// Package shorts extracts structured metadata from short-video listing and
// item pages. It discovers item identifiers on a listing page, fetches each
// item page, pulls the title and view count out of whichever encoding the
// page happens to use, and normalizes the results into canonical records.
//
// This package contains domain types, interfaces and the pure extraction
// logic following Ben Johnson's Standard Package Layout. Implementations
// that depend on third-party or I/O packages live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, sqlite/).
package shorts
