// Package gena extracts clean, human-readable article text and metadata
// from web pages, suppressing structural noise (ads, navigation, CTAs,
// boilerplate) so a downstream summarizer receives only substantive
// content.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// rod/, pdfcpu/); extraction orchestration lives in extract/.
package gena
