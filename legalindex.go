// Package legalindex builds a structured concept index over a paginated
// legal document. It recognizes legal terminology, statutory and case
// citations, and key phrases in per-page text, records where each occurs
// together with the section heading path inferred from the document's
// layout, and renders the result into several equivalent output formats.
//
// This package contains domain types and pure logic following Ben
// Johnson's Standard Package Layout. Implementations that carry a
// dependency live in subdirectories named after it (e.g., pdf/, etree/,
// fpdf/); the matching engine lives in index/.
package legalindex
