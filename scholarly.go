// Package scholarly analyses public academic profile pages.
// It fetches a profile page, extracts the author's fields and publication
// list from the markup, renders a selectable text summary, and can hand that
// summary to a text-generation service to draft a personalised email.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package scholarly
