// Package docload loads the external references found in a local
// documentation set. It scans text documents for links, classifies each
// link into a priority tier for a requested scope, retrieves the linked
// content in concurrency-bounded batches ordered by tier, and assembles a
// deterministic report of what was loaded, what failed, and what was
// excluded.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, http/, gemini/).
package docload
