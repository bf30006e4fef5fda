package engine

import (
	"regexp"
	"strings"

	"github.com/runeforge/codex-api/internal/entities/forge"
)

// Legacy authored refs and chip labels may carry a trailing parenthetical
// option annotation such as "(Opt2 3)". The option level is reflected in the
// computed cost, never in the label, so it is stripped before lookup and
// display.
var optionAnnotationRegex = regexp.MustCompile(`(?i)\s*\(opt(?:ion)?\s*\d[^)]*\)\s*$`)

// stripOptionAnnotation removes a trailing option annotation and surrounding
// whitespace from a stored part reference.
func stripOptionAnnotation(ref string) string {
	return strings.TrimSpace(optionAnnotationRegex.ReplaceAllString(ref, ""))
}

// catalogIndex provides O(1) part resolution over one immutable catalog
// snapshot. Built once per derivation, not re-scanned per instance.
type catalogIndex struct {
	byID   map[string]*forge.PartCatalogEntry
	byName map[string]*forge.PartCatalogEntry
}

func newCatalogIndex(entries []forge.PartCatalogEntry) *catalogIndex {
	idx := &catalogIndex{
		byID:   make(map[string]*forge.PartCatalogEntry, len(entries)),
		byName: make(map[string]*forge.PartCatalogEntry, len(entries)),
	}
	for i := range entries {
		entry := &entries[i]
		if entry.ID != "" {
			idx.byID[entry.ID] = entry
		}
		if entry.Name != "" {
			idx.byName[strings.ToLower(entry.Name)] = entry
		}
	}
	return idx
}

// resolve looks a stored ref up by exact id first, then by case-insensitive
// name. A miss is not an error: compositions drift from the catalog they
// were authored against, and downstream aggregation renders unresolved refs
// as zero-cost chips instead of dropping them.
func (idx *catalogIndex) resolve(ref string) (*forge.PartCatalogEntry, bool) {
	cleaned := stripOptionAnnotation(ref)
	if cleaned == "" {
		return nil, false
	}
	if entry, ok := idx.byID[cleaned]; ok {
		return entry, true
	}
	if entry, ok := idx.byName[strings.ToLower(cleaned)]; ok {
		return entry, true
	}
	return nil, false
}

// resolvedPart pairs a composition instance with its catalog entry. Entry is
// nil for unresolved refs; Label always carries something displayable.
type resolvedPart struct {
	instance forge.PartInstance
	entry    *forge.PartCatalogEntry
	label    string
}

// resolveAll resolves every instance in document order.
func (idx *catalogIndex) resolveAll(instances []forge.PartInstance) []resolvedPart {
	resolved := make([]resolvedPart, 0, len(instances))
	for _, inst := range instances {
		entry, ok := idx.resolve(inst.PartRef)
		label := stripOptionAnnotation(inst.PartRef)
		if ok {
			label = entry.Name
		}
		resolved = append(resolved, resolvedPart{
			instance: inst,
			entry:    entry,
			label:    label,
		})
	}
	return resolved
}
