// Package transform implements the deterministic pipeline that turns raw
// export records into the transformed CV aggregate: skill normalization,
// categorization against an ordered taxonomy, and position filtering with
// curated skill attachment.
package transform

// NormalizeSkill resolves a raw skill token against the alias map.
//
// Tokens absent from the map pass through unchanged; unmapped is not an
// error. A token mapped to the empty string is noise and is marked for
// exclusion (callers drop empty results). Lookup is exact: case, punctuation
// and surrounding whitespace all count, and no trimming is applied here.
func NormalizeSkill(aliases map[string]string, raw string) string {
	canonical, ok := aliases[raw]
	if !ok {
		return raw
	}
	return canonical
}

// normalizeSkills maps raw skills through the alias map, dropping excluded
// ones and preserving input order.
func normalizeSkills(aliases map[string]string, raw []string) []string {
	skills := make([]string, 0, len(raw))
	for _, skill := range raw {
		if normalized := NormalizeSkill(aliases, skill); normalized != "" {
			skills = append(skills, normalized)
		}
	}
	return skills
}
