package transform

import (
	"sort"

	"github.com/lbsa71/cv-generator/internal/config"
	"github.com/lbsa71/cv-generator/internal/types"
)

// CategorizeSkills assigns each canonical skill to exactly one taxonomy
// category. The taxonomy is scanned in slice order and the first category
// listing the skill wins; a skill listed under several categories is assigned
// only to the earliest one. Within each emitted category, skills are sorted
// lexicographically; categories that end up empty are omitted.
//
// Skills matching no category are returned as the second result, sorted. In
// strict mode they are additionally a hard failure: the returned
// UncategorizedSkillsError names every offender so curation can be fixed in
// one pass. In lenient mode the caller is expected to warn and move on.
func CategorizeSkills(skills []string, taxonomy []config.Category, strict bool) ([]types.SkillCategory, []string, error) {
	memberships := make([]map[string]bool, len(taxonomy))
	for i, cat := range taxonomy {
		memberships[i] = make(map[string]bool, len(cat.Skills))
		for _, skill := range cat.Skills {
			memberships[i][skill] = true
		}
	}

	buckets := make([][]string, len(taxonomy))
	seen := make(map[string]bool, len(skills))
	var uncategorized []string

	for _, skill := range skills {
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true

		placed := false
		for i := range taxonomy {
			if memberships[i][skill] {
				buckets[i] = append(buckets[i], skill)
				placed = true
				break
			}
		}
		if !placed {
			uncategorized = append(uncategorized, skill)
		}
	}

	sort.Strings(uncategorized)
	if strict && len(uncategorized) > 0 {
		return nil, uncategorized, &UncategorizedSkillsError{Skills: uncategorized}
	}

	categories := make([]types.SkillCategory, 0, len(taxonomy))
	for i, cat := range taxonomy {
		if len(buckets[i]) == 0 {
			continue
		}
		sort.Strings(buckets[i])
		categories = append(categories, types.SkillCategory{
			Name:   cat.Name,
			Skills: buckets[i],
		})
	}

	return categories, uncategorized, nil
}
