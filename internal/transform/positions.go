package transform

import (
	"strconv"
	"strings"

	"github.com/lbsa71/cv-generator/internal/types"
)

// minStartYear is the career-relevance cutoff: positions started before 1997
// are not rendered. Fixed policy, not configuration.
const minStartYear = 1997

// FilterRecentPositions keeps positions whose start year is minStartYear or
// later. The year is the second whitespace-delimited token of the free-text
// start date (the exports write "Month Year"); anything unparsable counts as
// year 0 and is filtered out.
func FilterRecentPositions(positions []types.Position) []types.Position {
	recent := make([]types.Position, 0, len(positions))
	for _, pos := range positions {
		if startYear(pos.StartedOn) >= minStartYear {
			recent = append(recent, pos)
		}
	}
	return recent
}

func startYear(startedOn string) int {
	fields := strings.Fields(startedOn)
	if len(fields) < 2 {
		return 0
	}
	year, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0
	}
	return year
}

// AttachSkills augments each position with its curated skill list from the
// company -> title lookup table. Both keys are exact, case-sensitive matches;
// a company or title absent from the table yields an empty skill list, never
// an error. Attached skills are normalized through the alias map with
// excluded ones dropped, and keep normalization order (unlike category
// output, which is sorted).
func AttachSkills(positions []types.Position, skillMap map[string]map[string][]string, aliases map[string]string) []types.PositionWithSkills {
	withSkills := make([]types.PositionWithSkills, 0, len(positions))
	for _, pos := range positions {
		var raw []string
		if byTitle, ok := skillMap[pos.CompanyName]; ok {
			raw = byTitle[pos.Title]
		}

		withSkills = append(withSkills, types.PositionWithSkills{
			Position: pos,
			Skills:   normalizeSkills(aliases, raw),
		})
	}
	return withSkills
}
