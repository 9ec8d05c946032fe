package transform

import (
	"github.com/lbsa71/cv-generator/internal/config"
	"github.com/lbsa71/cv-generator/internal/types"
)

// Transform runs the full pipeline over one parsed export: filter and attach
// position skills, categorize the union of attached skills, and assemble the
// immutable aggregate the renderers consume.
//
// The second result lists skills dropped as uncategorized; it is non-empty
// only in lenient mode (strict mode turns the same list into an error and no
// aggregate is produced). The pipeline is stateless: identical inputs yield
// identical output.
func Transform(raw *types.RawRecordBundle, cfg *config.Config) (*types.TransformedCVData, []string, error) {
	if len(raw.Profiles) == 0 {
		return nil, nil, &MissingGroupError{Group: "Profile"}
	}
	profile := raw.Profiles[0]
	if err := profile.Validate(); err != nil {
		return nil, nil, &RecordError{Group: "Profile", Cause: err}
	}

	if len(raw.Emails) == 0 {
		return nil, nil, &MissingGroupError{Group: "Email Addresses"}
	}
	email := raw.Emails[0]
	if err := email.Validate(); err != nil {
		return nil, nil, &RecordError{Group: "Email Addresses", Cause: err}
	}

	positions := AttachSkills(FilterRecentPositions(raw.Positions), cfg.Positions, cfg.SkillsMap)

	// Union of every skill attached to a surviving position, in attachment
	// order. CategorizeSkills dedups and sorts per category.
	var allSkills []string
	for _, pos := range positions {
		allSkills = append(allSkills, pos.Skills...)
	}

	categories, dropped, err := CategorizeSkills(allSkills, cfg.SkillCategories, !cfg.LenientSkills)
	if err != nil {
		return nil, nil, err
	}

	return &types.TransformedCVData{
		Profile:         profile,
		Positions:       positions,
		Projects:        emptyIfNil(raw.Projects),
		Education:       emptyIfNil(raw.Education),
		Email:           email,
		Languages:       emptyIfNil(raw.Languages),
		SkillCategories: categories,
		ImagePath:       raw.ImagePath,
	}, dropped, nil
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
