package types

// PositionWithSkills is a Position augmented with its curated skill list.
// Skill order is the normalization order, not alphabetical.
type PositionWithSkills struct {
	Position
	Skills []string `json:"skills"`
}

// SkillCategory is one named bucket of the displayed skills section.
// Skills are sorted lexicographically within the category.
type SkillCategory struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// TransformedCVData is the immutable output aggregate of the transform
// pipeline. Renderers consume it read-only, so generating several output
// formats from one aggregate is safe to do concurrently.
type TransformedCVData struct {
	Profile         Profile              `json:"profile"`
	Positions       []PositionWithSkills `json:"positions"`
	Projects        []Project            `json:"projects"`
	Education       []Education          `json:"education"`
	Email           Email                `json:"email"`
	Languages       []Language           `json:"languages"`
	SkillCategories []SkillCategory      `json:"skill_categories"`
	ImagePath       string               `json:"image_path,omitempty"`
}

// CategorySkills returns the skills of the named category, or nil if the
// category is absent from the aggregate.
func (d *TransformedCVData) CategorySkills(name string) []string {
	for _, cat := range d.SkillCategories {
		if cat.Name == name {
			return cat.Skills
		}
	}
	return nil
}
