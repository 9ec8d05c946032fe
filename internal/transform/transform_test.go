package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbsa71/cv-generator/internal/config"
	"github.com/lbsa71/cv-generator/internal/types"
)

func testConfig() *config.Config {
	return &config.Config{
		SkillsMap: map[string]string{
			"SQL Server": "Microsoft SQL Server",
			"Telephony":  "",
		},
		SkillCategories: []config.Category{
			{Name: "Programming Languages", Skills: []string{"C#", "Go"}},
			{Name: "Databases", Skills: []string{"Microsoft SQL Server"}},
		},
		Positions: map[string]map[string][]string{
			"Acme": {"Engineer": {"C#", "SQL Server", "Telephony"}},
		},
	}
}

func testBundle() *types.RawRecordBundle {
	return &types.RawRecordBundle{
		Profiles: []types.Profile{{
			FirstName: "Lars",
			LastName:  "Book",
			Headline:  "CTO",
			Summary:   "Summary.",
		}},
		Positions: []types.Position{
			{CompanyName: "Acme", Title: "Engineer", StartedOn: "Jan 2020"},
			{CompanyName: "Ancient Co", Title: "Dev", StartedOn: "Jan 1995"},
		},
		Emails:    []types.Email{{EmailAddress: "lars@example.com"}},
		Languages: []types.Language{{Name: "Swedish", Proficiency: "Native"}},
	}
}

func TestTransform_EndToEnd(t *testing.T) {
	data, dropped, err := Transform(testBundle(), testConfig())
	require.NoError(t, err)
	assert.Empty(t, dropped)

	require.Len(t, data.Positions, 1)
	assert.Equal(t, "Acme", data.Positions[0].CompanyName)
	assert.Equal(t, []string{"C#", "Microsoft SQL Server"}, data.Positions[0].Skills)

	require.Len(t, data.SkillCategories, 2)
	assert.Equal(t, "Programming Languages", data.SkillCategories[0].Name)
	assert.Equal(t, []string{"C#"}, data.SkillCategories[0].Skills)
	assert.Equal(t, "Databases", data.SkillCategories[1].Name)

	assert.Equal(t, "lars@example.com", data.Email.EmailAddress)
}

func TestTransform_MissingProfileFatal(t *testing.T) {
	bundle := testBundle()
	bundle.Profiles = nil

	_, _, err := Transform(bundle, testConfig())
	require.Error(t, err)

	var missing *MissingGroupError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Profile", missing.Group)
}

func TestTransform_MissingEmailFatal(t *testing.T) {
	bundle := testBundle()
	bundle.Emails = nil

	_, _, err := Transform(bundle, testConfig())
	var missing *MissingGroupError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Email Addresses", missing.Group)
}

func TestTransform_InvalidProfileFatal(t *testing.T) {
	bundle := testBundle()
	bundle.Profiles = []types.Profile{{FirstName: "Lars"}}

	_, _, err := Transform(bundle, testConfig())
	var recordErr *RecordError
	require.ErrorAs(t, err, &recordErr)
	assert.Equal(t, "Profile", recordErr.Group)
}

func TestTransform_MissingOptionalGroupsBecomeEmpty(t *testing.T) {
	data, _, err := Transform(testBundle(), testConfig())
	require.NoError(t, err)

	assert.NotNil(t, data.Projects)
	assert.Empty(t, data.Projects)
	assert.NotNil(t, data.Education)
	assert.Empty(t, data.Education)
}

func TestTransform_StrictModeAbortsOnUncategorized(t *testing.T) {
	cfg := testConfig()
	cfg.Positions["Acme"]["Engineer"] = append(cfg.Positions["Acme"]["Engineer"], "Underwater Basket Weaving")

	data, _, err := Transform(testBundle(), cfg)
	require.Error(t, err)
	assert.Nil(t, data)

	var uncategorized *UncategorizedSkillsError
	require.ErrorAs(t, err, &uncategorized)
	assert.Equal(t, []string{"Underwater Basket Weaving"}, uncategorized.Skills)
}

func TestTransform_LenientModeDropsUncategorized(t *testing.T) {
	cfg := testConfig()
	cfg.LenientSkills = true
	cfg.Positions["Acme"]["Engineer"] = append(cfg.Positions["Acme"]["Engineer"], "Underwater Basket Weaving")

	data, dropped, err := Transform(testBundle(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"Underwater Basket Weaving"}, dropped)

	for _, cat := range data.SkillCategories {
		assert.NotContains(t, cat.Skills, "Underwater Basket Weaving")
	}
	// The attached position list still carries the normalized skill; only the
	// categorized section drops it.
	assert.Contains(t, data.Positions[0].Skills, "Underwater Basket Weaving")
}

// Calling the pipeline twice with identical inputs yields identical output.
func TestTransform_Deterministic(t *testing.T) {
	first, _, err := Transform(testBundle(), testConfig())
	require.NoError(t, err)
	second, _, err := Transform(testBundle(), testConfig())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
