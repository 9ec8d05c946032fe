package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile_MapsColumns(t *testing.T) {
	row := map[string]string{
		"First Name":   "Lars",
		"Last Name":    "Book",
		"Headline":     "CTO",
		"Summary":      "Thirty years of shipping software.",
		"Industry":     "Computer Software",
		"Geo Location": "Gothenburg, Sweden",
		"Websites":     "[OTHER:https://github.com/lbsa71]",
	}

	profile := NewProfile(row)
	assert.Equal(t, "Lars", profile.FirstName)
	assert.Equal(t, "Book", profile.LastName)
	assert.Equal(t, "CTO", profile.Headline)
	assert.Equal(t, "Gothenburg, Sweden", profile.GeoLocation)
}

func TestProfile_Validate(t *testing.T) {
	profile := Profile{FirstName: "Lars", LastName: "Book"}
	require.NoError(t, profile.Validate())

	missing := Profile{FirstName: "Lars"}
	assert.Error(t, missing.Validate())
}

func TestEmail_Validate(t *testing.T) {
	email := Email{EmailAddress: "lars@example.com"}
	require.NoError(t, email.Validate())

	invalid := Email{EmailAddress: "not-an-address"}
	assert.Error(t, invalid.Validate())
}

func TestProfile_WebsiteList(t *testing.T) {
	profile := Profile{
		Websites: "[OTHER:https://github.com/lbsa71,PORTFOLIO:https://lbsa71.net]",
	}

	sites := profile.WebsiteList()
	require.Len(t, sites, 2)
	assert.Equal(t, "https://github.com/lbsa71", sites[0])
	assert.Equal(t, "https://lbsa71.net", sites[1])
}

func TestProfile_WebsiteList_Empty(t *testing.T) {
	profile := Profile{Websites: "[]"}
	assert.Empty(t, profile.WebsiteList())
}

func TestNewPosition_MapsColumns(t *testing.T) {
	row := map[string]string{
		"Company Name": "Acme",
		"Title":        "Engineer",
		"Description":  "Built things.",
		"Location":     "Gothenburg",
		"Started On":   "Jan 2020",
		"Finished On":  "",
	}

	pos := NewPosition(row)
	assert.Equal(t, "Acme", pos.CompanyName)
	assert.Equal(t, "Engineer", pos.Title)
	assert.Equal(t, "Jan 2020", pos.StartedOn)
	assert.Empty(t, pos.FinishedOn)
}

func TestTransformedCVData_CategorySkills(t *testing.T) {
	data := TransformedCVData{
		SkillCategories: []SkillCategory{
			{Name: "Languages", Skills: []string{"Go", "Python"}},
		},
	}

	assert.Equal(t, []string{"Go", "Python"}, data.CategorySkills("Languages"))
	assert.Nil(t, data.CategorySkills("Cloud"))
}
