package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbsa71/cv-generator/internal/types"
)

func position(company, title, startedOn string) types.Position {
	return types.Position{CompanyName: company, Title: title, StartedOn: startedOn}
}

func TestFilterRecentPositions_Boundary(t *testing.T) {
	positions := []types.Position{
		position("Old Co", "Dev", "Jan 1996"),
		position("Boundary Co", "Dev", "Jan 1997"),
		position("New Co", "Dev", "Mar 2020"),
	}

	recent := FilterRecentPositions(positions)
	require.Len(t, recent, 2)
	assert.Equal(t, "Boundary Co", recent[0].CompanyName)
	assert.Equal(t, "New Co", recent[1].CompanyName)
}

func TestFilterRecentPositions_UnparsableYearExcluded(t *testing.T) {
	positions := []types.Position{
		position("Blank", "Dev", ""),
		position("NoYear", "Dev", "January"),
		position("Garbage", "Dev", "Jan nineteen97"),
	}

	assert.Empty(t, FilterRecentPositions(positions))
}

func TestAttachSkills_NormalizesAndPreservesOrder(t *testing.T) {
	skillMap := map[string]map[string][]string{
		"Acme": {"Engineer": {"C#", "SQL Server"}},
	}
	aliases := map[string]string{"SQL Server": "Microsoft SQL Server"}

	withSkills := AttachSkills(
		[]types.Position{position("Acme", "Engineer", "Jan 2020")}, skillMap, aliases)

	require.Len(t, withSkills, 1)
	// Order preserved from the curated table, not sorted.
	assert.Equal(t, []string{"C#", "Microsoft SQL Server"}, withSkills[0].Skills)
}

func TestAttachSkills_UnknownCompanyOrTitle(t *testing.T) {
	skillMap := map[string]map[string][]string{
		"Acme": {"Engineer": {"Go"}},
	}

	withSkills := AttachSkills([]types.Position{
		position("Unknown Co", "Engineer", "Jan 2020"),
		position("Acme", "Manager", "Jan 2020"),
	}, skillMap, nil)

	require.Len(t, withSkills, 2)
	assert.Empty(t, withSkills[0].Skills)
	assert.Empty(t, withSkills[1].Skills)
}

func TestAttachSkills_KeysAreCaseSensitive(t *testing.T) {
	skillMap := map[string]map[string][]string{
		"Acme": {"Engineer": {"Go"}},
	}

	withSkills := AttachSkills(
		[]types.Position{position("acme", "engineer", "Jan 2020")}, skillMap, nil)
	assert.Empty(t, withSkills[0].Skills)
}

func TestAttachSkills_ExcludedSkillsDropped(t *testing.T) {
	skillMap := map[string]map[string][]string{
		"Acme": {"Engineer": {"Go", "Telephony"}},
	}
	aliases := map[string]string{"Telephony": ""}

	withSkills := AttachSkills(
		[]types.Position{position("Acme", "Engineer", "Jan 2020")}, skillMap, aliases)
	assert.Equal(t, []string{"Go"}, withSkills[0].Skills)
}
