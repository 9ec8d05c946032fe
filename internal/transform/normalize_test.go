package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testAliases = map[string]string{
	".NET":       "Microsoft.NET",
	"SQL Server": "Microsoft SQL Server",
	"AWS":        "Amazon Web Services (AWS)",
	"GCP":        "Google Cloud Platform (GCP)",
	"Telephony":  "",
	"Databases":  "",
}

func TestNormalizeSkill_Mapped(t *testing.T) {
	assert.Equal(t, "Microsoft SQL Server", NormalizeSkill(testAliases, "SQL Server"))
	assert.Equal(t, "Amazon Web Services (AWS)", NormalizeSkill(testAliases, "AWS"))
}

func TestNormalizeSkill_UnmappedPassesThrough(t *testing.T) {
	assert.Equal(t, "Go", NormalizeSkill(testAliases, "Go"))
	assert.Equal(t, "  Go  ", NormalizeSkill(testAliases, "  Go  "))
}

func TestNormalizeSkill_DeleteAlias(t *testing.T) {
	assert.Empty(t, NormalizeSkill(testAliases, "Telephony"))
}

func TestNormalizeSkill_CaseSensitive(t *testing.T) {
	// "aws" is not a key; only the exact token maps.
	assert.Equal(t, "aws", NormalizeSkill(testAliases, "aws"))
}

// Applying the normalizer twice is a no-op: aliases do not chain.
func TestNormalizeSkill_FixedPoint(t *testing.T) {
	for raw := range testAliases {
		once := NormalizeSkill(testAliases, raw)
		assert.Equal(t, once, NormalizeSkill(testAliases, once), "alias %q chains", raw)
	}
}

func TestNormalizeSkills_OrderPreservedAndExcludedDropped(t *testing.T) {
	got := normalizeSkills(testAliases, []string{"C#", "SQL Server", "Telephony", ".NET"})
	assert.Equal(t, []string{"C#", "Microsoft SQL Server", "Microsoft.NET"}, got)
}

func TestNormalizeSkills_CollidingAliases(t *testing.T) {
	aliases := map[string]string{
		"golang": "Go",
		"GoLang": "Go",
	}
	got := normalizeSkills(aliases, []string{"golang", "GoLang"})
	// Both aliases resolve to the same canonical name; set-insertion dedups later.
	assert.Equal(t, []string{"Go", "Go"}, got)
}
