package types

// RawRecordBundle holds the parsed record groups of one data export, before
// transformation. Optional groups that are absent from the export are empty
// slices; the ingestion layer never errors on a missing optional group.
type RawRecordBundle struct {
	Profiles  []Profile
	Positions []Position
	Projects  []Project
	Education []Education
	Emails    []Email
	Languages []Language
	ImagePath string
}
