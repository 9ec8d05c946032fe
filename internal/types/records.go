// Package types provides type definitions for the CV records and aggregates used throughout the generator.
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Profile represents the single Profile record of a data export.
type Profile struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Headline    string `json:"headline"`
	Summary     string `json:"summary"`
	Industry    string `json:"industry"`
	GeoLocation string `json:"geo_location"`
	Websites    string `json:"websites"`
}

// Position represents one entry of the Positions record group.
type Position struct {
	CompanyName string `json:"company_name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartedOn   string `json:"started_on"`
	FinishedOn  string `json:"finished_on"`
}

// Project represents one entry of the Projects record group.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	StartedOn   string `json:"started_on"`
	FinishedOn  string `json:"finished_on"`
}

// Education represents one entry of the Education record group.
type Education struct {
	SchoolName string `json:"school_name"`
	DegreeName string `json:"degree_name"`
	Notes      string `json:"notes"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Activities string `json:"activities"`
}

// Email represents one entry of the Email Addresses record group.
type Email struct {
	EmailAddress string `json:"email_address" validate:"required,email"`
	Confirmed    string `json:"confirmed"`
	Primary      string `json:"primary"`
	UpdatedOn    string `json:"updated_on"`
}

// Language represents one entry of the Languages record group.
type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// NewProfile builds a Profile from a parsed CSV row keyed by the export's column names.
func NewProfile(row map[string]string) Profile {
	return Profile{
		FirstName:   row["First Name"],
		LastName:    row["Last Name"],
		Headline:    row["Headline"],
		Summary:     row["Summary"],
		Industry:    row["Industry"],
		GeoLocation: row["Geo Location"],
		Websites:    row["Websites"],
	}
}

// NewPosition builds a Position from a parsed CSV row.
func NewPosition(row map[string]string) Position {
	return Position{
		CompanyName: row["Company Name"],
		Title:       row["Title"],
		Description: row["Description"],
		Location:    row["Location"],
		StartedOn:   row["Started On"],
		FinishedOn:  row["Finished On"],
	}
}

// NewProject builds a Project from a parsed CSV row.
func NewProject(row map[string]string) Project {
	return Project{
		Title:       row["Title"],
		Description: row["Description"],
		URL:         row["Url"],
		StartedOn:   row["Started On"],
		FinishedOn:  row["Finished On"],
	}
}

// NewEducation builds an Education entry from a parsed CSV row.
func NewEducation(row map[string]string) Education {
	return Education{
		SchoolName: row["School Name"],
		DegreeName: row["Degree Name"],
		Notes:      row["Notes"],
		StartDate:  row["Start Date"],
		EndDate:    row["End Date"],
		Activities: row["Activities"],
	}
}

// NewEmail builds an Email entry from a parsed CSV row.
func NewEmail(row map[string]string) Email {
	return Email{
		EmailAddress: row["Email Address"],
		Confirmed:    row["Confirmed"],
		Primary:      row["Primary"],
		UpdatedOn:    row["Updated On"],
	}
}

// NewLanguage builds a Language entry from a parsed CSV row.
func NewLanguage(row map[string]string) Language {
	return Language{
		Name:        row["Name"],
		Proficiency: row["Proficiency"],
	}
}

// Validate validates the Profile using the validator.
func (p *Profile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Validate validates the Email using the validator.
func (e *Email) Validate() error {
	validate := validator.New()
	return validate.Struct(e)
}

// WebsiteList splits the raw Websites string into displayable URLs.
// The export wraps the comma-joined list in brackets and prefixes each
// entry with a kind token such as "OTHER:" or "PORTFOLIO:".
func (p *Profile) WebsiteList() []string {
	raw := strings.NewReplacer("[", "", "]", "").Replace(p.Websites)

	var sites []string
	for _, part := range strings.Split(raw, ",") {
		site := strings.TrimSpace(part)
		if idx := strings.Index(site, ":"); idx >= 0 && !strings.Contains(site[:idx], "/") {
			switch site[:idx] {
			case "http", "https":
				// scheme, not a kind prefix
			default:
				site = site[idx+1:]
			}
		}
		if site != "" {
			sites = append(sites, site)
		}
	}
	return sites
}
