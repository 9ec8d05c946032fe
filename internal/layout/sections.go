package layout

import (
	"strings"

	"github.com/lbsa71/cv-generator/internal/types"
)

// DocumentMeta carries the contact details and back reference that come from
// configuration rather than from the export.
type DocumentMeta struct {
	Phone        string
	ProfileRef   string
	BackRef      string
	TrimLocation func(string) string
}

const skillSeparator = " • " // bullet-joined skill lists

var (
	nameStyle          = TextStyle{Font: "Helvetica", Size: 28, Bold: true}
	headlineStyle      = TextStyle{Font: "Helvetica", Size: 16, Color: "rgb(80,80,80)"}
	sectionHeaderStyle = TextStyle{Font: "Helvetica", Size: 16, Bold: true}
	leftHeaderStyle    = TextStyle{Font: "Helvetica", Size: 14, Bold: true}
	entryTitleStyle    = TextStyle{Font: "Helvetica", Size: 13, Bold: true}
	companyStyle       = TextStyle{Font: "Helvetica", Size: 12, Color: "rgb(80,80,80)"}
	degreeStyle        = TextStyle{Font: "Helvetica", Size: 12}
	bodyStyle          = TextStyle{Font: "Helvetica", Size: 11, Align: "justify", LineGap: 7}
	dateStyle          = TextStyle{Font: "Helvetica", Size: 11}
	categoryStyle      = TextStyle{Font: "Helvetica", Size: 12, Bold: true}
	smallStyle         = TextStyle{Font: "Helvetica", Size: 10}
	keySkillsStyle     = TextStyle{Font: "Helvetica", Size: 10, Color: "rgb(100,100,100)"}
)

func linkStyle(url string) TextStyle {
	return TextStyle{Font: "Helvetica", Size: 10, Color: "blue", Link: url, Underline: true}
}

// RenderDocument lays the transformed aggregate out onto the canvas: the
// left column in a single pass (assumed to fit the first page), then the
// main flow with a page-break check before every entry block.
func RenderDocument(canvas Canvas, data *types.TransformedCVData, meta DocumentMeta) {
	if meta.TrimLocation == nil {
		meta.TrimLocation = func(location string) string { return location }
	}

	e := NewEngine(canvas)

	renderLeftColumn(e, data, meta)

	e.SetY(PageMargin)
	renderHeader(e, data)
	renderSummary(e, data)
	renderExperience(e, data, meta)
	renderProjects(e, data)
	renderEducation(e, data)
	renderSkills(e, data)

	renderBackRef(e, meta)
	e.Finish()
}

func renderLeftColumn(e *Engine, data *types.TransformedCVData, meta DocumentMeta) {
	if data.ImagePath != "" {
		e.DrawImage(data.ImagePath, PageMargin, LeftColumnWidth)
		e.Advance(30)
	}

	e.DrawText("Contact", PageMargin, LeftColumnWidth, leftHeaderStyle)
	e.Advance(4)

	if meta.ProfileRef != "" {
		e.DrawText(meta.ProfileRef, PageMargin, LeftColumnWidth, linkStyle("https://"+meta.ProfileRef))
	}
	e.DrawText("Email: "+data.Email.EmailAddress, PageMargin, LeftColumnWidth, smallStyle)
	if meta.Phone != "" {
		e.DrawText("Phone: "+meta.Phone, PageMargin, LeftColumnWidth, smallStyle)
	}

	if len(data.Languages) > 0 {
		e.Advance(20)
		e.DrawText("Languages", PageMargin, LeftColumnWidth, leftHeaderStyle)
		e.Advance(4)
		for _, lang := range data.Languages {
			e.DrawText(lang.Name+": "+lang.Proficiency, PageMargin, LeftColumnWidth, smallStyle)
		}
	}

	websites := data.Profile.WebsiteList()
	if len(websites) > 0 {
		e.Advance(20)
		e.DrawText("Links", PageMargin, LeftColumnWidth, leftHeaderStyle)
		e.Advance(4)
		for _, site := range websites {
			e.DrawText(site, PageMargin, LeftColumnWidth, linkStyle(site))
		}
	}
}

func renderHeader(e *Engine, data *types.TransformedCVData) {
	e.DrawText(data.Profile.FirstName+" "+data.Profile.LastName,
		RightColumnStart, RightColumnWidth, nameStyle)
	e.Advance(8)
	e.DrawText(data.Profile.Headline, RightColumnStart, RightColumnWidth, headlineStyle)
	e.Advance(24)
}

func renderSummary(e *Engine, data *types.TransformedCVData) {
	if data.Profile.Summary == "" {
		return
	}
	e.DrawText("Professional Summary", RightColumnStart, RightColumnWidth, sectionHeaderStyle)
	e.Advance(10)
	e.DrawText(data.Profile.Summary, RightColumnStart, RightColumnWidth, bodyStyle)
	e.Advance(24)
}

func renderExperience(e *Engine, data *types.TransformedCVData, meta DocumentMeta) {
	if len(data.Positions) == 0 {
		return
	}

	e.DrawText("Professional Experience", RightColumnStart, RightColumnWidth, sectionHeaderStyle)
	e.Advance(10)

	for _, position := range data.Positions {
		e.EnsureSpace(EstimatePositionHeight(position.Description))

		dates := " (" + FormatDate(position.StartedOn) + " - " + FormatDate(position.FinishedOn) + ")"
		e.DrawText(position.Title+dates, RightColumnStart, RightColumnWidth, entryTitleStyle)
		e.Advance(4)
		e.DrawText(position.CompanyName+" | "+meta.TrimLocation(position.Location),
			RightColumnStart, RightColumnWidth, companyStyle)
		e.Advance(6)
		e.DrawText(position.Description, RightColumnStart, RightColumnWidth, bodyStyle)

		if len(position.Skills) > 0 {
			e.Advance(6)
			e.EnsureSpace(skillsBaseHeight)
			e.DrawText("Key Skills: "+strings.Join(position.Skills, skillSeparator),
				RightColumnStart, RightColumnWidth, keySkillsStyle)
		}

		e.Advance(18)
	}
}

func renderProjects(e *Engine, data *types.TransformedCVData) {
	if len(data.Projects) == 0 {
		return
	}

	e.EnsureSpace(sectionHeaderHeight)
	e.DrawText("Notable Projects", RightColumnStart, RightColumnWidth, sectionHeaderStyle)
	e.Advance(10)

	for _, project := range data.Projects {
		e.EnsureSpace(EstimateProjectHeight(project.Description))

		dates := " (" + FormatDate(project.StartedOn) + " - " + FormatDate(project.FinishedOn) + ")"
		e.DrawText(project.Title+dates, RightColumnStart, RightColumnWidth, entryTitleStyle)
		e.Advance(6)
		e.DrawText(project.Description, RightColumnStart, RightColumnWidth, bodyStyle)
		e.Advance(18)
	}
}

func renderEducation(e *Engine, data *types.TransformedCVData) {
	if len(data.Education) == 0 {
		return
	}

	e.EnsureSpace(sectionHeaderHeight)
	e.DrawText("Education", RightColumnStart, RightColumnWidth, sectionHeaderStyle)
	e.Advance(10)

	for _, edu := range data.Education {
		e.EnsureSpace(EstimateEducationHeight(edu.Notes))

		e.DrawText(edu.SchoolName, RightColumnStart, RightColumnWidth, entryTitleStyle)
		if edu.DegreeName != "" {
			e.Advance(4)
			e.DrawText(edu.DegreeName, RightColumnStart, RightColumnWidth, degreeStyle)
		}
		e.Advance(4)
		e.DrawText(FormatDate(edu.StartDate)+" - "+FormatDate(edu.EndDate),
			RightColumnStart, RightColumnWidth, dateStyle)
		if edu.Notes != "" {
			e.Advance(6)
			e.DrawText(edu.Notes, RightColumnStart, RightColumnWidth, bodyStyle)
		}
		e.Advance(18)
	}
}

func renderSkills(e *Engine, data *types.TransformedCVData) {
	if len(data.SkillCategories) == 0 {
		return
	}

	e.EnsureSpace(sectionHeaderHeight)
	e.DrawText("Technical Skills", RightColumnStart, RightColumnWidth, sectionHeaderStyle)
	e.Advance(10)

	for _, category := range data.SkillCategories {
		joined := strings.Join(category.Skills, skillSeparator)
		e.EnsureSpace(EstimateSkillsHeight(joined))

		e.DrawText(category.Name, RightColumnStart, RightColumnWidth, categoryStyle)
		e.Advance(4)
		e.DrawText(joined, RightColumnStart, RightColumnWidth, smallStyle)
		e.Advance(14)
	}
}

func renderBackRef(e *Engine, meta DocumentMeta) {
	if meta.BackRef == "" {
		return
	}
	e.DrawTextAt("This CV generated with", PageMargin, PageHeight-80, LeftColumnWidth, smallStyle)
	e.DrawTextAt(meta.BackRef, PageMargin, PageHeight-60, LeftColumnWidth, linkStyle(meta.BackRef))
}
