package rendering

import (
	"html/template"
	"strings"

	"github.com/lbsa71/cv-generator/internal/layout"
	"github.com/lbsa71/cv-generator/internal/types"
)

// htmlDocument is the single-flow web rendition of a CV. Unlike the paged
// canvas it never breaks pages; the browser scrolls.
const htmlDocument = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Data.Profile.FirstName}} {{.Data.Profile.LastName}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; max-width: 760px; margin: 0 auto; padding: 2rem; color: #222; }
h1 { margin-bottom: 0; }
h2 { border-bottom: 1px solid #ccc; padding-bottom: 0.2rem; margin-top: 2rem; }
.headline { color: #555; font-size: 1.1rem; margin-top: 0.2rem; }
.contact { color: #555; font-size: 0.9rem; }
.entry { margin-bottom: 1.2rem; }
.entry h3 { margin-bottom: 0.1rem; }
.company { color: #555; }
.dates { font-size: 0.9rem; color: #777; }
.key-skills { font-size: 0.85rem; color: #666; }
.photo { float: right; width: 120px; height: 120px; object-fit: cover; border-radius: 6px; margin-left: 1rem; }
.back-ref { margin-top: 2rem; font-size: 0.8rem; color: #999; }
</style>
</head>
<body>
{{if .Data.ImagePath}}<img class="photo" src="{{base .Data.ImagePath}}" alt="">{{end}}
<h1>{{.Data.Profile.FirstName}} {{.Data.Profile.LastName}}</h1>
{{if .Data.Profile.Headline}}<p class="headline">{{.Data.Profile.Headline}}</p>{{end}}
<p class="contact">
{{if .Meta.ProfileRef}}<a href="https://{{.Meta.ProfileRef}}">{{.Meta.ProfileRef}}</a> &middot; {{end}}
<a href="mailto:{{.Data.Email.EmailAddress}}">{{.Data.Email.EmailAddress}}</a>
{{if .Meta.Phone}} &middot; {{.Meta.Phone}}{{end}}
</p>

{{if .Data.Profile.Summary}}<h2>Summary</h2>
<p>{{.Data.Profile.Summary}}</p>{{end}}

{{if .Data.Positions}}<h2>Experience</h2>
{{range .Data.Positions}}<div class="entry">
<h3>{{.Title}}</h3>
<div class="company">{{.CompanyName}}{{if .Location}} &middot; {{trimLocation .Location}}{{end}}</div>
<div class="dates">{{formatDate .StartedOn}} &ndash; {{formatDate .FinishedOn}}</div>
{{if .Description}}<p>{{.Description}}</p>{{end}}
{{if .Skills}}<div class="key-skills">Key skills: {{joinSkills .Skills}}</div>{{end}}
</div>
{{end}}{{end}}

{{if .Data.Projects}}<h2>Projects</h2>
{{range .Data.Projects}}<div class="entry">
<h3>{{if .URL}}<a href="{{.URL}}">{{.Title}}</a>{{else}}{{.Title}}{{end}}</h3>
<div class="dates">{{formatDate .StartedOn}} &ndash; {{formatDate .FinishedOn}}</div>
{{if .Description}}<p>{{.Description}}</p>{{end}}
</div>
{{end}}{{end}}

{{if .Data.Education}}<h2>Education</h2>
{{range .Data.Education}}<div class="entry">
<h3>{{.SchoolName}}</h3>
{{if .DegreeName}}<div class="company">{{.DegreeName}}</div>{{end}}
<div class="dates">{{formatDate .StartDate}} &ndash; {{formatDate .EndDate}}</div>
{{if .Notes}}<p>{{.Notes}}</p>{{end}}
</div>
{{end}}{{end}}

{{if .Data.SkillCategories}}<h2>Skills</h2>
{{range .Data.SkillCategories}}<div class="entry">
<h3>{{.Name}}</h3>
<p>{{joinSkills .Skills}}</p>
</div>
{{end}}{{end}}

{{if .Data.Languages}}<h2>Languages</h2>
<p>{{range $i, $l := .Data.Languages}}{{if $i}} &middot; {{end}}{{$l.Name}}{{if $l.Proficiency}} ({{$l.Proficiency}}){{end}}{{end}}</p>
{{end}}

{{if .Meta.BackRef}}<p class="back-ref">Generated from <a href="{{.Meta.BackRef}}">{{.Meta.BackRef}}</a></p>{{end}}
</body>
</html>
`

type htmlTemplateData struct {
	Data *types.TransformedCVData
	Meta layout.DocumentMeta
}

// RenderHTML renders the single-flow HTML rendition of the transformed
// aggregate. The profile photo, when present, is referenced by basename and
// must be written next to the output file.
func RenderHTML(data *types.TransformedCVData, meta layout.DocumentMeta) (string, error) {
	trimLocation := meta.TrimLocation
	if trimLocation == nil {
		trimLocation = func(location string) string { return location }
	}

	tmpl, err := template.New("cv").Funcs(template.FuncMap{
		"formatDate":   layout.FormatDate,
		"joinSkills":   func(skills []string) string { return strings.Join(skills, " • ") },
		"trimLocation": trimLocation,
		"base":         baseName,
	}).Parse(htmlDocument)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse document template", Cause: err}
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, &htmlTemplateData{Data: data, Meta: meta}); err != nil {
		return "", &TemplateError{Message: "failed to execute document template", Cause: err}
	}
	return result.String(), nil
}

func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
