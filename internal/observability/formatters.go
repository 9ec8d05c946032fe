// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/lbsa71/cv-generator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBundleSummary outputs record counts for each group of a loaded export.
func (p *Printer) PrintBundleSummary(bundle *types.RawRecordBundle) {
	if bundle == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Profiles:   %d\n", len(bundle.Profiles)))
	sb.WriteString(fmt.Sprintf("Positions:  %d\n", len(bundle.Positions)))
	sb.WriteString(fmt.Sprintf("Projects:   %d\n", len(bundle.Projects)))
	sb.WriteString(fmt.Sprintf("Education:  %d\n", len(bundle.Education)))
	sb.WriteString(fmt.Sprintf("Emails:     %d\n", len(bundle.Emails)))
	sb.WriteString(fmt.Sprintf("Languages:  %d", len(bundle.Languages)))
	if bundle.ImagePath != "" {
		sb.WriteString(fmt.Sprintf("\nPhoto:      %s", bundle.ImagePath))
	}

	p.printBox("LOADED EXPORT", sb.String())
}

// PrintTransformedCV outputs a human-readable summary of the transformed
// aggregate: who the document is for, which positions survived the recency
// filter, and how the skills landed in their categories.
func (p *Printer) PrintTransformedCV(data *types.TransformedCVData) {
	if data == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s %s\n", data.Profile.FirstName, data.Profile.LastName))
	sb.WriteString(fmt.Sprintf("Email:     %s\n", data.Email.EmailAddress))
	sb.WriteString("\n")

	if len(data.Positions) > 0 {
		sb.WriteString(fmt.Sprintf("Positions kept: %d\n", len(data.Positions)))
		count := min(len(data.Positions), maxItemsToShow)
		for i := 0; i < count; i++ {
			pos := data.Positions[i]
			sb.WriteString(fmt.Sprintf("  • %s at %s", pos.Title, pos.CompanyName))
			if len(pos.Skills) > 0 {
				sb.WriteString(fmt.Sprintf(" (%d skills)", len(pos.Skills)))
			}
			sb.WriteString("\n")
		}
		if len(data.Positions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.Positions)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(data.SkillCategories) > 0 {
		sb.WriteString("Skill categories:\n")
		for _, cat := range data.SkillCategories {
			skills := strings.Join(cat.Skills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s (%d): %s\n", cat.Name, len(cat.Skills), skills))
		}
	}

	p.printBox("TRANSFORMED CV", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDroppedSkills outputs the skills dropped in lenient mode because no
// category claimed them.
func (p *Printer) PrintDroppedSkills(skills []string) {
	if len(skills) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Dropped %d uncategorized skills:\n\n", len(skills)))
	for _, skill := range skills {
		sb.WriteString(fmt.Sprintf("  ⚠ %s\n", skill))
	}
	sb.WriteString("\nAdd them to a category or alias them away.")

	p.printBox("UNCATEGORIZED SKILLS", sb.String())
}

// PrintOutputs outputs the written artifact paths.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintOutputs(paths []string) {
	if len(paths) == 0 {
		return
	}

	var sb strings.Builder
	for i, path := range paths {
		sb.WriteString(fmt.Sprintf("✓ %s", path))
		if i < len(paths)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("GENERATED", sb.String())
}
