// Package observability provides formatted output utilities for the CLI query mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/guptavanshika1510-jpg/skillmap/internal/agent"
	"github.com/guptavanshika1510-jpg/skillmap/internal/analytics"
	"github.com/guptavanshika1510-jpg/skillmap/internal/ingestion"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for CLI mode
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

// PrintSummary outputs a human-readable report of an ingested dataset.
func (p *Printer) PrintSummary(summary *ingestion.Summary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:       %s\n", summary.Filename))
	sb.WriteString(fmt.Sprintf("Jobs:       %d\n", summary.TotalJobs))
	sb.WriteString(fmt.Sprintf("Skills via: %s\n", summary.SkillsSource))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", summary.MappingConfidence))
	if summary.DateRange != nil {
		sb.WriteString(fmt.Sprintf("Dates:      %s to %s\n", summary.DateRange.Start, summary.DateRange.End))
	}

	if len(summary.TopRoles) > 0 {
		sb.WriteString("\nTop roles:\n")
		for _, rc := range summary.TopRoles {
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", rc.Role, rc.Count))
		}
	}
	if len(summary.TopCountries) > 0 {
		sb.WriteString("\nTop countries:\n")
		for _, cc := range summary.TopCountries {
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", cc.Country, cc.Count))
		}
	}

	p.printBox("DATASET SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResponse outputs a full agent answer: status, filters, result,
// warnings, and confidence.
func (p *Printer) PrintResponse(resp *agent.Response) {
	if resp == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status:     %s\n", resp.Status))
	sb.WriteString(fmt.Sprintf("Message:    %s\n", resp.Message))
	if resp.ParsedIntent != "" {
		sb.WriteString(fmt.Sprintf("Intent:     %s\n", resp.ParsedIntent))
	}
	if resp.ParsedFilters.RoleMatched != "" {
		sb.WriteString(fmt.Sprintf("Role:       %s (%.2f)\n", resp.ParsedFilters.RoleMatched, resp.ParsedFilters.RoleMatchScore))
	}
	if resp.ParsedFilters.CountryMatched != "" {
		sb.WriteString(fmt.Sprintf("Country:    %s (%.2f)\n", resp.ParsedFilters.CountryMatched, resp.ParsedFilters.CountryMatchScore))
	}
	sb.WriteString(fmt.Sprintf("Confidence: %.3f", resp.Confidence))
	p.printBox("AGENT RESPONSE", sb.String())

	p.printResult(resp.Result)
	p.printWarnings(resp.Warnings)
	p.printClarifications(resp.ClarificationQuestions)
}

func (p *Printer) printResult(result analytics.Result) {
	switch res := result.(type) {
	case *analytics.TopSkillsResult:
		p.printTopSkills(res)
	case *analytics.RisingSkillsResult:
		p.printRisingSkills(res)
	case *analytics.TrendResult:
		p.printTrends(res)
	}
}

func (p *Printer) printTopSkills(res *analytics.TopSkillsResult) {
	if len(res.Items) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(res.Items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := res.Items[i]
		sb.WriteString(fmt.Sprintf("#%-2d %-30s %d\n", i+1, item.Skill, item.Count))
	}
	if len(res.Items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(res.Items)-maxItemsToShow))
	}

	title := "TOP SKILLS"
	if res.Intent == analytics.IntentTopSkillsFallback {
		title = "TOP SKILLS (FALLBACK)"
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printRisingSkills(res *analytics.RisingSkillsResult) {
	if len(res.Items) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(res.Items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := res.Items[i]
		sb.WriteString(fmt.Sprintf("#%-2d %-24s %d → %d", i+1, item.Skill, item.PreviousCount, item.CurrentCount))
		if item.GrowthPercent != nil {
			sb.WriteString(fmt.Sprintf(" (%+.1f%%)", *item.GrowthPercent))
		} else {
			sb.WriteString(" (new)")
		}
		sb.WriteString("\n")
	}

	p.printBox("RISING SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printTrends(res *analytics.TrendResult) {
	if len(res.Data.Series) == 0 {
		return
	}

	var sb strings.Builder
	for i, series := range res.Data.Series {
		sb.WriteString(series.Skill + "\n")
		for _, point := range series.Points {
			sb.WriteString(fmt.Sprintf("  %s  %d\n", point.Month, point.Count))
		}
		if i < len(res.Data.Series)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SKILL TRENDS", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	var sb strings.Builder
	for _, w := range warnings {
		sb.WriteString(fmt.Sprintf("• %s\n", w))
	}
	p.printBox("WARNINGS", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printClarifications(questions []string) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	for _, q := range questions {
		sb.WriteString(fmt.Sprintf("• %s\n", q))
	}
	p.printBox("CLARIFICATION NEEDED", strings.TrimSuffix(sb.String(), "\n"))
}
