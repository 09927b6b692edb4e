// Package schema maps arbitrary source column names onto the
// canonical fields {role, country, skills, description, date} with a
// per-field match score.
package schema

import (
	"strings"

	"github.com/guptavanshika1510-jpg/skillmap/internal/matching"
)

// Canonical field names.
const (
	FieldRole        = "role"
	FieldCountry     = "country"
	FieldSkills      = "skills"
	FieldDescription = "description"
	FieldDate        = "date"
)

// columnAliases lists the known header spellings per canonical field.
var columnAliases = map[string][]string{
	FieldRole:        {"role", "job title", "job_title", "title", "position", "occupation"},
	FieldCountry:     {"country", "location", "job_country", "region", "market"},
	FieldSkills:      {"skills", "skill", "key_skills", "core_skills"},
	FieldDescription: {"description", "job_description", "summary", "responsibilities"},
	FieldDate:        {"date", "posted_date", "posting_date", "created_at", "publish_date"},
}

// Acceptance thresholds for the optional fields. Role and country have
// no threshold: any detected column is taken, and ingestion fails when
// none is found at all.
const (
	skillsThreshold      = 0.45
	descriptionThreshold = 0.35
	dateThreshold        = 0.35
)

// Mapping is the result of resolving a table's columns against the
// canonical fields. Optional columns are empty strings when the field
// was rejected or absent.
type Mapping struct {
	RoleColumn        string
	CountryColumn     string
	SkillsColumn      string
	DescriptionColumn string
	DateColumn        string

	RoleScore        float64
	CountryScore     float64
	SkillsScore      float64
	DescriptionScore float64
	DateScore        float64

	HasSkills      bool
	HasDescription bool
	HasDate        bool
}

// Confidence is the aggregate mapping confidence: the mean of the
// role, country, best-skill-source and date scores.
func (m *Mapping) Confidence() float64 {
	best := m.SkillsScore
	if m.DescriptionScore > best {
		best = m.DescriptionScore
	}
	return (m.RoleScore + m.CountryScore + best + m.DateScore) / 4
}

// UsedDescriptionExtraction reports whether skill extraction must run
// in lexicon mode over descriptions.
func (m *Mapping) UsedDescriptionExtraction() bool {
	return !m.HasSkills
}

// CleanColumns trims every raw header.
func CleanColumns(columns []string) []string {
	cleaned := make([]string, len(columns))
	for i, c := range columns {
		cleaned[i] = strings.TrimSpace(c)
	}
	return cleaned
}

// DetectColumn finds the best source column for one alias list. An
// exact case-insensitive alias hit scores 1.0; otherwise the joined
// alias bag is fuzzy-matched against each column and the best column
// with its score is returned. The alias bag is deliberately compared
// as one string per column, not alias-by-alias.
func DetectColumn(columns, aliases []string) (string, float64) {
	lowered := make([]string, len(columns))
	for i, c := range columns {
		lowered[i] = strings.ToLower(strings.TrimSpace(c))
	}

	for _, alias := range aliases {
		for i, lc := range lowered {
			if lc == alias {
				return columns[i], 1.0
			}
		}
	}

	return matching.Resolve(strings.Join(aliases, " "), columns, 0.0)
}

// Map resolves cleaned column names to a full Mapping. It fails with a
// MappingError when no role or country column can be located, or when
// neither skill source clears its acceptance threshold.
func Map(columns []string) (*Mapping, error) {
	cleaned := CleanColumns(columns)

	roleCol, roleScore := DetectColumn(cleaned, columnAliases[FieldRole])
	countryCol, countryScore := DetectColumn(cleaned, columnAliases[FieldCountry])
	skillsCol, skillsScore := DetectColumn(cleaned, columnAliases[FieldSkills])
	descCol, descScore := DetectColumn(cleaned, columnAliases[FieldDescription])
	dateCol, dateScore := DetectColumn(cleaned, columnAliases[FieldDate])

	if roleCol == "" {
		return nil, &MappingError{Field: FieldRole, Message: "could not identify role column from dataset"}
	}
	if countryCol == "" {
		return nil, &MappingError{Field: FieldCountry, Message: "could not identify country/location column from dataset"}
	}

	m := &Mapping{
		RoleColumn:       roleCol,
		CountryColumn:    countryCol,
		RoleScore:        roleScore,
		CountryScore:     countryScore,
		SkillsScore:      skillsScore,
		DescriptionScore: descScore,
		DateScore:        dateScore,
		HasSkills:        skillsCol != "" && skillsScore >= skillsThreshold,
		HasDescription:   descCol != "" && descScore >= descriptionThreshold,
		HasDate:          dateCol != "" && dateScore >= dateThreshold,
	}
	if m.HasSkills {
		m.SkillsColumn = skillsCol
	}
	if m.HasDescription {
		m.DescriptionColumn = descCol
	}
	if m.HasDate {
		m.DateColumn = dateCol
	}

	if !m.HasSkills && !m.HasDescription {
		return nil, &MappingError{
			Field:   FieldSkills,
			Message: "neither skills nor description column found; need one to extract skills",
		}
	}

	return m, nil
}

// Aliases returns the alias list for a canonical field. Exposed for
// tests and documentation surfaces.
func Aliases(field string) []string {
	return columnAliases[field]
}
