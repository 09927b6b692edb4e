package ingestion

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/guptavanshika1510-jpg/skillmap/internal/db"
)

const topEntryLimit = 8

// RoleCount is one entry of the per-role frequency ranking.
type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

// CountryCount is one entry of the per-country frequency ranking.
type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// DateRange is the inclusive posted-date span of a dataset.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Summary is the ingestion report returned to the uploader.
type Summary struct {
	DatasetID          uuid.UUID      `json:"dataset_id"`
	Filename           string         `json:"filename"`
	TotalJobs          int            `json:"total_jobs"`
	TopRoles           []RoleCount    `json:"top_roles"`
	TopCountries       []CountryCount `json:"top_countries"`
	SkillsSource       string         `json:"skills_source"`
	DateRange          *DateRange     `json:"date_range"`
	MappingConfidence  float64        `json:"mapping_confidence"`
	SuggestedQuestions []string       `json:"suggested_questions"`
}

// topValues tallies non-unique values preserving first-seen order for
// equal counts, replacing empties with "Unknown", capped at
// topEntryLimit.
func topValues(values []string) ([]string, map[string]int) {
	counts := make(map[string]int)
	var order []string
	for _, v := range values {
		if v == "" {
			v = "Unknown"
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topEntryLimit {
		order = order[:topEntryLimit]
	}
	return order, counts
}

// buildSummary derives the dataset summary from its records.
func buildSummary(dataset *db.Dataset, records []db.JobRecord) *Summary {
	roles := make([]string, 0, len(records))
	countries := make([]string, 0, len(records))
	for _, r := range records {
		roles = append(roles, r.Role)
		countries = append(countries, r.Country)
	}

	roleOrder, roleCounts := topValues(roles)
	countryOrder, countryCounts := topValues(countries)

	topRoles := make([]RoleCount, 0, len(roleOrder))
	for _, r := range roleOrder {
		topRoles = append(topRoles, RoleCount{Role: r, Count: roleCounts[r]})
	}
	topCountries := make([]CountryCount, 0, len(countryOrder))
	for _, c := range countryOrder {
		topCountries = append(topCountries, CountryCount{Country: c, Count: countryCounts[c]})
	}

	var dateRange *DateRange
	for _, r := range records {
		if r.PostedDate == nil {
			continue
		}
		if dateRange == nil {
			dateRange = &DateRange{
				Start: r.PostedDate.Format("2006-01-02"),
				End:   r.PostedDate.Format("2006-01-02"),
			}
			continue
		}
		d := r.PostedDate.Format("2006-01-02")
		if d < dateRange.Start {
			dateRange.Start = d
		}
		if d > dateRange.End {
			dateRange.End = d
		}
	}

	topRole, topCountry := "Data Analyst", "USA"
	if len(topRoles) > 0 {
		topRole = topRoles[0].Role
	}
	if len(topCountries) > 0 {
		topCountry = topCountries[0].Country
	}

	return &Summary{
		DatasetID:         dataset.ID,
		Filename:          dataset.Filename,
		TotalJobs:         len(records),
		TopRoles:          topRoles,
		TopCountries:      topCountries,
		SkillsSource:      dataset.SkillsSource(),
		DateRange:         dateRange,
		MappingConfidence: math.Round(dataset.MappingConfidence*1000) / 1000,
		SuggestedQuestions: []string{
			fmt.Sprintf("What are the top skills for %s in %s?", topRole, topCountry),
			fmt.Sprintf("Show rising skills for %s in %s for last 6 months", topRole, topCountry),
			fmt.Sprintf("Give me skill trends for %s in %s", topRole, topCountry),
		},
	}
}
