// Package analytics computes time-windowed skill aggregations over a
// read-only projection of ingested job records. All functions are pure
// and safe for concurrent use against the same input slice.
package analytics

import (
	"math"
	"sort"
	"time"
)

const (
	topSkillsLimit    = 15
	risingSkillsLimit = 15
	trendSkillsLimit  = 8
)

// SkillRow is one (role, country, posted date, skill) tuple exploded
// from a job record. It is derived on demand and never persisted.
type SkillRow struct {
	Role       string
	Country    string
	PostedDate *time.Time
	Skill      string
}

// SkillCount is one entry of a top-skills ranking.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// RisingSkill compares one skill's occurrence count between the
// current and previous window. GrowthPercent is nil when the previous
// window had no occurrences.
type RisingSkill struct {
	Skill         string   `json:"skill"`
	CurrentCount  int      `json:"current_count"`
	PreviousCount int      `json:"previous_count"`
	Growth        int      `json:"growth"`
	GrowthPercent *float64 `json:"growth_percent"`
}

// TrendPoint is one month bucket of a skill's trend series.
type TrendPoint struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// TrendSeries is the per-month history of one skill.
type TrendSeries struct {
	Skill  string       `json:"skill"`
	Points []TrendPoint `json:"points"`
}

// countSkills tallies occurrences per skill preserving first-seen
// order for deterministic tie-breaking.
func countSkills(rows []SkillRow) ([]string, map[string]int) {
	counts := make(map[string]int)
	var order []string
	for _, r := range rows {
		if _, seen := counts[r.Skill]; !seen {
			order = append(order, r.Skill)
		}
		counts[r.Skill]++
	}
	return order, counts
}

// TopSkills returns the most frequent skills, highest count first.
// Ties keep first-seen order.
func TopSkills(rows []SkillRow) []SkillCount {
	order, counts := countSkills(rows)
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topSkillsLimit {
		order = order[:topSkillsLimit]
	}
	items := make([]SkillCount, 0, len(order))
	for _, s := range order {
		items = append(items, SkillCount{Skill: s, Count: counts[s]})
	}
	return items
}

// datedRows filters to rows carrying a posted date.
func datedRows(rows []SkillRow) []SkillRow {
	var dated []SkillRow
	for _, r := range rows {
		if r.PostedDate != nil {
			dated = append(dated, r)
		}
	}
	return dated
}

// RisingSkills compares skill counts between the window ending at the
// newest observed date and the equally sized window before it. Both
// windows are half open (start, end]. Rows without dates are ignored;
// an entirely undated input yields an empty result.
func RisingSkills(rows []SkillRow, window time.Duration) []RisingSkill {
	dated := datedRows(rows)
	if len(dated) == 0 {
		return []RisingSkill{}
	}

	end := *dated[0].PostedDate
	for _, r := range dated[1:] {
		if r.PostedDate.After(end) {
			end = *r.PostedDate
		}
	}
	currentStart := end.Add(-window)
	previousStart := currentStart.Add(-window)

	current := make(map[string]int)
	previous := make(map[string]int)
	var order []string
	seen := make(map[string]bool)
	for _, r := range dated {
		d := *r.PostedDate
		var bucket map[string]int
		switch {
		case d.After(currentStart) && !d.After(end):
			bucket = current
		case d.After(previousStart) && !d.After(currentStart):
			bucket = previous
		default:
			continue
		}
		bucket[r.Skill]++
		if !seen[r.Skill] {
			seen[r.Skill] = true
			order = append(order, r.Skill)
		}
	}

	results := make([]RisingSkill, 0, len(order))
	for _, skill := range order {
		cur := current[skill]
		prev := previous[skill]
		growth := cur - prev
		var pct *float64
		if prev != 0 {
			v := round2(float64(growth) / float64(prev) * 100)
			pct = &v
		}
		results = append(results, RisingSkill{
			Skill:         skill,
			CurrentCount:  cur,
			PreviousCount: prev,
			Growth:        growth,
			GrowthPercent: pct,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Growth != results[j].Growth {
			return results[i].Growth > results[j].Growth
		}
		return results[i].CurrentCount > results[j].CurrentCount
	})

	if len(results) > risingSkillsLimit {
		results = results[:risingSkillsLimit]
	}
	return results
}

// SkillTrends buckets the most frequent skills by calendar month.
// Months with zero occurrences are omitted rather than zero-filled.
// An undated input yields an empty series list.
func SkillTrends(rows []SkillRow) []TrendSeries {
	dated := datedRows(rows)
	if len(dated) == 0 {
		return []TrendSeries{}
	}

	top := TopSkills(dated)
	if len(top) > trendSkillsLimit {
		top = top[:trendSkillsLimit]
	}
	tracked := make(map[string]bool, len(top))
	for _, t := range top {
		tracked[t.Skill] = true
	}

	// skill -> month -> count
	buckets := make(map[string]map[string]int)
	for _, r := range dated {
		if !tracked[r.Skill] {
			continue
		}
		month := r.PostedDate.Format("2006-01")
		if buckets[r.Skill] == nil {
			buckets[r.Skill] = make(map[string]int)
		}
		buckets[r.Skill][month]++
	}

	series := make([]TrendSeries, 0, len(top))
	for _, t := range top {
		months := make([]string, 0, len(buckets[t.Skill]))
		for m := range buckets[t.Skill] {
			months = append(months, m)
		}
		sort.Strings(months)

		points := make([]TrendPoint, 0, len(months))
		for _, m := range months {
			points = append(points, TrendPoint{Month: m, Count: buckets[t.Skill][m]})
		}
		series = append(series, TrendSeries{Skill: t.Skill, Points: points})
	}
	return series
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
