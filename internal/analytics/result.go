package analytics

// Intent labels carried on result payloads. The fallback label marks a
// top-skills computation that stood in for a date-dependent intent.
const (
	IntentTopSkills         = "top_skills"
	IntentTopSkillsFallback = "top_skills_fallback"
	IntentRisingSkills      = "rising_skills"
	IntentSkillTrends       = "skill_trends"
)

// Result is the tagged union of analytics outputs. Each variant keeps
// the wire shape of the API while staying type-checkable internally.
type Result interface {
	ResultIntent() string
}

// TopSkillsResult ranks skills by occurrence count.
type TopSkillsResult struct {
	Intent string       `json:"intent"`
	Items  []SkillCount `json:"items"`
}

func (r *TopSkillsResult) ResultIntent() string { return r.Intent }

// RisingSkillsResult compares windowed skill counts.
type RisingSkillsResult struct {
	Intent string        `json:"intent"`
	Items  []RisingSkill `json:"items"`
}

func (r *RisingSkillsResult) ResultIntent() string { return r.Intent }

// TrendData wraps the per-skill monthly series.
type TrendData struct {
	Series []TrendSeries `json:"series"`
}

// TrendResult carries monthly trend series for the top skills.
type TrendResult struct {
	Intent string    `json:"intent"`
	Data   TrendData `json:"data"`
}

func (r *TrendResult) ResultIntent() string { return r.Intent }
