package skills

import (
	"regexp"
	"sort"
)

// Lexicon is the fixed vocabulary of known skill terms used for
// free-text extraction when a dataset has no delimited skills column.
// Multi-word terms are matched as whole phrases.
var Lexicon = []string{
	"sql", "python", "excel", "tableau", "power bi", "r", "spark", "hadoop", "aws", "azure",
	"gcp", "machine learning", "deep learning", "statistics", "data analysis", "data visualization",
	"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "etl", "airflow", "snowflake",
	"databricks", "docker", "kubernetes", "java", "javascript", "typescript", "react", "node.js",
	"c#", ".net", "go", "rust", "nlp", "llm", "prompt engineering", "git", "agile", "linux",
}

// lexiconPatterns holds one word-boundary pattern per lexicon term,
// compiled once at startup against the sorted term list so extraction
// order is deterministic.
var lexiconPatterns = compileLexicon()

type lexiconPattern struct {
	term string
	re   *regexp.Regexp
}

func compileLexicon() []lexiconPattern {
	terms := make([]string, len(Lexicon))
	copy(terms, Lexicon)
	sort.Strings(terms)

	patterns := make([]lexiconPattern, 0, len(terms))
	for _, term := range terms {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
		patterns = append(patterns, lexiconPattern{term: term, re: re})
	}
	return patterns
}
