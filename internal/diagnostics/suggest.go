package diagnostics

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Suggest returns up to max candidates that fuzzily match name, best first.
// Used to attach "did you mean" hints to unknown-name errors. Candidates are
// pre-sorted so equal scores resolve deterministically.
func Suggest(name string, candidates []string, max int) []string {
	if len(candidates) == 0 || max <= 0 {
		return nil
	}
	sorted := make([]string, len(candidates))
	copy(sorted, candidates)
	sort.Strings(sorted)

	matches := fuzzy.Find(name, sorted)
	if len(matches) > max {
		matches = matches[:max]
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}

// DidYouMean formats suggestions as a message tail, or returns "" when there
// is nothing useful to say.
func DidYouMean(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	quoted := make([]string, len(suggestions))
	for i, s := range suggestions {
		quoted[i] = "'" + s + "'"
	}
	return " (혹시: " + strings.Join(quoted, ", ") + "?)"
}
