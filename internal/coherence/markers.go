package coherence

import "regexp"

// confusionMarkers are verbal expressions of confusion or memory lapse.
// Compiled once at package init; matching is case-insensitive and
// unanchored. Order matters: the first matching marker is the one
// reported for an item.
var confusionMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)i don'?t know`),
	regexp.MustCompile(`(?i)not sure`),
	regexp.MustCompile(`(?i)maybe`),
	regexp.MustCompile(`(?i)confused`),
	regexp.MustCompile(`(?i)forgot`),
	regexp.MustCompile(`(?i)can'?t remember`),
	regexp.MustCompile(`(?i)what was`),
	regexp.MustCompile(`(?i)um+`),
	regexp.MustCompile(`(?i)uh+`),
	regexp.MustCompile(`(?i)hmm+`),
}

// ConfusionMarker returns the pattern of the first confusion marker found
// in text, or ("", false) when none matches.
func ConfusionMarker(text string) (string, bool) {
	for _, re := range confusionMarkers {
		if re.MatchString(text) {
			return re.String(), true
		}
	}
	return "", false
}

// HasConfusion reports whether text contains any confusion marker.
func HasConfusion(text string) bool {
	_, ok := ConfusionMarker(text)
	return ok
}
