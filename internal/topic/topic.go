// Package topic classifies free-text capture items into a fixed set of
// topic categories via keyword scoring.
package topic

import "strings"

// Label is a topic category assigned to a text item.
type Label string

const (
	Work      Label = "work"
	Personal  Label = "personal"
	Financial Label = "financial"
	Learning  Label = "learning"
	Admin     Label = "admin"
	Tech      Label = "tech"
	Other     Label = "other"
)

// keywordEntry pairs a label with its keyword list. The table is an ordered
// slice, not a map: ties resolve to the first label reaching the maximum
// count, so iteration order must be stable.
type keywordEntry struct {
	label    Label
	keywords []string
}

var keywordTable = []keywordEntry{
	{Work, []string{"project", "task", "meeting", "deadline", "boss", "client", "email", "report"}},
	{Personal, []string{"home", "family", "friend", "personal", "hobby", "exercise", "health"}},
	{Financial, []string{"money", "pay", "bill", "budget", "expense", "save", "cost"}},
	{Learning, []string{"learn", "study", "course", "book", "skill", "practice", "read"}},
	{Admin, []string{"appointment", "schedule", "calendar", "plan", "organize", "clean"}},
	{Tech, []string{"computer", "software", "app", "phone", "website", "code", "system"}},
}

// Categorize assigns a topic label to text by counting keyword hits per
// category. Each keyword contributes at most 1 regardless of how often it
// repeats; matching is substring, not token-boundary. Returns Other when
// nothing matches. Always returns a label; never fails.
func Categorize(text string) Label {
	lower := strings.ToLower(text)

	best := Other
	bestCount := 0
	for _, entry := range keywordTable {
		count := 0
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				count++
			}
		}
		if count > bestCount {
			best = entry.label
			bestCount = count
		}
	}

	return best
}
