package coerce

import (
	"strings"

	"github.com/Veraticus/sevos/internal/model"
)

// Defaults used when a summary reply is not valid JSON.
const (
	FallbackSummary = "Summary not available"
	FallbackUrgency = model.PriorityMedium
)

// Summary is the schema for summarize replies.
//
// Recovered fields: quoted "summary" and "urgency" values. When the reply
// has no "summary" key it is read as plain text: the first line is the
// summary and the next three are key points. Urgency defaults to medium.
func Summary() Schema[model.SummaryResult] {
	return Schema[model.SummaryResult]{
		Name:     "summary",
		Required: []string{"summary", "keyPoints", "urgency"},
		Embedded: true,
		Recover:  recoverSummary,
		Finalize: func(s *model.SummaryResult, _ Outcome) {
			s.Summary = strings.TrimSpace(s.Summary)
			s.Urgency = model.Priority(normalizeEnum(string(s.Urgency)))
			if s.KeyPoints == nil {
				s.KeyPoints = []string{}
			}
		},
	}
}

func recoverSummary(raw string) map[string]any {
	obj := map[string]any{
		"summary":     FallbackSummary,
		"keyPoints":   []any{},
		"actionItems": []any{},
		"urgency":     string(FallbackUrgency),
	}
	if v, ok := stringField(raw, "urgency"); ok {
		obj["urgency"] = v
	}

	if v, ok := stringField(raw, "summary"); ok {
		obj["summary"] = v
		return obj
	}

	lines := nonEmptyLines(cleanMarkdownWrapper(raw))
	if len(lines) == 0 {
		return obj
	}
	obj["summary"] = lines[0]

	rest := lines[1:]
	if len(rest) > 3 {
		rest = rest[:3]
	}
	points := make([]any, len(rest))
	for i, line := range rest {
		points[i] = line
	}
	obj["keyPoints"] = points
	return obj
}
