package coerce

import (
	"strings"

	"github.com/Veraticus/sevos/internal/model"
)

// BidReasoning is attached to drafts that do not explain themselves.
const BidReasoning = "Generated based on current market conditions and customer requirements"

// BidNextSteps returns the follow-ups attached to drafts that list none.
func BidNextSteps() []string {
	return []string{
		"Send quote to customer",
		"Follow up within 24 hours",
		"Check carrier availability",
		"Prepare load confirmation documents",
	}
}

// BidDraft is the schema for draft-bid replies. The model answers in prose,
// so the usual path is recovery: the whole reply becomes the content and the
// first dollar amount in it becomes the suggested rate, with the default
// reasoning and next steps attached. A reply that is a JSON object with a
// "content" key is taken as is.
func BidDraft() Schema[model.BidDraftResult] {
	return Schema[model.BidDraftResult]{
		Name:     "bid draft",
		Required: []string{"content"},
		Numeric:  []string{"suggestedRate"},
		Recover: func(raw string) map[string]any {
			return map[string]any{"content": strings.TrimSpace(raw)}
		},
		Finalize: func(r *model.BidDraftResult, outcome Outcome) {
			if outcome != Recovered {
				return
			}
			if r.SuggestedRate == nil {
				if rate, ok := dollarAmount(r.Content); ok && rate > 0 {
					r.SuggestedRate = &rate
				}
			}
			if r.Reasoning == "" {
				r.Reasoning = BidReasoning
			}
			if len(r.NextSteps) == 0 {
				r.NextSteps = BidNextSteps()
			}
		},
	}
}
