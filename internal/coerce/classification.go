package coerce

import (
	"strings"

	"github.com/Veraticus/sevos/internal/model"
)

// Defaults used when a classification reply is not valid JSON.
const (
	FallbackBucket     = model.BucketOther
	FallbackPriority   = model.PriorityMedium
	FallbackConfidence = 0.8
	FallbackReasoning  = "Classified using fallback parsing"
)

// Classification is the schema for classify replies.
//
// Recovered fields: quoted "bucket", "intent", "priority" and "reasoning"
// values and a numeric "confidence". Missing ones default to other, medium,
// 0.8 and a fixed reasoning note. A recovered value outside its enum still
// fails validation.
func Classification() Schema[model.ClassificationResult] {
	return Schema[model.ClassificationResult]{
		Name:     "classification",
		Required: []string{"bucket", "priority", "confidence"},
		Numeric:  []string{"confidence"},
		Embedded: true,
		Recover:  recoverClassification,
		Finalize: func(r *model.ClassificationResult, _ Outcome) {
			r.Bucket = model.Bucket(normalizeEnum(string(r.Bucket)))
			r.Intent = model.Intent(normalizeEnum(string(r.Intent)))
			r.Priority = model.Priority(normalizeEnum(string(r.Priority)))
			r.Reasoning = strings.TrimSpace(r.Reasoning)
		},
	}
}

func recoverClassification(raw string) map[string]any {
	obj := map[string]any{
		"bucket":     string(FallbackBucket),
		"priority":   string(FallbackPriority),
		"confidence": FallbackConfidence,
		"reasoning":  FallbackReasoning,
	}
	for _, key := range []string{"bucket", "intent", "priority", "reasoning"} {
		if v, ok := stringField(raw, key); ok {
			obj[key] = v
		}
	}
	if f, ok := numberField(raw, "confidence"); ok {
		obj["confidence"] = f
	}
	return obj
}

// normalizeEnum lowercases and snake-cases an enum literal, so "Carrier
// Updates" reads as carrier_updates. It never maps to a different literal.
func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}), "_")
}
