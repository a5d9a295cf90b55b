package coerce

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

var fenceRe = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*\\n?(.*?)\\n?\\s*```$")

// cleanMarkdownWrapper trims the text and removes a surrounding markdown
// code fence such as ```json ... ```.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if m := fenceRe.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return content
}

var (
	fieldPatternsMu sync.Mutex
	fieldPatterns   = map[string]*regexp.Regexp{}
)

// fieldPattern compiles and caches the pattern for one key. The key may be
// written with or without quotes but must start a word, so "amount" does not
// match inside "tax_amount". valuePattern must hold one capture group.
func fieldPattern(key, valuePattern string) *regexp.Regexp {
	cacheKey := key + "\x00" + valuePattern

	fieldPatternsMu.Lock()
	defer fieldPatternsMu.Unlock()

	if re, ok := fieldPatterns[cacheKey]; ok {
		return re
	}
	re := regexp.MustCompile(`(?:^|[^A-Za-z0-9_])"?` + regexp.QuoteMeta(key) + `"?\s*:\s*` + valuePattern)
	fieldPatterns[cacheKey] = re
	return re
}

// stringField finds `"key": "value"` in text. Only quoted values count, so
// `bucket: leads` does not match.
func stringField(text, key string) (string, bool) {
	m := fieldPattern(key, `"((?:[^"\\]|\\.)*)"`).FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	value, err := strconv.Unquote(`"` + m[1] + `"`)
	if err != nil {
		value = m[1]
	}
	return value, true
}

// numberField finds `"key": 0.95` in text.
func numberField(text, key string) (float64, bool) {
	m := fieldPattern(key, `(-?[0-9]+(?:\.[0-9]+)?|-?\.[0-9]+)`).FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

var (
	dollarRe      = regexp.MustCompile(`\$\s?([0-9][0-9,]*(?:\.[0-9]{1,2})?)`)
	totalDollarRe = regexp.MustCompile(`(?i)\b(?:total|amount due|balance due)\b[^$\n]*\$\s?([0-9][0-9,]*(?:\.[0-9]{1,2})?)`)
)

// dollarAmount returns the first $-prefixed amount in text.
func dollarAmount(text string) (float64, bool) {
	return firstAmount(dollarRe, text)
}

// totalAmount prefers an amount labelled as a total and falls back to the
// first $-prefixed amount.
func totalAmount(text string) (float64, bool) {
	if f, ok := firstAmount(totalDollarRe, text); ok {
		return f, true
	}
	return dollarAmount(text)
}

func firstAmount(re *regexp.Regexp, text string) (float64, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// lenientNumberRe accepts a single amount: an optional sign, an optional $,
// digits with optional thousands commas, and an optional % or currency code.
var lenientNumberRe = regexp.MustCompile(`^\s*(-)?\s*\$?\s*(-)?([0-9]{1,3}(?:,[0-9]{3})*|[0-9]+)(\.[0-9]+)?\s*(%|[A-Za-z]{3})?\s*$`)

// parseLenientNumber reads numbers the way models tend to write them:
// "$2,450.00", "2450 USD", "95%" (read as 0.95). Anything else, such as
// "2 x $500" or "1e3", is not a number.
func parseLenientNumber(s string) (float64, bool) {
	m := lenientNumberRe.FindStringSubmatch(s)
	if m == nil || (m[1] != "" && m[2] != "") {
		return 0, false
	}

	f, err := strconv.ParseFloat(strings.ReplaceAll(m[3], ",", "")+m[4], 64)
	if err != nil {
		return 0, false
	}
	if m[1] != "" || m[2] != "" {
		f = -f
	}
	if m[5] == "%" {
		f /= 100
	}
	return f, true
}

// readNumbers replaces numeric-looking strings under keys with numbers.
// Strings that do not read as numbers are left for the decoder to reject.
func readNumbers(obj map[string]any, keys []string) {
	for _, key := range keys {
		s, ok := obj[key].(string)
		if !ok {
			continue
		}
		if f, ok := parseLenientNumber(s); ok {
			obj[key] = json.Number(strconv.FormatFloat(f, 'f', -1, 64))
		}
	}
}

// nonEmptyLines splits text into trimmed lines, dropping blank ones and
// list markers.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimLeft(line, "-*•"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
