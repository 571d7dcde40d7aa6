package catalog

import "strings"

// Rule ties a sport label to the request keywords that imply it.
type Rule struct {
	Sport    string
	Keywords []string
}

// Detector scans free-form workout requests for sport mentions. Rules are
// evaluated in declaration order and the first keyword hit wins, so a request
// naming several sports resolves to the earliest rule, not the earliest word.
type Detector struct {
	rules []Rule
}

// NewDetector returns a detector with the built-in sport rules. Every rule's
// sport label has a matching entry in the default catalog.
func NewDetector() *Detector {
	return &Detector{rules: defaultRules}
}

// Detect returns the sport implied by text, or ok=false when no keyword
// matches. Matching is case-insensitive substring search, deterministic for
// a fixed input.
func (d *Detector) Detect(text string) (string, bool) {
	lowered := strings.ToLower(text)
	for _, rule := range d.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lowered, kw) {
				return rule.Sport, true
			}
		}
	}
	return "", false
}

// Rules returns the detector's rules in evaluation order.
func (d *Detector) Rules() []Rule {
	out := make([]Rule, len(d.rules))
	copy(out, d.rules)
	return out
}

// Keyword lists stay lowercase; Detect lowers the input once. "jog" and
// "sprint" cover their -ing/-s forms via substring match. Bare "run" is not
// a keyword, it would fire on "crunches".
var defaultRules = []Rule{
	{Sport: "basketball", Keywords: []string{"basketball", "hoops", "dunk"}},
	{Sport: "soccer", Keywords: []string{"soccer", "football", "futsal"}},
	{Sport: "running", Keywords: []string{"running", "jog", "marathon", "sprint", "5k", "10k"}},
	{Sport: "tennis", Keywords: []string{"tennis", "racket", "racquet"}},
	{Sport: "volleyball", Keywords: []string{"volleyball", "volley", "spike"}},
}
