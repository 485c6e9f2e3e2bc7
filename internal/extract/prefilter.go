package extract

import "strings"

// quoteKeywords is the fixed set that gates expensive extraction. A miss
// only costs a skipped email; a false positive costs one model call.
var quoteKeywords = []string{
	"quote",
	"quotation",
	"proposal",
	"estimate",
	"pricing",
	"proforma",
	"invoice",
}

// ShouldProcess reports whether the message plausibly contains a quote,
// matching any keyword as a case-insensitive substring of subject and body.
func ShouldProcess(subject, bodyText string) bool {
	text := strings.ToLower(subject + "\n" + bodyText)
	for _, k := range quoteKeywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
