package generation

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Flatten strips stray HTML markup the model sometimes emits so only plain
// text enters the ledger. Plain strings pass through untouched.
func Flatten(s string) string {
	if !strings.ContainsRune(s, '<') {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(strings.Join(strings.Fields(doc.Text()), " "))
}
