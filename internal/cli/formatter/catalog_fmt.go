package formatter

import (
	"fmt"
	"strings"

	"github.com/branxiety/gameplan-ai/internal/catalog"
)

// FormatCatalog renders every exercise group with its exercises.
func FormatCatalog(c *catalog.Catalog) string {
	var b strings.Builder
	for i, label := range c.Labels() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(label))
		b.WriteString("\n")
		if label == catalog.DefaultLabel {
			b.WriteString(Dim("used when no other group matches") + "\n")
		}
		for _, ex := range c.Lookup(label) {
			b.WriteString("  • " + StyleFg.Render(ex) + "\n")
		}
	}
	return b.String()
}

// FormatCatalogEntry renders a single exercise group. Unknown labels fall
// back to the default group, with a note saying so.
func FormatCatalogEntry(c *catalog.Catalog, label string) string {
	var b strings.Builder
	if !c.Has(label) {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("No %q group — showing %s.", label, catalog.DefaultLabel)))
		b.WriteString("\n\n")
		label = catalog.DefaultLabel
	}
	b.WriteString(Header(label))
	b.WriteString("\n")
	for _, ex := range c.Lookup(label) {
		b.WriteString("  • " + StyleFg.Render(ex) + "\n")
	}
	return b.String()
}
