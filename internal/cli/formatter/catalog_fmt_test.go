package formatter

import (
	"strings"
	"testing"

	"github.com/branxiety/gameplan-ai/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestFormatCatalog_ShowsEveryGroup(t *testing.T) {
	out := FormatCatalog(catalog.Default())

	for _, label := range catalog.Default().Labels() {
		assert.Contains(t, out, strings.ToUpper(label))
	}
	assert.Contains(t, out, "Bodyweight Squats")
	assert.Contains(t, out, "used when no other group matches")
}

func TestFormatCatalogEntry_KnownLabel(t *testing.T) {
	out := FormatCatalogEntry(catalog.Default(), "core")

	assert.Contains(t, out, "CORE")
	assert.Contains(t, out, "Plank")
	assert.NotContains(t, out, "Burpees")
}

func TestFormatCatalogEntry_UnknownLabelFallsBack(t *testing.T) {
	out := FormatCatalogEntry(catalog.Default(), "yoga")

	assert.Contains(t, out, `No "yoga" group`)
	assert.Contains(t, out, "FULL BODY")
	assert.Contains(t, out, "Burpees")
}
