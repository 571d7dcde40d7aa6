package formatter

import "testing"

import "github.com/stretchr/testify/assert"

func TestFormatShellWelcome(t *testing.T) {
	out := FormatShellWelcome()
	assert.Contains(t, out, "gameplan")
	assert.Contains(t, out, "set focus legs")
	assert.Contains(t, out, "Tab for autocomplete")
}

func TestFormatShellHelp(t *testing.T) {
	out := FormatShellHelp()
	assert.Contains(t, out, "COMMANDS")
	assert.Contains(t, out, "plan <request>")
	assert.Contains(t, out, "set minutes <n>")
	assert.Contains(t, out, "detect <text>")
	assert.Contains(t, out, "exit / quit")
}
