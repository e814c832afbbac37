package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Description: "Exporting site", Out: &buf}

	r.Start(2)
	r.Update(1, "index.html")
	r.Update(2, "companies/google.html")
	r.Finish()

	assert.Equal(t, "Exporting site: 2 pages\n[1/2] index.html\n[2/2] companies/google.html\nExporting site: done\n", buf.String())
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	r, ok := NewReporter("Exporting site").(*CIReporter)
	if assert.True(t, ok) {
		assert.Equal(t, "Exporting site", r.Description)
	}
}

func TestNewReporterInTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	_, ok := NewReporter("x").(*TerminalReporter)
	assert.True(t, ok)
}
