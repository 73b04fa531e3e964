package contract

import (
	"testing"

	"github.com/relgate/relgate/schema"
	"github.com/stretchr/testify/assert"
)

// TestShouldIgnore covers prefixes, extensions, globs and substrings.
func TestShouldIgnore(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		excludes []string
		want     bool
	}{
		{"empty excludes", "main.go", nil, false},
		{"directory prefix", "vendor/lib.go", []string{"vendor/"}, true},
		{"nested directory", "app/node_modules/x.js", []string{"node_modules/"}, true},
		{"extension", "bundle.min.js", []string{".min.js"}, true},
		{"glob on base", "static/app.min.css", []string{"*.min.css"}, true},
		{"substring", "some/dist/file.js", []string{"dist/"}, true},
		{"no match", "core/pipeline.go", []string{"vendor/", ".min.js"}, false},
		{"blank pattern skipped", "main.go", []string{"  ", ""}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldIgnore(tt.path, tt.excludes))
		})
	}
}

// TestTruncatePath preserves the tail of long paths.
func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "short.go", TruncatePath("short.go", 20))
	assert.Equal(t, "...e/really/deep/file.go", TruncatePath("some/路徑/quite/really/deep/file.go", 24))
	// maxWidth too small to truncate safely: return unchanged.
	assert.Equal(t, "abcdef", TruncatePath("abcdef", 3))
}

// TestParseBoolString accepts the documented spellings only.
func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

// TestGateColorLabel embeds the gate text in the colored label.
func TestGateColorLabel(t *testing.T) {
	for _, gate := range []schema.GateDecision{schema.GatePass, schema.GateWarn, schema.GateBlock} {
		assert.Contains(t, GateColorLabel(gate), string(gate))
	}
}

// TestPriorityColorLabel embeds the priority text in the colored label.
func TestPriorityColorLabel(t *testing.T) {
	for _, p := range []schema.RiskPriority{
		schema.PriorityCritical, schema.PriorityHigh, schema.PriorityMedium, schema.PriorityLow,
	} {
		assert.Contains(t, PriorityColorLabel(p), string(p))
	}
}
