package lang

import (
	"fmt"
	"testing"

	"github.com/relgate/relgate/schema"
	"github.com/stretchr/testify/assert"
)

// TestRegistryLookup covers registration, absence and overwrite semantics.
func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Get("Python")
	assert.False(t, ok, "empty registry has no handlers")

	r.Register("Python", &PythonHandler{})
	h, ok := r.Get("Python")
	assert.True(t, ok)
	assert.IsType(t, &PythonHandler{}, h)

	// Duplicate register overwrites.
	r.Register("Python", &JavaScriptHandler{})
	h, ok = r.Get("Python")
	assert.True(t, ok)
	assert.IsType(t, &JavaScriptHandler{}, h)
}

// TestDefaultRegistry checks the built-in language set.
func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t,
		[]string{"C", "C++", "Go", "Java", "JavaScript", "Python", "TypeScript"},
		r.Languages())
}

// TestExtractGenericComponents checks the fallback extractor and its cap.
func TestExtractGenericComponents(t *testing.T) {
	t.Run("mixed shapes", func(t *testing.T) {
		content := "def alpha():\n    pass\nfunction beta() {}\n"
		components := ExtractGenericComponents(content)

		names := make([]string, 0, len(components))
		for _, c := range components {
			names = append(names, c.Name)
		}
		assert.Contains(t, names, "alpha")
		assert.Contains(t, names, "beta")
	})

	t.Run("cap at fixed limit", func(t *testing.T) {
		content := ""
		for i := range 30 {
			content += fmt.Sprintf("def fn%d():\n    pass\n", i)
		}
		components := ExtractGenericComponents(content)
		assert.Len(t, components, schema.MaxFallbackComponents)
	})

	t.Run("empty content", func(t *testing.T) {
		assert.Empty(t, ExtractGenericComponents(""))
	})
}

// TestDedupe preserves first-seen order.
func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, dedupe([]string{"b", "a", "b", "c", "a"}))
}
