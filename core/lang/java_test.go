package lang

import (
	"testing"

	"github.com/relgate/relgate/schema"
	"github.com/stretchr/testify/assert"
)

// TestJavaHandlerComponents extracts classes and methods but never keywords.
func TestJavaHandlerComponents(t *testing.T) {
	content := `import java.util.List;
import java.io.IOException;

public abstract class OrderService {
	public String findAll(String filter) {
		if (filter == null) {
			return null;
		}
		return filter;
	}

	private static int count() {
		return 0;
	}
}
`
	h := &JavaHandler{}
	result := h.Analyze(schema.FileRecord{Name: "OrderService.java", Content: content})

	names := make(map[string]schema.ComponentKind)
	for _, c := range result.Components {
		names[c.Name] = c.Kind
		// Control-flow keywords must never appear as components.
		assert.NotContains(t, []string{"if", "for", "while", "switch", "catch"}, c.Name)
	}
	assert.Equal(t, schema.KindClass, names["OrderService"])
	assert.Equal(t, schema.KindMethod, names["findAll"])
	assert.Equal(t, schema.KindMethod, names["count"])

	assert.ElementsMatch(t, []string{"java.util.List", "java.io.IOException"}, result.Dependencies)
}

// TestJavaHandlerComplexity counts control structures.
func TestJavaHandlerComplexity(t *testing.T) {
	content := `class C {
	void run(int n) {
		for (int i = 0; i < n; i++) {
			if (i % 2 == 0) {
				continue;
			}
		}
		try {
			work();
		} catch (Exception e) {}
	}
}
`
	h := &JavaHandler{}
	result := h.Analyze(schema.FileRecord{Name: "C.java", Content: content})

	// baseline 1 + for + if + catch
	assert.InDelta(t, 4.0, result.Complexity, 0.001)
}
