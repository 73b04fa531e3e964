package lang

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/relgate/relgate/schema"
)

// GoHandler analyzes Go source with a full syntax walk. Go is the one
// language family with first-class grammar support here, so components,
// imports and complexity all come from the AST rather than patterns.
type GoHandler struct{}

var _ Handler = &GoHandler{} // Compile-time check

// Analyze parses the file and walks the syntax tree. A file that fails to
// parse yields an empty Analysis with complexity 0 instead of an error.
func (h *GoHandler) Analyze(file schema.FileRecord) Analysis {
	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, file.Name, file.Content, 0)
	if err != nil {
		return Analysis{}
	}

	return Analysis{
		Components:   h.extractComponents(fset, parsed),
		Dependencies: h.extractDependencies(parsed),
		Complexity:   h.calculateComplexity(parsed),
	}
}

// extractComponents collects function, method and struct declarations with
// their line spans.
func (h *GoHandler) extractComponents(fset *token.FileSet, parsed *ast.File) []schema.Component {
	var components []schema.Component

	lineSpan := func(node ast.Node) int {
		start := fset.Position(node.Pos()).Line
		end := fset.Position(node.End()).Line
		return end - start + 1
	}

	for _, decl := range parsed.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			kind := schema.KindFunction
			if d.Recv != nil {
				kind = schema.KindMethod
			}
			components = append(components, schema.Component{
				Name:  d.Name.Name,
				Kind:  kind,
				Lines: lineSpan(d),
			})
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				if _, isStruct := typeSpec.Type.(*ast.StructType); isStruct {
					components = append(components, schema.Component{
						Name:  typeSpec.Name.Name,
						Kind:  schema.KindStruct,
						Lines: lineSpan(typeSpec),
					})
				}
			}
		}
	}

	return components
}

// extractDependencies returns the deduplicated import paths.
func (h *GoHandler) extractDependencies(parsed *ast.File) []string {
	deps := make([]string, 0, len(parsed.Imports))
	for _, imp := range parsed.Imports {
		deps = append(deps, strings.Trim(imp.Path.Value, `"`))
	}
	return dedupe(deps)
}

// calculateComplexity counts decision points across the whole file: baseline
// 1, +1 per conditional, loop or select/switch node, and +1 per boolean
// short-circuit operator (an N-operand chain parses into N-1 binary nodes).
func (h *GoHandler) calculateComplexity(parsed *ast.File) float64 {
	complexity := 1.0

	ast.Inspect(parsed, func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.IfStmt, *ast.ForStmt, *ast.RangeStmt,
			*ast.SwitchStmt, *ast.TypeSwitchStmt, *ast.SelectStmt:
			complexity++
		case *ast.BinaryExpr:
			if n.Op == token.LAND || n.Op == token.LOR {
				complexity++
			}
		}
		return true
	})

	return complexity
}
