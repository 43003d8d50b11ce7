package schema

import (
	"encoding/json"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/stoewer/go-strcase"
)

// reflector configures the invopop reflector for morph tool inputs:
// snake_case keys and names, expanded top-level structs, and additional
// properties allowed since tools ignore unknown request fields.
type reflector struct {
	*jsonschema.Reflector
}

func newReflector() *reflector {
	r := &jsonschema.Reflector{
		KeyNamer: strcase.SnakeCase,
		Namer: func(t reflect.Type) string {
			return strcase.SnakeCase(t.Name())
		},
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}

	return &reflector{Reflector: r}
}

// Generate reflects a JSON schema for v, reading doc comments out of source
// (the embedded Go file declaring v's type) so they become property
// descriptions. The generated schema is normalized through the JSON type.
func Generate(v interface{}, source []byte) (JSON, error) {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	r := newReflector()
	if len(source) > 0 {
		if err := r.extractGoComments(t.PkgPath(), source); err != nil {
			return JSON{}, fmt.Errorf("failed to extract type comments: %w", err)
		}
	}

	raw, err := json.Marshal(r.Reflect(v))
	if err != nil {
		return JSON{}, fmt.Errorf("failed to encode generated schema: %w", err)
	}

	var out JSON
	if err := json.Unmarshal(raw, &out); err != nil {
		return JSON{}, fmt.Errorf("failed to decode generated schema: %w", err)
	}

	return out, nil
}

// extractGoComments parses source and records doc comments for exported
// types and fields under the keys the reflector looks up
// (pkg.Type and pkg.Type.Field).
func (r *reflector) extractGoComments(pkg string, source []byte) error {
	commentMap := make(map[string]string)
	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "types.go", source, parser.ParseComments)
	if err != nil {
		return err
	}

	gtxt := ""
	typ := ""
	ast.Inspect(f, func(n ast.Node) bool {
		switch x := n.(type) {
		case *ast.TypeSpec:
			typ = x.Name.String()
			if !ast.IsExported(typ) {
				typ = ""
			} else {
				txt := x.Doc.Text()
				if txt == "" && gtxt != "" {
					txt = gtxt
					gtxt = ""
				}

				commentMap[fmt.Sprintf("%s.%s", pkg, typ)] = strings.TrimSpace(txt)
			}
		case *ast.Field:
			txt := x.Doc.Text()
			if txt == "" {
				txt = x.Comment.Text()
			}
			if typ != "" && txt != "" {
				for _, n := range x.Names {
					if ast.IsExported(n.String()) {
						k := fmt.Sprintf("%s.%s.%s", pkg, typ, n)
						commentMap[k] = strings.TrimSpace(txt)
					}
				}
			}
		case *ast.GenDecl:
			// remember for the next type
			gtxt = x.Doc.Text()
		}
		return true
	})

	r.CommentMap = commentMap

	return nil
}
