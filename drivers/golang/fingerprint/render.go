package fingerprint

import (
	"fmt"
	"go/ast"
	"strings"
)

// renderTypeExpr converts a type expression to its canonical string form.
// This is the single source of truth for type rendering across the package.
func renderTypeExpr(expr ast.Expr) string {
	if expr == nil {
		return ""
	}

	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name

	case *ast.SelectorExpr:
		return renderTypeExpr(e.X) + "." + e.Sel.Name

	case *ast.StarExpr:
		return "*" + renderTypeExpr(e.X)

	case *ast.ArrayType:
		if e.Len != nil {
			return fmt.Sprintf("[%s]%s", renderValueExpr(e.Len), renderTypeExpr(e.Elt))
		}
		return "[]" + renderTypeExpr(e.Elt)

	case *ast.MapType:
		return "map[" + renderTypeExpr(e.Key) + "]" + renderTypeExpr(e.Value)

	case *ast.InterfaceType:
		if e.Methods == nil || len(e.Methods.List) == 0 {
			return "interface{}"
		}
		return "interface{...}"

	case *ast.FuncType:
		params, variadic, results := funcTypeParts(e)
		return "func" + renderSignature(params, variadic, results)

	case *ast.Ellipsis:
		return "..." + renderTypeExpr(e.Elt)

	case *ast.ChanType:
		switch e.Dir {
		case ast.RECV:
			return "<-chan " + renderTypeExpr(e.Value)
		case ast.SEND:
			return "chan<- " + renderTypeExpr(e.Value)
		default:
			return "chan " + renderTypeExpr(e.Value)
		}

	case *ast.StructType:
		return "struct{...}"

	case *ast.IndexExpr:
		return renderTypeExpr(e.X) + "[" + renderTypeExpr(e.Index) + "]"

	case *ast.IndexListExpr:
		indices := make([]string, len(e.Indices))
		for i, idx := range e.Indices {
			indices[i] = renderTypeExpr(idx)
		}
		return renderTypeExpr(e.X) + "[" + strings.Join(indices, ", ") + "]"

	case *ast.ParenExpr:
		return "(" + renderTypeExpr(e.X) + ")"

	case *ast.BasicLit:
		return e.Value

	default:
		return "unknown"
	}
}

// funcTypeParts extracts ordered parameter types, the variadic marker and
// ordered result types from a function type. Fields declaring several
// names (a, b int) expand to one entry per name.
func funcTypeParts(funcType *ast.FuncType) (params []string, variadic bool, results []string) {
	if funcType == nil {
		return nil, false, nil
	}

	if funcType.Params != nil {
		for _, field := range funcType.Params.List {
			typeStr := renderTypeExpr(field.Type)
			if _, ok := field.Type.(*ast.Ellipsis); ok {
				variadic = true
			}
			if len(field.Names) == 0 {
				params = append(params, typeStr)
				continue
			}
			for range field.Names {
				params = append(params, typeStr)
			}
		}
	}

	if funcType.Results != nil {
		for _, field := range funcType.Results.List {
			typeStr := renderTypeExpr(field.Type)
			if len(field.Names) == 0 {
				results = append(results, typeStr)
				continue
			}
			for range field.Names {
				results = append(results, typeStr)
			}
		}
	}

	return params, variadic, results
}

// paramNames returns one entry per declared parameter, empty strings for
// unnamed parameters.
func paramNames(funcType *ast.FuncType) []string {
	if funcType == nil || funcType.Params == nil {
		return nil
	}
	var names []string
	for _, field := range funcType.Params.List {
		if len(field.Names) == 0 {
			names = append(names, "")
			continue
		}
		for _, name := range field.Names {
			names = append(names, name.Name)
		}
	}
	return names
}

// renderSignature renders parameter and result type lists to the
// canonical form "(T1, T2) R" or "(T1) (R1, R2)".
func renderSignature(params []string, variadic bool, results []string) string {
	_ = variadic // the ellipsis is already part of the last param type
	paramStr := "(" + strings.Join(params, ", ") + ")"

	switch len(results) {
	case 0:
		return paramStr
	case 1:
		return paramStr + " " + results[0]
	default:
		return paramStr + " (" + strings.Join(results, ", ") + ")"
	}
}

// renderValueExpr reconstructs the source text of an initializer
// expression. Expressions outside the supported forms collapse to the
// ComplexExpr sentinel so that textual comparison stays well defined.
func renderValueExpr(expr ast.Expr) string {
	if expr == nil {
		return ""
	}

	switch e := expr.(type) {
	case *ast.BasicLit:
		return e.Value

	case *ast.Ident:
		return e.Name

	case *ast.SelectorExpr:
		return renderValueExpr(e.X) + "." + e.Sel.Name

	case *ast.UnaryExpr:
		return e.Op.String() + renderValueExpr(e.X)

	case *ast.BinaryExpr:
		return renderValueExpr(e.X) + " " + e.Op.String() + " " + renderValueExpr(e.Y)

	case *ast.ParenExpr:
		return "(" + renderValueExpr(e.X) + ")"

	case *ast.CallExpr:
		args := make([]string, len(e.Args))
		for i, arg := range e.Args {
			args[i] = renderValueExpr(arg)
		}
		return renderValueExpr(e.Fun) + "(" + strings.Join(args, ", ") + ")"

	case *ast.CompositeLit:
		elts := make([]string, len(e.Elts))
		for i, elt := range e.Elts {
			elts[i] = renderValueExpr(elt)
		}
		return renderTypeExpr(e.Type) + "{" + strings.Join(elts, ", ") + "}"

	case *ast.KeyValueExpr:
		return renderValueExpr(e.Key) + ": " + renderValueExpr(e.Value)

	case *ast.StarExpr:
		return "*" + renderValueExpr(e.X)

	case *ast.IndexExpr:
		return renderValueExpr(e.X) + "[" + renderValueExpr(e.Index) + "]"

	case *ast.FuncLit:
		return ComplexExpr

	default:
		return ComplexExpr
	}
}

// valueTypeTag returns a coarse static tag for an initializer expression,
// used only as descriptive metadata in variable bindings.
func valueTypeTag(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.BasicLit:
		return strings.ToLower(e.Kind.String())
	case *ast.CompositeLit:
		return "composite"
	case *ast.FuncLit:
		return "func"
	case *ast.Ident:
		return "ident"
	case *ast.CallExpr:
		return "call"
	case *ast.BinaryExpr, *ast.UnaryExpr:
		return "expr"
	case nil:
		return ""
	default:
		return "complex"
	}
}
