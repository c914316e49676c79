package fingerprint

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strings"

	"github.com/emenda-labs/swapcheck/pkg/gomod"
)

// Extract parses the Go source file at path into a SourceFingerprint.
// A read failure or syntax error returns an error and no fingerprint;
// the caller treats the whole comparison as failed for that file.
// The importable probe is best effort and never fails extraction.
func Extract(ctx context.Context, path string) (*SourceFingerprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, data, 0)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	fp := &SourceFingerprint{
		Path:        path,
		Package:     file.Name.Name,
		Functions:   make(map[string]FunctionSig),
		Types:       make(map[string]TypeSig),
		Variables:   make(map[string]VarBinding),
		Imports:     ImportSet{Direct: make(map[string]bool), Named: make(map[string]bool)},
		SyntaxValid: true,
		SizeBytes:   int64(len(data)),
		LineCount:   strings.Count(string(data), "\n") + 1,
	}

	if info, statErr := os.Stat(path); statErr == nil {
		fp.SizeBytes = info.Size()
	}

	// Module labeling is best effort: no enclosing go.mod means no label.
	if module, modErr := gomod.FindEnclosingModule(path); modErr == nil {
		fp.Module = module
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			collectFunc(fset, d, fp)
		case *ast.GenDecl:
			switch d.Tok {
			case token.IMPORT:
				collectImports(d, fp)
			case token.TYPE:
				collectTypes(fset, d, fp)
			case token.VAR:
				collectBindings(fset, d, fp, false)
			case token.CONST:
				collectBindings(fset, d, fp, true)
			}
		}
	}

	fp.Importable = probeImportable(ctx, data, file, fset)

	return fp, nil
}

// collectFunc records a top-level function, or attaches a receiver method
// to its type's method set. Methods on types declared elsewhere still get
// a type entry so the method is visible to the comparison.
func collectFunc(fset *token.FileSet, funcDecl *ast.FuncDecl, fp *SourceFingerprint) {
	if funcDecl.Name == nil {
		return
	}

	params, variadic, results := funcTypeParts(funcDecl.Type)

	if funcDecl.Recv == nil {
		fp.Functions[funcDecl.Name.Name] = FunctionSig{
			Name:        funcDecl.Name.Name,
			Line:        fset.Position(funcDecl.Pos()).Line,
			ParamNames:  paramNames(funcDecl.Type),
			ParamTypes:  params,
			Variadic:    variadic,
			ResultTypes: results,
		}
		return
	}

	recvName := receiverTypeName(funcDecl.Recv)
	if recvName == "" {
		return
	}

	sig, ok := fp.Types[recvName]
	if !ok {
		sig = TypeSig{
			Name:    recvName,
			Line:    fset.Position(funcDecl.Pos()).Line,
			Form:    "defined",
			Methods: make(map[string]MethodSig),
		}
	}
	if sig.Methods == nil {
		sig.Methods = make(map[string]MethodSig)
	}
	sig.Methods[funcDecl.Name.Name] = MethodSig{
		Name:        funcDecl.Name.Name,
		ParamTypes:  params,
		ResultTypes: results,
	}
	fp.Types[recvName] = sig
}

// collectTypes records named type declarations. Struct embedding and
// interface embedding populate the ordered Embedded list; interface
// methods populate the method set.
func collectTypes(fset *token.FileSet, genDecl *ast.GenDecl, fp *SourceFingerprint) {
	for _, spec := range genDecl.Specs {
		typeSpec, ok := spec.(*ast.TypeSpec)
		if !ok || typeSpec.Name == nil {
			continue
		}

		name := typeSpec.Name.Name
		sig := TypeSig{
			Name: name,
			Line: fset.Position(typeSpec.Pos()).Line,
			Form: "defined",
		}
		// Receiver methods may have been collected before the declaration.
		if prev, exists := fp.Types[name]; exists {
			sig.Methods = prev.Methods
		}
		if sig.Methods == nil {
			sig.Methods = make(map[string]MethodSig)
		}

		if typeSpec.Assign.IsValid() {
			sig.Form = "alias"
			sig.Embedded = []string{renderTypeExpr(typeSpec.Type)}
			fp.Types[name] = sig
			continue
		}

		switch t := typeSpec.Type.(type) {
		case *ast.StructType:
			sig.Form = "struct"
			if t.Fields != nil {
				for _, field := range t.Fields.List {
					if len(field.Names) == 0 {
						sig.Embedded = append(sig.Embedded, renderTypeExpr(field.Type))
					}
				}
			}

		case *ast.InterfaceType:
			sig.Form = "interface"
			if t.Methods != nil {
				for _, method := range t.Methods.List {
					if len(method.Names) == 0 {
						sig.Embedded = append(sig.Embedded, renderTypeExpr(method.Type))
						continue
					}
					funcType, isFunc := method.Type.(*ast.FuncType)
					if !isFunc {
						continue
					}
					params, _, results := funcTypeParts(funcType)
					mName := method.Names[0].Name
					sig.Methods[mName] = MethodSig{
						Name:        mName,
						ParamTypes:  params,
						ResultTypes: results,
					}
				}
			}

		default:
			sig.Embedded = []string{renderTypeExpr(typeSpec.Type)}
		}

		fp.Types[name] = sig
	}
}

// collectBindings records file-level var and const specs with simple name
// targets. The initializer is kept as reconstructed source text; specs in
// a const block that inherit the previous expression record no value.
func collectBindings(fset *token.FileSet, genDecl *ast.GenDecl, fp *SourceFingerprint, isConst bool) {
	for _, spec := range genDecl.Specs {
		valSpec, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}
		for i, name := range valSpec.Names {
			if name.Name == "_" {
				continue
			}
			binding := VarBinding{
				Name:     name.Name,
				Line:     fset.Position(name.Pos()).Line,
				Const:    isConst,
				TypeText: renderTypeExpr(valSpec.Type),
			}
			if i < len(valSpec.Values) {
				binding.ValueText = renderValueExpr(valSpec.Values[i])
				binding.Tag = valueTypeTag(valSpec.Values[i])
			}
			fp.Variables[name.Name] = binding
		}
	}
}

// collectImports records plain path imports in Direct and aliased, dot or
// blank imports in Named as "alias=path".
func collectImports(genDecl *ast.GenDecl, fp *SourceFingerprint) {
	for _, spec := range genDecl.Specs {
		importSpec, ok := spec.(*ast.ImportSpec)
		if !ok || importSpec.Path == nil {
			continue
		}
		path := strings.Trim(importSpec.Path.Value, `"`)
		if importSpec.Name == nil {
			fp.Imports.Direct[path] = true
			continue
		}
		fp.Imports.Named[importSpec.Name.Name+"="+path] = true
	}
}

// receiverTypeName extracts the base type name from a method receiver,
// stripping pointers and type parameters.
func receiverTypeName(recv *ast.FieldList) string {
	if recv == nil || len(recv.List) == 0 {
		return ""
	}

	expr := recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if idx, ok := expr.(*ast.IndexExpr); ok {
		expr = idx.X
	}
	if idx, ok := expr.(*ast.IndexListExpr); ok {
		expr = idx.X
	}

	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}
