package verify

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/swift"

	"github.com/pbxplan/pbxplan/api"
	"github.com/pbxplan/pbxplan/internal/pbx"
)

// SyntaxError pinpoints one syntax error in a parsed source file.
// Line and Column are 0-indexed; Error formats them 1-indexed.
type SyntaxError struct {
	Path   string
	Line   uint32
	Column uint32
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: syntax error", e.Path, e.Line+1, e.Column+1)
}

// CheckSyntax parses content as Swift and returns every syntax error
// location. A nil slice means the parse was clean.
func CheckSyntax(ctx context.Context, content []byte, filePath string) ([]SyntaxError, error) {
	return parseErrors(ctx, swift.GetLanguage(), content, filePath)
}

// languageForEntry maps a descriptor to its tree-sitter language.
// Only Swift sources are parsed; everything else passes through
// unvalidated.
func languageForEntry(e api.FileEntry) *sitter.Language {
	if pbx.IsSwiftSource(e.Kind, e.Path) {
		return swift.GetLanguage()
	}
	return nil
}

func parseErrors(ctx context.Context, lang *sitter.Language, content []byte, filePath string) ([]SyntaxError, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filePath, err)
	}

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("parse %s: no syntax tree", filePath)
	}
	if !root.HasError() {
		return nil, nil
	}

	var errs []SyntaxError
	collectErrors(root, filePath, &errs)
	if len(errs) == 0 {
		errs = append(errs, SyntaxError{Path: filePath})
	}
	return errs, nil
}

// collectErrors gathers all ERROR/MISSING node locations. It does not
// recurse into the children of an error node.
func collectErrors(node *sitter.Node, filePath string, errs *[]SyntaxError) {
	if node.IsError() || node.IsMissing() {
		*errs = append(*errs, SyntaxError{
			Path:   filePath,
			Line:   uint32(node.StartPoint().Row),
			Column: uint32(node.StartPoint().Column),
		})
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.HasError() || child.IsError() || child.IsMissing() {
			collectErrors(child, filePath, errs)
		}
	}
}
