package parser

import (
	"fmt"
	"os"
	"strings"

	"mercator-hq/profiles/pkg/profiles/ast"
	profErrors "mercator-hq/profiles/pkg/profiles/errors"
)

// Parser parses profile configuration files into Documents.
// It handles comment stripping, whitespace normalization, and structural
// validation (headers, key-value pairs, duplicates).
type Parser struct {
	maxFileSize  int64 // Maximum file size in bytes (default: 1MB)
	preserveCase bool  // Keep original casing of profile names and keys
}

// NewParser creates a new parser with default configuration.
func NewParser() *Parser {
	return &Parser{
		maxFileSize:  1 * 1024 * 1024, // 1MB
		preserveCase: false,
	}
}

// WithMaxFileSize sets the maximum file size limit.
func (p *Parser) WithMaxFileSize(size int64) *Parser {
	p.maxFileSize = size
	return p
}

// WithPreserveCase controls case preservation. When disabled (the
// default), profile names and keys are lowercased at parse time; values
// are never case-altered.
func (p *Parser) WithPreserveCase(preserve bool) *Parser {
	p.preserveCase = preserve
	return p
}

// PreserveCase reports whether the parser keeps original casing.
func (p *Parser) PreserveCase() bool {
	return p.preserveCase
}

// Parse parses the configuration file at the given path and returns the
// document. It returns an error if the file is missing or unreadable, or
// if any line is structurally invalid. On error no partial document is
// returned.
func (p *Parser) Parse(path string) (*ast.Document, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, profErrors.NewFileMissing(path, nil)
		}
		return nil, profErrors.NewFileMissing(path, err)
	}

	if fileInfo.Size() > p.maxFileSize {
		return nil, &profErrors.Error{
			Kind:       profErrors.KindFileMissing,
			Message:    "config file exceeds maximum size",
			Location:   ast.Location{File: path},
			Suggestion: "raise the limit with WithMaxFileSize",
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, profErrors.NewFileMissing(path, err)
	}

	return p.ParseBytes(data, path)
}

// ParseBytes parses configuration content from a byte slice.
// This is useful for testing or parsing configuration held in memory.
// The source name is used in error locations in place of a file path.
func (p *Parser) ParseBytes(data []byte, source string) (*ast.Document, error) {
	lines, err := preprocess(data)
	if err != nil {
		return nil, &profErrors.Error{
			Kind:     profErrors.KindMalformedLine,
			Message:  fmt.Sprintf("failed to scan input: %v", err),
			Location: ast.Location{File: source},
		}
	}

	doc := ast.NewDocument(source)

	var current *ast.Profile
	for _, line := range lines {
		loc := ast.Location{File: source, Line: line.num}

		// Header?
		if strings.HasPrefix(line.text, "[") && strings.HasSuffix(line.text, "]") {
			name := p.canonical(line.text[1 : len(line.text)-1])
			if name == "" {
				return nil, profErrors.NewMalformedLine(line.text, loc)
			}
			current = doc.GetOrCreate(name, loc)
			continue
		}

		// Key-value?
		if i := strings.Index(line.text, "="); i >= 0 {
			key := p.canonical(line.text[:i])
			value := strings.TrimSpace(line.text[i+1:])
			if key == "" {
				return nil, profErrors.NewMalformedLine(line.text, loc)
			}
			if current == nil {
				return nil, profErrors.NewOrphanKey(key, loc)
			}
			if !current.Append(key, value, loc) {
				return nil, profErrors.NewDuplicateKey(current.Name, key, loc)
			}
			continue
		}

		return nil, profErrors.NewMalformedLine(line.text, loc)
	}

	return doc, nil
}

// canonical applies the parser's normalization policy to a profile name
// or key: surrounding whitespace is trimmed, and casing is lowered unless
// case preservation is enabled. Stored names are canonical; lookups never
// re-normalize.
func (p *Parser) canonical(s string) string {
	s = strings.TrimSpace(s)
	if !p.preserveCase {
		s = strings.ToLower(s)
	}
	return s
}
