package parser

import (
	"bufio"
	"bytes"
	"strings"
)

// logicalLine is a cleaned, non-blank line with its original 1-based line
// number retained for error reporting.
type logicalLine struct {
	text string
	num  int
}

// commentStart returns the index of the first comment character in line,
// or -1 if the line carries no comment. Both '#' and ';' introduce a
// comment that extends to end of line, whether standalone or trailing.
func commentStart(line string) int {
	return strings.IndexAny(line, "#;")
}

// preprocess strips comments and whitespace noise from raw file content,
// producing the sequence of logical lines the parser walks. Blank lines
// (after comment stripping) are discarded.
func preprocess(data []byte) ([]logicalLine, error) {
	var lines []logicalLine

	scanner := bufio.NewScanner(bytes.NewReader(data))
	// A single line may span the whole input; the scanner's default
	// token limit would stop the scan at 64KB otherwise.
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), len(data)+1)
	num := 0
	for scanner.Scan() {
		num++
		line := scanner.Text()
		if i := commentStart(line); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, logicalLine{text: line, num: num})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
