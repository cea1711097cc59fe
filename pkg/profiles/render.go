package profiles

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Render returns the current configuration as deterministic formatted
// text: each profile as "[name]" followed by its "key = value" lines in
// insertion order, with a single blank line between profiles. Comments
// from the source file are not preserved. The result carries no leading
// or trailing whitespace.
func (h *Handler) Render() string {
	var sb strings.Builder

	for i, p := range h.Document().Profiles() {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("[" + p.Name + "]\n")
		for _, e := range p.Entries() {
			sb.WriteString(e.Key + " = " + e.Value + "\n")
		}
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// ExportYAML renders the current configuration as YAML, preserving
// profile and key insertion order. The output is produced in memory only;
// the handler never writes to disk.
func (h *Handler) ExportYAML() ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, p := range h.Document().Profiles() {
		profileNode := &yaml.Node{Kind: yaml.MappingNode}
		for _, e := range p.Entries() {
			profileNode.Content = append(profileNode.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: e.Key},
				&yaml.Node{Kind: yaml.ScalarNode, Value: e.Value},
			)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: p.Name},
			profileNode,
		)
	}

	return yaml.Marshal(root)
}
