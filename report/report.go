// Package report renders wrapper chains as diagnostic reports.
//
// A report records, for every node from the chain head down to the
// underlying instance, the node's concrete type and the capability roles it
// plays (wrapper, adapter, attachable). Reports encode to YAML for CLI and
// log output; cmd/chainspect is the reference consumer.
package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"wrapscope"
)

// Node describes a single node on a wrapper chain.
type Node struct {
	// Type is the node's concrete Go type.
	Type string `yaml:"type"`
	// Roles lists the capability contracts the node satisfies. The terminal
	// underlying instance usually has none.
	Roles []string `yaml:"roles,omitempty"`
	// Adaptee is the concrete type of the adapted wrapper, for adapter nodes.
	Adaptee string `yaml:"adaptee,omitempty"`
}

// Report describes a wrapper chain from its head to the underlying instance.
type Report struct {
	Depth int    `yaml:"depth"`
	Nodes []Node `yaml:"nodes"`
}

// Build walks the chain headed by head and records every node. Walking
// failures (nil head, cyclic chain) are returned unchanged apart from
// context.
func Build(head any) (*Report, error) {
	r := &Report{}
	_, err := wrapscope.Travel(head, func(node any) bool {
		n := Node{Type: fmt.Sprintf("%T", node)}
		if _, ok := node.(wrapscope.Wrapper); ok {
			n.Roles = append(n.Roles, "wrapper")
		}
		if wa, ok := node.(wrapscope.WrapperAdapter); ok {
			n.Roles = append(n.Roles, "adapter")
			n.Adaptee = fmt.Sprintf("%T", wa.Adaptee())
		}
		if _, ok := node.(wrapscope.Attachable); ok {
			n.Roles = append(n.Roles, "attachable")
		}
		r.Nodes = append(r.Nodes, n)
		return false
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk wrapper chain: %w", err)
	}
	r.Depth = len(r.Nodes)
	return r, nil
}

// WriteYAML encodes the report to w as YAML.
func (r *Report) WriteYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}
