package shape

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Variant values for Node.
const (
	VariantLeaf    = "leaf"
	VariantDiagram = "diagram"
)

// Node describes one model node's shape: a leaf, or a diagram whose
// children are themselves shapes. Name is an optional label for
// diagnostics and carries no structural meaning.
type Node struct {
	Name     string  `yaml:"name,omitempty"`
	Variant  string  `yaml:"variant"`
	Children []*Node `yaml:"children,omitempty"`
}

// Leaf returns a leaf node with the given name.
func Leaf(name string) *Node {
	return &Node{Name: name, Variant: VariantLeaf}
}

// Diagram returns a diagram node with the given name and children.
func Diagram(name string, children ...*Node) *Node {
	return &Node{Name: name, Variant: VariantDiagram, Children: children}
}

// Parse decodes a YAML shape document, validates it against the embedded
// CUE schema, then validates it structurally.
func Parse(data []byte) (*Node, error) {
	// Decode generically first so the CUE schema sees the raw document.
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing shape yaml: %w", err)
	}
	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	var n Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("decoding shape yaml: %w", err)
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return &n, nil
}

// Load reads and parses a shape file.
func Load(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading shape file: %w", err)
	}
	n, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// validateSchema unifies the decoded document with the embedded schema.
func validateSchema(doc any) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling shape schema: %w", err)
	}
	val := ctx.Encode(doc)
	if err := val.Err(); err != nil {
		return fmt.Errorf("encoding shape document: %w", err)
	}
	if err := schema.Unify(val).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("shape schema violation: %w", err)
	}
	return nil
}

// Validate checks structural constraints the schema cannot express for
// nested documents built in code: variant values are legal and a leaf
// declares no children. Diagram nodes may have zero children.
func (n *Node) Validate() error {
	return n.validate("/")
}

func (n *Node) validate(path string) error {
	if n == nil {
		return fmt.Errorf("shape node %s: nil node", path)
	}
	switch n.Variant {
	case VariantLeaf:
		if len(n.Children) > 0 {
			return fmt.Errorf("shape node %s: leaf declares %d children", path, len(n.Children))
		}
	case VariantDiagram:
		for i, child := range n.Children {
			if err := child.validate(fmt.Sprintf("%s%d/", path, i)); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("shape node %s: invalid variant %q", path, n.Variant)
	}
	return nil
}

// Equal reports whether a and b describe the same shape. Names are labels
// and do not participate.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Variant != b.Variant || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// String renders the shape compactly, e.g. "diagram(leaf, diagram(leaf))".
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.Variant == VariantLeaf {
		return VariantLeaf
	}
	s := VariantDiagram + "("
	for i, child := range n.Children {
		if i > 0 {
			s += ", "
		}
		s += child.String()
	}
	return s + ")"
}
