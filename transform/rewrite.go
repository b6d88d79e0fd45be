package transform

import (
	"fmt"
	"slices"

	"github.com/hannajonsd/granular-imports/ast"
)

// Decision is what happens to one named binding.
type Decision uint8

const (
	// Drop removes an unused binding.
	Drop Decision = iota
	// Keep leaves the binding as a named specifier of the import.
	Keep
	// ExtractBinding moves the binding into the destructuring declaration.
	ExtractBinding
)

func (d Decision) String() string {
	switch d {
	case Keep:
		return "keep"
	case ExtractBinding:
		return "extract"
	default:
		return "drop"
	}
}

// Decide classifies a binding used count times.
func Decide(count int, policy Extract) Decision {
	if count <= 0 {
		return Drop
	}
	if policy.All || count >= policy.Threshold {
		return ExtractBinding
	}
	return Keep
}

// NameReport is the outcome for one named binding.
type NameReport struct {
	Imported string
	Local    string
	Count    int
	Decision Decision
}

// ImportReport describes one rewritten import declaration.
type ImportReport struct {
	Namespace string
	// Generated is set when the namespace identifier was synthesized.
	Generated bool
	Injected  []string
	// Absorbed is set when a following destructuring of the namespace was
	// folded into the rewrite.
	Absorbed bool
	Names    []NameReport
	Usage    UsageCount
}

// Rewriter rewrites qualifying import declarations of one unit.
type Rewriter struct {
	opts Options
	unit *Unit
}

// NewRewriter creates a rewriter for unit.
func NewRewriter(opts Options, unit *Unit) *Rewriter {
	return &Rewriter{opts: opts, unit: unit}
}

// RewriteImport rewrites the import at the cursor. It reports false for
// imports of other modules and for imports it produced itself.
func (r *Rewriter) RewriteImport(c *Cursor) (ImportReport, bool, error) {
	a := c.Arena()
	imp := ReadImport(a, c.Node())
	if imp.Shape.Source != r.opts.Source || imp.Rewritten() {
		return ImportReport{}, false, nil
	}

	report := ImportReport{Namespace: imp.Shape.Variable()}
	shape := ImportShape{Source: imp.Shape.Source, Specifiers: slices.Clone(imp.Shape.Specifiers)}

	covered := 1
	if next := c.Sibling(1); next != ast.NoNode {
		if extra, ok := readDestructuring(a, next, report.Namespace); ok {
			shape.Specifiers = appendUnique(shape.Specifiers, extra)
			covered = 2
			report.Absorbed = true
		}
	}

	if !r.unit.Injected() {
		imported := shape.Imported()
		for _, member := range RequiredMembers {
			if !slices.Contains(imported, member) {
				shape.Specifiers = append(shape.Specifiers, Named(member, member))
				report.Injected = append(report.Injected, member)
			}
		}
		r.unit.markInjected()
	}

	snapshot := a.Clone()
	parent := c.Parent()
	index := c.Index()
	siblings := snapshot.Node(parent).Children
	for i := index; i < index+covered; i++ {
		siblings[i] = ast.NoNode
	}
	report.Usage = AnalyzeUsage(shape.Locals(), snapshot)

	var keep, extract []Specifier
	for _, spec := range shape.Named() {
		count := report.Usage.Count(spec.Local)
		decision := Decide(count, r.opts.Extract)
		report.Names = append(report.Names, NameReport{
			Imported: spec.Imported,
			Local:    spec.Local,
			Count:    count,
			Decision: decision,
		})
		switch decision {
		case Keep:
			keep = setSpecifier(keep, spec)
		case ExtractBinding:
			extract = setSpecifier(extract, spec)
		}
	}

	if report.Namespace == "" {
		report.Namespace = c.GenerateUID(NamespaceName)
		report.Generated = true
	}

	replacement := []ast.NodeID{r.importNode(a, imp, report.Namespace, keep)}
	if len(extract) > 0 {
		replacement = append(replacement, r.extractNode(a, report.Namespace, extract))
	}

	if err := c.ReplaceSiblings(covered, replacement...); err != nil {
		return ImportReport{}, false, fmt.Errorf("rewrite import of %s: %w", imp.Shape.Source, err)
	}
	return report, true, nil
}

// importNode builds `import ns, { kept } from source` marked as rewritten.
// The original source literal is reused so its quoting survives.
func (r *Rewriter) importNode(a *ast.Arena, imp Import, namespace string, keep []Specifier) ast.NodeID {
	specifiers := make([]ast.NodeID, 0, len(keep))
	for _, s := range keep {
		specifiers = append(specifiers, a.ImportSpecifier(s.Imported, s.Local))
	}
	source := a.ChildByField(imp.Node, ast.FieldSource)
	if source == ast.NoNode {
		source = a.StringLiteral(r.opts.Source)
	}
	id := a.ImportDeclaration(a.DefaultSpecifier(namespace), specifiers, source)
	a.Node(id).Import = ast.ImportRewritten
	return id
}

// extractNode builds `kind { imported: local } = ns`.
func (r *Rewriter) extractNode(a *ast.Arena, namespace string, extract []Specifier) ast.NodeID {
	properties := make([]ast.NodeID, 0, len(extract))
	for _, s := range extract {
		properties = append(properties, a.Property(s.Imported, s.Local))
	}
	return a.VariableDeclaration(r.opts.Declaration, a.ObjectPattern(properties...), a.Identifier(namespace))
}

// setSpecifier adds spec unless its local name is already bound. One
// imported name may appear under several locals.
func setSpecifier(specs []Specifier, spec Specifier) []Specifier {
	for _, s := range specs {
		if s.Local == spec.Local {
			return specs
		}
	}
	return append(specs, spec)
}

// appendUnique appends the specifiers whose local name is not bound yet.
func appendUnique(specs, extra []Specifier) []Specifier {
	out := slices.Clone(specs)
	for _, e := range extra {
		if !slices.Contains(localNames(out), e.Local) {
			out = append(out, e)
		}
	}
	return out
}
