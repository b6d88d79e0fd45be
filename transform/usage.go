package transform

import "github.com/hannajonsd/granular-imports/ast"

// UsageCount maps a local name to the number of times the file uses it.
// Absent names count as zero.
type UsageCount map[string]int

// Count returns the count for name.
func (u UsageCount) Count(name string) int {
	return u[name]
}

// AnalyzeUsage walks snapshot once and counts uses of names. Each tag also
// counts as one createElement call, and each fragment shorthand as one
// createElement call plus one Fragment reference.
func AnalyzeUsage(names []string, snapshot *ast.Arena) UsageCount {
	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[n] = struct{}{}
	}
	has := func(name string) bool {
		_, ok := wanted[name]
		return ok
	}

	usage := UsageCount{}
	snapshot.Walk(snapshot.Root, func(id ast.NodeID) bool {
		switch {
		case snapshot.IsIdentifierReference(id):
			if name := snapshot.Text(id); has(name) {
				usage[name]++
			}
		case snapshot.IsElement(id):
			usage[CreateElement]++
			if name, ok := snapshot.ElementName(id); ok && has(name) {
				usage[name]++
			}
		case snapshot.IsFragment(id):
			usage[CreateElement]++
			usage[Fragment]++
		}
		return true
	})
	return usage
}
