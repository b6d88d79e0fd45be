package workspace

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffContext is the number of unchanged lines kept around each change.
const diffContext = 2

type diffLine struct {
	op   diffmatchpatch.Operation
	text string
}

// UnifiedDiff renders a line diff between before and after with a file
// header and context lines around each change. Identical inputs yield "".
func UnifiedDiff(path string, before, after []byte) string {
	if string(before) == string(after) {
		return ""
	}

	dmp := diffmatchpatch.New()
	chars1, chars2, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lines)

	var all []diffLine
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			all = append(all, diffLine{op: d.Type, text: line})
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n+++ b/%s\n", path, path)

	last := -1
	for i, line := range all {
		if !nearChange(all, i) {
			continue
		}
		if last >= 0 && i > last+1 {
			b.WriteString("@@\n")
		}
		switch line.op {
		case diffmatchpatch.DiffDelete:
			b.WriteByte('-')
		case diffmatchpatch.DiffInsert:
			b.WriteByte('+')
		case diffmatchpatch.DiffEqual:
			b.WriteByte(' ')
		}
		b.WriteString(line.text)
		b.WriteByte('\n')
		last = i
	}
	return b.String()
}

func nearChange(all []diffLine, i int) bool {
	lo, hi := max(0, i-diffContext), min(len(all)-1, i+diffContext)
	for j := lo; j <= hi; j++ {
		if all[j].op != diffmatchpatch.DiffEqual {
			return true
		}
	}
	return false
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}
