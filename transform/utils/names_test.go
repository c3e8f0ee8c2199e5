package utils

import (
	"testing"

	"github.com/t14raptor/go-holes/parser"
)

func TestCollectNames(t *testing.T) {
	p, err := parser.ParseFile(`
function f(a, b = c, ...rest) {
	var d = a.e + b[g];
	return (h) => ({i: h, j});
}
_p0 = new K()
`)
	if err != nil {
		t.Fatal(err)
	}
	names := CollectNames(p)
	for _, want := range []string{"f", "a", "b", "c", "rest", "d", "e", "g", "h", "j", "_p0", "K"} {
		if _, ok := names[want]; !ok {
			t.Errorf("missing %q in %v", want, names)
		}
	}
	// Non-computed object keys are literals, not identifiers.
	if _, ok := names["i"]; ok {
		t.Errorf("object key collected as a name")
	}
}
