package holes_test

import (
	"bytes"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"github.com/t14raptor/go-holes/ast"
	"github.com/t14raptor/go-holes/generator"
	"github.com/t14raptor/go-holes/parser"
	"github.com/t14raptor/go-holes/token"
	"github.com/t14raptor/go-holes/transform/holes"
)

var spaces = regexp.MustCompile(`\s+`)

func normalize(s string) string {
	return strings.TrimSpace(spaces.ReplaceAllString(s, " "))
}

func expandWith(in string, opts holes.Options) (string, int, error) {
	p, err := parser.ParseFile(in)
	if err != nil {
		return "", 0, err
	}
	n := holes.Expand(p, opts)
	return generator.Generate(p), n, nil
}

func test(in, want string, opts holes.Options, t *testing.T) {
	t.Helper()
	got, _, err := expandWith(in, opts)
	if err != nil {
		t.Errorf("expand('%s') failed: %v", in, err)
		return
	}
	if got = normalize(got); got != want {
		t.Errorf("expand('%s') = '%s'; want '%s'", in, got, want)
	}
}

func TestCall(t *testing.T) {
	opts := holes.DefaultOptions()
	test(`f(_)`, `(_p0) => f(_p0);`, opts, t)
	test(`f(_, x, _)`, `(_p0, _p1) => f(_p0, x, _p1);`, opts, t)
	test(`_(1)`, `(_p0) => _p0(1);`, opts, t)
	test(`_.f(1, _)`, `(_p0, _p1) => _p0.f(1, _p1);`, opts, t)
	test(`_.f(_, 1)`, `(_p0, _p1) => _p0.f(_p1, 1);`, opts, t)
	test(`f(x)`, `f(x);`, opts, t)
	test(`f(...xs)`, `f(...xs);`, opts, t)
}

func TestMember(t *testing.T) {
	opts := holes.DefaultOptions()
	test(`_.length`, `(_p0) => _p0.length;`, opts, t)
	test(`xs.map(_.length)`, `xs.map((_p0) => _p0.length);`, opts, t)
	test(`_[_]`, `(_p0, _p1) => _p0[_p1];`, opts, t)
	test(`a[_]`, `(_p0) => a[_p0];`, opts, t)
	test(`_[0]`, `(_p0) => _p0[0];`, opts, t)
	test(`a._`, `a._;`, opts, t)
	test(`a.b.c`, `a.b.c;`, opts, t)
}

func TestBinary(t *testing.T) {
	opts := holes.DefaultOptions()
	test(`_ + 1`, `(_p0) => _p0 + 1;`, opts, t)
	test(`_ - _`, `(_p0, _p1) => _p0 - _p1;`, opts, t)
	test(`1 < _`, `(_p0) => 1 < _p0;`, opts, t)
	test(`_ && x`, `(_p0) => _p0 && x;`, opts, t)
	test(`_ instanceof Foo`, `(_p0) => _p0 instanceof Foo;`, opts, t)
	test(`_.x + _.y`, `(_p0, _p1) => _p0.x + _p1.y;`, opts, t)
	test(`a + b`, `a + b;`, opts, t)
}

func TestBinaryWithoutMemberOperands(t *testing.T) {
	opts := holes.DefaultOptions()
	opts.MemberOperands = false
	test(`_.x + 1`, `((_p0) => _p0.x) + 1;`, opts, t)
	test(`_ + _.x`, `(_p0) => _p0 + ((_p1) => _p1.x);`, opts, t)
}

func TestUnaryAndIdentifier(t *testing.T) {
	opts := holes.DefaultOptions()
	test(`!_`, `(_p0) => !_p0;`, opts, t)
	test(`typeof _`, `(_p0) => typeof _p0;`, opts, t)
	test(`-_.x`, `-((_p0) => _p0.x);`, opts, t)
	test(`_`, `(_p0) => _p0;`, opts, t)
	test(`x = _`, `x = (_p0) => _p0;`, opts, t)
	test(`new Foo(_)`, `new Foo((_p0) => _p0);`, opts, t)
}

func TestShorthandPropertiesAreNames(t *testing.T) {
	opts := holes.DefaultOptions()
	got, n, err := expandWith(`({_})`, opts)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 || normalize(got) != `({ _ });` {
		t.Errorf("expand('({_})') = '%s' with %d expansions; want it unchanged", normalize(got), n)
	}
	test(`({_, a: _})`, `({ _, a: (_p0) => _p0 });`, opts, t)
}

func TestNestedExpansions(t *testing.T) {
	opts := holes.DefaultOptions()
	test(`f(_, g(_))`, `(_p0) => f(_p0, (_p1) => g(_p1));`, opts, t)
	test(`_ + _ * 2`, `(_p0) => _p0 + ((_p1) => _p1 * 2);`, opts, t)
	test(`_[_](x)`, `(_p0) => ((_p1) => _p0[_p1])(x);`, opts, t)
	test(`xs.filter(_.ok).map(_.id)`, `xs.filter((_p0) => _p0.ok).map((_p1) => _p1.id);`, opts, t)
	test(`function f() { return g(_) }`, `function f() { return (_p0) => g(_p0); }`, opts, t)
}

func TestTargetsAreNotRoots(t *testing.T) {
	opts := holes.DefaultOptions()
	test(`_ = 1`, `_ = 1;`, opts, t)
	test(`_.x = _`, `_.x = (_p0) => _p0;`, opts, t)
	test(`_++`, `_++;`, opts, t)
	test(`--_.n`, `--_.n;`, opts, t)
}

func TestExclude(t *testing.T) {
	opts := holes.DefaultOptions()
	opts.Exclude = []token.Token{token.LogicalOr, token.Plus}
	test(`_ || x`, `((_p0) => _p0) || x;`, opts, t)
	test(`a + _.b`, `a + ((_p0) => _p0.b);`, opts, t)
	test(`_ - 1`, `(_p0) => _p0 - 1;`, opts, t)
}

func TestCurry(t *testing.T) {
	opts := holes.DefaultOptions()
	opts.Curry = "curry"
	test(`_ + 1`, `curry((_p0) => _p0 + 1);`, opts, t)
	test(`f(_, g(_))`, `curry((_p0) => f(_p0, curry((_p1) => g(_p1))));`, opts, t)
	test(`xs.map(_.id)`, `xs.map(curry((_p0) => _p0.id));`, opts, t)
	test(`a + b`, `a + b;`, opts, t)

	opts.Curry = ""
	test(`_ + 1`, `(_p0) => _p0 + 1;`, opts, t)
}

func TestDirectives(t *testing.T) {
	opts := holes.DefaultOptions()
	test(`"no holes"; _.length`, `"no holes"; _.length;`, opts, t)
	test(`"no holes"; f(_, g(_ + 1))`, `"no holes"; f(_, g(_ + 1));`, opts, t)
	test(`function f() { "no holes"; return _.x } g(_.y)`,
		`function f() { "no holes"; return _.x; } g((_p0) => _p0.y);`, opts, t)
	test(`function f() { "no holes"; return () => { return _ } }`,
		`function f() { "no holes"; return () => { return _; }; }`, opts, t)
	test(`const f = () => { "no holes"; return !_ }; !_`,
		`const f = () => { "no holes"; return !_; }; (_p0) => !_p0;`, opts, t)
	test(`"no shorthand"; _.x`, `"no shorthand"; (_p0) => _p0.x;`, opts, t)
}

func TestShorthandMode(t *testing.T) {
	opts := holes.DefaultOptions()
	opts.Mode = holes.ModeShorthand
	test(`_.length`, `(_p0) => _p0.length;`, opts, t)
	test(`!_`, `(_p0) => !_p0;`, opts, t)
	test(`f(_)`, `f((_p0) => _p0);`, opts, t)
	test(`_ + 1`, `((_p0) => _p0) + 1;`, opts, t)
	test(`_.f(1)`, `((_p0) => _p0.f)(1);`, opts, t)
	test(`"no shorthand"; _.x`, `"no shorthand"; _.x;`, opts, t)
	test(`"no holes"; _.x`, `"no holes"; _.x;`, opts, t)
}

func TestNameCollisions(t *testing.T) {
	opts := holes.DefaultOptions()
	test(`_p0 + _`, `(_p1) => _p0 + _p1;`, opts, t)
	test(`f(_p1, _, _)`, `(_p0, _p2) => f(_p1, _p0, _p2);`, opts, t)
	test(`x._p0; _.y`, `x._p0; (_p1) => _p1.y;`, opts, t)

	opts.ParamPrefix = "$"
	test(`_ + 1`, `($0) => $0 + 1;`, opts, t)
}

func TestCustomPlaceholder(t *testing.T) {
	opts := holes.DefaultOptions()
	opts.Placeholder = "it"
	test(`it.x`, `(_p0) => _p0.x;`, opts, t)
	test(`_.x`, `_.x;`, opts, t)
}

func TestNoPlaceholdersIsNoop(t *testing.T) {
	in := `
"use strict";
function f(a, b = 1, ...rest) {
	var c = a.b[c] + -b * (rest.length ?? 0);
	if (c) { return c ? [a, , b] : {a, b: c, ...rest}; } else while (a) a--;
	return new F(this, x => x, function () {});
}
`
	p, err := parser.ParseFile(in)
	if err != nil {
		t.Fatal(err)
	}
	before := generator.Generate(p)
	if n := holes.Expand(p, holes.DefaultOptions()); n != 0 {
		t.Errorf("Expand() = %d expansions; want 0", n)
	}
	if after := generator.Generate(p); after != before {
		t.Errorf("tree changed:\n%s\nwant:\n%s", after, before)
	}
}

func TestIdempotence(t *testing.T) {
	for _, in := range []string{
		`f(_, g(_))`,
		`xs.map(_.length).filter(_ > 1)`,
		`_[_](x); !_; _`,
		`function f() { return _.x + _.y }`,
	} {
		p, err := parser.ParseFile(in)
		if err != nil {
			t.Fatal(err)
		}
		holes.Expand(p, holes.DefaultOptions())
		once := generator.Generate(p)
		if n := holes.Expand(p, holes.DefaultOptions()); n != 0 {
			t.Errorf("second pass over '%s' expanded %d roots", in, n)
		}
		if twice := generator.Generate(p); twice != once {
			t.Errorf("second pass changed '%s':\n%s\nwant:\n%s", in, twice, once)
		}
	}
}

func TestExpansionCount(t *testing.T) {
	_, n, err := expandWith(`f(_, g(_)); _.x; a + b`, holes.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("Expand() = %d; want 3", n)
	}
}

type renamer struct {
	ast.NoopVisitor
	from, to string
}

func (r *renamer) VisitIdentifier(n *ast.Identifier) {
	if n.Name == r.from {
		n.Name = r.to
	}
}

// Substituting the placeholder back for the single parameter must give the
// original expression.
func TestSingleHoleRoundTrip(t *testing.T) {
	for _, in := range []string{`_.length`, `_ + 1`, `!_`, `f(_)`, `_[0]`, `_.f(1)`, `a[_]`} {
		p, err := parser.ParseFile(in)
		if err != nil {
			t.Fatal(err)
		}
		want := generator.GenerateExpression(p.Body[0].Stmt.(*ast.ExpressionStatement).Expression)

		holes.Expand(p, holes.DefaultOptions())
		arrow, ok := p.Body[0].Stmt.(*ast.ExpressionStatement).Expression.Expr.(*ast.ArrowFunctionLiteral)
		if !ok {
			t.Errorf("'%s' did not expand to an arrow function", in)
			continue
		}
		if got := len(arrow.ParameterList.List); got != 1 {
			t.Errorf("'%s' expanded to %d parameters; want 1", in, got)
			continue
		}
		body := arrow.Body.Body.(*ast.Expression)
		r := &renamer{from: arrow.ParameterList.List[0].Target.Name, to: "_"}
		r.V = r
		body.VisitWith(r)
		if got := generator.GenerateExpression(body); got != want {
			t.Errorf("'%s' body with placeholder restored = '%s'; want '%s'", in, got, want)
		}
	}
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	opts := holes.DefaultOptions()
	opts.Logger = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if _, _, err := expandWith(`_.x`, opts); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `"kind":"member"`) || !strings.Contains(out, `"params":1`) {
		t.Errorf("log output = %s", out)
	}
}

func TestValidate(t *testing.T) {
	if err := holes.DefaultOptions().Validate(); err != nil {
		t.Fatalf("default options invalid: %v", err)
	}

	tests := []struct {
		name   string
		modify func(*holes.Options)
		want   error
	}{
		{"placeholder not an identifier", func(o *holes.Options) { o.Placeholder = "1a" }, holes.ErrInvalidIdentifier},
		{"placeholder is a keyword", func(o *holes.Options) { o.Placeholder = "if" }, holes.ErrInvalidIdentifier},
		{"placeholder not normalized", func(o *holes.Options) { o.Placeholder = "e\u0301" }, holes.ErrInvalidIdentifier},
		{"curry not an identifier", func(o *holes.Options) { o.Curry = "a-b" }, holes.ErrInvalidIdentifier},
		{"curry equals placeholder", func(o *holes.Options) { o.Curry = "_" }, holes.ErrInvalidIdentifier},
		{"prefix not an identifier", func(o *holes.Options) { o.ParamPrefix = "-" }, holes.ErrInvalidIdentifier},
		{"unknown mode", func(o *holes.Options) { o.Mode = 9 }, holes.ErrUnknownMode},
		{"assignment is not binary", func(o *holes.Options) { o.Exclude = []token.Token{token.Assign} }, holes.ErrUnknownOperator},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := holes.DefaultOptions()
			tt.modify(&opts)
			if err := opts.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v; want %v", err, tt.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]holes.Mode{"full": holes.ModeFull, "Shorthand": holes.ModeShorthand} {
		got, err := holes.ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := holes.ParseMode("minimal"); !errors.Is(err, holes.ErrUnknownMode) {
		t.Errorf("ParseMode(minimal) error = %v", err)
	}
	var m holes.Mode
	if err := m.UnmarshalText([]byte("shorthand")); err != nil || m != holes.ModeShorthand {
		t.Errorf("UnmarshalText = %v, %v", m, err)
	}
}
