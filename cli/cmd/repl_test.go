package cmd

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/peterh/liner"

	"github.com/t14raptor/go-holes/transform/holes"
)

func TestReplBatch(t *testing.T) {
	in := strings.Join([]string{
		"_.name",
		"",
		"f(_",
		"a + _",
	}, "\n")

	var out, errOut bytes.Buffer
	r := &Repl{Stdin: strings.NewReader(in), Stdout: &out, Stderr: &errOut}

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Repl.Run() error = %v", err)
	}

	want := "(_p0) => _p0.name;\n(_p0) => a + _p0;\n"
	if out.String() != want {
		t.Errorf("Repl.Run() output = %q; want %q", out.String(), want)
	}
	if !strings.Contains(errOut.String(), ErrParse.Error()) {
		t.Errorf("Repl.Run() stderr = %q; want a parse error", errOut.String())
	}
}

func TestReplLinesAreIndependent(t *testing.T) {
	var out bytes.Buffer
	r := &Repl{Stdin: strings.NewReader("f(_)\ng(_)\n"), Stdout: &out, Stderr: &bytes.Buffer{}}

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Repl.Run() error = %v", err)
	}

	want := "(_p0) => f(_p0);\n(_p0) => g(_p0);\n"
	if out.String() != want {
		t.Errorf("Repl.Run() output = %q; want %q", out.String(), want)
	}
}

func TestReplHistoryFile(t *testing.T) {
	r := &Repl{History: "/tmp/custom_history"}
	if got := r.historyFile(); got != "/tmp/custom_history" {
		t.Errorf("historyFile() = %q; want the configured path", got)
	}
}

type promptResult struct {
	input string
	err   error
}

// scriptedPrompter replays prompt results and fails the test when it runs out.
type scriptedPrompter struct {
	t       *testing.T
	results []promptResult
	history []string
}

func (p *scriptedPrompter) Prompt(string) (string, error) {
	if len(p.results) == 0 {
		p.t.Fatal("Prompt called after the script ended")
	}
	r := p.results[0]
	p.results = p.results[1:]
	return r.input, r.err
}

func (p *scriptedPrompter) AppendHistory(item string) {
	p.history = append(p.history, item)
}

func TestReplLoopCtrlC(t *testing.T) {
	tests := []struct {
		name    string
		script  []promptResult
		want    string
		history int
	}{
		{
			name: "ctrl-c on empty line exits",
			script: []promptResult{
				{"_.a", nil},
				{"", liner.ErrPromptAborted},
			},
			want:    "(_p0) => _p0.a;\n",
			history: 1,
		},
		{
			name: "ctrl-c with input discards it",
			script: []promptResult{
				{"f(_", liner.ErrPromptAborted},
				{"!_", nil},
				{"", io.EOF},
			},
			want:    "(_p0) => !_p0;\n",
			history: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r := &Repl{Stdout: &out, Stderr: &bytes.Buffer{}}
			p := &scriptedPrompter{t: t, results: tt.script}

			if err := r.loop(context.Background(), p, holes.DefaultOptions()); err != nil {
				t.Fatalf("loop() error = %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("loop() output = %q; want %q", out.String(), tt.want)
			}
			if len(p.history) != tt.history {
				t.Errorf("history = %v; want %d entries", p.history, tt.history)
			}
			if len(p.results) != 0 {
				t.Errorf("loop() stopped with %d prompts left", len(p.results))
			}
		})
	}
}
