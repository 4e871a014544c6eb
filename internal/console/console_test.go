package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hailam/minichess/internal/engine"
)

// scripted is an engine.Source returning preset values, then zeros.
type scripted struct {
	values []int
}

func (s *scripted) IntN(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

func run(t *testing.T, input string, values ...int) []string {
	t.Helper()
	var out bytes.Buffer
	c := New(engine.New(&scripted{values: values}), &out, nil)
	if err := c.Run(strings.NewReader(input)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestSession(t *testing.T) {
	input := strings.Join([]string{
		"moves all",
		"moves b1",
		"moves c3",
		"move b1c3",
		"d",
		"history",
		"quit",
		"moves b1",
	}, "\n")

	got := run(t, input, 6, 1)
	want := []string{
		"moves all: b1c3 b1a3",
		"moves b1: c3 a3",
		"moves c3: none",
		"reply b5a3",
		"",
		"5  r . b q k ",
		"4  p p p p p ",
		"3  n . N . . ",
		"2  P P P P P ",
		"1  R . B Q K ",
		"",
		"   a b c d e",
		"white to move",
		"1. white Nc3 b1c3",
		"2. black Na3 b5a3",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestBlackPass(t *testing.T) {
	got := run(t, "move Nc3\nhistory\n", 0)
	want := []string{
		"reply none",
		"1. white Nc3 b1c3",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestMoveInSAN(t *testing.T) {
	got := run(t, "position 5/5/2N2/ppppp/rnbqk w\nmove Nxd5\nhistory\n")
	want := []string{
		"ok",
		"reply none",
		"1. white Nxd5 c3d5",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestStalled(t *testing.T) {
	got := run(t, "position RNBQK/PPPPP/5/5/5 w\nmove b1c3\nd\n")
	if got[0] != "ok" || got[1] != "stalled" {
		t.Fatalf("unexpected output %q", got)
	}
	if last := got[len(got)-1]; last != "black to move (stalled)" {
		t.Errorf("status line = %q", last)
	}
}

func TestNewResetsSession(t *testing.T) {
	var out bytes.Buffer
	c := New(engine.New(&scripted{}), &out, nil)
	c.Execute("move b1c3")
	first := c.Game().ID()

	c.Execute("new")
	if c.Game().ID() == first {
		t.Error("new kept the old session")
	}
	if n := len(c.Game().History()); n != 0 {
		t.Errorf("history has %d plies after new", n)
	}
	c.Execute("position startpos")
	if !strings.HasSuffix(out.String(), "ok\nok\n") {
		t.Errorf("output = %q", out.String())
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantSub string
	}{
		{"unknown command", "bogus", `unknown command "bogus"`},
		{"move without argument", "move", "need one move"},
		{"bad move text", "move b1c", "invalid move"},
		{"off board square", "move b1f3", "out of bounds"},
		{"empty origin", "move c3c4", "no piece on origin square"},
		{"moves without argument", "moves", "need a square"},
		{"bad square", "moves z", "invalid square"},
		{"bad layout", "position 5/5", "invalid layout"},
		{"position without layout", "position", "missing layout"},
		{"startpos with extra", "position startpos moves", "unexpected"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := run(t, tc.line)
			if len(got) != 1 || !strings.HasPrefix(got[0], "error: ") || !strings.Contains(got[0], tc.wantSub) {
				t.Errorf("%q -> %q, want error containing %q", tc.line, got, tc.wantSub)
			}
		})
	}
}

func TestBlankAndCommentLinesIgnored(t *testing.T) {
	got := run(t, "\n   \n# comment\nmoves b1\n")
	if diff := cmp.Diff([]string{"moves b1: c3 a3"}, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}
