package commands_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/arrkit/cmd/arrkit/commands"
	"github.com/katalvlaran/arrkit/nested"
	"github.com/katalvlaran/arrkit/seq"
	"github.com/katalvlaran/arrkit/strs"
)

// runArrkit executes one command line against a fresh tree and returns stdout and stderr.
func runArrkit(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := commands.NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

// decode parses YAML (or JSON) text so results compare structurally, not textually.
func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, yaml.Unmarshal([]byte(s), &v), "decode %q", s)

	return v
}

// TestCommands runs every subcommand once on a representative document.
func TestCommands(t *testing.T) {
	cases := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		// seq
		{"Interval", []string{"interval", "--start", "1", "--end", "5"}, "", "[1, 2, 3, 4, 5]"},
		{"Odds", []string{"odds", "-n", "3"}, "", "[1, 3, 5]"},
		{"Identity", []string{"identity", "-n", "2"}, "", "[[1, 0], [0, 1]]"},
		{"Head", []string{"head", "-n", "2"}, "[a, b, c]", "[a, b]"},
		{"Tail", []string{"tail", "-n", "2"}, "[a, b, c]", "[b, c]"},
		{"Double", []string{"double"}, "[1, x]", "[1, x, 1, x]"},
		{"Insert", []string{"insert", "--item", "2", "--index", "1"}, "[1, 3]", "[1, 2, 3]"},
		{"Shift", []string{"shift", "-n", "-1"}, "[1, 2, 3]", "[2, 3, 1]"},
		{"SwapHeadTail", []string{"swap-head-tail"}, "[1, 2, 3, 4, 5]", "[4, 5, 3, 1, 2]"},
		{"Chunks", []string{"chunks", "--size", "2"}, "[1, 2, 3, 4, 5]", "[[1, 2], [3, 4], [5]]"},
		{"ChunksMaxSize", []string{"chunks", "--size", "9223372036854775807"}, "[1, 2]", "[[1, 2]]"},
		{"Propagate", []string{"propagate"}, "[a, b]", "[a, b, b]"},
		{"SelectMany", []string{"select-many", "--expr", "item.kids"}, "[{kids: [a, b]}, {kids: [c]}]", "[a, b, c]"},
		{"SelectManyScalar", []string{"select-many", "-e", "item * 2"}, "[1, 2]", "[2, 4]"},

		// agg
		{"SumPairwise", []string{"sum-pairwise"}, "{a: [1, 2, 3], b: [10, 20]}", "[11, 22, 3]"},
		{"Average", []string{"average"}, "[1, 2, 3, 4]", "2.5"},
		{"AveragePrecision", []string{"average", "--precision", "1"}, "[1, 2, 2]", "1.7"},
		{"Balance", []string{"balance"}, "[[10, 8], [5, 1], [0, 12]]", "-6"},
		{"MaxItems", []string{"max-items", "-n", "2"}, "[3, 9, 1, 7]", "[9, 7]"},
		{"LongestRun", []string{"longest-run"}, "[1, 2, 1, 2, 3, 1]", "3"},

		// find
		{"IndexOf", []string{"index-of", "--value", "3"}, "[1, 3, 3]", "1"},
		{"IndexOfMissing", []string{"index-of", "--value", "x"}, "[1, 3]", "-1"},
		{"IndexOfIntInFloats", []string{"index-of", "--value", "1"}, "[1.0, 2]", "0"},
		{"IndexOfFloatInInts", []string{"index-of", "--value", "2.0"}, "[1, 2]", "1"},
		{"CountMixed", []string{"count", "--value", "1"}, "[1, 1.0, 2]", "2"},
		{"Count", []string{"count", "--value", "a"}, "[a, b, a]", "2"},
		{"Distinct", []string{"distinct"}, "[1, 1, 2, 3, 3]", "[1, 2, 3]"},
		{"Common", []string{"common"}, "{a: [1, 2, 3], b: [3, 1]}", "[1, 3]"},
		{"DistinctMixed", []string{"distinct"}, "[1, 1.0, 2]", "[1, 2]"},
		{"CommonMixed", []string{"common"}, "{a: [1.0, 2.5], b: [1, 2.5]}", "[1, 2.5]"},
		{"OddIndices", []string{"odd-indices"}, "[1, 2, 3, 4, 5]", "[0, 2, 4]"},
		{"ValueAtIndex", []string{"value-at-index"}, "[2, 1, 5]", "true"},

		// strs
		{"Lengths", []string{"lengths"}, `["", a, bc]`, "[0, 1, 2]"},
		{"SameLength", []string{"same-length"}, "[ab, cd, e]", "false"},
		{"Join", []string{"join"}, "[1, 2, 3]", `"1,2,3"`},
		{"JoinSep", []string{"join", "--sep", "-"}, "[a, b]", "a-b"},
		{"HexRGB", []string{"hex-rgb"}, "[0, 255]", `["#000000", "#0000FF"]`},
		{"SortDigits", []string{"sort-digits"}, "[nine, one, three]", "[one, three, nine]"},

		// truthy
		{"Compact", []string{"compact"}, `[0, false, cat, .nan, true, "", null]`, "[cat, true]"},
		{"CountFalsy", []string{"count-falsy"}, `[0, false, cat, .nan, true, "", null]`, "5"},

		// nested
		{"Zeros", []string{"zeros", "--dims", "2", "--size", "2"}, "", "[[0, 0], [0, 0]]"},
		{"Flatten", []string{"flatten"}, "[1, [2, [3, 4]], 5]", "[1, 2, 3, 4, 5]"},
		{"At", []string{"at", "--path", "1,0"}, "[[1, 2], [3, 4]]", "3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := runArrkit(t, tc.stdin, tc.args...)
			require.NoError(t, err)
			if diff := cmp.Diff(decode(t, tc.want), decode(t, out)); diff != "" {
				t.Errorf("%v mismatch (-want +got):\n%s", tc.args, diff)
			}
		})
	}
}

// TestCommands_Errors checks that library sentinels surface unchanged.
func TestCommands_Errors(t *testing.T) {
	cases := []struct {
		name  string
		args  []string
		stdin string
		want  error
	}{
		{"BadRange", []string{"interval", "--start", "3", "--end", "1"}, "", seq.ErrBadRange},
		{"IntervalTooLarge", []string{"interval", "--start=-9223372036854775808", "--end=9223372036854775807"}, "", seq.ErrTooLarge},
		{"BadChunk", []string{"chunks", "--size", "0"}, "[1]", seq.ErrBadChunkSize},
		{"InsertRange", []string{"insert", "--item", "x", "--index", "9"}, "[1]", seq.ErrOutOfRange},
		{"ColorRange", []string{"hex-rgb"}, "[-1]", strs.ErrColorRange},
		{"UnknownDigit", []string{"sort-digits"}, "[ten]", strs.ErrUnknownDigit},
		{"AtNotSlice", []string{"at", "--path", "0,0"}, "[1]", nested.ErrNotSlice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := runArrkit(t, tc.stdin, tc.args...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestCommands_NaN checks that distinct and common treat every NaN as one value.
func TestCommands_NaN(t *testing.T) {
	out, _, err := runArrkit(t, "[.nan, .nan, 1]", "distinct")
	require.NoError(t, err)
	got, ok := decode(t, out).([]any)
	require.True(t, ok, "distinct output %q is not a list", out)
	if assert.Len(t, got, 2) {
		assert.True(t, math.IsNaN(got[0].(float64)))
		assert.Equal(t, 1, got[1])
	}

	out, _, err = runArrkit(t, "{a: [.nan, 2], b: [.nan]}", "common")
	require.NoError(t, err)
	got, ok = decode(t, out).([]any)
	require.True(t, ok, "common output %q is not a list", out)
	if assert.Len(t, got, 1) {
		assert.True(t, math.IsNaN(got[0].(float64)))
	}
}

// TestCommands_BadInput covers decoding and validation failures outside the library.
func TestCommands_BadInput(t *testing.T) {
	_, _, err := runArrkit(t, "{a: 1}", "distinct")
	assert.Error(t, err, "a mapping is not a list")

	_, _, err = runArrkit(t, "[[1], 2]", "distinct")
	assert.Error(t, err, "nested lists are not scalars")

	_, _, err = runArrkit(t, "[1, 2", "double")
	assert.ErrorContains(t, err, "decode input")

	_, _, err = runArrkit(t, "[1]", "average", "--precision", "99")
	assert.ErrorContains(t, err, "--precision")

	_, _, err = runArrkit(t, "[1]", "select-many", "--expr", "item +")
	assert.ErrorContains(t, err, "compile --expr")

	_, _, err = runArrkit(t, "", "--output", "xml", "odds", "-n", "1")
	assert.ErrorContains(t, err, "unknown --output")
}

// TestCommands_JSONOutput verifies --output json emits a JSON document.
func TestCommands_JSONOutput(t *testing.T) {
	out, _, err := runArrkit(t, "", "--output", "json", "interval", "--start", "1", "--end", "3")
	require.NoError(t, err)
	assert.Equal(t, "[1,2,3]\n", out)
}

// TestCommands_InputFile reads the document from --input instead of stdin.
func TestCommands_InputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1, 1, 2]`), 0o600))

	out, _, err := runArrkit(t, "ignored", "--input", path, "distinct")
	require.NoError(t, err)
	if diff := cmp.Diff(decode(t, "[1, 2]"), decode(t, out)); diff != "" {
		t.Errorf("distinct mismatch (-want +got):\n%s", diff)
	}

	_, _, err = runArrkit(t, "", "--input", filepath.Join(t.TempDir(), "missing"), "distinct")
	assert.ErrorContains(t, err, "read input")
}

// TestCommands_Verbose checks debug logging goes to stderr only when asked.
func TestCommands_Verbose(t *testing.T) {
	_, stderr, err := runArrkit(t, "[1]", "double")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "level=DEBUG")

	out, stderr, err := runArrkit(t, "[1]", "--verbose", "double")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "op=double")
	assert.NotContains(t, out, "DEBUG", "logs must not leak into results")
}
