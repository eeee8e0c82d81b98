package cmd

import (
	"bytes"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutils/prngbench/randtest"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateFloats(t *testing.T) {
	out, err := execute(t, "generate", "--generator=lcg", "--seed=42", "--count=3", "--intn=0")
	require.NoError(t, err)
	assert.Equal(t, "0.2523451743181795\n0.08734994009137154\n0.39509856258518994\n", out)
}

func TestGenerateInts(t *testing.T) {
	out, err := execute(t, "generate", "--generator=mt", "--seed=5489", "--count=50", "--intn=6")
	require.NoError(t, err)
	lines := strings.Fields(out)
	require.Len(t, lines, 50)
	for _, l := range lines {
		assert.Contains(t, []string{"0", "1", "2", "3", "4", "5"}, l)
	}
}

func TestGenerateUnknown(t *testing.T) {
	_, err := execute(t, "generate", "--generator=xorshift", "--count=1", "--intn=0")
	assert.Error(t, err)
}

func TestRunJSON(t *testing.T) {
	out, err := execute(t, "run", "--seed=7", "--size=2000", "--bins=10", "--alpha=0.01",
		"--generators=lcg,mt", "--no-sweep", "--format=json")
	require.NoError(t, err)

	type generator struct {
		Kind  string          `json:"kind"`
		Poker randtest.Result `json:"poker"`
	}
	var doc struct {
		Seed       uint32        `json:"seed"`
		Generators []generator   `json:"generators"`
		Sweep      []interface{} `json:"sweep"`
	}
	require.NoError(t, jsoniter.Unmarshal([]byte(out), &doc))
	assert.Equal(t, uint32(7), doc.Seed)
	require.Len(t, doc.Generators, 2)
	assert.Equal(t, "lcg", doc.Generators[0].Kind)
	assert.Equal(t, "mt19937", doc.Generators[1].Kind)
	assert.Equal(t, randtest.PokerName, doc.Generators[1].Poker.Name)
	assert.Empty(t, doc.Sweep)
}

func TestRunText(t *testing.T) {
	out, err := execute(t, "run", "--seed=42", "--size=1000", "--bins=10", "--alpha=0.01",
		"--generators=mt", "--no-sweep=false", "--sweep=10,100", "--format=text")
	require.NoError(t, err)
	assert.Contains(t, out, "Mersenne Twister:")
	assert.Contains(t, out, "Chi-square statistic:")
	assert.Contains(t, out, "Generation time (seconds):")
	assert.NotContains(t, out, "LCG:")
}

func TestRunRejectsShortSample(t *testing.T) {
	_, err := execute(t, "run", "--size=3", "--bins=10", "--alpha=0.01", "--generators=lcg", "--no-sweep", "--format=text")
	assert.ErrorIs(t, err, randtest.ErrInsufficientSampleSize)
}

func TestSweepCommand(t *testing.T) {
	out, err := execute(t, "sweep", "--generators=lcg", "--sizes=10,100", "--format=text")
	require.NoError(t, err)
	assert.Contains(t, out, "size")
	assert.Contains(t, out, "LCG")
	assert.Regexp(t, `(?m)^100\s+\d+\.\d{6}`, out)
}
