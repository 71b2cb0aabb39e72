package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"lotto_simulator/internal/lotto_simulator/draw"
	"lotto_simulator/internal/lotto_simulator/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("CONFIG_FILE", "")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestParseUserSets(t *testing.T) {
	sets, err := parseUserSets(" 1,2,3,4,5,6 ; 7, 8, 9, 10, 11, 12;")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3, 4, 5, 6}, {7, 8, 9, 10, 11, 12}}, sets)

	sets, err = parseUserSets("")
	require.NoError(t, err)
	assert.Nil(t, sets)

	_, err = parseUserSets("1,2,x")
	assert.ErrorIs(t, err, draw.ErrInvalidParameter)
}

func TestRunPrintsReports(t *testing.T) {
	code, stdout, _ := runCLI(t, "-rounds", "2", "-seed", "5")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Round: 1")
	assert.Contains(t, stdout, "Round: 2")
	assert.Equal(t, 12, strings.Count(stdout, "AI's smart prediction #"))
	assert.Contains(t, stdout, "Time played: 7 days")
}

func TestRunIsReproducibleWithSeed(t *testing.T) {
	_, first, _ := runCLI(t, "-rounds", "3", "-seed", "11")
	_, second, _ := runCLI(t, "-rounds", "3", "-seed", "11")
	assert.Equal(t, first, second)
}

func TestRunUserNumbersOnly(t *testing.T) {
	code, stdout, _ := runCLI(t, "-ai=false", "-user", "6,5,4,3,2,1", "-seed", "3")

	assert.Equal(t, 0, code)
	assert.NotContains(t, stdout, "AI's smart prediction")
	assert.Contains(t, stdout, "User's numbers: [1, 2, 3, 4, 5, 6]")
	assert.Contains(t, stdout, "Total predictions made: 1")
}

func TestRunSummary(t *testing.T) {
	code, stdout, _ := runCLI(t, "-rounds", "4", "-seed", "9", "-summary")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Round: 4")
	assert.NotContains(t, stdout, "Round: 1\n")
}

func TestRunInvalidInput(t *testing.T) {
	code, stdout, _ := runCLI(t, "-rounds", "many")
	assert.Equal(t, 2, code)
	assert.Equal(t, session.InvalidInputMessage+"\n", stdout)

	code, _, stderr := runCLI(t, "-user", "1,2,3")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "INVALID_PREDICTION")

	code, _, _ = runCLI(t, "-unknown")
	assert.Equal(t, 2, code)
}

func TestRunVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Lotto Simulator")
}
