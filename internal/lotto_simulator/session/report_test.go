package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumbers(t *testing.T) {
	assert.Equal(t, "[]", FormatNumbers(nil))
	assert.Equal(t, "[7]", FormatNumbers([]int{7}))
	assert.Equal(t, "[1, 2, 49]", FormatNumbers([]int{1, 2, 49}))
}

func TestFormatPrizeCounts(t *testing.T) {
	assert.Equal(t,
		"Jackpot Wins: 0 | 5-Number Wins: 1 | 4-Number Wins: 2 | 3-Number Wins: 3 | 2-Number Wins: 4",
		FormatPrizeCounts(PrizeCounts{FiveNumber: 1, FourNumber: 2, ThreeNumber: 3, TwoNumber: 4}))
}

func TestFormatRound(t *testing.T) {
	result := &RoundResult{
		Round: 2,
		Predictions: []Prediction{
			{Source: SourceAI, Numbers: []int{1, 2, 3, 4, 5, 6}},
			{Source: SourceAI, Numbers: []int{7, 8, 9, 10, 11, 12}},
			{Source: SourceUser, Numbers: []int{1, 2, 3, 20, 21, 22}},
		},
		Actual: []int{1, 2, 3, 4, 5, 40},
		Results: []PredictionResult{
			{Index: 1, CorrectCount: 5, Prize: 50000, Matched: []int{1, 2, 3, 4, 5}},
			{Index: 2, CorrectCount: 0},
			{Index: 3, CorrectCount: 3, Prize: 10, Matched: []int{1, 2, 3}},
		},
		TotalCorrect:  8,
		RoundWinnings: 50010,
		FiveNumberWon: true,
		Stats: Stats{
			TotalPredictions:        9,
			TotalWinningPredictions: 2,
			TotalWinnings:           50010,
			MoneyScore:              49983,
			Odds:                    "22.22",
			TimePlayed:              "7 days",
			PrizeCounts:             PrizeCounts{FiveNumber: 1, ThreeNumber: 1},
		},
	}

	report := FormatRound(result)

	expected := []string{
		"Round: 2",
		"AI's smart prediction #1: [1, 2, 3, 4, 5, 6]",
		"AI's smart prediction #2: [7, 8, 9, 10, 11, 12]",
		"User's numbers: [1, 2, 3, 20, 21, 22]",
		"Actual Lottery Numbers: [1, 2, 3, 4, 5, 40]",
		"Prediction #1: 5 correct [1, 2, 3, 4, 5] - $50000",
		"Prediction #2: 0 correct\n",
		"Prediction #3: 3 correct [1, 2, 3] - $10",
		"Congratulations! You've won the 5-number prize!",
		"Total correct numbers: 8",
		"Total winning predictions: 2",
		"Round winnings: $50010",
		"Total predictions made: 9",
		"Total winnings: $50010",
		"Current odds of winning: 22.22%",
		"Time played: 7 days",
		"Current Money Score: $49983",
		"Jackpot Wins: 0 | 5-Number Wins: 1 | 4-Number Wins: 0 | 3-Number Wins: 1 | 2-Number Wins: 0",
	}
	for _, line := range expected {
		assert.Contains(t, report, line)
	}
	assert.NotContains(t, report, "jackpot!")
}

func TestFormatRoundJackpotTakesPrecedence(t *testing.T) {
	report := FormatRound(&RoundResult{JackpotWon: true, FiveNumberWon: true, Stats: Stats{Odds: "0.00"}})

	assert.Contains(t, report, "Congratulations! You've won the jackpot!")
	assert.False(t, strings.Contains(report, "5-number prize"))
}
