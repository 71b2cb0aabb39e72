package session

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidInputMessage 回合數輸入無效時顯示的訊息
const InvalidInputMessage = "Invalid input! Please enter a valid number."

// FormatNumbers 以 [1, 2, 3] 形式輸出號碼
func FormatNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatPrizeCounts 輸出各獎項累計次數
func FormatPrizeCounts(counts PrizeCounts) string {
	return fmt.Sprintf("Jackpot Wins: %d | 5-Number Wins: %d | 4-Number Wins: %d | 3-Number Wins: %d | 2-Number Wins: %d",
		counts.Jackpot, counts.FiveNumber, counts.FourNumber, counts.ThreeNumber, counts.TwoNumber)
}

// FormatRound 將回合結果輸出為文字報告
func FormatRound(result *RoundResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Round: %d\n", result.Round)

	aiIndex := 0
	for _, prediction := range result.Predictions {
		switch prediction.Source {
		case SourceAI:
			aiIndex++
			fmt.Fprintf(&b, "AI's smart prediction #%d: %s\n", aiIndex, FormatNumbers(prediction.Numbers))
		default:
			fmt.Fprintf(&b, "User's numbers: %s\n", FormatNumbers(prediction.Numbers))
		}
	}

	fmt.Fprintf(&b, "Actual Lottery Numbers: %s\n\n", FormatNumbers(result.Actual))

	for _, r := range result.Results {
		line := fmt.Sprintf("Prediction #%d: %d correct", r.Index, r.CorrectCount)
		if len(r.Matched) > 0 {
			line += " " + FormatNumbers(r.Matched)
		}
		if r.Prize > 0 {
			line += fmt.Sprintf(" - $%d", r.Prize)
		}
		b.WriteString(line + "\n")
	}

	if result.JackpotWon {
		b.WriteString("\nCongratulations! You've won the jackpot!\n")
	} else if result.FiveNumberWon {
		b.WriteString("\nCongratulations! You've won the 5-number prize!\n")
	}

	stats := result.Stats
	fmt.Fprintf(&b, "\nTotal correct numbers: %d\n", result.TotalCorrect)
	fmt.Fprintf(&b, "Total winning predictions: %d\n", stats.TotalWinningPredictions)
	fmt.Fprintf(&b, "Round winnings: $%d\n", result.RoundWinnings)

	fmt.Fprintf(&b, "\nTotal predictions made: %d\n", stats.TotalPredictions)
	fmt.Fprintf(&b, "Total winnings: $%d\n", stats.TotalWinnings)
	fmt.Fprintf(&b, "Current odds of winning: %s%%\n", stats.Odds)
	fmt.Fprintf(&b, "Time played: %s\n", stats.TimePlayed)

	fmt.Fprintf(&b, "\nCurrent Money Score: $%d\n", stats.MoneyScore)
	b.WriteString(FormatPrizeCounts(stats.PrizeCounts) + "\n")

	return b.String()
}
