package scoring

import (
	"fmt"
	"math"
)

const (
	DaysPerRound = 3.5 // 每回合模擬經過的天數（每週兩期）
	DaysPerYear  = 365
)

// TimePlayed 將回合數換算為遊玩時間描述。
// 年數無條件捨去，剩餘天數以四捨六入五成雙取整，年數為 0 時省略年份。
func TimePlayed(rounds int) string {
	if rounds < 0 {
		rounds = 0
	}

	totalDays := float64(rounds) * DaysPerRound
	years := int(math.Floor(totalDays / DaysPerYear))
	remainingDays := int(math.RoundToEven(math.Mod(totalDays, DaysPerYear)))

	days := fmt.Sprintf("%d %s", remainingDays, plural(remainingDays != 1, "day", "days"))
	if years > 0 {
		return fmt.Sprintf("%d %s and %s", years, plural(years > 1, "year", "years"), days)
	}
	return days
}

func plural(many bool, one, other string) string {
	if many {
		return other
	}
	return one
}
