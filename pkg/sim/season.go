package sim

// The 24 solar terms of the traditional calendar, starting from 立春.
// A 52-week game maps weeks onto terms roughly every 2.2 weeks; health
// events use the term and the derived season for eligibility tags.
var solarTerms = [24]string{
	"立春", "雨水", "惊蛰", "春分", "清明", "谷雨",
	"立夏", "小满", "芒种", "夏至", "小暑", "大暑",
	"立秋", "处暑", "白露", "秋分", "寒露", "霜降",
	"立冬", "小雪", "大雪", "冬至", "小寒", "大寒",
}

const (
	SeasonSpring = "spring"
	SeasonSummer = "summer"
	SeasonAutumn = "autumn"
	SeasonWinter = "winter"
)

func termIndex(week, totalWeeks int) int {
	if totalWeeks <= 0 {
		return 0
	}
	if week < 1 {
		week = 1
	}
	if week > totalWeeks {
		week = totalWeeks
	}
	idx := (week - 1) * len(solarTerms) / totalWeeks
	if idx >= len(solarTerms) {
		idx = len(solarTerms) - 1
	}
	return idx
}

// SolarTerm returns the solar-term name for a 1-based week.
func SolarTerm(week, totalWeeks int) string {
	return solarTerms[termIndex(week, totalWeeks)]
}

// Season returns the season for a 1-based week. Terms 0-5 are spring,
// 6-11 summer, 12-17 autumn, 18-23 winter.
func Season(week, totalWeeks int) string {
	switch termIndex(week, totalWeeks) / 6 {
	case 0:
		return SeasonSpring
	case 1:
		return SeasonSummer
	case 2:
		return SeasonAutumn
	default:
		return SeasonWinter
	}
}
