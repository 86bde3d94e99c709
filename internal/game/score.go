package game

import "math"

// ScoreState tracks the session totals and the active streak. It is a
// plain value: resolvePop returns the successor state instead of
// mutating shared fields, which keeps scoring replayable in tests.
// The zero value is a fresh session.
type ScoreState struct {
	TotalScore  int
	TotalPopped int
	Streak      int     // consecutive pops within the streak window
	LastPop     float64 // session time of the last pop; meaningful once Streak > 0
}

// basePoints is the radius-weighted award. Small bubbles demand more
// precision and pay more; the reference tuning pays 80 at radius 10.
func basePoints(radius float64, tun Tuning) int {
	if radius <= 0 {
		return 0
	}
	return int(math.Round(tun.ScoreBaseK / radius))
}

// resolvePop computes the award for popping b at time now. It returns
// the score delta, the successor state and the combo tier label (""
// below the combo threshold). Streak decay is evaluated here, lazily: a
// pop landing after the window always restarts the streak at 1.
func resolvePop(b Bubble, now float64, st ScoreState, tun Tuning) (int, ScoreState, string) {
	streak := 1
	if st.Streak > 0 && now-st.LastPop <= tun.StreakWindow {
		streak = st.Streak + 1
		if streak > tun.StreakCap {
			streak = tun.StreakCap
		}
	}

	delta := basePoints(b.Radius, tun) * max(1, streak)

	next := st
	next.TotalScore += delta
	next.TotalPopped++
	next.LastPop = now
	next.Streak = streak

	tier, _ := comboTier(streak)
	return delta, next, tier
}

// comboTier returns the celebration label and display color for a
// streak count. Labels start at three in a row and escalate to the cap;
// below that the label is empty.
func comboTier(streak int) (string, RGB) {
	if streak < ComboMinStreak {
		return "", RGB{}
	}
	switch streak {
	case 3:
		return "NICE!", RGB{R: 120, G: 230, B: 170}
	case 4:
		return "SWEET!", RGB{R: 120, G: 230, B: 170}
	case 5:
		return "GREAT!", RGB{R: 110, G: 200, B: 255}
	case 6:
		return "SUPER!", RGB{R: 110, G: 200, B: 255}
	case 7:
		return "MEGA!", RGB{R: 210, G: 140, B: 255}
	case 8:
		return "ULTRA!", RGB{R: 210, G: 140, B: 255}
	case 9:
		return "EPIC!", RGB{R: 255, G: 170, B: 90}
	}
	return "BUBBLE FRENZY!", RGB{R: 255, G: 215, B: 80}
}
