package service

// Level thresholds for cumulative points. The ladder widens as students
// progress so early levels come quickly and later ones take sustained play.
const MaxLevel = 10

// LevelForPoints maps a cumulative point total onto a level between 1 and
// MaxLevel. Points never decrease, so neither does the derived level.
func LevelForPoints(points int) int {
	var level int
	switch {
	case points < 50:
		level = 1
	case points < 120:
		level = 2
	case points < 220:
		level = 3
	case points < 350:
		level = 4
	case points < 520:
		level = 5
	case points < 730:
		level = 6
	case points < 990:
		level = 7
	case points < 1300:
		level = 8
	case points < 1700:
		level = 9
	default:
		level = MaxLevel
	}
	return level
}
