package gamification

import (
	"coachbot/internal/catalog"
	"coachbot/internal/models"
)

// LevelFromXP возвращает положение на кривой уровней для набранного XP.
// Таблица сканируется от старшего уровня к младшему, берётся первая
// ступень с minXP <= xp. На максимальном уровне progress фиксируется
// в 1, чтобы не делить на ноль.
func LevelFromXP(xp int) models.LevelInfo {
	levels := catalog.Levels
	current := levels[0]
	next := levels[1]

	for i := len(levels) - 1; i >= 0; i-- {
		if xp >= levels[i].MinXP {
			current = levels[i]
			if i+1 < len(levels) {
				next = levels[i+1]
			} else {
				next = levels[i]
			}
			break
		}
	}

	progress := 1.0
	if span := next.MinXP - current.MinXP; span > 0 {
		progress = float64(xp-current.MinXP) / float64(span)
		if progress < 0 {
			progress = 0
		}
		if progress > 1 {
			progress = 1
		}
	}

	return models.LevelInfo{
		Level:       current.Level,
		Title:       current.Title,
		Progress:    progress,
		NextLevelXP: next.MinXP,
	}
}
