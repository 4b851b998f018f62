package vault

import (
	"math"
	"time"

	"ecoshop/internal/models"
)

// Known duration labels and their lock periods in days. Labels not in the
// table resolve to zero days, i.e. flexible and never locked.
var lockDaysByLabel = map[string]int{
	"1 Tháng":   30,
	"30 Ngày":   30,
	"1 Năm":     365,
	"12 Tháng":  365,
	"2 Năm":     730,
	"24 Tháng":  730,
	"4 Năm":     1460,
	"48 Tháng":  1460,
	"Linh hoạt": 0,
	"Flexible":  0,
}

// LockDaysForLabel resolves a duration label to its lock period.
func LockDaysForLabel(label string) int {
	return lockDaysByLabel[label]
}

// LockDetails describes the lock state of a position at a point in time.
type LockDetails struct {
	UnlockAt    time.Time `json:"unlockAt"`
	ProgressPct float64   `json:"progressPct"`
	DaysLeft    int       `json:"daysLeft"`
	Locked      bool      `json:"locked"`
}

// ComputeLock derives the lock state of an investment. Flexible positions
// (zero lock days) are always unlocked and fully progressed.
func ComputeLock(inv models.Investment, now time.Time) LockDetails {
	if inv.LockDays <= 0 {
		return LockDetails{
			UnlockAt:    inv.Date,
			ProgressPct: 100,
			DaysLeft:    0,
			Locked:      false,
		}
	}

	total := time.Duration(inv.LockDays) * 24 * time.Hour
	unlockAt := inv.Date.Add(total)
	elapsed := now.Sub(inv.Date)

	progress := float64(elapsed) / float64(total) * 100
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	daysLeft := 0
	if now.Before(unlockAt) {
		daysLeft = int(math.Ceil(unlockAt.Sub(now).Hours() / 24))
	}

	return LockDetails{
		UnlockAt:    unlockAt,
		ProgressPct: progress,
		DaysLeft:    daysLeft,
		Locked:      now.Before(unlockAt),
	}
}
