package vault

import (
	"testing"
	"time"

	"ecoshop/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestLockDaysForLabel(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"1 Tháng", 30},
		{"30 Ngày", 30},
		{"1 Năm", 365},
		{"12 Tháng", 365},
		{"2 Năm", 730},
		{"24 Tháng", 730},
		{"4 Năm", 1460},
		{"48 Tháng", 1460},
		{"Linh hoạt", 0},
		{"Flexible", 0},
		// Unknown labels resolve flexible.
		{"6 Tháng", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, LockDaysForLabel(tt.label))
		})
	}
}

func TestComputeLock(t *testing.T) {
	staked := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("flexible positions are always unlocked", func(t *testing.T) {
		inv := models.Investment{Date: staked, LockDays: 0}
		details := ComputeLock(inv, staked.Add(time.Hour))
		assert.False(t, details.Locked)
		assert.Equal(t, 100.0, details.ProgressPct)
		assert.Equal(t, 0, details.DaysLeft)
	})

	t.Run("mid-term fixed position", func(t *testing.T) {
		inv := models.Investment{Date: staked, LockDays: 365}
		now := staked.Add(182 * 24 * time.Hour)

		details := ComputeLock(inv, now)
		assert.True(t, details.Locked)
		assert.InDelta(t, 49.86, details.ProgressPct, 0.01)
		assert.Equal(t, 183, details.DaysLeft)
		assert.Equal(t, staked.Add(365*24*time.Hour), details.UnlockAt)
	})

	t.Run("matured position unlocks with full progress", func(t *testing.T) {
		inv := models.Investment{Date: staked, LockDays: 30}
		now := staked.Add(31 * 24 * time.Hour)

		details := ComputeLock(inv, now)
		assert.False(t, details.Locked)
		assert.Equal(t, 100.0, details.ProgressPct)
		assert.Equal(t, 0, details.DaysLeft)
	})

	t.Run("progress clamps at the boundaries", func(t *testing.T) {
		inv := models.Investment{Date: staked, LockDays: 30}

		before := ComputeLock(inv, staked.Add(-time.Hour))
		assert.Equal(t, 0.0, before.ProgressPct)

		after := ComputeLock(inv, staked.Add(1000*24*time.Hour))
		assert.Equal(t, 100.0, after.ProgressPct)
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		inv := models.Investment{Date: staked, LockDays: 30}
		now := staked.Add(29*24*time.Hour + time.Hour)

		details := ComputeLock(inv, now)
		assert.Equal(t, 1, details.DaysLeft)
	})
}
