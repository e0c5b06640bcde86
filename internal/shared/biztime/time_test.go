package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNowUTC_UsesInjectedClock(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("UTC+8", 8*3600))
	restore := SetClock(func() time.Time { return fixed })

	now := NowUTC()
	assert.Equal(t, time.UTC, now.Location())
	assert.True(t, now.Equal(fixed))

	restore()
	assert.WithinDuration(t, time.Now(), NowUTC(), time.Second)
}
