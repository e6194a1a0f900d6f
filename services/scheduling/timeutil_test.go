package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeToMinutes(t *testing.T) {
	assert.Equal(t, 0, TimeToMinutes("00:00"))
	assert.Equal(t, 600, TimeToMinutes("10:00"))
	assert.Equal(t, 755, TimeToMinutes("12:35"))
	assert.Equal(t, 1439, TimeToMinutes("23:59"))
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "10:00", MinutesToTime(600))
	assert.Equal(t, "12:35", MinutesToTime(755))
	assert.Equal(t, "23:59", MinutesToTime(1439))
}

func TestTimeToMinutesRoundTrip(t *testing.T) {
	for m := 0; m < 24*60; m += 5 {
		assert.Equal(t, m, TimeToMinutes(MinutesToTime(m)))
	}
}

func TestOverlaps(t *testing.T) {
	// Plain overlap.
	assert.True(t, Overlaps(600, 660, 630, 690))
	// Containment.
	assert.True(t, Overlaps(600, 720, 630, 660))
	// Identical intervals.
	assert.True(t, Overlaps(600, 660, 600, 660))
	// Disjoint.
	assert.False(t, Overlaps(600, 660, 720, 780))
	// Adjacent intervals share a boundary but do not overlap.
	assert.False(t, Overlaps(600, 660, 660, 720))
	assert.False(t, Overlaps(660, 720, 600, 660))
}

func TestOverlapsIsSymmetric(t *testing.T) {
	cases := [][4]int{
		{600, 660, 630, 690},
		{600, 660, 660, 720},
		{600, 720, 630, 660},
		{600, 660, 720, 780},
	}
	for _, c := range cases {
		assert.Equal(t,
			Overlaps(c[0], c[1], c[2], c[3]),
			Overlaps(c[2], c[3], c[0], c[1]))
	}
}
