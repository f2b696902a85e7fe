package paginator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		startY     float64
		endY       float64
		height     float64
		threshold  float64
		wantPage   int
		wantDir    Direction
		wantTarget float64
	}{
		{"short pull down rolls forward to nearest", 0, 95, 100, 0.1, 1, DirectionRollback, 100},
		{"swipe up past threshold", 200, 85, 100, 0.1, 1, DirectionUp, 0},
		{"swipe up inside threshold", 200, 95, 100, 0.1, 1, DirectionRollback, 100},
		{"down with start below end rolls back", 0, 85, 100, 0.1, 1, DirectionRollback, 100},
		{"swipe down commit", 0, 130, 100, 0.2, 1, DirectionDown, 200},
		{"swipe down inside threshold", 0, 115, 100, 0.2, 1, DirectionRollback, 100},
		{"swipe down exactly on threshold", 0, 120, 100, 0.2, 1, DirectionRollback, 100},
		{"small drag from page start", 300, 304, 100, 0.1, 3, DirectionRollback, 300},
		{"swipe up from page zero stays on zero", 50, -20, 100, 0.1, 0, DirectionUp, 0},
		{"overscroll above top", 0, -80, 100, 0.1, 0, DirectionUp, 0},
		{"settle near top", -30, -5, 100, 0.1, 0, DirectionRollback, 0},
		{"no movement", 250, 250, 100, 0.1, 3, DirectionRollback, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Resolve(tt.startY, tt.endY, tt.height, tt.threshold)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, d.Page)
			assert.Equal(t, tt.wantDir, d.Direction)
			assert.Equal(t, tt.wantTarget, d.TargetY)
		})
	}
}

func TestResolveNotReady(t *testing.T) {
	for _, h := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		_, err := Resolve(0, 50, h, 0.1)
		assert.ErrorIs(t, err, ErrNotReady, "height %v", h)
	}
	_, err := Resolve(math.NaN(), 50, 100, 0.1)
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestResolveRollbackWhenStill(t *testing.T) {
	for _, h := range []float64{1, 24, 37.5, 100} {
		for y := -3 * h; y <= 10*h; y += h / 7 {
			d, err := Resolve(y, y, h, 0.1)
			require.NoError(t, err)
			want := math.Max(math.Round(y/h), 0) * h
			assert.Equal(t, DirectionRollback, d.Direction)
			assert.Equal(t, want, d.TargetY, "h=%v y=%v", h, y)
		}
	}
}

func TestResolveLandsOnPageBoundary(t *testing.T) {
	for _, h := range []float64{7, 24, 100} {
		for _, th := range []float64{0.1, 0.2, 0.5} {
			for start := -h; start <= 5*h; start += h / 3 {
				for end := -2 * h; end <= 6*h; end += h / 5 {
					d, err := Resolve(start, end, h, th)
					require.NoError(t, err)
					assert.GreaterOrEqual(t, d.TargetPage, 0)
					assert.Equal(t, float64(d.TargetPage)*h, d.TargetY)
					assert.Equal(t, 0.0, math.Mod(d.TargetY, h))
				}
			}
		}
	}
}

func TestResolveNeverNegativeAboveTop(t *testing.T) {
	for end := -500.0; end < 0; end += 13 {
		for _, start := range []float64{-600, 0, 40, 300} {
			d, err := Resolve(start, end, 100, 0.1)
			require.NoError(t, err)
			assert.Equal(t, 0, d.Page)
			assert.Equal(t, 0, d.TargetPage)
			assert.Equal(t, 0.0, d.TargetY)
		}
	}
}

func TestDecisionBound(t *testing.T) {
	d, err := Resolve(400, 520, 100, 0.1)
	require.NoError(t, err)
	require.Equal(t, 6, d.TargetPage)

	unbounded := d.Bound(0)
	assert.Equal(t, d, unbounded)

	bounded := d.Bound(5)
	assert.True(t, bounded.Bounded)
	assert.Equal(t, 4, bounded.TargetPage)
	assert.Equal(t, 400.0, bounded.TargetY)

	roomy := d.Bound(10)
	assert.False(t, roomy.Bounded)
	assert.Equal(t, 600.0, roomy.TargetY)
}
