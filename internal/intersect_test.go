package internal

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersect(t *testing.T) {
	t.Run("crossing", func(t *testing.T) {
		p := Intersect(Point{X: 0, Y: 0}, Point{X: 2, Y: 0}, Point{X: 0.5, Y: -1}, Point{X: 1, Y: 2})
		assert.InDelta(t, 1, p.X, 1e-12)
		assert.InDelta(t, 0, p.Y, 1e-12)
	})

	t.Run("direction does not matter", func(t *testing.T) {
		a := Intersect(Point{X: 0, Y: 0}, Point{X: 0, Y: -1}, Point{X: -1, Y: -0.3}, Point{X: 2, Y: 0.1})
		b := Intersect(Point{X: 0, Y: -1}, Point{X: 0, Y: 0}, Point{X: -1, Y: -0.3}, Point{X: -2, Y: -0.1})
		assert.InDelta(t, a.X, b.X, 1e-12)
		assert.InDelta(t, a.Y, b.Y, 1e-12)
		assert.InDelta(t, -0.25, a.Y, 1e-12)
	})

	t.Run("clamped to the segment", func(t *testing.T) {
		p := Intersect(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 3, Y: 1}, Point{X: 0, Y: 1})
		assert.Equal(t, Point{X: 1, Y: 0}, p)
	})

	t.Run("parallel uses the midpoint", func(t *testing.T) {
		var buf bytes.Buffer
		SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer SetLogger(nil)

		p := Intersect(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 0, Y: 1}, Point{X: 1, Y: 0})
		assert.Equal(t, Point{X: 0.5, Y: 0}, p)
		assert.Contains(t, buf.String(), "parallel intersection")
	})
}

func TestSetLogger(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, Logger())
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
