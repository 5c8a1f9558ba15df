package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Lumen-Tech-LLC/lumen/internal/model"
)

func TestWindowsOverlap(t *testing.T) {
	cases := []struct {
		name string
		a, b model.DateWindow
		want bool
	}{
		{
			"both unbounded",
			model.DateWindow{},
			model.DateWindow{},
			true,
		},
		{
			"unbounded meets far-future start",
			model.DateWindow{},
			model.DateWindow{Start: date(2030, time.January, 1)},
			true,
		},
		{
			"disjoint",
			model.DateWindow{Start: date(2025, time.January, 1), End: date(2025, time.January, 31)},
			model.DateWindow{Start: date(2025, time.February, 1), End: date(2025, time.February, 28)},
			false,
		},
		{
			"shared single day is overlap (inclusive bounds)",
			model.DateWindow{Start: date(2025, time.January, 1), End: date(2025, time.January, 31)},
			model.DateWindow{Start: date(2025, time.January, 31), End: date(2025, time.March, 1)},
			true,
		},
		{
			"open end reaches into later window",
			model.DateWindow{Start: date(2025, time.June, 1)},
			model.DateWindow{Start: date(2026, time.June, 1), End: date(2026, time.June, 30)},
			true,
		},
		{
			"open start ends before other begins",
			model.DateWindow{End: date(2024, time.December, 31)},
			model.DateWindow{Start: date(2025, time.January, 1)},
			false,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, WindowsOverlap(c.a, c.b))
			assert.Equal(t, c.want, WindowsOverlap(c.b, c.a))
		})
	}
}

func TestWindowContains(t *testing.T) {
	w := model.DateWindow{Start: date(2025, time.March, 1), End: date(2025, time.March, 31)}

	assert.True(t, WindowContains(w, *date(2025, time.March, 1)))
	assert.True(t, WindowContains(w, *date(2025, time.March, 31)))
	assert.False(t, WindowContains(w, *date(2025, time.April, 1)))
	assert.False(t, WindowContains(w, *date(2025, time.February, 28)))

	assert.True(t, WindowContains(model.DateWindow{}, *date(1999, time.January, 1)))
}
