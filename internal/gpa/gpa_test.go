package gpa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromGrade_Breakpoints(t *testing.T) {
	cases := []struct {
		grade int
		want  float64
	}{
		{100, 4.0},
		{93, 4.0},
		{92, 3.7},
		{90, 3.7},
		{89, 3.3},
		{87, 3.3},
		{83, 3.0},
		{80, 2.7},
		{77, 2.3},
		{73, 2.0},
		{70, 1.7},
		{67, 1.3},
		{65, 1.0},
		{64, 0.0},
		{0, 0.0},
		{-5, 0.0},
		{150, 4.0},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, FromGrade(tc.grade), "grade %d", tc.grade)
	}
}

func TestFromGrade_NonIncreasingAsGradeDrops(t *testing.T) {
	prev := FromGrade(100)
	for g := 99; g >= 0; g-- {
		cur := FromGrade(g)
		if cur > prev {
			t.Fatalf("FromGrade(%d)=%v is greater than FromGrade(%d)=%v", g, cur, g+1, prev)
		}
		prev = cur
	}
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.5, Mean([]int{93, 65}))
	assert.Equal(t, 3.67, Mean([]int{93, 93, 83}))
	assert.Equal(t, 3.7, Mean([]int{90}))
}
