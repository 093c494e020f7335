// Package gpa converts percentage grades to points on the 4.0 scale.
package gpa

import "math"

type breakpoint struct {
	minGrade int
	points   float64
}

// Descending; the first breakpoint a grade reaches wins.
var scale = []breakpoint{
	{93, 4.0},
	{90, 3.7},
	{87, 3.3},
	{83, 3.0},
	{80, 2.7},
	{77, 2.3},
	{73, 2.0},
	{70, 1.7},
	{67, 1.3},
	{65, 1.0},
}

// FromGrade maps a 0-100 grade to its GPA points. Grades below 65 are worth 0.
func FromGrade(grade int) float64 {
	for _, bp := range scale {
		if grade >= bp.minGrade {
			return bp.points
		}
	}
	return 0.0
}

// Mean returns the average GPA points of grades rounded to two decimals,
// or 0 when there are no grades.
func Mean(grades []int) float64 {
	if len(grades) == 0 {
		return 0.0
	}
	var total float64
	for _, g := range grades {
		total += FromGrade(g)
	}
	return Round2(total / float64(len(grades)))
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
