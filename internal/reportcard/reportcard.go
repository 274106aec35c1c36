// Package reportcard derives a report card from a student's subject marks.
//
// Validation is all-or-nothing: Generate either returns a complete report
// or an error wrapping ErrInvalidStudent, never a partial result.
package reportcard

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aanand-mishra/exercises-api/internal/types"
	"github.com/aanand-mishra/exercises-api/internal/validation"
)

// ErrInvalidStudent is returned when the student record fails validation.
// The wrapped error is a validator.ValidationErrors describing each field.
var ErrInvalidStudent = errors.New("invalid student record")

// PassMark is the lowest mark that counts as a pass.
const PassMark = 40

// gradeLadder is evaluated top down; the first threshold the percentage
// reaches wins.
var gradeLadder = []struct {
	min   float64
	grade string
}{
	{90, "A+"},
	{80, "A"},
	{70, "B"},
	{60, "C"},
	{40, "D"},
}

// Generate validates student and computes its report card.
func Generate(student types.Student) (types.ReportCard, error) {
	if err := validation.Struct(student); err != nil {
		return types.ReportCard{}, fmt.Errorf("%w: %w", ErrInvalidStudent, err)
	}

	report := types.ReportCard{
		Name:           student.Name,
		PassedSubjects: []string{},
		FailedSubjects: []string{},
		SubjectCount:   len(student.Marks),
	}

	highest, lowest := math.Inf(-1), math.Inf(1)
	for _, mark := range student.Marks {
		report.TotalMarks += mark.Score

		if mark.Score >= PassMark {
			report.PassedSubjects = append(report.PassedSubjects, mark.Subject)
		} else {
			report.FailedSubjects = append(report.FailedSubjects, mark.Subject)
		}

		// Strict comparisons keep the first subject on a tie.
		if mark.Score > highest {
			highest = mark.Score
			report.HighestSubject = mark.Subject
		}
		if mark.Score < lowest {
			lowest = mark.Score
			report.LowestSubject = mark.Subject
		}
	}

	report.Percentage = Round2(report.TotalMarks / float64(report.SubjectCount*100) * 100)
	report.Grade = Grade(report.Percentage)

	return report, nil
}

// Grade maps a percentage to a letter grade.
func Grade(percentage float64) string {
	for _, step := range gradeLadder {
		if percentage >= step.min {
			return step.grade
		}
	}
	return "F"
}

// Round2 rounds x to two decimal places, half away from zero, judged on
// the exact binary value of x. 0.125 rounds to 0.13 while 1.005, stored as
// 1.00499999..., rounds to 1.
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	// A float64 has at most 1074 fractional binary digits, so this many
	// decimal digits render its value exactly.
	exact := strconv.FormatFloat(math.Abs(x), 'f', 1074, 64)
	point := strings.IndexByte(exact, '.')

	r, err := strconv.ParseFloat(exact[:point+3], 64)
	if err != nil {
		return x
	}
	if exact[point+3] >= '5' {
		r, _ = strconv.ParseFloat(strconv.FormatFloat(r+0.01, 'f', 2, 64), 64)
	}

	return math.Copysign(r, x)
}
