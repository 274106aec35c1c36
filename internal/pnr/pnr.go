// Package pnr turns a railway PNR record into a formatted status report.
package pnr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aanand-mishra/exercises-api/internal/types"
	"github.com/aanand-mishra/exercises-api/internal/validation"
)

// ErrInvalidRecord is returned when the PNR record fails validation.
// The wrapped error is a validator.ValidationErrors describing each field.
var ErrInvalidRecord = errors.New("invalid PNR record")

// NameWidth is the column width passenger names are padded to.
const NameWidth = 20

// statusPrefixes is checked in order; the first matching prefix wins.
var statusPrefixes = []struct {
	prefix string
	label  types.StatusLabel
}{
	{"B", types.StatusConfirmed}, // berth
	{"S", types.StatusConfirmed}, // seat
	{"WL", types.StatusWaiting},
	{"CAN", types.StatusCancelled},
	{"RAC", types.StatusRAC},
}

// Process validates record and builds its status report.
func Process(record types.PNRRecord) (types.PNRReport, error) {
	if err := validation.Struct(record); err != nil {
		return types.PNRReport{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	report := types.PNRReport{
		PNRFormatted: FormatPNR(record.PNR),
		TrainInfo:    TrainInfo(*record.Train, record.ClassBooked),
		Passengers:   make([]types.PassengerStatus, 0, len(record.Passengers)),
	}

	summary := &report.Summary
	for _, p := range record.Passengers {
		label := Label(p.Current)

		report.Passengers = append(report.Passengers, types.PassengerStatus{
			FormattedName: FormatName(p),
			BookingStatus: p.Booking,
			CurrentStatus: p.Current,
			StatusLabel:   label,
			IsConfirmed:   label == types.StatusConfirmed,
		})

		switch label {
		case types.StatusConfirmed:
			summary.Confirmed++
		case types.StatusWaiting:
			summary.Waiting++
		case types.StatusCancelled:
			summary.Cancelled++
		case types.StatusRAC:
			summary.RAC++
		}
	}

	summary.TotalPassengers = len(record.Passengers)
	summary.AllConfirmed = summary.TotalPassengers == summary.Confirmed
	summary.AnyWaiting = summary.Waiting > 0

	// Every passenger who is not cancelled holds a confirmed berth.
	report.ChartPrepared = summary.TotalPassengers-summary.Confirmed == summary.Cancelled

	return report, nil
}

// Label classifies a current status code by prefix. A code with no known
// prefix yields StatusUnlabeled.
func Label(current string) types.StatusLabel {
	for _, s := range statusPrefixes {
		if strings.HasPrefix(current, s.prefix) {
			return s.label
		}
	}
	return types.StatusUnlabeled
}

// FormatPNR renders a 10-digit PNR as 3-3-4 digit groups, e.g. 123-456-7890.
// Any other length is returned unchanged.
func FormatPNR(pnr string) string {
	if len(pnr) != 10 {
		return pnr
	}
	return pnr[:3] + "-" + pnr[3:6] + "-" + pnr[6:10]
}

// FormatName pads the passenger name to NameWidth and appends (age/gender).
func FormatName(p types.Passenger) string {
	return fmt.Sprintf("%-*s(%d/%s)", NameWidth, p.Name, p.Age, p.Gender)
}

// TrainInfo renders the one-line journey summary.
func TrainInfo(t types.Train, classBooked string) string {
	return fmt.Sprintf("Train: %s - %s | %s → %s | Class: %s",
		t.Number, t.Name, t.From, t.To, classBooked)
}
