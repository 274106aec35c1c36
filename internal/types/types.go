// Package types holds the input records and derived reports shared by the
// title, reportcard and pnr packages and the HTTP handlers. Keeping them in
// one place lets handlers and the computing packages import them without
// depending on each other.
//
// Struct tags serve two purposes:
//
//  1. json:"..."     controls the JSON field names (camelCase, matching the
//     report shapes clients already consume).
//  2. validate:"..." rules checked by go-playground/validator before any
//     derived field is computed.
package types

// ─────────────────────────────────────────────────────────────────────────────
// Title
// ─────────────────────────────────────────────────────────────────────────────

// TitleRequest is the body of POST /api/titles.
type TitleRequest struct {
	Title string `json:"title"`
}

// TitleResponse carries the normalised title.
type TitleResponse struct {
	Title string `json:"title"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Report card
// ─────────────────────────────────────────────────────────────────────────────

// Student is the input to the report-card generator.
//
// Marks is an ordered list rather than a map: the highest/lowest subject
// tie-break depends on the order the subjects were given.
type Student struct {
	Name  string `json:"name"  validate:"notblank"`
	Marks Marks  `json:"marks" validate:"required,min=1,dive"`
}

// Mark is a single subject score.
type Mark struct {
	Subject string  `json:"subject"`
	Score   float64 `json:"score" validate:"gte=0,lte=100"`
}

// ReportCard is derived from a Student. Field order follows the order the
// values are usually read in.
type ReportCard struct {
	Name           string   `json:"name"`
	TotalMarks     float64  `json:"totalMarks"`
	Percentage     float64  `json:"percentage"`
	Grade          string   `json:"grade"`
	HighestSubject string   `json:"highestSubject"`
	LowestSubject  string   `json:"lowestSubject"`
	PassedSubjects []string `json:"passedSubjects"`
	FailedSubjects []string `json:"failedSubjects"`
	SubjectCount   int      `json:"subjectCount"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Railway PNR
// ─────────────────────────────────────────────────────────────────────────────

// PNRRecord is the input to the PNR status processor.
type PNRRecord struct {
	PNR         string      `json:"pnr"         validate:"len=10,number"`
	Train       *Train      `json:"train"       validate:"required"`
	ClassBooked string      `json:"classBooked"`
	Passengers  []Passenger `json:"passengers"  validate:"required,min=1"`
}

// Train values are interpolated into the report as given.
type Train struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// Passenger is one traveller on a PNR. Booking is the status at booking
// time, Current the status now (e.g. "B1", "WL8", "RAC3", "CAN").
type Passenger struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Gender  string `json:"gender"`
	Booking string `json:"booking"`
	Current string `json:"current"`
}

// StatusLabel is the coarse booking state derived from a current status code.
type StatusLabel string

// Status labels. StatusUnlabeled is produced for a status code with no
// recognised prefix.
const (
	StatusConfirmed StatusLabel = "CONFIRMED"
	StatusWaiting   StatusLabel = "WAITING"
	StatusCancelled StatusLabel = "CANCELLED"
	StatusRAC       StatusLabel = "RAC"
	StatusUnlabeled StatusLabel = ""
)

// PassengerStatus is the per-passenger line of a PNR report.
type PassengerStatus struct {
	FormattedName string      `json:"formattedName"`
	BookingStatus string      `json:"bookingStatus"`
	CurrentStatus string      `json:"currentStatus"`
	StatusLabel   StatusLabel `json:"statusLabel"`
	IsConfirmed   bool        `json:"isConfirmed"`
}

// PNRSummary aggregates the passenger statuses. Unlabeled passengers count
// towards TotalPassengers only.
type PNRSummary struct {
	TotalPassengers int  `json:"totalPassengers"`
	Confirmed       int  `json:"confirmed"`
	Waiting         int  `json:"waiting"`
	Cancelled       int  `json:"cancelled"`
	RAC             int  `json:"rac"`
	AllConfirmed    bool `json:"allConfirmed"`
	AnyWaiting      bool `json:"anyWaiting"`
}

// PNRReport is the formatted status report for a PNR.
type PNRReport struct {
	PNRFormatted  string            `json:"pnrFormatted"`
	TrainInfo     string            `json:"trainInfo"`
	Passengers    []PassengerStatus `json:"passengers"`
	Summary       PNRSummary        `json:"summary"`
	ChartPrepared bool              `json:"chartPrepared"`
}
