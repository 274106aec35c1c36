// Package exercise contains the HTTP handlers that expose the title,
// report-card and PNR functions as JSON endpoints.
//
// Handlers are built by factory functions that capture their dependencies
// and return an http.HandlerFunc:
//
//	router.HandleFunc("POST /api/titles", exercise.Title(normalizer))
package exercise

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/exercises-api/internal/pnr"
	"github.com/aanand-mishra/exercises-api/internal/reportcard"
	"github.com/aanand-mishra/exercises-api/internal/title"
	"github.com/aanand-mishra/exercises-api/internal/types"
	"github.com/aanand-mishra/exercises-api/internal/utils/response"
)

// maxBodyBytes caps request bodies; every payload here is a small record.
const maxBodyBytes = 1 << 20

// ─────────────────────────────────────────────────────────────────────────────
// Title handles POST /api/titles
//
// Request body:
//
//	{ "title": "  DILWALE   DULHANIA   LE   JAYENGE  " }
//
// Success response (200 OK):
//
//	{ "title": "Dilwale Dulhania Le Jayenge" }
//
// Error responses:
//
//	400 Bad Request: empty body, malformed JSON, or a blank title
//
// ─────────────────────────────────────────────────────────────────────────────
func Title(normalizer *title.Normalizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("fixing a title")

		var req types.TitleRequest
		if !decode(w, r, &req) {
			return
		}

		fixed, err := normalizer.Fix(req.Title)
		if err != nil {
			slog.Info("title rejected", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, types.TitleResponse{Title: fixed})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// ReportCard handles POST /api/report-cards
//
// Request body:
//
//	{ "name": "Rahul", "marks": { "maths": 85, "science": 92, "english": 78 } }
//
// Success response (200 OK): the report card, e.g.
//
//	{ "name": "Rahul", "totalMarks": 255, "percentage": 85, "grade": "A", ... }
//
// Error responses:
//
//	400 Bad Request: malformed JSON, non-numeric marks, or failed validation
//
// ─────────────────────────────────────────────────────────────────────────────
func ReportCard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("generating a report card")

		var student types.Student
		if !decode(w, r, &student) {
			return
		}

		report, err := reportcard.Generate(student)
		if err != nil {
			writeValidationFailure(w, err)
			return
		}

		slog.Info("report card generated",
			slog.String("name", report.Name),
			slog.String("grade", report.Grade))

		response.WriteJSON(w, http.StatusOK, report)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// PNR handles POST /api/pnr
//
// Request body: a PNR record
//
//	{ "pnr": "1234567890",
//	  "train": { "number": "12301", "name": "Rajdhani Express", "from": "NDLS", "to": "HWH" },
//	  "classBooked": "3A",
//	  "passengers": [ { "name": "Rahul", "age": 28, "gender": "M", "booking": "B1", "current": "B1" } ] }
//
// Success response (200 OK): the status report.
//
// Error responses:
//
//	400 Bad Request: malformed JSON or failed validation
//
// ─────────────────────────────────────────────────────────────────────────────
func PNR() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("processing a PNR")

		var record types.PNRRecord
		if !decode(w, r, &record) {
			return
		}

		report, err := pnr.Process(record)
		if err != nil {
			writeValidationFailure(w, err)
			return
		}

		slog.Info("PNR processed",
			slog.String("pnr", report.PNRFormatted),
			slog.Int("passengers", report.Summary.TotalPassengers),
			slog.Bool("chart_prepared", report.ChartPrepared))

		response.WriteJSON(w, http.StatusOK, report)
	}
}

// Health handles GET /healthz.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, response.OK())
	}
}

// decode reads the JSON body into v. On failure it writes a 400 response
// and returns false.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)

	if errors.Is(err, io.EOF) {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("request body is empty")))
		return false
	}

	if err != nil {
		slog.Info("request body rejected", slog.String("error", err.Error()))
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(fmt.Errorf("malformed request body: %w", err)))
		return false
	}

	return true
}

// writeValidationFailure renders a rejected record as a 400, listing each
// failing field when the validator reported them.
func writeValidationFailure(w http.ResponseWriter, err error) {
	slog.Info("record rejected", slog.String("error", err.Error()))

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(verrs))
		return
	}

	response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
}
