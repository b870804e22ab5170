package model

import "encoding/json"

// EvaluationStatusDone marks a course whose evaluation is already recorded.
const EvaluationStatusDone = "1"

// Course represents one course offering returned by the evaluation listing.
// ClassID is kept verbatim because its wire type differs between backend
// deployments (string vs number) and it is only ever echoed back.
type Course struct {
	Code             string          `json:"code"`
	Title            string          `json:"title"`
	StaffFullname    string          `json:"staff_fullname"`
	ClassID          json.RawMessage `json:"class_id"`
	EvaluationStatus string          `json:"evaluation_status"`
}

// Pending reports whether the course still awaits an evaluation.
func (c Course) Pending() bool {
	return c.EvaluationStatus != EvaluationStatusDone
}

// AcademicYearOption is one entry of the academic year catalog.
type AcademicYearOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
