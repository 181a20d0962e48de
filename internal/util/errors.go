package util

import "errors"

var (
	ErrFlowNotFound       = errors.New("no questionnaire flow in progress")
	ErrUnknownQuestion    = errors.New("unknown question id")
	ErrSectionIncomplete  = errors.New("current section is incomplete")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrAnalysisFailed     = errors.New("analysis request failed")
	ErrNoActiveMembership = errors.New("no active membership")
)
