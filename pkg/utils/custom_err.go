package utils

import "errors"

var (
	ErrEmptyInput         = errors.New("empty user input")
	ErrSessionNotFound    = errors.New("negotiation session not found")
	ErrParseInFlight      = errors.New("a parse turn is already in flight")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrInvalidTransition  = errors.New("illegal negotiation state transition")
	ErrPlanNotCreated     = errors.New("planner rejected the request")
	ErrPlannerUnavailable = errors.New("planner service unavailable")
	ErrPlannerTimeout     = errors.New("planner service timed out")
)
