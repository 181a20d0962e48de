package model

import "strings"

type QuestionKind string

const (
	TextQuestion   QuestionKind = "text"
	NumberQuestion QuestionKind = "number"
	SelectQuestion QuestionKind = "select"
)

// Question is one questionnaire input. Answers are always stored as strings;
// typing them is the analysis service's concern.
type Question struct {
	ID          string       `json:"id"`
	Label       string       `json:"label"`
	Kind        QuestionKind `json:"type"`
	Options     []string     `json:"options,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
	Description string       `json:"description,omitempty"`
	// Default is the value the submission resolver injects when this
	// question's conditional group was not triggered. Meaningful only for
	// questions inside a conditional group.
	Default string `json:"-"`
}

type TriggerKind string

const (
	// EmploymentTrigger gates on a free-text answer via negative-marker
	// substring matching.
	EmploymentTrigger TriggerKind = "employment"
	// InterestTrigger gates on a select answer not equal to a negative
	// option.
	InterestTrigger TriggerKind = "interest"
)

// ConditionalGroup is a block of questions shown only when its trigger
// predicate over earlier answers holds.
type ConditionalGroup struct {
	Name            string      `json:"name"`
	Trigger         TriggerKind `json:"trigger"`
	SourceID        string      `json:"sourceId"`
	NegativeMarkers []string    `json:"-"`
	Questions       []Question  `json:"questions"`
}

// EmploymentStatus is the result of the best-effort free-text employment
// classification.
type EmploymentStatus int

const (
	// AmbiguousEmployment: blank answer, nothing to classify.
	AmbiguousEmployment EmploymentStatus = iota
	// NotEmployed: the answer contains a non-employment marker.
	NotEmployed
	// Employed: anything else. This is a heuristic, not a validated
	// classification; "freelancer" lands here because it contains no
	// negative marker.
	Employed
)

// ClassifyEmployment runs a case-insensitive substring match of the negative
// markers over a free-text answer.
func ClassifyEmployment(answer string, negativeMarkers []string) EmploymentStatus {
	v := strings.ToLower(strings.TrimSpace(answer))
	if v == "" {
		return AmbiguousEmployment
	}
	for _, m := range negativeMarkers {
		if strings.Contains(v, m) {
			return NotEmployed
		}
	}
	return Employed
}

// Triggered evaluates the group's gating predicate against the current
// answers. Pure; callers re-evaluate on every answer change.
func (g ConditionalGroup) Triggered(answers map[string]string) bool {
	answer := answers[g.SourceID]
	switch g.Trigger {
	case EmploymentTrigger:
		return ClassifyEmployment(answer, g.NegativeMarkers) == Employed
	case InterestTrigger:
		v := strings.ToLower(strings.TrimSpace(answer))
		if v == "" {
			return false
		}
		for _, m := range g.NegativeMarkers {
			if v == m {
				return false
			}
		}
		return true
	}
	return false
}

// Section is one questionnaire step: its base questions plus any conditional
// groups gated on earlier answers.
type Section struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	Description       string             `json:"description"`
	Questions         []Question         `json:"questions"`
	ConditionalGroups []ConditionalGroup `json:"conditionalGroups,omitempty"`
}
