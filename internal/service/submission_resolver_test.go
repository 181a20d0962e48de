package service

import (
	"testing"

	"fire_planner_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSubmissionCoversEveryCatalogQuestion(t *testing.T) {
	payload := ResolveSubmission(map[string]string{"name": "Ada"})

	ids := model.AllQuestionIDs()
	require.Len(t, payload, len(ids))
	for _, id := range ids {
		_, ok := payload[id]
		assert.True(t, ok, "payload is missing %q", id)
	}
	assert.Equal(t, "Ada", payload["name"])
	assert.Equal(t, "", payload["age"], "unanswered base questions are backfilled with empty strings")
}

func TestResolveSubmissionDefaultsUntriggeredWorkingGroup(t *testing.T) {
	// Stale answers from before the gating answer was flipped to a
	// non-employment value must be overridden, not forwarded.
	payload := ResolveSubmission(map[string]string{
		"current_job":    "student at METU",
		"current_salary": "45000",
		"industry":       "Software",
	})

	assert.Equal(t, "0", payload["current_salary"])
	assert.Equal(t, "0", payload["job_satisfaction"])
	assert.Equal(t, "0", payload["years_current_job"])
	assert.Equal(t, "none", payload["industry"])
	assert.Equal(t, "none", payload["company_size"])
}

func TestResolveSubmissionKeepsTriggeredWorkingGroup(t *testing.T) {
	payload := ResolveSubmission(map[string]string{
		"current_job":    "Data Analyst",
		"current_salary": "45000",
	})

	assert.Equal(t, "45000", payload["current_salary"])
	assert.Equal(t, "", payload["job_satisfaction"], "triggered but unanswered questions are blank, not defaulted")
}

func TestResolveSubmissionDefaultsDeclinedInterestGroups(t *testing.T) {
	payload := ResolveSubmission(map[string]string{
		"share_skills":              "no",
		"key_skills":                "Python, SQL",
		"considering_masters":       "never thought about it",
		"masters_fields_interested": "Data Science",
	})

	assert.Equal(t, "", payload["key_skills"])
	assert.Equal(t, "", payload["masters_fields_interested"])
	assert.Equal(t, "", payload["masters_concerns"])
}

func TestResolveSubmissionDoesNotMutateInput(t *testing.T) {
	answers := map[string]string{
		"current_job":    "student",
		"current_salary": "45000",
	}

	ResolveSubmission(answers)

	assert.Equal(t, map[string]string{
		"current_job":    "student",
		"current_salary": "45000",
	}, answers)
}
