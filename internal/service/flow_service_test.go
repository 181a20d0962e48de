package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"fire_planner_backend/internal/config"
	"fire_planner_backend/internal/model"
	"fire_planner_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testReports = AnalysisResult{
	Career:           "career report",
	ROI:              "roi report",
	Fire:             "fire report",
	SideHustle:       "side hustle report",
	InterestsRoadmap: "interests roadmap",
}

type persistedRecord struct {
	userID  string
	profile map[string]string
	result  *AnalysisResult
}

type persisterStub struct {
	mu      sync.Mutex
	records []persistedRecord
}

func (p *persisterStub) SaveDetached(userID string, profile map[string]string, result *AnalysisResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.records = append(p.records, persistedRecord{userID: userID, profile: profile, result: result})
}

func (p *persisterStub) all() []persistedRecord {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]persistedRecord(nil), p.records...)
}

// analysisStub is a scripted analysis backend: it records every payload it
// receives and fails the first `failures` calls with a 500.
type analysisStub struct {
	mu       sync.Mutex
	payloads []map[string]string
	apiKeys  []string
	failures int
}

func (a *analysisStub) handler(w http.ResponseWriter, r *http.Request) {
	var payload map[string]string
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	a.payloads = append(a.payloads, payload)
	a.apiKeys = append(a.apiKeys, r.Header.Get("X-API-Key"))
	fail := a.failures > 0
	if fail {
		a.failures--
	}
	a.mu.Unlock()

	if fail {
		http.Error(w, "analysis blew up", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(testReports)
}

func (a *analysisStub) seen() []map[string]string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]map[string]string(nil), a.payloads...)
}

func (a *analysisStub) keys() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.apiKeys...)
}

func newTestFlowService(t *testing.T, handler http.HandlerFunc) (*FlowService, *persisterStub) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	analysis := NewAnalysisService(config.AnalysisConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	})
	persister := &persisterStub{}
	return NewFlowService(analysis, persister), persister
}

// completeCurrentSection answers every effective question of the current
// section, re-reading the view between passes because answering a gating
// question can grow the demanded set.
func completeCurrentSection(t *testing.T, svc *FlowService, userID string, overrides map[string]string) {
	t.Helper()
	for {
		view, err := svc.View(userID)
		require.NoError(t, err)
		if view.Complete {
			return
		}
		progressed := false
		for _, q := range view.Questions {
			if strings.TrimSpace(view.Answers[q.ID]) != "" {
				continue
			}
			value, ok := overrides[q.ID]
			if !ok {
				if q.Kind == model.SelectQuestion {
					value = q.Options[0]
				} else {
					value = "sample answer"
				}
			}
			_, err := svc.RecordAnswer(userID, q.ID, value)
			require.NoError(t, err)
			progressed = true
		}
		require.True(t, progressed, "section %q cannot be completed", view.SectionID)
	}
}

// runToLastSection completes and advances through every section but the
// final one, leaving the flow on a completed last section.
func runToLastSection(t *testing.T, svc *FlowService, userID string, overrides map[string]string) {
	t.Helper()
	_, err := svc.Start(userID)
	require.NoError(t, err)
	for i := 0; i < len(model.Catalog)-1; i++ {
		completeCurrentSection(t, svc, userID, overrides)
		view, result, err := svc.Advance(context.Background(), userID)
		require.NoError(t, err)
		require.Nil(t, result)
		require.Equal(t, i+1, view.SectionIndex)
	}
	completeCurrentSection(t, svc, userID, overrides)
}

func TestEffectiveQuestionsReactsToGatingAnswer(t *testing.T) {
	sec := model.Catalog[1] // current situation
	require.Equal(t, "current", sec.ID)

	assert.Len(t, EffectiveQuestions(sec, map[string]string{}), 2)
	assert.Len(t, EffectiveQuestions(sec, map[string]string{"current_job": "student"}), 2)

	expanded := EffectiveQuestions(sec, map[string]string{"current_job": "Data Analyst"})
	require.Len(t, expanded, 7)
	assert.Equal(t, "current_job", expanded[0].ID, "base questions come first, group questions after")
	assert.Equal(t, "current_salary", expanded[2].ID)
}

func TestIsSectionCompleteRejectsBlankAnswers(t *testing.T) {
	sec := model.Catalog[2] // skills: one base question
	require.Equal(t, "skills", sec.ID)

	assert.False(t, IsSectionComplete(sec, map[string]string{}))
	assert.False(t, IsSectionComplete(sec, map[string]string{"share_skills": "   "}))
	assert.True(t, IsSectionComplete(sec, map[string]string{"share_skills": "no"}))
	assert.False(t, IsSectionComplete(sec, map[string]string{"share_skills": "yes"}),
		"a triggered group adds unanswered questions, so the section is incomplete again")
}

func TestStartReplacesExistingFlow(t *testing.T) {
	svc, _ := newTestFlowService(t, (&analysisStub{}).handler)

	_, err := svc.Start("u1")
	require.NoError(t, err)
	_, err = svc.RecordAnswer("u1", "name", "Ada")
	require.NoError(t, err)

	view, err := svc.Start("u1")
	require.NoError(t, err)
	assert.Equal(t, 0, view.SectionIndex)
	assert.Empty(t, view.Answers)
}

func TestOperationsWithoutFlow(t *testing.T) {
	svc, _ := newTestFlowService(t, (&analysisStub{}).handler)

	_, err := svc.View("nobody")
	assert.ErrorIs(t, err, util.ErrFlowNotFound)
	_, err = svc.RecordAnswer("nobody", "name", "Ada")
	assert.ErrorIs(t, err, util.ErrFlowNotFound)
	_, _, err = svc.Advance(context.Background(), "nobody")
	assert.ErrorIs(t, err, util.ErrFlowNotFound)
	assert.NoError(t, svc.Discard("nobody"), "discard is idempotent")
}

func TestRecordAnswerRejectsUnknownQuestion(t *testing.T) {
	svc, _ := newTestFlowService(t, (&analysisStub{}).handler)
	_, err := svc.Start("u1")
	require.NoError(t, err)

	_, err = svc.RecordAnswer("u1", "favourite_color", "blue")
	assert.ErrorIs(t, err, util.ErrUnknownQuestion)
}

func TestRetreatOnFirstSectionIsNoOp(t *testing.T) {
	svc, _ := newTestFlowService(t, (&analysisStub{}).handler)
	_, err := svc.Start("u1")
	require.NoError(t, err)

	view, err := svc.Retreat("u1")
	require.NoError(t, err)
	assert.Equal(t, 0, view.SectionIndex)
}

func TestAdvanceRejectsIncompleteSection(t *testing.T) {
	stub := &analysisStub{}
	svc, _ := newTestFlowService(t, stub.handler)
	_, err := svc.Start("u1")
	require.NoError(t, err)

	_, _, err = svc.Advance(context.Background(), "u1")
	assert.ErrorIs(t, err, util.ErrSectionIncomplete)

	view, err := svc.View("u1")
	require.NoError(t, err)
	assert.Equal(t, 0, view.SectionIndex)
	assert.Empty(t, stub.seen(), "an incomplete section must never reach the analysis backend")
}

func TestAnswersSurviveNavigation(t *testing.T) {
	svc, _ := newTestFlowService(t, (&analysisStub{}).handler)
	_, err := svc.Start("u1")
	require.NoError(t, err)
	completeCurrentSection(t, svc, "u1", map[string]string{"name": "Ada"})

	view, result, advErr := svc.Advance(context.Background(), "u1")
	require.NoError(t, advErr)
	require.Nil(t, result)
	assert.Equal(t, 1, view.SectionIndex)

	view, err = svc.Retreat("u1")
	require.NoError(t, err)
	assert.Equal(t, 0, view.SectionIndex)
	assert.Equal(t, "Ada", view.Answers["name"])
	assert.True(t, view.Complete)
}

func TestSubmitSuccess(t *testing.T) {
	stub := &analysisStub{}
	svc, persister := newTestFlowService(t, stub.handler)

	overrides := map[string]string{
		"name":                "Ada",
		"current_job":         "student at METU",
		"share_skills":        "no",
		"considering_masters": "no",
	}
	runToLastSection(t, svc, "u1", overrides)

	view, result, err := svc.Advance(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, view)
	require.NotNil(t, result)
	assert.Equal(t, testReports, *result)

	// Successful submission tears the flow down.
	_, err = svc.View("u1")
	assert.ErrorIs(t, err, util.ErrFlowNotFound)

	payloads := stub.seen()
	require.Len(t, payloads, 1)
	payload := payloads[0]
	assert.Equal(t, "test-key", stub.keys()[0])
	assert.Len(t, payload, len(model.AllQuestionIDs()), "payload covers the whole catalog")
	assert.Equal(t, "Ada", payload["name"])
	assert.Equal(t, "0", payload["current_salary"])
	assert.Equal(t, "none", payload["company_size"])
	assert.Equal(t, "", payload["key_skills"])
	assert.Equal(t, "", payload["masters_timeline"])

	records := persister.all()
	require.Len(t, records, 1)
	assert.Equal(t, "u1", records[0].userID)
	assert.Equal(t, payload, records[0].profile)
	assert.Equal(t, testReports, *records[0].result)
}

func TestSubmitGatewayFailureAllowsIdenticalRetry(t *testing.T) {
	stub := &analysisStub{failures: 1}
	svc, persister := newTestFlowService(t, stub.handler)

	overrides := map[string]string{
		"current_job":         "Data Analyst",
		"share_skills":        "no",
		"considering_masters": "no",
	}
	runToLastSection(t, svc, "u1", overrides)

	_, _, err := svc.Advance(context.Background(), "u1")
	require.ErrorIs(t, err, util.ErrAnalysisFailed)
	assert.Empty(t, persister.all(), "nothing is persisted on a failed submission")

	// The flow is back in its interactive state with every answer intact.
	view, viewErr := svc.View("u1")
	require.NoError(t, viewErr)
	assert.Equal(t, len(model.Catalog)-1, view.SectionIndex)
	assert.True(t, view.Complete)

	view2, result, err := svc.Advance(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, view2)
	require.NotNil(t, result)

	payloads := stub.seen()
	require.Len(t, payloads, 2)
	assert.Equal(t, payloads[0], payloads[1], "a retry recomputes an identical payload")
	require.Len(t, persister.all(), 1)
}

func TestSubmissionInFlightRejectsOtherOperations(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	svc, _ := newTestFlowService(t, func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(testReports)
	})

	overrides := map[string]string{
		"current_job":         "Data Analyst",
		"share_skills":        "no",
		"considering_masters": "no",
	}
	runToLastSection(t, svc, "u1", overrides)

	type advanceOutcome struct {
		result *AnalysisResult
		err    error
	}
	done := make(chan advanceOutcome, 1)
	go func() {
		_, result, err := svc.Advance(context.Background(), "u1")
		done <- advanceOutcome{result: result, err: err}
	}()

	<-entered
	_, err := svc.RecordAnswer("u1", "name", "late edit")
	assert.ErrorIs(t, err, util.ErrSubmissionInFlight)
	_, err = svc.Retreat("u1")
	assert.ErrorIs(t, err, util.ErrSubmissionInFlight)
	_, _, err = svc.Advance(context.Background(), "u1")
	assert.ErrorIs(t, err, util.ErrSubmissionInFlight)
	// Restarting or discarding mid-submission would let the resolving
	// submission tear down a flow it no longer owns.
	_, err = svc.Start("u1")
	assert.ErrorIs(t, err, util.ErrSubmissionInFlight)
	assert.ErrorIs(t, svc.Discard("u1"), util.ErrSubmissionInFlight)

	close(release)
	outcome := <-done
	require.NoError(t, outcome.err)
	require.NotNil(t, outcome.result)

	// The submission resolved: the old flow is gone and a fresh start is
	// accepted again, with nothing carried over.
	_, err = svc.View("u1")
	assert.ErrorIs(t, err, util.ErrFlowNotFound)
	view, err := svc.Start("u1")
	require.NoError(t, err)
	assert.Equal(t, 0, view.SectionIndex)
	assert.Empty(t, view.Answers)
}
