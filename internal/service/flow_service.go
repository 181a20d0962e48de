package service

import (
	"context"
	"fire_planner_backend/internal/model"
	"fire_planner_backend/internal/util"
	"fmt"
	"strings"
	"sync"
)

// EffectiveQuestions returns the questions a section currently demands: the
// base questions followed by each conditional group's questions, in catalog
// declaration order, for every group whose trigger holds against the given
// answers. Pure, and deliberately not memoized: flipping a gating answer
// must immediately change the demanded set.
func EffectiveQuestions(sec model.Section, answers map[string]string) []model.Question {
	questions := make([]model.Question, 0, len(sec.Questions))
	questions = append(questions, sec.Questions...)
	for _, g := range sec.ConditionalGroups {
		if g.Triggered(answers) {
			questions = append(questions, g.Questions...)
		}
	}
	return questions
}

// IsSectionComplete reports whether every effective question has a non-blank
// stored answer. Empty and whitespace-only values both fail.
func IsSectionComplete(sec model.Section, answers map[string]string) bool {
	for _, q := range EffectiveQuestions(sec, answers) {
		if strings.TrimSpace(answers[q.ID]) == "" {
			return false
		}
	}
	return true
}

// Flow is one user's questionnaire in progress: a cursor over the catalog
// plus the answers recorded so far. The submitting flag enforces at most one
// in-flight submission; while it is set every other operation is rejected.
type Flow struct {
	mu           sync.Mutex
	userID       string
	sectionIndex int
	answers      map[string]string
	submitting   bool
}

// SectionView is the flow state returned to the client after every
// operation: the current section, its effective question set, and the
// answers recorded so far.
type SectionView struct {
	SectionIndex  int               `json:"sectionIndex"`
	TotalSections int               `json:"totalSections"`
	SectionID     string            `json:"sectionId"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Questions     []model.Question  `json:"questions"`
	Answers       map[string]string `json:"answers"`
	Complete      bool              `json:"complete"`
}

// ResultPersister receives completed submissions off the critical path.
type ResultPersister interface {
	SaveDetached(userID string, profile map[string]string, result *AnalysisResult)
}

// FlowService owns the live flows, one per authenticated user. Flows are
// in-memory only: there is no draft persistence, and a flow disappears on
// teardown, restart, or successful submission.
type FlowService struct {
	mu       sync.Mutex
	flows    map[string]*Flow
	analysis *AnalysisService
	results  ResultPersister
}

func NewFlowService(analysis *AnalysisService, results ResultPersister) *FlowService {
	return &FlowService{
		flows:    make(map[string]*Flow),
		analysis: analysis,
		results:  results,
	}
}

// Start creates a fresh flow for the user, replacing any existing one. A
// flow mid-submission cannot be replaced: the submission owns it until it
// resolves.
func (s *FlowService) Start(userID string) (*SectionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.flows[userID]; ok && existing.isSubmitting() {
		return nil, util.ErrSubmissionInFlight
	}

	flow := &Flow{
		userID:  userID,
		answers: make(map[string]string),
	}
	s.flows[userID] = flow

	flow.mu.Lock()
	defer flow.mu.Unlock()
	return flow.viewLocked(), nil
}

func (s *FlowService) get(userID string) (*Flow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, ok := s.flows[userID]
	if !ok {
		return nil, util.ErrFlowNotFound
	}
	return flow, nil
}

// removeIf tears down the user's registry entry only if it is still the
// given flow, so a teardown can never take out a flow it does not own.
func (s *FlowService) removeIf(userID string, flow *Flow) {
	s.mu.Lock()
	if s.flows[userID] == flow {
		delete(s.flows, userID)
	}
	s.mu.Unlock()
}

// View returns the current section state without mutating anything.
func (s *FlowService) View(userID string) (*SectionView, error) {
	flow, err := s.get(userID)
	if err != nil {
		return nil, err
	}
	flow.mu.Lock()
	defer flow.mu.Unlock()
	return flow.viewLocked(), nil
}

// RecordAnswer upserts one answer. No validation beyond the question
// existing in the catalog; an empty string is a legal stored value that
// simply fails completeness. Answers survive navigation in both directions.
func (s *FlowService) RecordAnswer(userID, questionID, value string) (*SectionView, error) {
	if !knownQuestionIDs[questionID] {
		return nil, util.ErrUnknownQuestion
	}

	flow, err := s.get(userID)
	if err != nil {
		return nil, err
	}

	flow.mu.Lock()
	defer flow.mu.Unlock()
	if flow.submitting {
		return nil, util.ErrSubmissionInFlight
	}
	flow.answers[questionID] = value
	return flow.viewLocked(), nil
}

// Retreat steps back one section; a no-op on the first. Recorded answers are
// kept.
func (s *FlowService) Retreat(userID string) (*SectionView, error) {
	flow, err := s.get(userID)
	if err != nil {
		return nil, err
	}

	flow.mu.Lock()
	defer flow.mu.Unlock()
	if flow.submitting {
		return nil, util.ErrSubmissionInFlight
	}
	if flow.sectionIndex > 0 {
		flow.sectionIndex--
	}
	return flow.viewLocked(), nil
}

// Advance moves to the next section when the current one is complete. On the
// last section it runs the submission sequence instead: resolve the payload,
// call the analysis service, and on success hand the record to the persister
// on a detached path and tear the flow down. A gateway failure leaves the
// flow interactive on the last section with all answers intact, so a retry
// recomputes an identical payload.
func (s *FlowService) Advance(ctx context.Context, userID string) (*SectionView, *AnalysisResult, error) {
	flow, err := s.get(userID)
	if err != nil {
		return nil, nil, err
	}

	flow.mu.Lock()
	if flow.submitting {
		flow.mu.Unlock()
		return nil, nil, util.ErrSubmissionInFlight
	}
	sec := model.Catalog[flow.sectionIndex]
	if !IsSectionComplete(sec, flow.answers) {
		flow.mu.Unlock()
		return nil, nil, util.ErrSectionIncomplete
	}

	if flow.sectionIndex < len(model.Catalog)-1 {
		flow.sectionIndex++
		view := flow.viewLocked()
		flow.mu.Unlock()
		return view, nil, nil
	}

	flow.submitting = true
	payload := ResolveSubmission(flow.answers)
	flow.mu.Unlock()

	result, err := s.analysis.AnalyzeAll(ctx, payload)
	if err != nil {
		// Abort: back to the interactive state, nothing retained.
		flow.mu.Lock()
		flow.submitting = false
		flow.mu.Unlock()
		return nil, nil, fmt.Errorf("%w: %v", util.ErrAnalysisFailed, err)
	}

	// Persistence is issued strictly after the gateway resolved, but the
	// result is returned without waiting for it.
	s.results.SaveDetached(userID, payload, result)
	s.removeIf(userID, flow)

	return nil, result, nil
}

// Discard tears down the user's flow, dropping all answers. Idempotent when
// no flow exists; rejected while a submission is in flight.
func (s *FlowService) Discard(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flow, ok := s.flows[userID]
	if !ok {
		return nil
	}
	if flow.isSubmitting() {
		return util.ErrSubmissionInFlight
	}
	delete(s.flows, userID)
	return nil
}

func (f *Flow) isSubmitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// viewLocked builds the section view; the flow mutex must be held.
func (f *Flow) viewLocked() *SectionView {
	sec := model.Catalog[f.sectionIndex]

	answers := make(map[string]string, len(f.answers))
	for k, v := range f.answers {
		answers[k] = v
	}

	return &SectionView{
		SectionIndex:  f.sectionIndex,
		TotalSections: len(model.Catalog),
		SectionID:     sec.ID,
		Title:         sec.Title,
		Description:   sec.Description,
		Questions:     EffectiveQuestions(sec, f.answers),
		Answers:       answers,
		Complete:      IsSectionComplete(sec, f.answers),
	}
}

var knownQuestionIDs = func() map[string]bool {
	ids := make(map[string]bool)
	for _, id := range model.AllQuestionIDs() {
		ids[id] = true
	}
	return ids
}()
