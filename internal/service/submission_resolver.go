package service

import "fire_planner_backend/internal/model"

// ResolveSubmission finalizes an answer store into the flat payload sent to
// the analysis service. The questionnaire UI may never show a conditional
// question, but the analysis contract expects a fully-populated field set,
// so this is the seam that reconciles the two: every question in the catalog
// ends up with a value.
//
// Rules, applied over a copy of the answers:
//   - any catalog question missing from the store is backfilled with "";
//   - every conditional group whose trigger evaluates false has each of its
//     questions force-set to that question's declared default, overriding
//     anything the user entered before flipping the gating answer.
//
// Pure: the input map is never mutated.
func ResolveSubmission(answers map[string]string) map[string]string {
	payload := make(map[string]string, len(answers))
	for k, v := range answers {
		payload[k] = v
	}

	for _, sec := range model.Catalog {
		for _, q := range sec.Questions {
			if _, ok := payload[q.ID]; !ok {
				payload[q.ID] = ""
			}
		}
		for _, g := range sec.ConditionalGroups {
			triggered := g.Triggered(answers)
			for _, q := range g.Questions {
				if !triggered {
					payload[q.ID] = q.Default
				} else if _, ok := payload[q.ID]; !ok {
					payload[q.ID] = ""
				}
			}
		}
	}

	return payload
}
