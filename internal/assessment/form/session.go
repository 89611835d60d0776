package form

// NextOutcome describes the result of advancing a session.
type NextOutcome int

const (
	// NextBlocked means the current answer failed validation and the step
	// did not change.
	NextBlocked NextOutcome = iota
	// NextAdvanced means the session moved to the following question.
	NextAdvanced
	// NextCompleted means the last question was answered and the session
	// is ready for submission.
	NextCompleted
)

// Session tracks one in-progress questionnaire: current step, accumulated
// answers, and per-question touched/error state.
//
// A session is single-owner; callers coordinate access (see web/session).
type Session struct {
	step      int
	answers   AnswerSet
	touched   map[string]bool
	errs      map[string]bool
	completed bool
}

// NewSession starts a session at the first question with no answers.
func NewSession() *Session {
	return &Session{
		touched: make(map[string]bool),
		errs:    make(map[string]bool),
	}
}

// Step returns the zero-based current step index.
func (s *Session) Step() int { return s.step }

// Question returns the catalog entry for the current step.
func (s *Session) Question() Question { return catalog[s.step] }

// Answers returns a snapshot of the accumulated answer set.
func (s *Session) Answers() AnswerSet {
	snapshot := s.answers
	if snapshot.Tecnologias != nil {
		snapshot.Tecnologias = append([]string(nil), snapshot.Tecnologias...)
	}
	return snapshot
}

// Completed reports whether the session reached the terminal submitted state.
func (s *Session) Completed() bool { return s.completed }

// Progress returns the completion percentage shown before the current step,
// matching step/total rounding.
func (s *Session) Progress() int {
	return s.step * 100 / len(catalog)
}

// Touched reports whether the question has received any input this session.
func (s *Session) Touched(id string) bool { return s.touched[id] }

// Invalid reports whether the question's last validation failed.
func (s *Session) Invalid(id string) bool { return s.errs[id] }

// SetValue records an answer for the current question, marks it touched and
// re-runs its validator. Values for other questions are ignored.
func (s *Session) SetValue(id string, v Value) {
	q := s.Question()
	if q.ID != id {
		return
	}
	s.answers.setValue(id, v)
	s.touched[id] = true
	s.errs[id] = !q.Valid(v)
}

// Toggle sets membership of one option in the current multi-select answer
// to selected. Adding an already-present option or removing an absent one is
// a no-op, so a replayed request cannot invert the answer.
func (s *Session) Toggle(id, option string, selected bool) {
	q := s.Question()
	if q.ID != id || q.Kind != KindMultiSelect {
		return
	}
	current := s.answers.Value(id).Options
	next := make([]string, 0, len(current)+1)
	present := false
	for _, existing := range current {
		if existing == option {
			present = true
			if !selected {
				continue
			}
		}
		next = append(next, existing)
	}
	if selected && !present {
		next = append(next, option)
	}
	s.SetValue(id, Value{Options: next})
}

// Next validates the current answer and either advances, completes the
// session on the last step, or blocks leaving touched+error feedback set.
func (s *Session) Next() NextOutcome {
	q := s.Question()
	value := s.answers.Value(q.ID)
	s.touched[q.ID] = true
	if !q.Valid(value) {
		s.errs[q.ID] = true
		return NextBlocked
	}
	s.errs[q.ID] = false
	if s.step == len(catalog)-1 {
		s.completed = true
		return NextCompleted
	}
	s.step++
	return NextAdvanced
}

// Previous steps back one question. Revisiting does not reset answers or
// re-run validation.
func (s *Session) Previous() {
	if s.step > 0 {
		s.step--
	}
}
