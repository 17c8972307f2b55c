package forms

// Next advances the question cursor by one, clamped to the last question.
// No-op at the end or when the form has no questions; the cursor never
// wraps.
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Current < len(s.QuestionOrder)-1 {
		s.Current++
	}
}

// Prev moves the cursor back by one, clamped to the first question.
func (s *Session) Prev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Current > 0 {
		s.Current--
	}
}

// Position returns the cursor index and total question count.
func (s *Session) Position() (index, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Current, len(s.QuestionOrder)
}

// CurrentPath returns the field path under the cursor, or "" when the
// question order is empty. Navigation is purely positional — no skipping
// based on validity or prior answers.
func (s *Session) CurrentPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.QuestionOrder) == 0 {
		return ""
	}
	return s.QuestionOrder[s.Current]
}
