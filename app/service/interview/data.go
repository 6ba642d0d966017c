package interview

import "time"

const recentInputsSize = 3

// State is the mutable progress of one conversation. It is not safe for
// concurrent mutation; callers serialize access per conversation id.
type State struct {
	Started        bool
	StepIndex      int
	Answers        map[string]any
	RecentInputs   []string
	CreatedAt      time.Time
	LastActivityAt time.Time
}

func NewState() *State {
	now := time.Now()

	return &State{
		Answers:        make(map[string]any),
		CreatedAt:      now,
		LastActivityAt: now,
	}
}

func (s *State) rememberInput(text string) {
	if len(s.RecentInputs) >= recentInputsSize {
		s.RecentInputs = append(s.RecentInputs[1:], text)
	} else {
		s.RecentInputs = append(s.RecentInputs, text)
	}
}

func (s *State) lastInput() string {
	if len(s.RecentInputs) == 0 {
		return ""
	}

	return s.RecentInputs[len(s.RecentInputs)-1]
}

func (s *State) answerEquals(key, value string) bool {
	stored, ok := s.Answers[key].(string)

	return ok && stored == value
}
