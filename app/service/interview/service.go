// Package interview owns the conversation state machine: it walks a
// conversation through the fixed question script, intercepts crisis phrases
// and hands completed interviews to the summary generator.
package interview

import (
	"log/slog"
	"strings"

	"schuldenkompass/app/service/script"
	"schuldenkompass/app/service/summary"

	"github.com/samber/do"
)

const shortResponseTokens = 5

const escalationFollowUp = "\n\n🚨 Wichtiger Hinweis: Da du bereits Mahnungen oder rechtliche Konsequenzen " +
	"erwähnst, empfehle ich dringend, professionelle Hilfe in Anspruch zu nehmen. " +
	"Möchtest du, dass ich dir dabei helfe, einen Termin bei einer Schuldnerberatung zu vereinbaren?"

const genericFollowUp = "\n\nMöchtest du, dass ich dir dabei helfe, " +
	"eine detaillierte Gläubigerliste zu erstellen oder ein Haushaltsbuch anzulegen?"

type Service struct {
	picker Picker
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{
		picker: randomPicker{},
	}, nil
}

// Respond feeds one user message into the state machine and returns the bot
// reply. All validation failures are recoverable re-prompts; the method never
// fails and never corrupts state.
func (s *Service) Respond(state *State, message string) string {
	if !state.Started {
		state.Started = true
		state.StepIndex = 0

		return script.Greeting
	}

	state.rememberInput(message)

	if response, ok := detectCrisis(message); ok {
		slog.Warn("Crisis phrase detected, interrupting interview",
			"step", state.StepIndex,
			"telegram", true)

		return s.empathyPhrase() + " " + response + " Möchtest du, dass ich dir dabei helfe, Unterstützung zu finden?"
	}

	if step, ok := script.At(state.StepIndex); ok {
		result := script.Validate(message, step)
		if !result.OK {
			return result.Message + "\n\n" + step.Question()
		}

		state.Answers[step.Key] = result.Value
		state.StepIndex++
	}

	next, ok := script.At(state.StepIndex)
	if !ok {
		return s.completeInterview(state)
	}

	// Short answers get a brief acknowledgment, longer ones more empathy.
	var prefix string
	if len(strings.Fields(state.lastInput())) <= shortResponseTokens {
		prefix = s.acknowledgment()
	} else {
		prefix = s.empathyPhrase() + " " + s.transitionPhrase()
	}

	return prefix + " " + next.Question()
}

func (s *Service) completeInterview(state *State) string {
	report := summary.Generate(state.Answers)

	if state.answerEquals("has_warnings", "Ja") || state.answerEquals("legal_issues", "Ja") {
		return report + escalationFollowUp
	}

	return report + genericFollowUp
}
