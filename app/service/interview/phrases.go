package interview

import "math/rand/v2"

// Picker selects one index out of n phrase candidates. The production picker
// is pseudo-random; tests inject a fixed one to assert exact phrasing.
type Picker interface {
	Pick(n int) int
}

type randomPicker struct{}

func (randomPicker) Pick(n int) int {
	return rand.IntN(n)
}

var acknowledgments = []string{
	"Verstehe.",
	"Ich verstehe.",
	"Danke für diese Information.",
	"Alles klar.",
	"Danke, dass du das mit mir teilst.",
	"Ich höre dir zu.",
	"Danke für deine Offenheit.",
	"Das ist gut zu wissen.",
	"Ich verstehe deine Situation.",
	"Danke für deine Antwort.",
}

var empathyPhrases = []string{
	"Das klingt wirklich herausfordernd.",
	"Ich kann mir vorstellen, dass das belastend ist.",
	"Das ist wirklich nicht einfach.",
	"Ich verstehe, dass dich das belastet.",
	"Das klingt nach einer schwierigen Situation.",
	"Das tut mir leid zu hören.",
	"Ich kann verstehen, dass dich das belastet.",
	"Das ist wirklich nicht leicht.",
	"Ich höre, dass dich das sehr beschäftigt.",
	"Das klingt nach einer großen Herausforderung.",
}

var transitionPhrases = []string{
	"Lass uns gemeinsam schauen, wie wir das angehen können.",
	"Ich helfe dir gerne weiter.",
	"Lass uns das Schritt für Schritt angehen.",
	"Ich bin für dich da, um zu helfen.",
	"Gemeinsam finden wir einen Weg.",
	"Lass uns das systematisch angehen.",
	"Ich unterstütze dich dabei.",
	"Zusammen schaffen wir das.",
	"Lass uns das Stück für Stück durchgehen.",
	"Ich begleite dich durch diesen Prozess.",
}

func (s *Service) acknowledgment() string {
	return acknowledgments[s.picker.Pick(len(acknowledgments))]
}

func (s *Service) empathyPhrase() string {
	return empathyPhrases[s.picker.Pick(len(empathyPhrases))]
}

func (s *Service) transitionPhrase() string {
	return transitionPhrases[s.picker.Pick(len(transitionPhrases))]
}
