// Package script holds the fixed interview definition: the ordered question
// steps and the validation of raw answers against them.
package script

import "regexp"

type StepType string

const (
	TypeNumber StepType = "number"
	TypeChoice StepType = "choice"
)

type RuleKind int

const (
	RuleNone RuleKind = iota
	// RulePositiveNumber constrains the parsed value.
	RulePositiveNumber
	// RulePattern constrains the raw input text, not the parsed value.
	RulePattern
)

type Rule struct {
	Kind    RuleKind
	Pattern *regexp.Regexp
}

type Step struct {
	Key       string
	Prompt    string
	Hint      string
	Type      StepType
	Rule      Rule
	Options   []string
	ErrorText string
}

const Greeting = "Hallo! Ich bin SchuldenKompass. Erzähl mir: Was beschäftigt dich gerade am meisten, wenn du an deine finanzielle Situation denkst?"

var steps = []Step{
	{
		Key:       "income",
		Prompt:    "Das klingt wirklich belastend. Vielen Dank, dass du das mit mir teilst. Um dir konkret helfen zu können, wäre es gut zu wissen: Wie hoch ist dein aktuelles monatliches Einkommen?",
		Hint:      "Dein Nettoeinkommen in Euro (z.B. 1450)",
		Type:      TypeNumber,
		Rule:      Rule{Kind: RulePositiveNumber},
		ErrorText: "Ich konnte die Zahl nicht richtig verstehen. Bitte gib sie als ganze Euro-Zahl ein, zum Beispiel 1450.",
	},
	{
		Key:       "rent",
		Prompt:    "Danke für deine Angabe. Die Miete ist oft einer der größten Ausgaben. Um deine finanzielle Situation besser zu verstehen: Wie viel zahlst du monatlich für Miete inklusive Nebenkosten?",
		Hint:      "Monatliche Miete in Euro (z.B. 650)",
		Type:      TypeNumber,
		Rule:      Rule{Kind: RulePattern, Pattern: regexp.MustCompile(`^\d+([.,]\d{1,2})?$`)},
		ErrorText: "Ich konnte die Miete nicht richtig verstehen. Bitte gib den Betrag als Zahl ein, zum Beispiel 650 oder 650,00.",
	},
	{
		Key:       "expenses",
		Prompt:    "Danke für deine Angabe. Lass uns jetzt deine anderen regelmäßigen Ausgaben anschauen. Was gibst du monatlich für Versicherungen, Handy, Abos und ähnliches aus?",
		Hint:      "Monatliche Ausgaben in Euro (z.B. 300)",
		Type:      TypeNumber,
		Rule:      Rule{Kind: RulePositiveNumber},
		ErrorText: "Ich konnte die Zahl nicht richtig verstehen. Bitte gib den Betrag als Zahl ein, zum Beispiel 300.",
	},
	{
		Key:       "total_debt",
		Prompt:    "Ich verstehe, dass das nicht einfach ist, darüber zu sprechen. Um dir bestmöglich zu helfen: Wie hoch schätzt du deine gesamten Schulden ein? Das hilft mir, die Situation besser zu verstehen.",
		Hint:      "Gesamtsumme in Euro",
		Type:      TypeNumber,
		Rule:      Rule{Kind: RulePattern, Pattern: regexp.MustCompile(`^\d+([.,]\d{1,2})?$`)},
		ErrorText: "Könntest du mir bitte eine ungefähre Summe nennen? Das hilft mir, dir besser zu helfen.",
	},
	{
		Key:       "creditors_count",
		Prompt:    "Danke für deine Offenheit. Bei wie vielen verschiedenen Stellen hast du Schulden? Das können Banken, Händler oder andere Gläubiger sein.",
		Hint:      "Anzahl der Gläubiger",
		Type:      TypeNumber,
		Rule:      Rule{Kind: RulePattern, Pattern: regexp.MustCompile(`^\d+$`)},
		ErrorText: "Es wäre hilfreich zu wissen, bei wie vielen Stellen du Schulden hast. Kannst du das kurz schätzen?",
	},
	{
		Key:     "has_warnings",
		Prompt:  "Ich verstehe, dass das unangenehm sein kann, aber es ist wichtig, dass wir die Dringlichkeit einschätzen können: Sind bereits Mahnungen oder Zahlungserinnerungen bei dir eingegangen?",
		Hint:    "Antworte mit Ja/Nein/Weiß nicht",
		Type:    TypeChoice,
		Options: []string{"Ja", "Noch nicht", "Ich bin mir nicht sicher"},
	},
	{
		Key:     "legal_issues",
		Prompt:  "Drohen dir bereits rechtliche Konsequenzen wie Kontopfändung, Lohnpfändung oder Kündigung der Wohnung?",
		Hint:    "Antworte mit Ja/Nein/Weiß nicht",
		Type:    TypeChoice,
		Options: []string{"Ja", "Nein", "Weiß nicht"},
	},
}

// At returns the step at the given index. The second return value is false
// beyond the last step, which signals that the interview is complete.
func At(index int) (Step, bool) {
	if index < 0 || index >= len(steps) {
		return Step{}, false
	}

	return steps[index], true
}

func Len() int {
	return len(steps)
}

// Question renders the step's prompt together with its parenthesized hint.
func (s Step) Question() string {
	if s.Hint == "" {
		return s.Prompt
	}

	return s.Prompt + "\n\n(" + s.Hint + ")"
}
