package script

import (
	"strings"

	"schuldenkompass/app/util/numfmt"

	"github.com/elliotchance/pie/v2"
)

// Result is the outcome of validating one raw answer. On acceptance Value
// holds the normalized answer (float64 for number steps, the matched option
// text for choice steps); on rejection Message holds the re-prompt text.
type Result struct {
	OK      bool
	Value   any
	Message string
}

func accepted(value any) Result {
	return Result{OK: true, Value: value}
}

func rejected(message string) Result {
	return Result{Message: message}
}

// Validate checks raw user text against a step definition. It is a pure
// function; state handling is the caller's concern.
func Validate(raw string, step Step) Result {
	raw = strings.TrimSpace(raw)

	switch step.Type {
	case TypeNumber:
		return validateNumber(raw, step.Rule)
	case TypeChoice:
		return validateChoice(raw, step.Options)
	default:
		return accepted(raw)
	}
}

func validateNumber(raw string, rule Rule) Result {
	number, ok := numfmt.ParseNumber(raw)
	if !ok {
		return rejected("Bitte gib eine gültige Zahl ein.")
	}

	switch rule.Kind {
	case RulePositiveNumber:
		if number <= 0 {
			return rejected("Bitte gib eine positive Zahl ein.")
		}
	case RulePattern:
		// Deliberately matches the raw text, not the parsed value.
		if !rule.Pattern.MatchString(raw) {
			return rejected("Ungültiges Format. Bitte versuche es noch einmal.")
		}
	}

	return accepted(number)
}

func validateChoice(raw string, options []string) Result {
	if len(options) == 0 {
		return accepted(raw)
	}

	lower := strings.ToLower(raw)
	matched := pie.Filter(options, func(opt string) bool {
		return strings.HasPrefix(strings.ToLower(opt), lower)
	})

	switch len(matched) {
	case 1:
		return accepted(matched[0])
	case 0:
		return rejected("Bitte wähle eine der Optionen: " + strings.Join(options, ", "))
	default:
		return rejected("Meintest du eine dieser Optionen? " + strings.Join(matched, ", "))
	}
}
