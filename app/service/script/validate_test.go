package script

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNumberPositive(t *testing.T) {
	step := Step{Type: TypeNumber, Rule: Rule{Kind: RulePositiveNumber}}

	res := Validate("1450", step)
	require.True(t, res.OK)
	assert.Equal(t, float64(1450), res.Value)

	res = Validate("0", step)
	require.False(t, res.OK)
	assert.Equal(t, "Bitte gib eine positive Zahl ein.", res.Message)

	res = Validate("irgendwas", step)
	require.False(t, res.OK)
	assert.Equal(t, "Bitte gib eine gültige Zahl ein.", res.Message)
}

func TestValidateNumberPattern(t *testing.T) {
	step := Step{Type: TypeNumber, Rule: Rule{
		Kind:    RulePattern,
		Pattern: regexp.MustCompile(`^\d+([.,]\d{1,2})?$`),
	}}

	res := Validate("650,00", step)
	require.True(t, res.OK)
	assert.Equal(t, float64(650), res.Value)

	// The pattern runs against the raw text: a parseable number in an
	// unexpected textual shape is still rejected.
	res = Validate("ca. 650", step)
	require.False(t, res.OK)
	assert.Equal(t, "Ungültiges Format. Bitte versuche es noch einmal.", res.Message)
}

func TestValidateChoice(t *testing.T) {
	step := Step{Type: TypeChoice, Options: []string{"Ja", "Nein", "Weiß nicht"}}

	// Case-insensitive prefix resolves to the properly-cased option.
	res := Validate("ja", step)
	require.True(t, res.OK)
	assert.Equal(t, "Ja", res.Value)

	// Exact option text always matches itself.
	res = Validate("Nein", step)
	require.True(t, res.OK)
	assert.Equal(t, "Nein", res.Value)
	again := Validate("Nein", step)
	assert.Equal(t, res, again)

	res = Validate("vielleicht", step)
	require.False(t, res.OK)
	assert.Equal(t, "Bitte wähle eine der Optionen: Ja, Nein, Weiß nicht", res.Message)
}

func TestValidateChoiceAmbiguous(t *testing.T) {
	step := Step{Type: TypeChoice, Options: []string{"Nein", "Noch nicht"}}

	res := Validate("n", step)
	require.False(t, res.OK)
	assert.Equal(t, "Meintest du eine dieser Optionen? Nein, Noch nicht", res.Message)
}

func TestValidateChoiceWithoutOptions(t *testing.T) {
	step := Step{Type: TypeChoice}

	res := Validate("freier Text", step)
	require.True(t, res.OK)
	assert.Equal(t, "freier Text", res.Value)
}
