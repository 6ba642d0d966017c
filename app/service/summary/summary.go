// Package summary derives financial metrics from collected interview answers
// and renders the closing report. It is stateless; the report is recomputed
// from the answers on every call.
package summary

import (
	"fmt"
	"log/slog"
	"strings"

	"schuldenkompass/app/util/numfmt"

	"github.com/samber/lo"
)

const (
	resourceCrisis     = "Telefonseelsorge: 0800 111 0 111 (kostenlos, 24/7 erreichbar)"
	resourceDebtAdvice = "Schuldnerberatung: www.schuldnerberatung.de"
)

// Metrics are the derived figures of one completed interview.
type Metrics struct {
	Income        float64
	Rent          float64
	Expenses      float64
	TotalDebt     float64
	TotalExpenses float64
	Surplus       float64
	// PayoffMonths is 0 when no payoff timeline applies.
	PayoffMonths int
}

// Generate renders the financial report for the collected answers. When a
// numeric answer slot holds a value of an unexpected kind, it falls back to a
// plain-text restatement; the fallback cannot fail.
func Generate(answers map[string]any) string {
	metrics, ok := computeMetrics(answers)
	if !ok {
		slog.Error("Corrupted answer values, falling back to plain summary", "telegram", true)

		return fallbackReport(answers)
	}

	return render(metrics, answers)
}

// computeMetrics reads the numeric answers. Missing keys count as zero; a
// present value that is not a number marks the state as corrupted and routes
// the caller to the fallback report.
func computeMetrics(answers map[string]any) (Metrics, bool) {
	var m Metrics
	var ok bool

	if m.Income, ok = coerce(answers, "income"); !ok {
		return Metrics{}, false
	}
	if m.Rent, ok = coerce(answers, "rent"); !ok {
		return Metrics{}, false
	}
	if m.Expenses, ok = coerce(answers, "expenses"); !ok {
		return Metrics{}, false
	}
	if m.TotalDebt, ok = coerce(answers, "total_debt"); !ok {
		return Metrics{}, false
	}

	m.TotalExpenses = m.Rent + m.Expenses
	m.Surplus = m.Income - m.TotalExpenses

	if m.Surplus > 0 && m.TotalDebt > 0 {
		// Round half up to whole months.
		m.PayoffMonths = int(m.TotalDebt/m.Surplus + 0.5)
	}

	return m, true
}

func coerce(answers map[string]any, key string) (float64, bool) {
	value, present := answers[key]
	if !present {
		return 0, true
	}

	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func render(m Metrics, answers map[string]any) string {
	lines := []string{
		"🔍 Deine finanzielle Situation im Überblick:",
		"",
		"💶 Monatliches Einkommen: " + currencyOrMissing(m.Income),
		"🏠 Wohnkosten (Miete & NK): " + currencyOrMissing(m.Rent),
		"💳 Sonstige Fixkosten: " + currencyOrMissing(m.Expenses),
		"",
	}

	if m.Income > 0 && m.TotalExpenses > 0 {
		lines = append(lines,
			"📊 Monatliche Ausgaben gesamt: "+numfmt.FormatCurrency(m.TotalExpenses),
			"💰 Verfügbarer Betrag pro Monat: "+numfmt.FormatCurrency(m.Surplus),
			"",
		)
	}

	if m.TotalDebt > 0 {
		lines = append(lines, "💸 Geschätzte Gesamtschulden: "+numfmt.FormatCurrency(m.TotalDebt))

		if m.Surplus > 0 && m.PayoffMonths > 0 {
			lines = append(lines, "📅 Schuldenfrei in ca.: "+payoffTimeline(m.PayoffMonths)+" (bei gleichbleibender Sparrate)")
		}

		lines = append(lines, "")
	}

	if m.Income > 0 && m.TotalExpenses > m.Income {
		deficit := m.TotalExpenses - m.Income
		lines = append(lines,
			"⚠️ Achtung: Deine monatlichen Ausgaben übersteigen dein Einkommen um "+numfmt.FormatCurrency(deficit)+" pro Monat.",
			"",
		)
	}

	if stringAnswer(answers, "has_warnings") == "Ja" || stringAnswer(answers, "legal_issues") == "Ja" {
		lines = append(lines,
			"🚨 Wichtiger Hinweis: Da du bereits Mahnungen oder rechtliche Konsequenzen erwähnst, empfehle ich dringend, professionelle Hilfe in Anspruch zu nehmen.",
			"",
			"📞 "+resourceDebtAdvice,
			"📞 "+resourceCrisis,
			"",
		)
	}

	lines = append(lines,
		"📌 Nächste Schritte:",
		"1. Erstelle eine detaillierte Auflistung aller Gläubiger und Forderungen",
		"2. Erstelle ein Haushaltsbuch, um deine Ausgaben zu tracken",
		"3. Vereinbare einen Termin bei einer Schuldnerberatung",
		"",
		"Womit möchtest du anfangen?",
	)

	return strings.Join(lines, "\n")
}

// payoffTimeline renders whole months as "<n> Jahr(e) und <m> Monat(e)".
func payoffTimeline(months int) string {
	years := months / 12
	remainder := months % 12

	return fmt.Sprintf("%d %s und %d %s",
		years, lo.Ternary(years == 1, "Jahr", "Jahre"),
		remainder, lo.Ternary(remainder == 1, "Monat", "Monate"))
}

func currencyOrMissing(amount float64) string {
	if amount <= 0 {
		return "Nicht angegeben"
	}

	return numfmt.FormatCurrency(amount)
}

func stringAnswer(answers map[string]any, key string) string {
	value, _ := answers[key].(string)

	return value
}

func fallbackReport(answers map[string]any) string {
	lines := []string{
		"Vielen Dank für deine Angaben. Hier ist eine erste Einschätzung deiner Situation:",
		"",
		"• Monatliches Einkommen: " + rawAnswer(answers, "income"),
		"• Wohnkosten (Miete & NK): " + rawAnswer(answers, "rent"),
		"• Sonstige Fixkosten: " + rawAnswer(answers, "expenses"),
		"• Geschätzte Schulden: " + rawAnswer(answers, "total_debt"),
		"• Anzahl der Gläubiger: " + rawAnswer(answers, "creditors_count"),
		"",
		"Basierend auf deinen Angaben empfehle ich dir dringend, eine professionelle Schuldnerberatung aufzusuchen.",
		"",
		"Möchtest du, dass ich dir dabei helfe, dich auf das Beratungsgespräch vorzubereiten?",
	}

	return strings.Join(lines, "\n")
}

func rawAnswer(answers map[string]any, key string) string {
	value, present := answers[key]
	if !present {
		return "nicht angegeben"
	}

	return fmt.Sprint(value)
}
