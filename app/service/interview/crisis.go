package interview

import "strings"

type crisisEntry struct {
	Phrase   string
	Response string
}

// Phrases are stored lowercase and matched against the lowercased message.
// The scan is ordered; the first matching phrase wins.
var crisisEntries = []crisisEntry{
	{"selbstmord", "Das klingt sehr besorgniserregend. Bitte wende dich sofort an die Telefonseelsorge unter 0800 111 0 111. Du bist nicht allein und es gibt Menschen, die dir helfen können."},
	{"selbstmorden", "Das klingt sehr besorgniserregend. Bitte wende dich sofort an die Telefonseelsorge unter 0800 111 0 111. Du bist nicht allein und es gibt Menschen, die dir helfen können."},
	{"umbringen", "Das klingt sehr beunruhigend. Bitte kontaktiere umgehend eine Vertrauensperson oder die Telefonseelsorge unter 0800 111 0 111."},
	{"sterben", "Es tut mir leid zu hören, dass du solche Gedanken hast. Bitte wende dich an jemanden, der dir helfen kann, zum Beispiel die Telefonseelsorge unter 0800 111 0 111."},
	{"leben beenden", "Das klingt sehr belastend. Bitte wende dich sofort an eine Person deines Vertrauens oder die Telefonseelsorge unter 0800 111 0 111. Du bist nicht allein."},
	{"kann nicht mehr", "Ich höre, wie schwer es dir gerade fällt. Es ist wichtig, dass du dir jetzt Hilfe holst. Möchtest du, dass ich dir dabei helfe, Unterstützung zu finden?"},
	{"sinnlos", "Es tut mir leid, dass du dich so fühlst. Manchmal kann es helfen, mit jemandem zu sprechen. Die Telefonseelsorge ist rund um die Uhr erreichbar unter 0800 111 0 111."},
	{"aufgeben", "Ich verstehe, dass du dich überfordert fühlst. Aber es gibt immer einen Ausweg, auch wenn du ihn gerade nicht siehst. Möchtest du, dass wir gemeinsam nach Lösungen suchen?"},
	{"keinen ausweg", "Es tut mir leid zu hören, dass du dich so fühlst. Manchmal kann ein Gespräch mit einer neutralen Person helfen. Die Telefonseelsorge ist unter 0800 111 0 111 erreichbar."},
	{"kein sinn mehr", "Ich höre, wie verzweifelt du bist. Bitte glaub mir, dass es Menschen gibt, die dir helfen können. Möchtest du, dass ich dir dabei helfe, Unterstützung zu finden?"},
}

func detectCrisis(message string) (string, bool) {
	lower := strings.ToLower(message)

	for _, entry := range crisisEntries {
		if strings.Contains(lower, entry.Phrase) {
			return entry.Response, true
		}
	}

	return "", false
}
