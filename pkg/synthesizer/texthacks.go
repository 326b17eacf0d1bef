package synthesizer

import (
	"fmt"
	"regexp"
	"strings"
)

// Upstream assistants glue the next sentence onto abbreviations, spell
// acronyms with spaces and send bare letters as "A;" or "'A'". These fixups
// compensate until the text producer normalizes properly.
var (
	acronymRunRe   = regexp.MustCompile(`\b([A-Z](?: |$)){2,}`)
	quotedLetterRe = regexp.MustCompile(`'([A-Z])'`)
)

const sayAsSpellOut = `<say-as interpret-as="spell-out">%s</say-as>`

// applyTextHacks adjusts one utterance for the quirks above.
// Returns the adjusted text and whether it must be rendered as SSML.
func applyTextHacks(sentence string) (string, bool) {
	// "eight a.m.next sentence" arrives glued together sometimes.
	sentence = strings.ReplaceAll(sentence, " a.m.", " a.m. ")
	sentence = strings.ReplaceAll(sentence, " p.m.", " p.m. ")

	// "A I" -> "A.I. "
	sentence = acronymRunRe.ReplaceAllStringFunc(sentence, func(run string) string {
		return strings.ReplaceAll(strings.TrimSpace(run), " ", ".") + ". "
	})

	// A leading angle bracket means the caller already speaks SSML.
	ssml := strings.HasPrefix(strings.TrimSpace(sentence), "<")

	// Single letters arrive as "A;"; spell them out.
	if runes := []rune(sentence); len(runes) == 2 && runes[1] == ';' {
		return fmt.Sprintf(sayAsSpellOut, string(runes[0])), true
	}

	// Quoted single letters ("'A'") get spelled out too.
	replaced := quotedLetterRe.ReplaceAllString(sentence, fmt.Sprintf(sayAsSpellOut, "$1"))
	if replaced != sentence {
		return replaced, true
	}

	return sentence, ssml
}
