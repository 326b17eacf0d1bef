// Package voices holds the Mimic3 voice inventory: per-language default voices
// and the speaker roster of every known voice model.
package voices

import (
	"sort"
	"strings"
)

// Directory resolves language tags to voices and speaker rosters.
// Every Directory owns its default-voice map, so a voice registered on one
// instance is never observable through another instance.
type Directory struct {
	defaults map[string]string
}

func NewDirectory() *Directory {
	d := &Directory{defaults: make(map[string]string, len(defaultVoices))}
	for lang, voice := range defaultVoices {
		d.defaults[lang] = voice
	}
	return d
}

// DefaultVoice resolves lang to a default voice id: exact tag first, then the
// primary subtag ("en-nz" falls back to "en"). ok is false when neither matches.
func (d *Directory) DefaultVoice(lang string) (voice string, ok bool) {
	if voice, ok = d.defaults[lang]; ok {
		return voice, true
	}
	voice, ok = d.defaults[primarySubtag(lang)]
	return voice, ok
}

// SetDefaultVoice registers voice as the default for lang on this instance only.
func (d *Directory) SetDefaultVoice(lang string, voice string) {
	d.defaults[lang] = voice
}

// Speakers returns the speaker roster for lang with the same exact-then-subtag
// fallback as DefaultVoice. The returned slice is shared, callers must not modify it.
func (d *Directory) Speakers(lang string) (roster []Speaker, ok bool) {
	if roster, ok = speakersByLang[lang]; ok {
		return roster, true
	}
	roster, ok = speakersByLang[primarySubtag(lang)]
	return roster, ok
}

// Languages lists every rostered language tag, sorted.
func (d *Directory) Languages() []string {
	langs := make([]string, 0, len(speakersByLang))
	for lang := range speakersByLang {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

func primarySubtag(lang string) string {
	return strings.SplitN(lang, "-", 2)[0]
}
