package cli

import (
	"fmt"

	"github.com/petrzlen/mimic3-golang/pkg/voices"
)

type VoicesCMD struct {
	Lang string `short:"l" help:"Only list voices for this language."`
}

func (v *VoicesCMD) Run(flags *EngineFlags) error {
	directory := voices.NewDirectory()

	languages := directory.Languages()
	if v.Lang != "" {
		languages = []string{v.Lang}
	}

	for _, lang := range languages {
		roster, ok := directory.Speakers(lang)
		if !ok {
			fmt.Printf("%s: no known voices\n", lang)
			continue
		}
		defaultVoice, _ := directory.DefaultVoice(lang)

		fmt.Printf("%s:\n", lang)
		currentVoice := ""
		for _, speaker := range roster {
			if speaker.Voice != currentVoice {
				currentVoice = speaker.Voice
				if currentVoice == defaultVoice {
					fmt.Printf("  %s (default)\n", currentVoice)
				} else {
					fmt.Printf("  %s\n", currentVoice)
				}
			}
			if speaker.ID == "" || speaker.ID == "default" {
				continue
			}
			if speaker.Gender != "" {
				fmt.Printf("    %s (%s)\n", speaker.ID, speaker.Gender)
			} else {
				fmt.Printf("    %s\n", speaker.ID)
			}
		}
	}
	return nil
}
