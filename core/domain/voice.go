// ABOUTME: Narrator voices available for speech synthesis
// ABOUTME: The set is fixed; the current choice is persisted as a user preference

package domain

import (
	"fmt"
	"strings"
)

// Voice is a narrator identity used for speech synthesis
type Voice string

const (
	VoiceKore   Voice = "Kore"
	VoicePuck   Voice = "Puck"
	VoiceCharon Voice = "Charon"
	VoiceFenrir Voice = "Fenrir"
	VoiceZephyr Voice = "Zephyr"
	VoiceAoede  Voice = "Aoede"
)

// DefaultVoice is used when no valid preference is stored
const DefaultVoice = VoiceFenrir

// Voices lists the selectable voices in display order
var Voices = []Voice{VoiceKore, VoicePuck, VoiceCharon, VoiceFenrir, VoiceZephyr, VoiceAoede}

// ParseVoice resolves a voice name case-insensitively
func ParseVoice(s string) (Voice, error) {
	for _, v := range Voices {
		if strings.EqualFold(string(v), strings.TrimSpace(s)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown voice %q", s)
}

// Valid reports whether v is one of the known voices
func (v Voice) Valid() bool {
	for _, known := range Voices {
		if v == known {
			return true
		}
	}
	return false
}
