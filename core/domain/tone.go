// ABOUTME: Tone selection for generated scripts
// ABOUTME: Each tone maps to the stylistic directive placed in the generation prompt

package domain

import (
	"fmt"
	"strings"
)

// Tone is a stylistic directive shaping generated script phrasing
type Tone string

const (
	ToneProfessional Tone = "Professional"
	ToneCasual       Tone = "Casual"
	ToneWitty        Tone = "Witty"
	ToneBrief        Tone = "Brief"
)

// DefaultTone is used until the user picks another one
const DefaultTone = ToneProfessional

// Tones lists the selectable tones in display order
var Tones = []Tone{ToneProfessional, ToneCasual, ToneWitty, ToneBrief}

var toneInstructions = map[Tone]string{
	ToneProfessional: "Keep the tone professional, objective, and clear. Like a standard news broadcast.",
	ToneCasual:       "Keep the tone conversational, friendly, and accessible. Like a podcast host explaining it to a friend.",
	ToneWitty:        "Add a touch of wit and cleverness, but keep the facts accurate. Entertaining but informative.",
	ToneBrief:        "Be extremely concise. Bullet-point style delivery converted to full sentences. Get to the point immediately.",
}

// ParseTone resolves a tone name case-insensitively
func ParseTone(s string) (Tone, error) {
	for _, t := range Tones {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tone %q", s)
}

// Valid reports whether t is one of the known tones
func (t Tone) Valid() bool {
	_, ok := toneInstructions[t]
	return ok
}

// Instruction returns the prompt directive for the tone
func (t Tone) Instruction() string {
	return toneInstructions[t]
}
