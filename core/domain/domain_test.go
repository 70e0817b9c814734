package domain

import "testing"

func TestParseTone(t *testing.T) {
	tests := []struct {
		in      string
		want    Tone
		wantErr bool
	}{
		{"Professional", ToneProfessional, false},
		{"casual", ToneCasual, false},
		{" WITTY ", ToneWitty, false},
		{"brief", ToneBrief, false},
		{"sarcastic", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTone(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTone(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseTone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTone_Instruction(t *testing.T) {
	for _, tone := range Tones {
		if tone.Instruction() == "" {
			t.Errorf("tone %s has no instruction", tone)
		}
		if !tone.Valid() {
			t.Errorf("tone %s should be valid", tone)
		}
	}
	if Tone("Loud").Valid() {
		t.Error("unknown tone should not be valid")
	}
}

func TestParseVoice(t *testing.T) {
	if len(Voices) != 6 {
		t.Fatalf("expected 6 voices, got %d", len(Voices))
	}
	for _, v := range Voices {
		got, err := ParseVoice(string(v))
		if err != nil || got != v {
			t.Errorf("ParseVoice(%q) = %q, %v", v, got, err)
		}
	}
	if _, err := ParseVoice("Alexa"); err == nil {
		t.Error("ParseVoice should reject unknown voices")
	}
	if !DefaultVoice.Valid() {
		t.Error("default voice must be valid")
	}
}

func TestGenerationState_Loading(t *testing.T) {
	tests := []struct {
		state      GenerationState
		loading    bool
		processing bool
	}{
		{StateIdle, false, false},
		{StateFetchingURL, true, false},
		{StateSummarizing, true, true},
		{StateGeneratingAudio, true, true},
		{StatePlaying, false, false},
		{StateError, false, false},
	}

	for _, tt := range tests {
		if got := tt.state.Loading(); got != tt.loading {
			t.Errorf("%s.Loading() = %v, want %v", tt.state, got, tt.loading)
		}
		if got := tt.state.Processing(); got != tt.processing {
			t.Errorf("%s.Processing() = %v, want %v", tt.state, got, tt.processing)
		}
	}
}

func TestScript_WordCount(t *testing.T) {
	s := Script{Text: "  one two\nthree  ", Tone: ToneBrief}
	if s.WordCount() != 3 {
		t.Errorf("WordCount() = %d, want 3", s.WordCount())
	}
	if s.Empty() {
		t.Error("script should not be empty")
	}
	if !(Script{Text: "  "}).Empty() {
		t.Error("blank script should be empty")
	}
}
