package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewBookmark(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		wantErr bool
	}{
		{
			name:    "short script",
			script:  "Today in tech news.",
			wantErr: false,
		},
		{
			name:    "long script",
			script:  strings.Repeat("word ", 100),
			wantErr: false,
		},
		{
			name:    "empty script",
			script:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBookmark(tt.script, ToneBrief, VoiceKore)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewBookmark() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if _, err := uuid.Parse(b.ID); err != nil {
				t.Errorf("NewBookmark() ID %q is not a UUID", b.ID)
			}
			if b.CreatedAt == 0 {
				t.Error("NewBookmark() did not set CreatedAt")
			}
			if b.Tone != ToneBrief || b.Voice != VoiceKore {
				t.Errorf("NewBookmark() tone/voice = %s/%s", b.Tone, b.Voice)
			}
		})
	}
}

func TestNewBookmark_Preview(t *testing.T) {
	script := strings.Repeat("a", 200)
	b, err := NewBookmark(script, ToneCasual, VoicePuck)
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Preview) != PreviewLength {
		t.Errorf("Preview length = %d, want %d", len(b.Preview), PreviewLength)
	}

	short, _ := NewBookmark("hello", ToneCasual, VoicePuck)
	if short.Preview != "hello" {
		t.Errorf("Preview = %q, want %q", short.Preview, "hello")
	}

	multibyte := strings.Repeat("é", 160)
	mb, _ := NewBookmark(multibyte, ToneCasual, VoicePuck)
	if got := len([]rune(mb.Preview)); got != PreviewLength {
		t.Errorf("Preview rune length = %d, want %d", got, PreviewLength)
	}
}

func TestNewBookmark_UniqueIDs(t *testing.T) {
	a, _ := NewBookmark("one", ToneWitty, VoiceAoede)
	b, _ := NewBookmark("one", ToneWitty, VoiceAoede)
	if a.ID == b.ID {
		t.Error("NewBookmark() generated duplicate IDs")
	}
}
