package mappers

import (
	"gistfm-api/api/dto/responses"
	"gistfm-api/core/domain"
	"gistfm-api/core/playback"
	"gistfm-api/pkg/utils/duration"
)

// ToPlaybackResponse converts transport state to its DTO
func ToPlaybackResponse(s playback.State) *responses.PlaybackResponse {
	rates := make([]float64, len(playback.Rates))
	copy(rates, playback.Rates)

	return &responses.PlaybackResponse{
		Loaded:   s.Loaded(),
		SourceID: s.SourceID,
		Playing:  s.Playing,
		Position: s.Position.Seconds(),
		Duration: s.Duration.Seconds(),
		Elapsed:  duration.FormatDuration(s.Position),
		Total:    duration.FormatDuration(s.Duration),
		Rate:     s.Rate,
		Rates:    rates,
		Volume:   s.Volume,
		Muted:    s.Muted,
	}
}

// ToTonesResponse lists the selectable tones
func ToTonesResponse() *responses.TonesResponse {
	tones := make([]responses.ToneInfo, 0, len(domain.Tones))
	for _, t := range domain.Tones {
		tones = append(tones, responses.ToneInfo{Name: string(t), Instruction: t.Instruction()})
	}
	return &responses.TonesResponse{Tones: tones, Default: string(domain.DefaultTone)}
}

// ToVoicesResponse lists the voices with the current selection
func ToVoicesResponse(current domain.Voice) *responses.VoicesResponse {
	voices := make([]string, 0, len(domain.Voices))
	for _, v := range domain.Voices {
		voices = append(voices, string(v))
	}
	return &responses.VoicesResponse{
		Voices:  voices,
		Default: string(domain.DefaultVoice),
		Current: string(current),
	}
}
