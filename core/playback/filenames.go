package playback

import "time"

// AudioFilename is the download name of a clip produced at t
func AudioFilename(t time.Time) string {
	return "GistFM_" + t.UTC().Format("2006-01-02") + ".wav"
}

// TranscriptFilename is the download name of a script produced at t
func TranscriptFilename(t time.Time) string {
	return "GistFM_Transcript_" + t.UTC().Format("2006-01-02") + ".txt"
}
