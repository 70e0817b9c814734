// ABOUTME: Request DTOs for playback transport endpoints

package requests

// SeekRequest moves the playhead to an absolute position
type SeekRequest struct {
	Position float64 `json:"position" minimum:"0" doc:"Target position in seconds"`
}

// SkipRequest moves the playhead by the skip interval
type SkipRequest struct {
	Direction string `json:"direction" enum:"forward,backward" doc:"Skip direction"`
}

// RateRequest selects a playback rate
type RateRequest struct {
	Rate float64 `json:"rate" doc:"Playback rate: 1, 1.5 or 2"`
}

// VolumeRequest sets the volume
type VolumeRequest struct {
	Volume float64 `json:"volume" minimum:"0" maximum:"1" doc:"Volume between 0 and 1; 0 mutes"`
}
