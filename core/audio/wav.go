// ABOUTME: Packages raw PCM samples into a WAV container
// ABOUTME: Synthesizers return headerless 16-bit little-endian PCM

package audio

import (
	"bytes"
	"encoding/binary"
	"time"
)

// HeaderSize is the size of the canonical RIFF/WAVE header
const HeaderSize = 44

// Format describes raw PCM samples
type Format struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
}

// DefaultFormat is the synthesizer output: 24 kHz, mono, 16-bit
var DefaultFormat = Format{SampleRate: 24000, Channels: 1, BitsPerSample: 16}

// ByteRate returns the number of bytes per second of audio
func (f Format) ByteRate() int {
	return f.SampleRate * f.Channels * f.BitsPerSample / 8
}

// BlockAlign returns the number of bytes per sample frame
func (f Format) BlockAlign() int {
	return f.Channels * f.BitsPerSample / 8
}

// Duration returns the playing time of n bytes of PCM
func (f Format) Duration(n int) time.Duration {
	rate := f.ByteRate()
	if rate <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second / time.Duration(rate)
}

// EncodeWAV prepends a WAV header describing pcm in format f
func EncodeWAV(pcm []byte, f Format) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize+len(pcm)))

	buf.WriteString("RIFF")
	writeUint32(buf, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	writeUint32(buf, 16)
	writeUint16(buf, 1) // PCM
	writeUint16(buf, uint16(f.Channels))
	writeUint32(buf, uint32(f.SampleRate))
	writeUint32(buf, uint32(f.ByteRate()))
	writeUint16(buf, uint16(f.BlockAlign()))
	writeUint16(buf, uint16(f.BitsPerSample))

	buf.WriteString("data")
	writeUint32(buf, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}

// StripWAVHeader returns the PCM payload when data starts with a canonical
// WAV header, otherwise data unchanged
func StripWAVHeader(data []byte) []byte {
	if len(data) >= HeaderSize && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WAVE" {
		return data[HeaderSize:]
	}
	return data
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeUint16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}
