package writer

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// MakeTone generates a stereo sine at -6 dBFS, for checking the codec
// audio path after an init sequence has run.
func MakeTone(frequency float64, seconds float64, sampleRate float64) [][2]float64 {
	numSamples := int(seconds * sampleRate)
	samples := make([][2]float64, numSamples)

	amp := 0.5
	step := 2.0 * math.Pi * frequency / sampleRate
	for i := 0; i < numSamples; i++ {
		v := amp * math.Sin(float64(i)*step)
		samples[i][0] = v
		samples[i][1] = v
	}
	return samples
}

// ToneFormat returns the beep format used for generated tones.
func ToneFormat(sampleRate float64) beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(int(sampleRate)),
		NumChannels: 2,
		Precision:   2,
	}
}

// PlayTone streams the samples to the default audio output and blocks
// until playback finishes.
func PlayTone(samples [][2]float64, sampleRate float64) error {
	format := ToneFormat(sampleRate)
	err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
	if err != nil {
		return err
	}

	stream := &WriteStreamer{Data: samples}
	done := make(chan bool)
	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		done <- true
	})))
	<-done
	return nil
}
