package audioio

import (
	"sync"
	"testing"

	"github.com/go-audio/audio"

	"github.com/petrzlen/mimic3-golang/pkg/audio_utils"
	"github.com/petrzlen/mimic3-golang/pkg/models"
)

type fakeOutputDevice struct {
	played [][]int
}

func (f *fakeOutputDevice) Play(buffer *audio.IntBuffer) (*sync.WaitGroup, error) {
	f.played = append(f.played, append([]int(nil), buffer.Data...))
	wg := &sync.WaitGroup{}
	return wg, nil
}

func (f *fakeOutputDevice) Stop() error { return nil }

func buildWav(t *testing.T, samples []int) []byte {
	t.Helper()
	builder, err := audio_utils.NewWavBuilder()
	if err != nil {
		t.Fatal(err)
	}
	builder.SetFormat(22050, 2, 1)
	raw, err := audio_utils.IntsToPCMBytes(samples, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err = builder.AppendPCM(raw); err != nil {
		t.Fatal(err)
	}
	if err = builder.Close(); err != nil {
		t.Fatal(err)
	}
	wavBytes, err := builder.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	return wavBytes
}

func TestPlayAudioChunksRoutine(t *testing.T) {
	device := &fakeOutputDevice{}
	audioDataChan := make(chan models.AudioData, 3)

	audioDataChan <- models.AudioData{ByteData: buildWav(t, []int{1, 2}), Format: "wav", Trace: models.NewTrace("test")}
	audioDataChan <- models.AudioData{ByteData: []byte("not audio"), Format: "mp3", Trace: models.NewTrace("test")}
	audioDataChan <- models.AudioData{ByteData: buildWav(t, []int{3}), Format: "wav", Trace: models.NewTrace("test")}
	close(audioDataChan)

	PlayAudioChunksRoutine(device, audioDataChan)

	if len(device.played) != 2 {
		t.Fatalf("played %d chunks, want 2 (the mp3 one is skipped)", len(device.played))
	}
	if device.played[0][0] != 1 || device.played[0][1] != 2 || device.played[1][0] != 3 {
		t.Errorf("chunks played out of order: %v", device.played)
	}
}
