package audioio

import (
	"sync"

	"github.com/go-audio/audio"
)

// OutputDevice plays decoded PCM buffers. Play returns a WaitGroup the caller
// can block on until that buffer has finished sounding.
type OutputDevice interface {
	Play(buffer *audio.IntBuffer) (*sync.WaitGroup, error)
	Stop() error
}
