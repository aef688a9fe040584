package route

import (
	"bytes"
	"io"

	"github.com/dmitrymomot/schemaroute/pkg/binder"
)

// maxReplayBody caps how much of a consumed body is kept for replay.
const maxReplayBody = binder.DefaultMaxMemory

// replayBody records what the body binder reads.
type replayBody struct {
	io.ReadCloser
	buf      bytes.Buffer
	overflow bool
}

func (b *replayBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	if n > 0 && !b.overflow {
		if b.buf.Len()+n > maxReplayBody {
			b.overflow = true
			b.buf = bytes.Buffer{}
		} else {
			b.buf.Write(p[:n])
		}
	}
	return n, err
}

// replay returns a body yielding the recorded bytes followed by whatever was
// left unread. Bodies larger than maxReplayBody are not replayed.
func (b *replayBody) replay() io.ReadCloser {
	if b.overflow {
		return b.ReadCloser
	}
	return readCloser{
		Reader: io.MultiReader(bytes.NewReader(b.buf.Bytes()), b.ReadCloser),
		Closer: b.ReadCloser,
	}
}

type readCloser struct {
	io.Reader
	io.Closer
}
