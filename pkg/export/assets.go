// Package export rasterizes rendered receipts and encodes them as JPEG
// images or single-page PDF documents.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// State tracks the export capability lifecycle. Export is gated on
// StateReady; a request arriving earlier or after a failed load is rejected
// before any rasterization happens.
type State int32

const (
	StateUnloaded State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unloaded"
	}
}

// AssetLoader fetches the receipt logo once in the background at startup.
// The logo is the one cross-origin asset of the receipt; everything else the
// exporters need is compiled in.
type AssetLoader struct {
	state atomic.Int32

	mu      sync.RWMutex
	logo    image.Image
	logoPNG []byte
	loadErr error
}

// NewAssetLoader creates a loader in the unloaded state.
func NewAssetLoader() *AssetLoader {
	return &AssetLoader{}
}

// LoadInBackground starts the one-time asset fetch. An empty logoURL skips
// the fetch entirely and the loader becomes ready without a logo.
func (l *AssetLoader) LoadInBackground(logoURL string, timeout time.Duration) {
	if logoURL == "" {
		l.state.Store(int32(StateReady))
		return
	}

	l.state.Store(int32(StateLoading))
	go func() {
		if err := l.load(logoURL, timeout); err != nil {
			l.mu.Lock()
			l.loadErr = err
			l.mu.Unlock()
			l.state.Store(int32(StateFailed))
			return
		}
		l.state.Store(int32(StateReady))
	}()
}

func (l *AssetLoader) load(logoURL string, timeout time.Duration) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(logoURL)
	if err != nil {
		return fmt.Errorf("export: failed to fetch logo %s: %w", logoURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("export: logo fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("export: failed to read logo body: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("export: failed to decode logo: %w", err)
	}

	l.mu.Lock()
	l.logo = img
	l.logoPNG = data
	l.mu.Unlock()
	return nil
}

// State returns the current capability state.
func (l *AssetLoader) State() State {
	return State(l.state.Load())
}

// Ready reports whether exports may proceed.
func (l *AssetLoader) Ready() bool {
	return l.State() == StateReady
}

// Err returns the load error after a failed load, nil otherwise.
func (l *AssetLoader) Err() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loadErr
}

// Logo returns the decoded logo image and its PNG bytes. ok is false when no
// logo was configured or the load has not completed.
func (l *AssetLoader) Logo() (image.Image, []byte, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.logo, l.logoPNG, l.logo != nil
}
