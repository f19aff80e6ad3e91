package player

import (
	"fmt"

	"github.com/miru-cli/miru/open"
)

// Browser opens the embedded page in the default browser.
// It cannot observe playback, so Wait is nil.
type Browser struct {
	start func(string) error
}

func NewBrowser() *Browser {
	return &Browser{start: open.Start}
}

func (b *Browser) Play(media Media) error {
	target, err := sanitizeMediaTarget(media.URL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	return b.start(target)
}

func (b *Browser) Wait() <-chan struct{} { return nil }

func (b *Browser) Close() error { return nil }
