// Package browser opens links in the user's default browser.
package browser

import (
	"io"
	"log"

	"github.com/pkg/browser"
)

// Opener opens URLs without blocking the caller. Failures are logged.
type Opener struct {
	open func(url string) error
	done chan error // receives each result when set; used by tests
}

// New creates an opener backed by the system browser
func New() *Opener {
	// Keep the launched browser's chatter out of the game's terminal
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &Opener{open: browser.OpenURL}
}

// Open starts the browser in the background
func (o *Opener) Open(url string) {
	log.Printf("[browser] opening %s", url)
	go func() {
		err := o.open(url)
		if err != nil {
			log.Printf("[browser] failed to open %s: %v", url, err)
		}
		if o.done != nil {
			o.done <- err
		}
	}()
}
