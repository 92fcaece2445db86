//go:build unix

package frame

import (
	"os"
	"os/signal"
	"syscall"
)

// notifyResize sends on ch whenever the terminal is resized. The
// returned function stops the notification.
func notifyResize(ch chan<- struct{}) func() {
	sig := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sig, syscall.SIGWINCH)
	go func() {
		for {
			select {
			case <-sig:
				select {
				case ch <- struct{}{}:
				default:
				}
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(sig)
		close(done)
	}
}
