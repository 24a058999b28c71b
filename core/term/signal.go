package term

import (
	"os"
	"os/signal"
	"syscall"
)

// RestoreOnSignal restores the snapshot and exits if the process receives
// an interrupt, termination or hangup signal before stop is called.
//
// The process exits with status 128 plus the signal number. Once stop
// returns the signals are no longer intercepted.
func RestoreOnSignal(s *Snapshot) (stop func()) {
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	exited := make(chan struct{})
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		defer close(exited)

		select {
		case sig := <-sigs:
			s.Restore()
			code := 1
			if num, ok := sig.(syscall.Signal); ok {
				code = 128 + int(num)
			}
			os.Exit(code)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
		<-exited
	}
}
