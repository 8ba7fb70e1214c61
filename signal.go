package tui

import (
	"context"
	"os"
	"os/signal"
)

// watchSignals forwards OS signals as events until ctx is done. Resize
// signals become ResizeEvent with the size reported by size; shutdown
// signals become InterruptEvent.
func watchSignals(ctx context.Context, size func() (int, int), post func(Event)) error {
	sigCh := make(chan os.Signal, 4)
	sigs := append([]os.Signal{}, shutdownSignals...)
	if resizeSignal != nil {
		sigs = append(sigs, resizeSignal)
	}
	signal.Notify(sigCh, sigs...)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-ctx.Done():
			return nil
		case sig := <-sigCh:
			if resizeSignal != nil && sig == resizeSignal {
				w, h := size()
				post(ResizeEvent{Width: w, Height: h})
				continue
			}
			post(InterruptEvent{Signal: sig.String()})
		}
	}
}
