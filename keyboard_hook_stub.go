//go:build !darwin

package main

// Capture needs the macOS event tap; other platforms get a stub so the app
// still builds and the menu stays usable.
type stubKeyboardHook struct {
	done chan struct{}
}

// NewKeyboardHook creates a keyboard hook stub for non-macOS platforms.
func NewKeyboardHook() KeyboardHook {
	h := &stubKeyboardHook{done: make(chan struct{})}
	close(h.done)
	return h
}

func (h *stubKeyboardHook) Start(func(KeyPress)) error {
	return ErrUnsupported
}

func (h *stubKeyboardHook) Stop() error {
	return nil
}

func (h *stubKeyboardHook) Done() <-chan struct{} {
	return h.done
}
