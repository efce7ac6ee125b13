//go:build darwin

package main

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation

#include <stdint.h>
#include <CoreGraphics/CoreGraphics.h>
#include <CoreFoundation/CoreFoundation.h>

extern CGEventRef keysoundTapCallback(CGEventTapProxy proxy, CGEventType type, CGEventRef event, void *refcon);

static CFMachPortRef createKeyDownTap(uintptr_t refcon) {
    CGEventMask mask = CGEventMaskBit(kCGEventKeyDown);
    return CGEventTapCreate(
        kCGSessionEventTap,
        kCGHeadInsertEventTap,
        kCGEventTapOptionListenOnly,
        mask,
        keysoundTapCallback,
        (void *)refcon
    );
}

static CFRunLoopSourceRef attachTapToRunLoop(CFMachPortRef tap) {
    CFRunLoopSourceRef source = CFMachPortCreateRunLoopSource(kCFAllocatorDefault, tap, 0);
    if (source == NULL) {
        return NULL;
    }
    CFRunLoopAddSource(CFRunLoopGetCurrent(), source, kCFRunLoopCommonModes);
    CGEventTapEnable(tap, true);
    return source;
}

static void enableTap(CFMachPortRef tap) {
    CGEventTapEnable(tap, true);
}

static void runLoopSlice(double seconds) {
    CFRunLoopRunInMode(kCFRunLoopDefaultMode, seconds, false);
}

static void detachTapFromRunLoop(CFMachPortRef tap, CFRunLoopSourceRef source) {
    CGEventTapEnable(tap, false);
    CFRunLoopRemoveSource(CFRunLoopGetCurrent(), source, kCFRunLoopCommonModes);
    CFRelease(source);
    CFRelease(tap);
}
*/
import "C"

import (
	"runtime"
	"runtime/cgo"
	"sync"
	"time"
	"unsafe"
)

// runLoopInterval bounds how long Stop can go unnoticed by the tap thread.
const runLoopInterval = 250 * time.Millisecond

// DarwinKeyboardHook implements KeyboardHook with a CGEventTap.
type DarwinKeyboardHook struct {
	mu        sync.Mutex
	listening bool
	callback  func(KeyPress)
	tap       C.CFMachPortRef
	done      chan struct{}
}

// NewKeyboardHook creates a keyboard hook for macOS.
func NewKeyboardHook() KeyboardHook {
	h := &DarwinKeyboardHook{done: make(chan struct{})}
	close(h.done)
	return h
}

func (h *DarwinKeyboardHook) Start(callback func(KeyPress)) error {
	h.mu.Lock()
	if h.listening {
		h.mu.Unlock()
		return ErrAlreadyRunning
	}
	h.listening = true
	h.callback = callback
	h.done = make(chan struct{})
	h.mu.Unlock()

	startErr := make(chan error, 1)
	go h.run(startErr)
	if err := <-startErr; err != nil {
		h.mu.Lock()
		h.listening = false
		h.mu.Unlock()
		return err
	}
	return nil
}

// run owns the tap for the whole session. The tap and its run-loop source
// are only ever touched from this thread.
func (h *DarwinKeyboardHook) run(startErr chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(h.done)

	handle := cgo.NewHandle(h)
	defer handle.Delete()

	tap := C.createKeyDownTap(C.uintptr_t(handle))
	if tap == C.CFMachPortRef(0) {
		startErr <- ErrPermissionDenied
		return
	}

	source := C.attachTapToRunLoop(tap)
	if source == C.CFRunLoopSourceRef(0) {
		C.CFRelease(C.CFTypeRef(unsafe.Pointer(tap)))
		startErr <- ErrRunLoopSource
		return
	}

	h.mu.Lock()
	h.tap = tap
	h.mu.Unlock()
	startErr <- nil

	for h.isListening() {
		C.runLoopSlice(C.double(runLoopInterval.Seconds()))
	}

	h.mu.Lock()
	h.tap = C.CFMachPortRef(0)
	h.mu.Unlock()
	C.detachTapFromRunLoop(tap, source)
}

func (h *DarwinKeyboardHook) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listening = false
	return nil
}

func (h *DarwinKeyboardHook) Done() <-chan struct{} {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.done
}

func (h *DarwinKeyboardHook) isListening() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.listening
}

func (h *DarwinKeyboardHook) currentCallback() func(KeyPress) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.callback
}

// reenable recovers a tap that macOS disabled after deciding the callback
// stalled. Called from the tap thread only.
func (h *DarwinKeyboardHook) reenable() {
	h.mu.Lock()
	tap := h.tap
	h.mu.Unlock()
	if tap != C.CFMachPortRef(0) {
		C.enableTap(tap)
	}
}

//export keysoundTapCallback
func keysoundTapCallback(proxy C.CGEventTapProxy, eventType C.CGEventType, event C.CGEventRef, refcon unsafe.Pointer) C.CGEventRef {
	h, ok := cgo.Handle(uintptr(refcon)).Value().(*DarwinKeyboardHook)
	if !ok {
		return event
	}

	switch eventType {
	case C.kCGEventTapDisabledByTimeout, C.kCGEventTapDisabledByUserInput:
		h.reenable()
	case C.kCGEventKeyDown:
		code := int64(C.CGEventGetIntegerValueField(event, C.kCGKeyboardEventKeycode))
		if cb := h.currentCallback(); cb != nil {
			cb(KeyPress{Key: TranslateKeycode(code), Code: code})
		}
	}

	// Listen-only: every event continues to the rest of the system.
	return event
}
