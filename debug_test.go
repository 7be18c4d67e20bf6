package calm

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	fn()
	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugMode_UnknownRouteWarning(t *testing.T) {
	h := NewHost()
	h.SetViewport(400, 400, 1)
	h.SetDebugMode(true)
	r := NewRouter(h, []Route{{Name: "a", New: func() Scene { return &fakeScene{} }}})

	output := captureStderr(t, func() { r.Navigate("nowhere") })
	if !strings.Contains(output, `warning: router: unknown route "nowhere"`) {
		t.Errorf("expected unknown route warning in stderr, got: %q", output)
	}
}

func TestDebugMode_ResizeLog(t *testing.T) {
	h := NewHost()
	h.SetDebugMode(true)
	output := captureStderr(t, func() { h.SetViewport(300, 200, 2) })
	if !strings.Contains(output, "resize: 300x200 @2.00 (backing 600x400)") {
		t.Errorf("expected resize log in stderr, got: %q", output)
	}
}

func TestDebugMode_Off(t *testing.T) {
	h := NewHost()
	output := captureStderr(t, func() {
		h.SetViewport(300, 200, 2)
		Mount(h, &fakeScene{}, WithRand(NewRand(1)))
		h.debugWarnf("should not print")
	})
	if output != "" {
		t.Errorf("expected no output with debug off, got: %q", output)
	}
}

func TestDebugMode_EmptyMountWarning(t *testing.T) {
	h := NewHost()
	h.SetDebugMode(true)
	output := captureStderr(t, func() { Mount(h, &fakeScene{}, WithRand(NewRand(1))) })
	if !strings.Contains(output, "mount on empty surface 0x0") {
		t.Errorf("expected empty surface warning, got: %q", output)
	}
}
