package debug

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestLog_DisabledIsSilent(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetEnabled(false)

	Log("hidden %d", 1)
	LogTiming("op", time.Millisecond)
	LogEnterExit("fn")()

	if buf.Len() != 0 {
		t.Errorf("expected no output when disabled, got %q", buf.String())
	}
}

func TestLog_Enabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetEnabled(true)
	defer SetEnabled(false)

	Log("update of unknown sheet %s", "abc")
	LogEnterExit("save")()

	out := buf.String()
	if !strings.Contains(out, "[LIFTSHEET_DEBUG]") {
		t.Errorf("expected prefix in %q", out)
	}
	if !strings.Contains(out, "update of unknown sheet abc") {
		t.Errorf("expected message in %q", out)
	}
	if !strings.Contains(out, "-> save") || !strings.Contains(out, "<- save") {
		t.Errorf("expected enter/exit lines in %q", out)
	}
}
