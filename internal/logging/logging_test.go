package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetup_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, false, &buf)

	Debug("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("Expected 'key=value' in output, got: %s", output)
	}
}

func TestSetup_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, true, &buf)

	Error("json message", "vpc", "vpc-1")

	output := buf.String()
	if !strings.Contains(output, `"msg":"json message"`) {
		t.Errorf("Expected JSON msg field, got: %s", output)
	}
	if !strings.Contains(output, `"vpc":"vpc-1"`) {
		t.Errorf("Expected JSON vpc field, got: %s", output)
	}
}

func TestSetup_Verbosity(t *testing.T) {
	var buf bytes.Buffer

	Setup(false, false, &buf)
	if Verbose {
		t.Error("Verbose should be false after Setup(false, ...)")
	}
	Debug("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("Debug message should not appear in non-verbose mode, got: %s", buf.String())
	}

	Setup(true, false, &buf)
	if !Verbose {
		t.Error("Verbose should be true after Setup(true, ...)")
	}
	Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("Debug message should appear in verbose mode, got: %s", buf.String())
	}
}

func TestUserOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	prevOut, prevErr := Stdout, Stderr
	Stdout, Stderr = &out, &errOut
	t.Cleanup(func() {
		Stdout, Stderr = prevOut, prevErr
	})

	UserInfo("info %d", 1)
	UserSuccess("done")
	UserWarning("careful %s", "now")
	UserError("failed")

	if got := out.String(); got != "ℹ info 1\n✓ done\n" {
		t.Errorf("stdout = %q", got)
	}
	if got := errOut.String(); got != "⚠ careful now\n✗ failed\n" {
		t.Errorf("stderr = %q", got)
	}
}
