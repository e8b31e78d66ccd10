package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetup_DebugWritesRecordsWithoutTime(t *testing.T) {
	var buf bytes.Buffer
	cleanup := Setup(Config{Debug: true, Out: &buf})
	L().Debug("table.built", "distinct", 3)
	cleanup()

	got := buf.String()
	if !strings.Contains(got, "msg=table.built") {
		t.Errorf("want table.built record, got %q", got)
	}
	if !strings.Contains(got, "distinct=3") {
		t.Errorf("want distinct=3 attribute, got %q", got)
	}
	if strings.Contains(got, "time=") {
		t.Errorf("want no time attribute, got %q", got)
	}
}

func TestSetup_WithoutDebugDiscards(t *testing.T) {
	var buf bytes.Buffer
	cleanup := Setup(Config{Out: &buf})
	defer cleanup()
	L().Info("input.resolved")
	L().Error("input.failed")
	if buf.Len() != 0 {
		t.Errorf("want nothing logged, got %q", buf.String())
	}
}

func TestCleanup_RestoresDiscardingLogger(t *testing.T) {
	var buf bytes.Buffer
	cleanup := Setup(Config{Debug: true, Out: &buf})
	cleanup()
	buf.Reset()
	L().Debug("after.cleanup")
	if buf.Len() != 0 {
		t.Errorf("want nothing logged after cleanup, got %q", buf.String())
	}
}
