package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetup_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.log")
	log, closer, err := Setup(Options{File: path, Level: "debug"})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	log.WithField("value", 7).Debug("counter changed")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, want := range []string{"counter changed", "value=7"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log file: expected %q in %q", want, data)
		}
	}
}

func TestSetup_DefaultsToInfoAndDiscard(t *testing.T) {
	log, closer, err := Setup(Options{})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer closer.Close()

	if log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level: expected info, got %v", log.GetLevel())
	}
}

func TestSetup_BadLevel(t *testing.T) {
	if _, _, err := Setup(Options{Level: "loud"}); err == nil {
		t.Error("Setup: expected error for unknown level")
	}
}
