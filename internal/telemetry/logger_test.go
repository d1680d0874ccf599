package telemetry

import "testing"

func TestNewFallsBackOnBadLevel(t *testing.T) {
	l := New(Config{Level: "not-a-level"})
	if l == nil {
		t.Fatal("New returned nil")
	}
	l.Debugf("hello %s", "world")
}

func TestNilLoggerMethodsAreNoops(t *testing.T) {
	var l *Logger
	l.Debugf("should not panic")
	l.Errorf("should not panic")
}
