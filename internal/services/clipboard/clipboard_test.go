package clipboard

import (
	"errors"
	"testing"
)

func TestServiceCopyWritesText(t *testing.T) {
	var written string
	service := &Service{writeAll: func(text string) error {
		written = text
		return nil
	}}
	if copyError := service.Copy("hello"); copyError != nil {
		t.Fatalf("copy: %v", copyError)
	}
	if written != "hello" {
		t.Fatalf("expected hello, got %q", written)
	}
}

func TestServiceCopyWrapsFailure(t *testing.T) {
	writeFailure := errors.New("xclip missing")
	service := &Service{writeAll: func(string) error { return writeFailure }}
	if copyError := service.Copy("hello"); !errors.Is(copyError, writeFailure) {
		t.Fatalf("expected wrapped failure, got %v", copyError)
	}
}

func TestServiceCopyUnsupported(t *testing.T) {
	service := &Service{writeAll: func(string) error { return nil }, unsupported: true}
	if copyError := service.Copy("hello"); !errors.Is(copyError, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", copyError)
	}
}
