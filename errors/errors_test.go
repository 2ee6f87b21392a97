package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorInvalid, "invalid"},
		{ErrorState, "state"},
		{ErrorFatal, "fatal"},
		{ErrorClass(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.class.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		invalid bool
		state   bool
		fatal   bool
	}{
		{"nil error", nil, false, false, false},
		{"already setup", ErrAlreadySetup, false, true, false},
		{"frozen table", ErrFrozen, false, true, false},
		{"invalid xlet", ErrInvalidXlet, true, false, false},
		{"invalid outlet", ErrInvalidOutlet, true, false, false},
		{"resource exhausted", ErrResourceExhausted, false, false, true},
		{"classified state", &ClassifiedError{Class: ErrorState, Err: fmt.Errorf("test")}, false, true, false},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, false, false, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsInvalid(test.err); got != test.invalid {
				t.Errorf("IsInvalid: expected %v, got %v", test.invalid, got)
			}
			if got := IsState(test.err); got != test.state {
				t.Errorf("IsState: expected %v, got %v", test.state, got)
			}
			if got := IsFatal(test.err); got != test.fatal {
				t.Errorf("IsFatal: expected %v, got %v", test.fatal, got)
			}
		})
	}
}

func TestWrapFormat(t *testing.T) {
	err := Wrap(ErrInvalidOutlet, "Base", "ToOutFloat", "outlet lookup")
	want := "Base.ToOutFloat: outlet lookup failed: invalid outlet index"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if !errors.Is(err, ErrInvalidOutlet) {
		t.Error("wrapped error must unwrap to the sentinel")
	}
}

func TestWrapNilReturnsNil(t *testing.T) {
	if Wrap(nil, "a", "b", "c") != nil {
		t.Error("Wrap(nil) must be nil")
	}
	if WrapInvalid(nil, "a", "b", "c") != nil {
		t.Error("WrapInvalid(nil) must be nil")
	}
	if WrapState(nil, "a", "b", "c") != nil {
		t.Error("WrapState(nil) must be nil")
	}
	if WrapFatal(nil, "a", "b", "c") != nil {
		t.Error("WrapFatal(nil) must be nil")
	}
}

func TestWrapStateClassifies(t *testing.T) {
	err := WrapState(ErrAlreadySetup, "Base", "SetupInOut", "finalization")
	if !IsState(err) {
		t.Error("WrapState result must classify as state")
	}
	if !strings.Contains(err.Error(), "Base.SetupInOut") {
		t.Errorf("missing context in %q", err.Error())
	}

	var ce *ClassifiedError
	if !errors.As(err, &ce) {
		t.Fatal("expected ClassifiedError")
	}
	if ce.Component != "Base" || ce.Operation != "SetupInOut" {
		t.Errorf("unexpected context: %+v", ce)
	}
}

func TestClassify(t *testing.T) {
	if Classify(ErrAlreadySetup) != ErrorState {
		t.Error("expected state class")
	}
	if Classify(ErrResourceExhausted) != ErrorFatal {
		t.Error("expected fatal class")
	}
	if Classify(fmt.Errorf("anything else")) != ErrorInvalid {
		t.Error("unknown errors default to invalid")
	}
}
