package assert

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// Equal asserts that the two inputs are identical according to
// reflect.DeepEqual.
func Equal[T any](t *testing.T, expected, actual T) bool {
	t.Helper()

	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("expected: %#v, actual: %#v", expected, actual)
		return false
	}

	return true
}

// False asserts that the input is false.
func False(t *testing.T, actual bool) bool {
	t.Helper()

	return Equal(t, false, actual)
}

// True asserts that the input is true.
func True(t *testing.T, actual bool) bool {
	t.Helper()

	return Equal(t, true, actual)
}

// Zero asserts that the input is equal to T's zero value according to
// reflect.DeepEqual.
func Zero[T any](t *testing.T, actual T) bool {
	t.Helper()

	var zero T
	return Equal(t, zero, actual)
}

// NoError asserts that err is nil.
func NoError(t *testing.T, err error) bool {
	t.Helper()

	if err != nil {
		t.Errorf("unexpected error: %s", err)
		return false
	}

	return true
}

// Error asserts that err is non-nil.
func Error(t *testing.T, err error) bool {
	t.Helper()

	if err == nil {
		t.Errorf("expected an error, got nil")
		return false
	}

	return true
}

// ErrorIs asserts that errors.Is(err, target) holds.
func ErrorIs(t *testing.T, err, target error) bool {
	t.Helper()

	if !errors.Is(err, target) {
		t.Errorf("expected error matching %#v, actual: %#v", target, err)
		return false
	}

	return true
}

// Contains asserts that s contains substr.
func Contains(t *testing.T, s, substr string) bool {
	t.Helper()

	if !strings.Contains(s, substr) {
		t.Errorf("expected %q to contain %q", s, substr)
		return false
	}

	return true
}
