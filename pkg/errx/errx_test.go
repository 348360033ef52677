package errx

import (
	"errors"
	"fmt"
	"testing"
)

func TestRegistryRegisterAndNew(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("SOMETHING_BROKE", TypeExternal, "Something broke")

	if code.Code != "TEST_SOMETHING_BROKE" {
		t.Errorf("unexpected code: %s", code.Code)
	}
	if code.ExitCode != 3 {
		t.Errorf("external errors should map to exit code 3, got %d", code.ExitCode)
	}

	err := reg.New(code)
	if err.Error() != "[TEST_SOMETHING_BROKE] Something broke" {
		t.Errorf("unexpected error string: %s", err.Error())
	}
}

func TestNewWithCauseUnwraps(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("WRAPPED", TypeInternal, "Wrapped failure")

	cause := fmt.Errorf("root cause")
	err := reg.NewWithCause(code, cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}
}

func TestExitCodeFor(t *testing.T) {
	reg := NewRegistry("TEST")

	cases := []struct {
		errType Type
		want    int
	}{
		{TypeValidation, 2},
		{TypeNotFound, 2},
		{TypeAuthorization, 2},
		{TypeExternal, 3},
		{TypeInternal, 1},
	}

	for _, tc := range cases {
		code := reg.Register("X_"+string(tc.errType), tc.errType, "x")
		if got := ExitCodeFor(reg.New(code)); got != tc.want {
			t.Errorf("%s: expected exit code %d, got %d", tc.errType, tc.want, got)
		}
	}

	if ExitCodeFor(nil) != 0 {
		t.Error("nil error should map to exit code 0")
	}
	if ExitCodeFor(fmt.Errorf("plain")) != 1 {
		t.Error("plain errors should map to exit code 1")
	}
}

func TestWithDetail(t *testing.T) {
	err := New("boom", TypeValidation).WithDetail("field", "target")
	if err.Details["field"] != "target" {
		t.Errorf("detail not recorded: %+v", err.Details)
	}
}
