package launcher

import "testing"

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{NotFoundError{Name: "status"}, `The command "status" was not found on the system`},
		{BlacklistedError{Name: "help"}, `The command "help" is blacklisted from this launcher`},
		{ExitError{Name: "status", Code: 128}, `The command "status" returned error code 128.`},
		{ExitError{Name: "status", Signaled: true}, `The command "status" was terminated by a signal.`},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Fatalf("message mismatch:\n got: %s\nwant: %s", got, c.want)
		}
	}
}

func TestSignaledExitCodeIsNonZero(t *testing.T) {
	e := ExitError{Name: "status", Signaled: true}
	if e.ExitCode() == 0 {
		t.Fatalf("a signaled termination must map to a non-zero exit code")
	}
}
