package config

import (
	"testing"
	"time"
)

func TestTimeoutDefault(t *testing.T) {
	o := Options{}
	if o.Timeout() != DefaultTimeout {
		t.Errorf("Timeout() = %v, want default %v", o.Timeout(), DefaultTimeout)
	}
}

func TestTimeoutExplicit(t *testing.T) {
	o := Options{TimeoutMS: 1500}
	if want := 1500 * time.Millisecond; o.Timeout() != want {
		t.Errorf("Timeout() = %v, want %v", o.Timeout(), want)
	}
}

func TestContractModeString(t *testing.T) {
	cases := map[ContractMode]string{
		Off:     "off",
		Release: "release",
		Debug:   "debug",
	}
	for mode, want := range cases {
		if got := mode.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", mode, got, want)
		}
	}
}
