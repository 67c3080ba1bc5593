package utils

import (
	"strings"
	"testing"
	"time"
)

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	ok := IsValidUrl("https://github.com/Jaxartes/jaxartes-misc/")
	if !ok {
		t.Errorf("A valid URL should have been provided")
	}
}

func TestUtils_ShouldRejectInvalidUrl(t *testing.T) {
	for _, uri := range []string{"-", "testdata/sample.csv", "://nohost"} {
		if IsValidUrl(uri) {
			t.Errorf("URL %q expected to be rejected", uri)
		}
	}
}

func TestUtils_DecorateText(t *testing.T) {
	s := DecorateText("boom", ErrorMessage)
	if !strings.HasPrefix(s, ErrorColor) || !strings.HasSuffix(s, DefaultColor) {
		t.Errorf("Error message expected to be wrapped in color codes. Got %q", s)
	}
}

func TestUtils_FormatTime(t *testing.T) {
	if got := FormatTime(30 * time.Second); got != "30.00s" {
		t.Errorf("Formatted time expected to be %q. Got %q", "30.00s", got)
	}
	if got := FormatTime(90 * time.Second); got != "1m 30.00s" {
		t.Errorf("Formatted time expected to be %q. Got %q", "1m 30.00s", got)
	}
}

func TestUtils_MinMaxAbs(t *testing.T) {
	if got := Min(3, 5); got != 3 {
		t.Errorf("Min expected to be 3. Got %v", got)
	}
	if got := Max(int64(3), int64(5)); got != 5 {
		t.Errorf("Max expected to be 5. Got %v", got)
	}
	if got := Abs(int64(-2)); got != 2 {
		t.Errorf("Abs expected to be 2. Got %v", got)
	}
}
