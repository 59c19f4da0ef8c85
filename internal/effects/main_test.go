package effects

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain ensures debounce timers and searches never outlive Close.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
