package testutil

import (
	"os"
	"testing"
)

const envUseCI = "MASS_CI"

// SkipCI skips heavyweight sweeps unless the CI environment flag is set.
func SkipCI(t *testing.T) {
	if os.Getenv(envUseCI) == "" {
		t.Skip("Skip MASS CI")
	}
}
