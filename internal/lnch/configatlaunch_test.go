//    ThemataGoEngine
//    Copyright: P Themelis 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch_test

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-themelis/ThemataGoEngine/internal/lnch"
	"github.com/p-themelis/ThemataGoEngine/internal/vv"
)

// TestSeedFlagParsing verifies a plain "-sd" argument reaches the configuration.
func TestSeedFlagParsing(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	os.Args = []string{"tge", "-sd", "12345"}
	cfg := lnch.ConfigAtLaunch()
	assert.Equal(t, uint64(12345), cfg.Seed)

	os.Args = []string{"tge"}
	cfg = lnch.ConfigAtLaunch()
	assert.Equal(t, uint64(vv.DEFAULTSEED), cfg.Seed)
}

// TestSeedFlagRejectsNegative verifies that "-sd -1" exits instead of silently
// wrapping to a huge unsigned seed. The parse failure calls os.Exit, so the
// check happens in a re-exec of the test binary.
func TestSeedFlagRejectsNegative(t *testing.T) {
	if os.Getenv("TGE_WANT_EXIT") == "1" {
		os.Args = []string{"tge", "-sd", "-1"}
		lnch.ConfigAtLaunch()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestSeedFlagRejectsNegative")
	cmd.Env = append(os.Environ(), "TGE_WANT_EXIT=1")
	err := cmd.Run()

	var ee *exec.ExitError
	require.ErrorAs(t, err, &ee, "a negative seed must exit nonzero")
	assert.False(t, ee.Success())
}
