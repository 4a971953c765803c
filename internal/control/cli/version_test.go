package cli

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVersion(t *testing.T) {
	testcases := map[string]struct {
		version, hash string
		info          *debug.BuildInfo
		expected      string
	}{
		"ldflags only": {"v1.2.0", "abc123", nil, "v1.2.0 (abc123)"},
		"no info":      {"development", "unknown", nil, "development (unknown)"},
		"devel build": {
			"development", "unknown",
			&debug.BuildInfo{
				Main:     debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "deadbeef"}, {Key: "vcs.modified", Value: "true"}},
			},
			"development (deadbeef-dirty)",
		},
		"installed module": {
			"development", "unknown",
			&debug.BuildInfo{Main: debug.Module{Version: "v0.3.1"}},
			"v0.3.1 (unknown)",
		},
		"ldflags take precedence": {
			"v1.2.0", "abc123",
			&debug.BuildInfo{
				Main:     debug.Module{Version: "v0.3.1"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "deadbeef"}},
			},
			"v1.2.0 (abc123)",
		},
	}

	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, formatVersion(tc.version, tc.hash, tc.info))
		})
	}
}
