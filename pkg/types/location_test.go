package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformFromGOOS(t *testing.T) {
	tests := []struct {
		goos string
		want Platform
	}{
		{"linux", PlatformLinux},
		{"darwin", PlatformMac},
		{"windows", PlatformWindows},
		{"freebsd", PlatformLinux},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, PlatformFromGOOS(tt.goos))
		})
	}
}

func TestLocationFor(t *testing.T) {
	loc := Location{Linux: "/mnt/cfg", Windows: `p:\cfg`, Mac: "/Volumes/cfg"}

	assert.Equal(t, "/mnt/cfg", loc.For(PlatformLinux))
	assert.Equal(t, `p:\cfg`, loc.For(PlatformWindows))
	assert.Equal(t, "/Volumes/cfg", loc.For(PlatformMac))
}

func TestLocationIsZero(t *testing.T) {
	assert.True(t, Location{}.IsZero())
	assert.False(t, Location{Windows: `p:\cfg`}.IsZero())
}
