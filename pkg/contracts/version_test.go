package contracts

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentBuild(t *testing.T) {
	info := CurrentBuild()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.Contains(t, info.String(), "orgpulse v"+Version)
	assert.Contains(t, info.String(), "commit "+GitCommit)
}
