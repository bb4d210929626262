// +build !debug

package assert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssertIsNoopInReleaseBuild(t *testing.T) {
	assert.False(t, DEBUG)
	assert.NotPanics(t, func() {
		Assert(false, "this must never panic outside a debug build")
	})
}
