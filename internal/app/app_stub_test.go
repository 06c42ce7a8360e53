//go:build !ebiten

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunWithoutGUI(t *testing.T) {
	assert.ErrorIs(t, Run(nil, DefaultOptions()), ErrNoGUI)
}
