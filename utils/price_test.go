package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 20.8, Round2(20.7984))
	assert.Equal(t, 280.78, Round2(280.7784))
	assert.Equal(t, 259.98, Round2(259.98))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 1.01, Round2(1.005000001))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$129.99", FormatPrice(129.99))
	assert.Equal(t, "$20.80", FormatPrice(20.7984))
	assert.Equal(t, "$0.00", FormatPrice(0))
}
