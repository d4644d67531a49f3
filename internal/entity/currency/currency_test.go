package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnKnownCurrency_ShouldReturnSymbol(t *testing.T) {
	assert.Equal(t, "₹", Symbol(INR))
	assert.Equal(t, "$", Symbol(USD))
}

func Test_OnUnknownCurrency_ShouldReturnCode(t *testing.T) {
	assert.Equal(t, "GBP", Symbol("GBP"))
}
