package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"hulot@example.com",
		"first.last@sub.example.co.uk",
		"user+tag@example.org",
	}
	for _, address := range valid {
		assert.True(t, IsValidEmail(address), address)
	}

	invalid := []string{
		"",
		"plainaddress",
		"missing-at.example.com",
		"two@@example.com",
		"spaces in@example.com",
		"nodomain@",
		"@nolocal.com",
		"nodot@example",
	}
	for _, address := range invalid {
		assert.False(t, IsValidEmail(address), address)
	}
}

func TestLogDispatcher(t *testing.T) {
	d := &LogDispatcher{Logger: zap.NewNop()}
	err := d.Dispatch(context.Background(), "hulot@example.com", "Subject", "Body")
	require.NoError(t, err)
}
