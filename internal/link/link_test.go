package link

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrontendLink(t *testing.T) {
	f := NewFactory("http://localhost:3000/", "http://localhost:8080")

	assert.Equal(t,
		"http://localhost:3000/authentication/registration/sometoken",
		f.FrontendLink("/authentication/registration/sometoken"))
	assert.Equal(t,
		"http://localhost:3000/authentication/registration/sometoken",
		f.FrontendLink("authentication/registration/sometoken"))
}

func TestExternalLink(t *testing.T) {
	f := NewFactory("http://localhost:3000", "http://localhost:8080/")

	assert.Equal(t, "http://localhost:8080/birds/pica-pica", f.ExternalLink("/birds/pica-pica"))
}
