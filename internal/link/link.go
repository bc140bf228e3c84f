// Package link builds absolute URLs pointing at the frontend and at this
// backend's externally visible host.
package link

import "strings"

type Factory struct {
	frontendHost string
	externalHost string
}

func NewFactory(frontendHost, externalHost string) *Factory {
	return &Factory{
		frontendHost: strings.TrimSuffix(frontendHost, "/"),
		externalHost: strings.TrimSuffix(externalHost, "/"),
	}
}

// FrontendLink joins a path onto the frontend host, e.g.
// /authentication/registration/{token}.
func (f *Factory) FrontendLink(path string) string {
	return f.frontendHost + ensureLeadingSlash(path)
}

// ExternalLink joins a path onto this service's external host.
func (f *Factory) ExternalLink(path string) string {
	return f.externalHost + ensureLeadingSlash(path)
}

func ensureLeadingSlash(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}
