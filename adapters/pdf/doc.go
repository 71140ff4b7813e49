// Package cvpdf provides the Chromium-backed rendering backend. One
// persistent headless browser process serves every request; each request
// renders inside its own isolated tab context.
package cvpdf
