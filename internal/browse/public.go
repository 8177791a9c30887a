// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package browse

// PublicViewer is the read-only browser for anonymous use. Its only way out
// is RequestLogin.
type PublicViewer struct {
	browser
	onLogin func()
}

// NewPublicViewer returns a public viewer over content. onLogin is called by
// RequestLogin and hands control to the login prompt.
func NewPublicViewer(content Reader, onLogin func()) *PublicViewer {
	return &PublicViewer{
		browser: browser{nav: NewNavigator(), content: content},
		onLogin: onLogin,
	}
}

// RequestLogin asks for the admin login prompt. It reports false when no
// prompt is wired.
func (p *PublicViewer) RequestLogin() bool {
	if p.onLogin == nil {
		return false
	}
	p.onLogin()
	return true
}
