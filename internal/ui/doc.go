// Package ui holds the desktop viewer's side panel. Everything except this
// file needs the ebiten build tag.
package ui
