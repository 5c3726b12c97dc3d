// Package fonts maps font family names to embedded TrueType data.
//
// Only the Go font family ships with the binary. Names the book does not know,
// such as "Arial", resolve to the default face the same way a system font
// lookup falls back to its default font.
package fonts

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

// Default is the family used for unknown names.
const Default = "Go"

// ErrEmptyFont is returned when a family is registered without data.
var ErrEmptyFont = errors.New("fonts: empty font data")

// Book is a case-insensitive family name to TTF table.
type Book struct {
	faces map[string][]byte
}

// NewBook returns a book preloaded with the Go fonts.
func NewBook() *Book {
	b := &Book{faces: make(map[string][]byte)}
	for name, ttf := range map[string][]byte{
		"Go":             goregular.TTF,
		"Go Bold":        gobold.TTF,
		"Go Italic":      goitalic.TTF,
		"Go Bold Italic": gobolditalic.TTF,
		"Go Medium":      gomedium.TTF,
		"Go Mono":        gomono.TTF,
		"Go Mono Bold":   gomonobold.TTF,
		"Go Smallcaps":   gosmallcaps.TTF,
	} {
		b.faces[key(name)] = ttf
	}
	return b
}

// Register adds or replaces a family.
func (b *Book) Register(name string, ttf []byte) error {
	if len(ttf) == 0 {
		return ErrEmptyFont
	}
	b.faces[key(name)] = ttf
	return nil
}

// Lookup returns the data for name and the family it resolved to.
func (b *Book) Lookup(name string) (family string, ttf []byte) {
	if ttf, ok := b.faces[key(name)]; ok {
		return key(name), ttf
	}
	return key(Default), b.faces[key(Default)]
}

// Families lists the registered families in sorted order.
func (b *Book) Families() []string {
	names := make([]string, 0, len(b.faces))
	for name := range b.faces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
