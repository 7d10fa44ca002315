package timefmt

import "errors"

// ErrInvalidArgument indicates a pattern that is not a string or a value that is not a valid instant.
var ErrInvalidArgument = errors.New("timefmt: invalid argument")

// ErrPackNotFound is returned by a LanguagePackSource that has no pack for a code.
var ErrPackNotFound = errors.New("timefmt: language pack not found")

// ErrInvalidPack marks a language pack with missing or malformed tables
var ErrInvalidPack = errors.New("timefmt: invalid language pack")

// ErrFormatterDepth is returned when formatter functions nest too deeply,
// usually because one formats its own name.
var ErrFormatterDepth = errors.New("timefmt: formatter nesting too deep")

// ErrDuplicateFormatter is returned when a formatter name is already registered.
var ErrDuplicateFormatter = errors.New("timefmt: formatter already registered")
