package app

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Offsets into the Across Lite header.
const (
	puzWidthOffset     = 0x2C
	puzHeightOffset    = 0x2D
	puzClueCountOffset = 0x2E
	puzGridOffset      = 0x34
	puzMagic           = "ACROSS&DOWN"
)

// BlockChar marks a block in the solution grid.
const BlockChar = '.'

var (
	ErrMissingDimensions  = errors.New("puzzle width or height is zero")
	ErrTruncatedGrid      = errors.New("puzzle grid is truncated")
	ErrUnterminatedString = errors.New("puzzle string is not NUL terminated")
)

// FormatError is returned by DecodePuz for any malformed input.
type FormatError struct {
	Kind   error
	Offset int
	Field  string
}

func (e *FormatError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid puz file: %v (%s at offset %d)", e.Kind, e.Field, e.Offset)
	}
	return fmt.Sprintf("invalid puz file: %v (offset %d)", e.Kind, e.Offset)
}

func (e *FormatError) Unwrap() error { return e.Kind }

type Cell struct {
	Row      int
	Col      int
	Index    int
	IsBlock  bool
	Solution byte
}

type ParsedPuzzle struct {
	Title     string
	Author    string
	Copyright string
	Notes     string
	Width     int
	Height    int
	Grid      []Cell
	RawClues  []string
}

// ParsePuzzleFile decodes data as Across Lite whatever the file is called.
// The name only labels the error.
func ParsePuzzleFile(filename string, data []byte) (*ParsedPuzzle, error) {
	parsed, err := DecodePuz(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return parsed, nil
}

func DecodePuz(data []byte) (*ParsedPuzzle, error) {
	if len(data) < puzGridOffset-4 {
		return nil, &FormatError{Kind: ErrMissingDimensions, Offset: len(data), Field: "header"}
	}

	width := int(data[puzWidthOffset])
	height := int(data[puzHeightOffset])
	numClues := int(binary.LittleEndian.Uint16(data[puzClueCountOffset : puzClueCountOffset+2]))

	if width == 0 || height == 0 {
		return nil, &FormatError{Kind: ErrMissingDimensions, Offset: puzWidthOffset}
	}

	numCells := width * height
	stringsOffset := puzGridOffset + 2*numCells
	if len(data) < stringsOffset {
		return nil, &FormatError{Kind: ErrTruncatedGrid, Offset: len(data)}
	}

	solution := data[puzGridOffset : puzGridOffset+numCells]
	// The fill plane that follows records solver progress; session state replaces it.

	grid := make([]Cell, numCells)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			char := solution[i]
			isBlock := char == BlockChar
			if char >= 'a' && char <= 'z' {
				char -= 'a' - 'A'
			}
			grid[i] = Cell{
				Row:      y,
				Col:      x,
				Index:    i,
				IsBlock:  isBlock,
				Solution: char,
			}
		}
	}

	r := &stringReader{data: data, pos: stringsOffset}

	title, err := r.next("title")
	if err != nil {
		return nil, err
	}
	author, err := r.next("author")
	if err != nil {
		return nil, err
	}
	copyright, err := r.next("copyright")
	if err != nil {
		return nil, err
	}

	clues := make([]string, 0, numClues)
	for i := 0; i < numClues; i++ {
		clue, err := r.next(fmt.Sprintf("clue %d", i+1))
		if err != nil {
			return nil, err
		}
		clues = append(clues, clue)
	}

	// Notepad is optional; older files end right after the clues.
	notes, _ := r.next("notes")

	return &ParsedPuzzle{
		Title:     title,
		Author:    author,
		Copyright: copyright,
		Notes:     notes,
		Width:     width,
		Height:    height,
		Grid:      grid,
		RawClues:  clues,
	}, nil
}

// stringReader walks the NUL-terminated Latin-1 strings after the grids.
type stringReader struct {
	data []byte
	pos  int
}

func (r *stringReader) next(field string) (string, error) {
	rest := r.data[r.pos:]
	end := bytes.IndexByte(rest, 0)
	if end < 0 {
		return "", &FormatError{Kind: ErrUnterminatedString, Offset: r.pos, Field: field}
	}
	raw := rest[:end]
	r.pos += end + 1

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", field, err)
	}
	return string(decoded), nil
}
