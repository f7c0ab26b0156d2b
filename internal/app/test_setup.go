package app

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// SetupTestService is a helper for tests that need a running Service.
func SetupTestService(t *testing.T) *Service {
	service := NewService(Options{})

	t.Cleanup(func() {
		service.Shutdown()
	})

	return service
}

// BuildTestPuz encodes a minimal .puz buffer: header, solution, an empty
// fill plane, title/author/copyright and the given clues.
func BuildTestPuz(width, height int, solution string, clues ...string) []byte {
	var buf bytes.Buffer
	buf.Write(make([]byte, 2))
	buf.WriteString(puzMagic)
	buf.WriteByte(0)
	buf.Write(make([]byte, puzWidthOffset-buf.Len()))
	buf.Write([]byte{byte(width), byte(height)})
	binary.Write(&buf, binary.LittleEndian, uint16(len(clues)))
	buf.Write(make([]byte, puzGridOffset-buf.Len()))

	buf.WriteString(solution)
	fill := bytes.Map(func(r rune) rune {
		if r == BlockChar {
			return r
		}
		return '-'
	}, []byte(solution))
	buf.Write(fill)

	buf.WriteString("Title\x00Author\x00Copyright\x00")
	for _, c := range clues {
		buf.WriteString(c)
		buf.WriteByte(0)
	}
	return buf.Bytes()
}
