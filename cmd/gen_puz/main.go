package main

import (
	"encoding/binary"
	"flag"
	"log"
	"os"
)

// 5x5 grid with no single-letter entries:
//
//	AB.CD
//	EFGHI
//	.JKL.
//	MNOPQ
//	RS.TU
const (
	solution = "AB.CD" + "EFGHI" + ".JKL." + "MNOPQ" + "RS.TU"
	state    = "--.--" + "-----" + ".---." + "-----" + "--.--"
)

// Clues in the usual Across Lite order: by number, across before down.
var clues = []string{
	"1 Across", "1 Down", "2 Down", "3 Across", "3 Down", "4 Down", "5 Across",
	"6 Down", "7 Across", "8 Across", "8 Down", "9 Down", "10 Across", "11 Across",
}

// Writes the fixture used by internal/app tests.
func main() {
	out := flag.String("o", "internal/app/testdata/sample.puz", "output file")
	flag.Parse()

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	// Header (0x34 bytes)
	binary.Write(f, binary.LittleEndian, uint16(0)) // Checksum
	f.Write([]byte("ACROSS&DOWN\x00"))              // Magic
	binary.Write(f, binary.LittleEndian, uint16(0)) // CIB Checksum
	f.Write(make([]byte, 8))                        // Masked Checksums
	f.Write([]byte("1.3\x00"))                      // Version
	binary.Write(f, binary.LittleEndian, uint16(0)) // Reserved
	binary.Write(f, binary.LittleEndian, uint16(0)) // Scrambled Checksum
	f.Write(make([]byte, 12))                       // Reserved
	f.Write([]byte{5, 5})                           // Width, Height

	binary.Write(f, binary.LittleEndian, uint16(len(clues))) // Num Clues
	binary.Write(f, binary.LittleEndian, uint16(1))          // Bitmask
	binary.Write(f, binary.LittleEndian, uint16(0))          // Scrambled Tag

	f.Write([]byte(solution))
	f.Write([]byte(state))

	// Strings, ISO-8859-1
	f.Write([]byte("Sample Title\x00"))
	f.Write([]byte("Sample Author\x00"))
	f.Write([]byte("\xa9 2026 Sample Copyright\x00"))
	for _, c := range clues {
		f.Write([]byte(c + "\x00"))
	}
	f.Write([]byte("Caf\xe9 notes\x00"))
}
