package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"team_word/internal/app"
)

func main() {
	orderName := flag.String("order", app.OrderInterleavedAcrossFirst.String(), "clue order policy")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: inspect [-order policy] file.puz")
		os.Exit(2)
	}
	path := flag.Arg(0)

	order, err := app.ParseClueOrder(*orderName)
	if err != nil {
		log.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	parsed, err := app.ParsePuzzleFile(path, data)
	if err != nil {
		log.Fatal(err)
	}
	p := app.NewPuzzle(parsed, order)

	fmt.Printf("%s\n%s\n%s\n", p.Title, p.Author, p.Copyright)
	fmt.Printf("%dx%d, %d clues in file, order %s\n\n", p.Width, p.Height, len(p.RawClues), order)

	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			i := y*p.Width + x
			switch {
			case p.Grid[i].IsBlock:
				fmt.Print("  ##")
			case p.Entries.Numbers[i] > 0:
				fmt.Printf(" %2d%c", p.Entries.Numbers[i], p.Grid[i].Solution)
			default:
				fmt.Printf("   %c", p.Grid[i].Solution)
			}
		}
		fmt.Println()
	}

	for _, dir := range []app.Direction{app.DirectionAcross, app.DirectionDown} {
		fmt.Printf("\n%s\n", dir)
		for _, e := range p.Entries.List(dir) {
			answer := make([]byte, len(e.Cells))
			for j, c := range e.Cells {
				answer[j] = p.Grid[c].Solution
			}
			fmt.Printf("%3d %-*s %s\n", e.Number, p.Width+p.Height, answer, e.Clue)
		}
	}

	if used := len(p.Entries.Across) + len(p.Entries.Down); used != len(p.RawClues) {
		fmt.Printf("\nwarning: %d entries but %d clues\n", used, len(p.RawClues))
	}
}
