// Command play is a minimal text REPL over the engine package: not a
// UCI implementation, just a quick way to load
// a position, list legal moves, make one, and ask for a search — the
// shape of chessvariantengine-lib's interface.go debug loop, adapted
// to this module's multi-variant Engine.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"variantchess/engine"
	"variantchess/rules"
	"variantchess/variants"
)

func main() {
	variant := flag.String("variant", "standard", "variant name (standard, chess960, atomic, antichess, horde, racingkings, koth, ncheck) or a path to a .yaml variant file")
	nCheckLimit := flag.Int("ncheck-limit", 3, "check count needed to win, when -variant=ncheck")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetPrefix("play: ")
	log.SetFlags(log.Lshortfile)

	desc, err := resolveDescriptor(*variant, *nCheckLimit)
	if err != nil {
		log.Fatalf("resolving variant: %v", err)
	}

	e, err := engine.New(desc)
	if err != nil {
		log.Fatalf("starting engine: %v", err)
	}

	fmt.Fprintln(os.Stdout, "commands: fen | load <fen> | moves | move <coord> | go <depth> | threads <n> | quit")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "quit", "exit":
			return
		case "fen":
			fmt.Println(e.ToFEN())
		case "load":
			if len(fields) < 2 {
				fmt.Println("usage: load <fen>")
				continue
			}
			if err := e.LoadFEN(strings.Join(fields[1:], " ")); err != nil {
				fmt.Println("error:", err)
			}
		case "moves":
			for _, m := range e.LegalMoves() {
				fmt.Println(m.FromName + m.ToName + m.Promotion)
			}
		case "move":
			if len(fields) < 2 {
				fmt.Println("usage: move <coord>")
				continue
			}
			res, err := e.MakeMoveStr(fields[1])
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			printResult(res)
		case "go":
			depth := 4
			if len(fields) > 1 {
				if d, err := strconv.Atoi(fields[1]); err == nil {
					depth = d
				}
			}
			res, err := e.GetBestMove(depth)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Printf("bestmove %s%s score=%d depth=%d nodes=%d\n",
				res.Move.FromName, res.Move.ToName, res.Score, res.Depth, res.Nodes)
		case "threads":
			if len(fields) < 2 {
				fmt.Println("usage: threads <n>")
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			e.SetNumThreads(n)
		default:
			fmt.Println("unknown command:", fields[0])
		}
	}
}

func printResult(res engine.MakeResult) {
	fmt.Printf("played %s%s\n", res.Move.FromName, res.Move.ToName)
	if len(res.Exploded) > 0 {
		fmt.Println("exploded:", strings.Join(res.Exploded, ","))
	}
	if res.Outcome.Decided {
		if res.Outcome.Draw {
			fmt.Println("game over: draw by", res.Outcome.Reason)
		} else {
			fmt.Println("game over:", res.Outcome.Winner, "wins by", res.Outcome.Reason)
		}
	}
}

func resolveDescriptor(name string, nCheckLimit int) (*rules.Descriptor, error) {
	switch name {
	case "standard":
		return variants.Standard(), nil
	case "chess960":
		return variants.Chess960(), nil
	case "atomic":
		return variants.Atomic(), nil
	case "antichess":
		return variants.Antichess(), nil
	case "horde":
		return variants.Horde(), nil
	case "racingkings":
		return variants.RacingKings(), nil
	case "koth":
		return variants.KingOfTheHill(), nil
	case "ncheck":
		return variants.NCheck(nCheckLimit), nil
	default:
		return variants.LoadFile(name)
	}
}
