package main

import (
	"flag"
	"log"
	"os"

	"github.com/pkg/profile"

	"github.com/mosdev/famicore/internal/nes"
)

func main() {
	romPath := flag.String("rom", "", "path to an iNES rom file")
	rawPath := flag.String("program", "", "path to a raw 6502 machine code image")
	maxTicks := flag.Uint64("max-ticks", 0, "stop after this many instructions, 0 means no limit")
	profiling := flag.Bool("profile", false, "write a cpu profile to the current directory")
	flag.Parse()

	if *profiling {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if (*romPath == "") == (*rawPath == "") {
		log.Fatalf("exactly one of -rom or -program is required")
	}

	var bus *nes.Bus
	switch {
	case *romPath != "":
		cart, err := nes.NewCartFromFile(*romPath)
		if err != nil {
			log.Fatalf("couldn't load the rom: %s", err)
		}
		bus = nes.NewBus(cart.Mapper())
	default:
		program, err := os.ReadFile(*rawPath)
		if err != nil {
			log.Fatalf("couldn't read the program: %s", err)
		}
		bus = nes.NewBus(nil)
		if err := bus.LoadProgram(program); err != nil {
			log.Fatalf("couldn't load the program: %s", err)
		}
	}

	cpu := nes.NewCPU(bus)
	cpu.SetMaxTicks(*maxTicks)
	cpu.Run()

	log.Printf("halted after %d instructions: A=%02X X=%02X Y=%02X P=%02X SP=%02X PC=%04X",
		cpu.TickCount(), cpu.A(), cpu.X(), cpu.Y(), cpu.P(), cpu.SP(), cpu.PC())
}
