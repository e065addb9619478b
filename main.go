package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chzyer/readline"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mudflat/riveropt/terra"
)

func main() {
	rows := flag.Int("rows", 0, "grid rows (prompted for if omitted)")
	cols := flag.Int("cols", 0, "grid columns (prompted for if omitted)")
	familyArg := flag.String("family", "", "terrain family: meadow, thicket, mountain or suburb (prompted for if omitted)")
	profileMode := flag.String("profile", "", "write a profile: cpu, clock or mem")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var family terra.Family
	if *familyArg != "" {
		f, err := terra.ParseFamily(*familyArg)
		if err != nil {
			log.Fatal().Err(err).Msg("bad -family")
		}
		family = f
	}

	if *rows == 0 || *cols == 0 || *familyArg == "" {
		rl, err := readline.New("  ")
		if err != nil {
			log.Fatal().Err(err).Msg("cannot open terminal")
		}
		fmt.Println(" Enter information about the grid to optimize...")
		if *rows == 0 {
			*rows = promptInt(rl, " How many rows?")
		}
		if *cols == 0 {
			*cols = promptInt(rl, " How many columns?")
		}
		if *familyArg == "" {
			family = promptFamily(rl)
		}
		rl.Close()
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "clock":
		defer profile.Start(profile.ClockProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		log.Fatal().Str("mode", *profileMode).Msg("bad -profile (want cpu, clock or mem)")
	}

	log.Info().
		Int("rows", *rows).
		Int("cols", *cols).
		Stringer("family", family).
		Msg("starting search")

	s := terra.NewSearcher(family)
	s.Progress = make(chan terra.ProgressUpdate, 64)
	var wg sync.WaitGroup
	wg.Add(1)
	go PrintUpdates(s.Progress, &wg)

	start := time.Now()
	grid, val, err := s.Solve(*rows, *cols)
	close(s.Progress)
	wg.Wait()
	if err != nil {
		log.Fatal().Err(err).Msg("search failed")
	}

	fmt.Println()
	fmt.Print(terra.Render(grid, family))
	fmt.Printf(" Value of grid: %d\n", val)
	fmt.Printf(" Total duration: %.4f\n", time.Since(start).Seconds())
	log.Debug().Msg("timings:\n" + s.Watch.Results())
}

func promptInt(rl *readline.Instance, msg string) int {
	for {
		fmt.Println(msg)
		line, err := rl.Readline()
		if err != nil {
			log.Fatal().Err(err).Msg("input aborted")
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n > 0 {
			return n
		}
		fmt.Println(" Please enter a positive number.")
	}
}

func promptFamily(rl *readline.Instance) terra.Family {
	for {
		fmt.Println(" What type of landscape tile?")
		fmt.Println(" (0 = meadow, 1 = thicket, 2 = mountain, 3 = suburb):")
		line, err := rl.Readline()
		if err != nil {
			log.Fatal().Err(err).Msg("input aborted")
		}
		f, err := terra.ParseFamily(line)
		if err == nil {
			return f
		}
		fmt.Println(" Please pick 0-3 or a family name.")
	}
}
