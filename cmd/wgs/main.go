package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/powellquiring/guesser/guesser"
	"github.com/powellquiring/guesser/wordlist"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3" // imports as package "cli"
)

type GlobalConfiguration struct {
	dictionary *guesser.Dictionary
	rng        *rand.Rand
	progress   bool
}

func globalConfiguration(path string, count, seed int, progress bool) (GlobalConfiguration, error) {
	var words []string
	var err error
	if path == "" {
		words = wordlist.Default()
	} else {
		words, err = wordlist.Load(path)
		if err != nil {
			return GlobalConfiguration{}, err
		}
	}
	if count > 0 && count < len(words) {
		words = words[:count]
	}
	dictionary, err := guesser.NewDictionary(words)
	if err != nil {
		return GlobalConfiguration{}, err
	}
	seed64 := int64(seed)
	if seed64 == 0 {
		seed64 = time.Now().UnixNano()
	}
	return GlobalConfiguration{
		dictionary: dictionary,
		rng:        rand.New(rand.NewSource(seed64)),
		progress:   progress,
	}, nil
}

// play drives an external wordle game. Each turn the solver prints its guess,
// the player relays the game's feedback: the letter itself for an exact
// match, '-' for present elsewhere, '+' for absent. With --manual the player
// supplies the guesses too and the solver is just a scorekeeper.
func play(config GlobalConfiguration, manual bool) error {
	mode := guesser.ModeAuto
	if manual {
		mode = guesser.ModeManual
	}
	solver := guesser.New(mode, config.dictionary, guesser.WithRand(config.rng))
	reader := bufio.NewReader(os.Stdin)
	feedback := ""
	for turn := 1; ; turn++ {
		var guess string
		if manual {
			fmt.Print("your guess: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			guess = strings.TrimSpace(line)
			if _, err := guesser.ToWord(guess); err != nil {
				fmt.Println(err)
				turn--
				continue
			}
		} else {
			var err error
			guess, err = solver.NextGuess(feedback)
			if err != nil {
				return err
			}
			log.Debug().Int("turn", turn).Int("candidates", len(solver.Candidates())).Msg("guessing")
		}
		fmt.Printf("guess %d: %s\n", turn, guess)

		// re-prompt until the feedback for this guess parses
		var fb guesser.Feedback
		for {
			fmt.Print("feedback (letter=exact, -=present, +=absent): ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			feedback = strings.TrimSpace(line)
			fb, err = guesser.ParseFeedback(feedback)
			if err == nil {
				break
			}
			fmt.Println(err)
		}
		if fb.AllExact() {
			fmt.Printf("solved in %d guesses\n", turn)
			return nil
		}
	}
}

// sim plays the solver against known solutions and reports the distribution
// of guess counts.
func sim(config GlobalConfiguration, solutionStrings []string, maxTurns int) error {
	d := config.dictionary
	solutions := []guesser.Word{}
	if len(solutionStrings) == 0 {
		solutions = d.Words()
	} else {
		known := make(map[string]bool, d.Len())
		for _, w := range d.Strings() {
			known[w] = true
		}
		for _, s := range solutionStrings {
			if !known[s] {
				return cli.Exit("solution not in dictionary: "+s, 1)
			}
			solutions = append(solutions, guesser.MustWord(s))
		}
	}

	var bar *progressbar.ProgressBar
	if config.progress {
		bar = progressbar.Default(int64(len(solutions)))
	} else {
		bar = progressbar.DefaultSilent(int64(len(solutions)))
	}

	start := time.Now()
	histogram := make(map[int][]string)
	failed := []string{}
	total := 0
	for _, solution := range solutions {
		guesses, err := guesser.Simulate(d, solution, maxTurns, guesser.WithRand(config.rng))
		bar.Add(1)
		if err != nil {
			log.Warn().Str("solution", solution.String()).Err(err).Msg("game failed")
			failed = append(failed, solution.String())
			continue
		}
		histogram[len(guesses)] = append(histogram[len(guesses)], solution.String())
		total += len(guesses)
	}

	keys := make([]int, 0, len(histogram))
	for k := range histogram {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, numGuesses := range keys {
		games := histogram[numGuesses]
		fmt.Println(numGuesses, len(games), "---------------------")
		fmt.Println(strings.Join(games, " "))
	}
	solved := len(solutions) - len(failed)
	log.Info().
		Int("games", len(solutions)).
		Int("solved", solved).
		Int("failed", len(failed)).
		Float64("avg_guesses", float64(total)/float64(max(solved, 1))).
		Dur("elapsed", time.Since(start)).
		Msg("simulation done")
	if len(failed) > 0 {
		return cli.Exit("unsolved: "+strings.Join(failed, " "), 1)
	}
	return nil
}

// first prints the frequency-derived opening guess.
func first(config GlobalConfiguration) {
	solver := guesser.New(guesser.ModeAuto, config.dictionary)
	fmt.Println(solver.FirstGuess())
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	wordlistPath := ""
	count := int64(0)
	seed := int64(0)
	progress := false
	debug := false
	// command specific flags
	manual := false
	maxTurns := int64(10)
	cmd := &cli.Command{
		Name:  "wgs",
		Usage: "wordle guess solver",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "wordlist",
				Value:       "",
				Aliases:     []string{"w"},
				Usage:       "word list file (.yaml or one word per line), default is the built in list",
				Destination: &wordlistPath,
			},
			&cli.IntFlag{
				Name:        "count",
				Value:       0,
				Aliases:     []string{"c"},
				Usage:       "number of words, 0 is all words",
				Destination: &count,
			},
			&cli.IntFlag{
				Name:        "seed",
				Value:       0,
				Usage:       "random seed for reproducible games, 0 seeds from the clock",
				Destination: &seed,
			},
			&cli.BoolFlag{
				Name:        "progress",
				Value:       false,
				Aliases:     []string{"p"},
				Usage:       "show progress bar",
				Destination: &progress,
			},
			&cli.BoolFlag{
				Name:        "debug",
				Value:       false,
				Usage:       "debug logging",
				Destination: &debug,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name: "play",
				Usage: `play against an external wordle game, relaying its feedback each turn
				feedback format: the letter itself for an exact match, - for present elsewhere, + for absent
				`,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "manual",
						Value:       false,
						Aliases:     []string{"m"},
						Usage:       "you supply the guesses instead of the solver",
						Destination: &manual,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					config, err := globalConfiguration(wordlistPath, int(count), int(seed), progress)
					if err != nil {
						return err
					}
					return play(config, manual)
				},
			},
			{
				Name: "sim",
				Usage: `sim [solution]...
				Simulate games for the listed solutions, or for every dictionary word
				when none are given. Use the --count global flag to cut the list back
				for testing.
				`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "max-turns",
						Value:       10,
						Usage:       "give up after this many guesses",
						Destination: &maxTurns,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					config, err := globalConfiguration(wordlistPath, int(count), int(seed), progress)
					if err != nil {
						return err
					}
					return sim(config, cmd.Args().Slice(), int(maxTurns))
				},
			},
			{
				Name: "first",
				Usage: `first
				Print the opening guess computed from letter frequencies
				`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					config, err := globalConfiguration(wordlistPath, int(count), int(seed), progress)
					if err != nil {
						return err
					}
					first(config)
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("wgs failed")
	}
}
