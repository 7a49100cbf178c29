package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"dilemma/config"
	"dilemma/report"
	"dilemma/strategy"
	"dilemma/tournament"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	roster := strategy.DefaultRoster()
	scheduler := tournament.New(roster,
		tournament.WithWorkers(cfg.Workers),
		tournament.WithSeed(cfg.Seed),
		tournament.WithRoundsRange(cfg.MinRounds, cfg.MaxRounds),
	)

	totals, records, err := scheduler.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}

	if cfg.Verbose {
		for _, record := range records {
			fmt.Printf("%s scored %g points, %s scored %g points, and %s scored %g points.\n",
				roster[record.Players[0]].Name, record.Scores[0],
				roster[record.Players[1]].Name, record.Scores[1],
				roster[record.Players[2]].Name, record.Scores[2])
		}
		fmt.Println()
	}

	standings := tournament.Standings(roster, totals)
	fmt.Println("Tournament Results")
	for _, standing := range standings {
		fmt.Printf("%s: %g points.\n", standing.Name, standing.Score)
	}

	if cfg.ReportDir == "" {
		return
	}
	writer, err := report.NewWriter(cfg.ReportDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create report writer")
	}
	if err := writer.WriteMatchRecords(roster, records); err != nil {
		log.Fatal().Err(err).Msg("failed to write match records")
	}
	if err := writer.WriteStandings(standings); err != nil {
		log.Fatal().Err(err).Msg("failed to write standings")
	}
	log.Info().Str("run", writer.RunID()).Str("dir", writer.Dir()).Msg("stored tournament report")
}
