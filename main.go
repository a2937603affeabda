package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"klondike/engine"
	"klondike/game"
	"klondike/meta"
	"klondike/metrics"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := engine.LoadConfig("klondike.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	runAutoplay(cfg)
}

// runAutoplay deals cfg.Games games and plays each headlessly: follow hints,
// draw from stock when no hint exists, stop when stuck or won.
func runAutoplay(cfg engine.Config) {
	writer, err := metrics.NewWriter("experiments")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics writer")
	}

	records := make([]metrics.GameRecord, 0, cfg.Games)
	wins := 0
	for i := 0; i < cfg.Games; i++ {
		gameCfg := cfg
		if cfg.Seed != 0 {
			gameCfg.Seed = cfg.Seed + uint64(i)
		}

		record := playGame(i+1, gameCfg)
		records = append(records, record)
		if record.Won {
			wins++
		}
		log.Info().Int("game", record.ID).Bool("won", record.Won).
			Int("moves", record.Moves).Int("score", record.Score).
			Int("foundation", record.Foundation).Msg("game over")
	}

	if err := writer.WriteGameRecords(records); err != nil {
		log.Fatal().Err(err).Msg("failed to write game records")
	}
	log.Info().Int("games", cfg.Games).Int("wins", wins).
		Str("records", writer.BaseDir()).Msg("autoplay finished")
}

func playGame(id int, cfg engine.Config) metrics.GameRecord {
	coord := engine.New(cfg, nil, engine.Callbacks{})
	gs := coord.InitializeNewDeal()
	start := time.Now()

	record := metrics.GameRecord{ID: id}
	var lastApplied game.HintMove
	drawsSinceProgress := 0

	for gs.MoveCount < meta.MAX_MOVES && !gs.IsWon() {
		if h, ok := coord.RequestHint(); ok && !reverses(h, lastApplied) {
			if !applyHint(coord, gs, h) {
				log.Error().Int("game", id).Msgf("unplayable hint %+v", h)
				break
			}
			record.Hints++
			lastApplied = h
			drawsSinceProgress = 0
			continue
		}

		// A full pass through the stock without a usable hint means stuck.
		cycle := (len(gs.Stock)+len(gs.Waste))/game.DrawCount + 2
		if drawsSinceProgress > cycle || !coord.HandleStockAction() {
			break
		}
		record.Draws++
		drawsSinceProgress++
	}

	if err := gs.CheckIntegrity(); err != nil {
		log.Fatal().Err(err).Int("game", id).Msg("state integrity violated")
	}

	record.Moves = gs.MoveCount
	record.Score = gs.Score
	for _, foundation := range gs.Foundations {
		record.Foundation += len(foundation)
	}
	record.Won = gs.IsWon()
	record.Duration = time.Since(start)
	return record
}

// reverses reports whether h undoes the previously applied hint, which would
// ping-pong the same run between two columns.
func reverses(h, last game.HintMove) bool {
	return h.Cards > 0 && h.Cards == last.Cards &&
		h.From == last.To && h.To == last.From
}

// applyHint replays a hint through the drop intake.
func applyHint(coord *engine.Coordinator, gs *game.GameState, h game.HintMove) bool {
	var source []game.Card
	switch h.From.Kind {
	case game.WastePile:
		source = gs.Waste
	case game.TableauPile:
		source = gs.Tableau[h.From.Index]
	case game.FoundationPile:
		source = gs.Foundations[h.From.Index]
	default:
		return false
	}
	if h.Cards <= 0 || len(source) < h.Cards {
		return false
	}

	run := source[len(source)-h.Cards:]
	ids := make([]int, len(run))
	for i, c := range run {
		ids[i] = c.ID
	}
	return coord.HandleDropAction(h.From, h.To, ids)
}
