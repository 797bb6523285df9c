package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"voyager.com/holdem/equity"
	"voyager.com/holdem/logging"
	"voyager.com/holdem/poker"
	"voyager.com/holdem/util"
	"voyager.com/holdem/util/random"
	"voyager.com/holdem/util/simulation"
)

var hand *string
var board *string
var numOpponents *int
var numTrials *int
var configFile *string
var jsonOutput *bool
var dealStats *bool
var numDeals *uint
var mainLogger = logging.GetZeroLogger("main::main", nil)

func init() {
	hand = flag.String("hand", "", "two hole cards as one string, e.g. AcAd")
	board = flag.String("board", "", "known board cards as one string (3, 4 or 5 cards)")
	numOpponents = flag.Int("opponents", equity.DefaultNumOpponents, "number of random opponents")
	numTrials = flag.Int("trials", equity.DefaultTrials, "Monte Carlo trials per estimate")
	configFile = flag.String("config", "", "YAML file with simulation settings")
	jsonOutput = flag.Bool("json", false, "prints the estimate as JSON")
	dealStats = flag.Bool("deal-stats", false, "deals and counts hand categories")
	numDeals = flag.Uint("num-deals", 100000, "number of deals when -deal-stats is set")
}

type estimateSummary struct {
	Hand      string  `json:"hand"`
	Board     string  `json:"board,omitempty"`
	Opponents int     `json:"opponents"`
	Trials    int     `json:"trials"`
	WinPct    float64 `json:"winPct"`
	SplitPct  float64 `json:"splitPct"`
	LossPct   float64 `json:"lossPct"`
}

func main() {
	// Global random seed for everything outside the seeded simulation
	// workers.
	rand.Seed(random.NewSeed())

	err := run()
	if err != nil {
		mainLogger.Error().Msg(err.Error())
		os.Exit(1)
	}
}

func run() error {
	logLevel := util.Env.GetZeroLogLogLevel()
	zerolog.SetGlobalLevel(logLevel)
	flag.Parse()

	if *dealStats {
		return simulation.Run(int(*numDeals), util.Env.GetSimWorkers(1))
	}

	if *hand == "" {
		flag.Usage()
		return errors.New("no hand given; pass one like -hand AcAd")
	}

	config := equity.DefaultSimConfig()
	if *configFile != "" {
		parsed, err := equity.ParseSimConfig(*configFile)
		if err != nil {
			return errors.Wrap(err, "Error while parsing simulation config")
		}
		config = parsed
	}
	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "opponents":
			config.NumOpponents = *numOpponents
		case "trials":
			config.Trials = *numTrials
		}
	})

	holeCards, err := poker.ParseHoleCards(*hand)
	if err != nil {
		return err
	}
	var boardCards []poker.Card
	if *board != "" {
		boardCards, err = poker.ParseCards(*board)
		if err != nil {
			return err
		}
	}

	estimator, err := equity.NewEstimator(config)
	if err != nil {
		return errors.Wrap(err, "Error while creating estimator")
	}
	result, err := estimator.EstimateOnBoard(context.Background(), holeCards, boardCards)
	if err != nil {
		return err
	}

	if *jsonOutput {
		summary := estimateSummary{
			Hand:      *hand,
			Board:     *board,
			Opponents: config.NumOpponents,
			Trials:    result.Trials,
			WinPct:    result.WinPct(),
			SplitPct:  result.SplitPct(),
			LossPct:   result.LossPct(),
		}
		out, err := jsoniter.Marshal(summary)
		if err != nil {
			return errors.Wrap(err, "Error while marshalling estimate")
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("%s vs %d: %s\n", *hand, config.NumOpponents, result)
	return nil
}
