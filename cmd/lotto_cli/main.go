// 樂透模擬命令行工具，在終端機輸出每回合報告
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"lotto_simulator/internal/lotto_simulator/config"
	"lotto_simulator/internal/lotto_simulator/draw"
	"lotto_simulator/internal/lotto_simulator/session"
	"lotto_simulator/pkg/logger"
	"lotto_simulator/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// cliOptions 命令行參數
type cliOptions struct {
	configFile string
	rounds     string
	playAI     bool
	userSets   string
	seed       int64
	logLevel   string
	summary    bool
}

func parseOptions(arguments []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("lotto_cli", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configFile, "config", "", "YAML config file")
	fs.StringVar(&opts.rounds, "rounds", "1", "Number of rounds to play")
	fs.BoolVar(&opts.playAI, "ai", true, "Play AI numbers")
	fs.StringVar(&opts.userSets, "user", "", `User number sets, e.g. "1,2,3,4,5,6;7,8,9,10,11,12"`)
	fs.Int64Var(&opts.seed, "seed", 0, "Random seed (0 for time based)")
	fs.StringVar(&opts.logLevel, "log_level", "error", "Log level")
	fs.BoolVar(&opts.summary, "summary", false, "Only print the final totals")

	if err := fs.Parse(arguments); err != nil {
		return cliOptions{}, err
	}
	return opts, nil
}

// parseUserSets 解析以 ; 分隔組、以 , 分隔號碼的字串
func parseUserSets(value string) ([][]int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	var sets [][]int
	for _, part := range strings.Split(value, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var numbers []int
		for _, field := range strings.Split(part, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, draw.NewLotteryErrorWithFormat(draw.ErrInvalidParameter.Code, "無效的號碼: %q", field)
			}
			numbers = append(numbers, n)
		}
		sets = append(sets, numbers)
	}
	return sets, nil
}

func run(ctx context.Context, arguments []string, stdout, stderr io.Writer) int {
	if requested, asJSON := utils.HasVersionFlag(arguments); requested {
		if err := utils.PrintVersion(stdout, config.VersionString(), config.GetVersion(), asJSON); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	opts, err := parseOptions(arguments, stderr)
	if err != nil {
		return 2
	}

	cfg, err := config.Load(config.CommandLineArgs{ConfigFile: opts.configFile})
	if err != nil {
		fmt.Fprintf(stderr, "載入配置失敗: %v\n", err)
		return 1
	}

	log, err := logger.NewLogger(logger.Options{Level: opts.logLevel, Development: true})
	if err != nil {
		fmt.Fprintf(stderr, "建立日誌失敗: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	seed := opts.seed
	if seed == 0 {
		seed = cfg.Simulator.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("開始模擬", zap.Int64("seed", seed), zap.String("rounds", opts.rounds))

	s := session.New(uuid.New().String(), session.SettingsFromConfig(cfg.Simulator), utils.NewRandomGenerator(seed), log)

	sets, err := parseUserSets(opts.userSets)
	if err == nil {
		err = s.SetUserNumbers(sets)
	}
	if err != nil {
		fmt.Fprintf(stderr, "使用者號碼無效: %v\n", err)
		return 2
	}
	s.SetPlayModes(opts.playAI, len(sets) > 0)

	results, err := s.PlayRounds(ctx, opts.rounds)
	if err != nil {
		if errors.Is(err, draw.ErrInvalidRoundCount) {
			fmt.Fprintln(stdout, session.InvalidInputMessage)
			return 2
		}
		fmt.Fprintf(stderr, "模擬中斷: %v\n", err)
		return 1
	}

	if opts.summary {
		if len(results) > 0 {
			fmt.Fprint(stdout, session.FormatRound(results[len(results)-1]))
		}
		return 0
	}
	for i, result := range results {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		fmt.Fprint(stdout, session.FormatRound(result))
	}
	return 0
}
