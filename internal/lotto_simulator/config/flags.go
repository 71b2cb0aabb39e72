package config

import (
	"flag"
	"fmt"
	"strconv"
)

// CommandLineArgs 存儲從命令行解析的參數，空值表示未指定
type CommandLineArgs struct {
	ConfigFile    string
	ServerHost    string
	ServerPort    string
	ServerMode    string
	LogLevel      string
	Seed          string
	EventBackends string
}

// RegisterFlags 在 FlagSet 上註冊服務參數
func RegisterFlags(fs *flag.FlagSet, args *CommandLineArgs) {
	fs.StringVar(&args.ConfigFile, "config", getEnv("CONFIG_FILE", ""), "YAML config file")
	fs.StringVar(&args.ServerHost, "server_host", "", "HTTP listen host")
	fs.StringVar(&args.ServerPort, "server_port", "", "HTTP listen port")
	fs.StringVar(&args.ServerMode, "server_mode", "", "Server mode (dev, prod)")
	fs.StringVar(&args.LogLevel, "log_level", "", "Log level")
	fs.StringVar(&args.Seed, "seed", "", "Random seed (0 or empty for time based)")
	fs.StringVar(&args.EventBackends, "event_backends", "", "Comma separated event backends (log,redis,nats,websocket)")
}

// ParseFlags 解析命令行參數
func ParseFlags(fs *flag.FlagSet, arguments []string) (CommandLineArgs, error) {
	var args CommandLineArgs
	RegisterFlags(fs, &args)
	if err := fs.Parse(arguments); err != nil {
		return CommandLineArgs{}, err
	}
	return args, nil
}

// applyArgs 將有指定的命令行參數覆蓋到配置
func applyArgs(cfg *AppConfig, args CommandLineArgs) error {
	if args.ServerHost != "" {
		cfg.Server.Host = args.ServerHost
	}
	if args.ServerPort != "" {
		port, err := strconv.Atoi(args.ServerPort)
		if err != nil {
			return fmt.Errorf("解析服務端口失敗: %w", err)
		}
		cfg.Server.Port = port
	}
	if args.ServerMode != "" {
		cfg.Server.Mode = args.ServerMode
	}
	if args.LogLevel != "" {
		cfg.Log.Level = args.LogLevel
	}
	if args.Seed != "" {
		seed, err := strconv.ParseInt(args.Seed, 10, 64)
		if err != nil {
			return fmt.Errorf("解析隨機種子失敗: %w", err)
		}
		cfg.Simulator.Seed = seed
	}
	if args.EventBackends != "" {
		cfg.Events.Backends = splitList(args.EventBackends)
	}
	return nil
}
