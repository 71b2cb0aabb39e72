// 樂透模擬服務主程序
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lotto_simulator/internal/lotto_simulator/config"
	"lotto_simulator/internal/lotto_simulator/events"
	"lotto_simulator/internal/lotto_simulator/handler"
	"lotto_simulator/internal/lotto_simulator/metrics"
	"lotto_simulator/internal/lotto_simulator/session"
	"lotto_simulator/pkg/healthcheck"
	"lotto_simulator/pkg/logger"
	"lotto_simulator/pkg/utils"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	if requested, asJSON := utils.HasVersionFlag(os.Args[1:]); requested {
		if err := utils.PrintVersion(os.Stdout, config.VersionString(), config.GetVersion(), asJSON); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	config.LoadDotEnv()

	args, err := config.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "解析命令行參數失敗: %v\n", err)
		os.Exit(2)
	}

	app := fx.New(
		fx.Supply(args),
		config.Module,
		logger.Module,
		healthcheck.Module,
		metrics.Module,
		events.Module,
		session.Module,
		handler.Module,
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Named("fx")}
		}),
	)

	// 啟動應用
	startCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintf(os.Stderr, "啟動失敗: %v\n", err)
		os.Exit(1)
	}

	// 等待系統信號
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(os.Stderr, "關閉失敗: %v\n", err)
		os.Exit(1)
	}
}
