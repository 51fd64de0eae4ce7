package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-mcts/internal/server"
)

// ServeCmd runs the websocket estimate service.
type ServeCmd struct {
	Config   string `short:"c" default:"holdem-mcts.hcl" help:"Path to HCL configuration file"`
	Addr     string `short:"a" help:"Listen address as host or host:port (overrides config)"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
}

// applyListenAddr applies an address override in either host or host:port
// form. A bare host keeps the configured port.
func applyListenAddr(cfg *server.Config, addr string) error {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		cfg.Server.Address = addr
		return nil
	}

	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid port %q in listen address %q", port, addr)
	}
	cfg.Server.Address = host
	cfg.Server.Port = n
	return nil
}

func (c *ServeCmd) Run() error {
	cfg, err := server.LoadConfig(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if c.Addr != "" {
		if err := applyListenAddr(cfg, c.Addr); err != nil {
			return err
		}
	}
	if c.LogLevel != "" {
		cfg.Server.LogLevel = c.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := log.New(os.Stderr)
	switch cfg.Server.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	srv := server.NewServer(cfg, logger)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		logger.Info("Shutting down")
		srv.Stop()
		os.Exit(0)
	}()

	return srv.Start()
}
