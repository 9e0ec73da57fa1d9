package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pixelfit/resfix-mcp/internal/config"
	"github.com/pixelfit/resfix-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("resfix-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("resfix-mcp - MCP server that fixes image resolutions for divisibility-constrained models")
			fmt.Println()
			fmt.Println("Usage: resfix-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Configuration (resfix.toml or environment):")
			fmt.Println("  RESFIX_LOG_LEVEL          debug, info, warn, error (default info)")
			fmt.Println("  RESFIX_DEFAULT_FIT        smart_fill, letterbox, crop, fill")
			fmt.Println("  RESFIX_DEFAULT_METHOD     lanczos, bicubic, hamming, bilinear, box, nearest")
			fmt.Println("  RESFIX_DEFAULT_MULTIPLE   2, 4, 8, 14, 16, 28, 32, 64, 128, 256, 512")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// stdout carries the protocol, so all logging goes to stderr.
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	log.Logger = logger

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	logger.Debug().
		Str("version", Version).
		Str("default_fit", string(cfg.DefaultFit)).
		Int("default_multiple", cfg.DefaultMultiple).
		Msg("starting resfix-mcp")

	srv := server.New(cfg, logger)
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}
