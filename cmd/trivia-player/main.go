package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"trivia-api/internal/player"
)

func main() {
	server := flag.String("server", "http://127.0.0.1:8080", "trivia service base URL")
	questions := flag.Int("questions", 5, "questions per round")
	timeout := flag.Duration("timeout", 5*time.Second, "HTTP timeout")
	flag.Parse()

	err := player.Run(context.Background(), os.Stdin, os.Stdout, player.Config{
		ServerURL:         *server,
		QuestionsPerRound: *questions,
		HTTPTimeout:       *timeout,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
