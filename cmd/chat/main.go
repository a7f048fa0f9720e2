package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"kamau.dev/portfolio/core/config"
	"kamau.dev/portfolio/internal/chat"
	"kamau.dev/portfolio/internal/terminal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.ServiceTypeChat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	relay := chat.NewHTTPRelay(cfg.AssistantURL, cfg.Chat.RequestTimeout)
	view := terminal.NewView(os.Stdout)
	ctrl := chat.NewController(relay, view, chat.Options{
		RevealDuration: cfg.Chat.RevealDuration,
		InitialDelay:   cfg.Chat.InitialDelay,
		Greeting:       chat.DefaultGreeting,
	})

	// Star count is decoration: show zero rather than failing.
	starsCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	stars, err := relay.Stars(starsCtx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "GitHub stars unavailable: %v\n", err)
	}
	fmt.Println(terminal.RenderStars(stars.TotalStars, stars.RepoCount))
	fmt.Println()

	for _, e := range ctrl.Transcript() {
		view.Greeting(e)
	}

	// Optional initial question, e.g. `chat What projects have you worked on?`
	if question := strings.Join(os.Args[1:], " "); ctrl.Start(ctx, question) {
		waitForReply(ctx, ctrl, len(ctrl.Transcript()))
	} else {
		fmt.Println(terminal.RenderSuggestions(chat.SuggestedQuestions))
	}

	// The prompt blocks on stdin, so an interrupt has to end the process from here. A turn in
	// progress observes ctx and returns to idle first.
	go func() {
		<-ctx.Done()
		for ctrl.State() != chat.StateIdle {
			time.Sleep(10 * time.Millisecond)
		}
		fmt.Fprintln(os.Stderr, "\nGoodbye!")
		os.Exit(0)
	}()

	fmt.Fprintln(os.Stderr, "\nAsk anything, pick a suggestion by number, '?' for suggestions, 'quit' to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for ctx.Err() == nil {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		switch input {
		case "":
			continue
		case "quit", "exit", "q":
			fmt.Fprintln(os.Stderr, "Goodbye!")
			return
		case "?", "help":
			fmt.Println(terminal.RenderSuggestions(chat.SuggestedQuestions))
			continue
		}

		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(chat.SuggestedQuestions) {
			input = chat.SuggestedQuestions[n-1]
		}

		if err := ctrl.Submit(ctx, input); err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		fmt.Println()
	}

	fmt.Fprintln(os.Stderr, "Goodbye!")
}

// waitForReply blocks until the scheduled initial question has been answered, so its output
// does not interleave with the prompt.
func waitForReply(ctx context.Context, ctrl *chat.Controller, before int) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if len(ctrl.Transcript()) >= before+2 && ctrl.State() == chat.StateIdle {
				fmt.Println()
				return
			}
		}
	}
}
