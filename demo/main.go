package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"blogbot/demo/client"
	"blogbot/demo/tui"
)

// Fun example prompts to showcase the generator's versatility
var examplePrompts = []string{
	"Why Cats Secretly Run the Internet",
	"The Science Behind Why Pizza Tastes Better at 2 AM",
	"Time Travelers' Guide to Modern Social Media",
	"How Rubber Ducks Revolutionized Software Development",
	"The Secret Society of Office Plants: A Survival Guide",
	"Why Dogs Think We're Bad at Smelling Things",
	"The Underground Economy of Coffee Shop WiFi Passwords",
	"A Historical Analysis of Dad Jokes Through the Ages",
}

func main() {
	// Load environment
	_ = godotenv.Load()

	// Parse command-line flags
	apiURL := flag.String("url", client.GetEnvOrDefault("API_URL", "http://localhost:8080"), "blogbot API URL")
	topic := flag.String("topic", "", "blog post topic (random example if empty)")
	fresh := flag.Bool("fresh", false, "bypass all caches for this run")
	flag.Parse()

	runTopic := *topic
	if runTopic == "" {
		runTopic = examplePrompts[rand.Intn(len(examplePrompts))]
	}

	// Create TUI model
	m := tui.NewModel(*apiURL, runTopic, *fresh)

	// Create the tea program
	program := tea.NewProgram(m)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	// Run the program
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
