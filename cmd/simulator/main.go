package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "populate":
		populateCmd(apiURL, args)
	case "export":
		exportCmd(apiURL, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Simulator - Development tool for filling a demo account with records

USAGE:
  simulator <command> [options]

COMMANDS:
  populate  Register (or log in to) an account and record seizures and contacts
  export    Print an account's profile, seizures and contacts as JSON
  help      Show this help message

ENVIRONMENT:
  API_URL   Backend API URL (default: http://localhost:8080)

EXAMPLES:
  # Create demo@example.com with 20 seizures over the last 90 days
  simulator populate

  # Add 5 seizures from the last week to an existing account
  simulator populate --email=me@example.com --password=secret --seizures=5 --days=7 --contacts=0

  # Dump everything stored for the account
  simulator export --email=demo@example.com --password=demopassword`)
}

func populateCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("populate", flag.ExitOnError)
	email := fs.String("email", "demo@example.com", "Account email")
	password := fs.String("password", "demopassword", "Account password")
	seizures := fs.Int("seizures", 20, "Number of seizures to record")
	contacts := fs.Int("contacts", 4, "Number of contacts to add")
	days := fs.Int("days", 90, "Spread seizures over this many past days")
	fs.Parse(args)

	if *days < 1 {
		fmt.Println("Error: --days must be at least 1")
		os.Exit(1)
	}

	client := NewAPIClient(apiURL)

	fmt.Println("=== Simulator: Populate ===")
	fmt.Println()

	fmt.Printf("Signing in as %s... ", *email)
	session, created, err := client.RegisterOrLogin(*email, *password)
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	if created {
		fmt.Printf("OK (registered %s)\n", session.UserID)
	} else {
		fmt.Printf("OK (existing %s)\n", session.UserID)
	}

	result, err := populate(client, session, populateOptions{
		Seizures: *seizures,
		Contacts: *contacts,
		Days:     *days,
		Now:      time.Now(),
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	})
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("=========================================")
	fmt.Printf("  Recorded %d seizures and %d contacts\n", result.Seizures, result.Contacts)
	fmt.Println("=========================================")
	fmt.Println()
	fmt.Printf("  User ID:      %s\n", session.UserID)
	fmt.Printf("  Access token: %s\n", session.AccessToken)
	fmt.Println()
}

func exportCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	email := fs.String("email", "", "Account email (required)")
	password := fs.String("password", "", "Account password (required)")
	fs.Parse(args)

	if *email == "" || *password == "" {
		fmt.Println("Error: --email and --password are required")
		fmt.Println("\nUsage: simulator export --email=me@example.com --password=secret")
		os.Exit(1)
	}

	client := NewAPIClient(apiURL)

	session, err := client.Login(*email, *password)
	if err != nil {
		fmt.Printf("Failed to log in: %v\n", err)
		os.Exit(1)
	}

	data, err := client.UserData(session)
	if err != nil {
		fmt.Printf("Failed to load user data: %v\n", err)
		os.Exit(1)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		fmt.Printf("Failed to format user data: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out.String())
}
