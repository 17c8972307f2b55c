// FormFlow: form completion MCP server
//
// FormFlow manages multi-step, schema-validated form filling over MCP:
// register JSON Schema form definitions, open sessions, answer questions
// one at a time, and validate as you go.
//
// Usage:
//
//	formflow serve            # Start MCP server (stdio transport)
//	formflow serve --demo     # Same, seeding demo forms on first run
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	ffserver "github.com/HendryAvila/formflow/internal/server"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("formflow v%s\n", ffserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	demo := fs.Bool("demo", false, "seed demo forms when the catalog is empty")
	dataDir := fs.String("data-dir", "", "definition catalog directory (default ~/.formflow)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// stdout belongs to the MCP stdio transport; everything human-facing
	// goes to stderr.
	log.SetOutput(os.Stderr)

	s, cleanup, err := ffserver.New(ffserver.Options{
		CatalogDir: *dataDir,
		Demo:       *demo,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	return server.ServeStdio(s)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `FormFlow v%s — form completion MCP server

Usage:
  formflow serve [--demo] [--data-dir DIR]   Start the MCP server (stdio transport)
  formflow version                           Print the version

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "formflow": {
        "command": "formflow",
        "args": ["serve"]
      }
    }
  }
`, ffserver.Version)
}
