package main

import (
	"fmt"
	"log"
	"os"

	"ipapad/internal/config"
	"ipapad/internal/model"
	"ipapad/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "francisco-the-man",
		Repository: "ipapad",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/francisco-the-man/ipapad/releases")
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ipapad [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "ipapad is a terminal scratchpad for phonetic transcription.\n")
		fmt.Fprintf(os.Stderr, "It pairs a text editor with a categorized palette of IPA symbols;\n")
		fmt.Fprintf(os.Stderr, "selected symbols are inserted at the editor cursor.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ipapad               # Start with an empty scratch buffer\n")
		fmt.Fprintf(os.Stderr, "  ipapad notes.txt     # Edit a file\n")
		fmt.Fprintf(os.Stderr, "  ipapad --symbols     # Print the symbol inventory\n")
		fmt.Fprintf(os.Stderr, "  ipapad --json        # Print the effective configuration\n")
	}

	jsonFlag := pflag.BoolP("json", "j", false, "Print the effective configuration as JSON")
	symbolsFlag := pflag.BoolP("symbols", "s", false, "Print the built-in symbol inventory")
	configFlag := pflag.StringP("config", "c", "", "Use an alternate config file")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for a newer version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("ipapad version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	if *symbolsFlag {
		runSymbolsMode()
		return
	}

	configPath := *configFlag
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	store := config.NewStore(config.FileStorage{Path: configPath}, nil)
	if err := store.Load(); err != nil {
		// Defaults are already in place; warn and carry on.
		log.Printf("config: %v", err)
	}

	if *jsonFlag {
		runJsonMode(store)
		return
	}

	fileName := pflag.Arg(0)
	runTuiMode(store, fileName)
}

func runSymbolsMode() {
	for i, cat := range model.Categories() {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s (%s)\n", cat.Title, cat.Name)
		for _, sym := range cat.Symbols {
			fmt.Printf("  %s\tU+%04X\n", sym, []rune(sym)[0])
		}
	}
}

func runJsonMode(store *config.Store) {
	data, err := store.JSON()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}

func runTuiMode(store *config.Store, fileName string) {
	var text string
	if fileName != "" {
		data, err := os.ReadFile(fileName)
		if err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", fileName, err)
			os.Exit(1)
		}
		text = string(data)
	}

	m := tui.NewApp(store, fileName, text)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
