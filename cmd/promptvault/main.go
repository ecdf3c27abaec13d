package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ajramos/promptvault/internal/bridge"
	"github.com/ajramos/promptvault/internal/config"
	"github.com/ajramos/promptvault/internal/kv"
	"github.com/ajramos/promptvault/internal/llm"
	"github.com/ajramos/promptvault/internal/prompts"
	"github.com/ajramos/promptvault/internal/services"
	"github.com/ajramos/promptvault/internal/store"
	"github.com/ajramos/promptvault/internal/version"
)

func main() {
	// Essential command line flags only (GNU-style double dashes)
	configPathFlag := flag.String("config", "", "Path to JSON configuration file (default: ~/.config/promptvault/config.json)")
	dataDirFlag := flag.String("data-dir", "", "Path to the storage directory (default: ~/.config/promptvault/data)")
	setupFlag := flag.Bool("setup", false, "Run interactive setup wizard")
	versionFlag := flag.Bool("version", false, "Show version information and exit")

	// Override flag usage text to show clean, simple usage
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n\n", version.GetVersionString())
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  %s [options] <command> [args]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  list                      List prompts (merged with built-in defaults)\n")
		fmt.Fprintf(os.Stderr, "  get <id>                  Show one prompt\n")
		fmt.Fprintf(os.Stderr, "  add                       Create a prompt (--title, --text, ...)\n")
		fmt.Fprintf(os.Stderr, "  update <id>               Update a prompt\n")
		fmt.Fprintf(os.Stderr, "  delete <id>               Delete a prompt\n")
		fmt.Fprintf(os.Stderr, "  favorite <add|remove|list> [id]\n")
		fmt.Fprintf(os.Stderr, "  history <list|add|clear> [text]\n")
		fmt.Fprintf(os.Stderr, "  categories                List categories with counts\n")
		fmt.Fprintf(os.Stderr, "  improve <text>            Improve a prompt (AI or templates)\n")
		fmt.Fprintf(os.Stderr, "  analyze <text>            Score a prompt's structure\n")
		fmt.Fprintf(os.Stderr, "  format <text>             Normalize captured prompt text\n")
		fmt.Fprintf(os.Stderr, "  export [file]             Export all data as JSON\n")
		fmt.Fprintf(os.Stderr, "  import <file>             Import an export file\n")
		fmt.Fprintf(os.Stderr, "  import-file <file.md>     Create a prompt from a Markdown file\n")
		fmt.Fprintf(os.Stderr, "  export-file <id> <file.md>\n")
		fmt.Fprintf(os.Stderr, "  settings <get|set>        Read or update preferences\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  %s list --category coding --search api\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s improve \"write article about sports\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --setup\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Environment Variables:\n")
		fmt.Fprintf(os.Stderr, "  PROMPTVAULT_CONFIG    Override default config file path\n")
		fmt.Fprintf(os.Stderr, "  PROMPTVAULT_DATA_DIR  Override default storage directory\n\n")
		fmt.Fprintf(os.Stderr, "For AI provider settings (endpoint, model, key), edit the config file.\n")
	}

	flag.Parse()

	// Handle version flag
	if *versionFlag {
		fmt.Println(version.GetDetailedVersionString())
		return
	}

	// Handle setup mode
	if *setupFlag {
		runSetupWizard()
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	// Load configuration with smart defaults and environment variable support
	configPath := getConfigPath(*configPathFlag)

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: could not load configuration: %v", err)
		cfg = config.DefaultConfig()
	}

	if cfg.LogFile != "" {
		if f, err := os.OpenFile(expandPath(cfg.LogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			log.SetOutput(f)
			defer f.Close()
		} else {
			log.Printf("Warning: could not open log file: %v", err)
		}
	}

	dataDir := getDataDir(*dataDirFlag, cfg.DataDir)

	ctx := context.Background()
	parts, err := kv.OpenPartitions(ctx, dataDir)
	if err != nil {
		log.Fatalf("Could not open storage at %s: %v", dataDir, err)
	}
	defer parts.Close()

	settings := config.NewManager(parts.Synced)
	if fresh, err := settings.Init(ctx); err != nil {
		log.Fatalf("Could not initialize settings: %v", err)
	} else if fresh {
		log.Printf("First run: wrote default settings to %s", dataDir)
	}

	// Initialize AI provider; improvement degrades to templates without it
	var provider llm.Provider
	if p, err := llm.NewProviderFromConfig(cfg.AI, cfg.GetAITimeout()); err != nil {
		log.Printf("Warning: could not initialize AI provider (%s): %v", cfg.AI.Provider, err)
	} else {
		provider = p
	}

	promptStore := store.New(parts)
	handler := &bridge.Handler{
		Store:    promptStore,
		AI:       services.NewAIService(provider, settings),
		Settings: settings,
	}
	files := services.NewPromptService(promptStore)

	if err := runCommand(ctx, handler, files, flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, h *bridge.Handler, files *services.PromptServiceImpl, cmd string, args []string) error {
	switch cmd {
	case "list":
		fs := flag.NewFlagSet("list", flag.ExitOnError)
		category := fs.String("category", "", "Filter by category id")
		search := fs.String("search", "", "Case-insensitive search over title, text and tags")
		customOnly := fs.Bool("custom-only", false, "Exclude the built-in default prompts")
		sortBy := fs.String("sort", "createdAt", "Sort field: createdAt, updatedAt, usageCount")
		order := fs.String("order", "desc", "Sort order: desc or asc")
		limit := fs.Int("limit", 0, "Page size (0 = all)")
		offset := fs.Int("offset", 0, "Page offset")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return emit(ctx, h, bridge.GetPrompts{
			Category: *category,
			Options: store.ListOptions{
				ExcludeDefaults: *customOnly,
				SortBy:          *sortBy,
				SortOrder:       *order,
				Search:          *search,
				Limit:           *limit,
				Offset:          *offset,
			},
		})

	case "get":
		if len(args) != 1 {
			return fmt.Errorf("usage: get <id>")
		}
		return emit(ctx, h, bridge.GetPrompt{ID: args[0]})

	case "add":
		fs := flag.NewFlagSet("add", flag.ExitOnError)
		title := fs.String("title", "", "Prompt title (required)")
		text := fs.String("text", "", "Prompt text (required)")
		category := fs.String("category", "", "Category id (default: general)")
		tags := fs.String("tags", "", "Comma-separated tags")
		desc := fs.String("description", "", "One-line description")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return emit(ctx, h, bridge.SavePrompt{Prompt: prompts.Prompt{
			Title:       *title,
			Text:        *text,
			Category:    *category,
			Tags:        splitTags(*tags),
			Description: *desc,
		}})

	case "update":
		fs := flag.NewFlagSet("update", flag.ExitOnError)
		title := fs.String("title", "", "New title")
		text := fs.String("text", "", "New text")
		category := fs.String("category", "", "New category")
		desc := fs.String("description", "", "New description")
		tags := fs.String("tags", "", "New comma-separated tags")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if fs.NArg() != 1 {
			return fmt.Errorf("usage: update [flags] <id>")
		}
		var u store.PromptUpdate
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "title":
				u.Title = title
			case "text":
				u.Text = text
			case "category":
				u.Category = category
			case "description":
				u.Description = desc
			case "tags":
				parsed := splitTags(*tags)
				u.Tags = &parsed
			}
		})
		return emit(ctx, h, bridge.UpdatePrompt{ID: fs.Arg(0), Update: u})

	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("usage: delete <id>")
		}
		return emit(ctx, h, bridge.DeletePrompt{ID: args[0]})

	case "favorite":
		if len(args) == 0 {
			return fmt.Errorf("usage: favorite <add|remove|list> [id]")
		}
		switch args[0] {
		case "list":
			return emit(ctx, h, bridge.GetFavorites{})
		case "add":
			if len(args) != 2 {
				return fmt.Errorf("usage: favorite add <id>")
			}
			return emit(ctx, h, bridge.AddToFavorites{ID: args[1]})
		case "remove":
			if len(args) != 2 {
				return fmt.Errorf("usage: favorite remove <id>")
			}
			return emit(ctx, h, bridge.RemoveFromFavorites{ID: args[1]})
		default:
			return fmt.Errorf("unknown favorite action %q", args[0])
		}

	case "history":
		if len(args) == 0 {
			return fmt.Errorf("usage: history <list|add|clear> [text]")
		}
		switch args[0] {
		case "list":
			fs := flag.NewFlagSet("history list", flag.ExitOnError)
			limit := fs.Int("limit", 0, "Max entries (0 = all)")
			if err := fs.Parse(args[1:]); err != nil {
				return err
			}
			return emit(ctx, h, bridge.GetHistory{Limit: *limit})
		case "add":
			if len(args) < 2 {
				return fmt.Errorf("usage: history add <text>")
			}
			return emit(ctx, h, bridge.AddToHistory{Entry: prompts.HistoryEntry{
				Text: strings.Join(args[1:], " "),
				Type: "manual",
			}})
		case "clear":
			return emit(ctx, h, bridge.ClearHistory{})
		default:
			return fmt.Errorf("unknown history action %q", args[0])
		}

	case "categories":
		fs := flag.NewFlagSet("categories", flag.ExitOnError)
		lang := fs.String("lang", "", "Label language (default: the configured settings language)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		language := *lang
		if language == "" {
			language = h.Settings.Load(ctx).Language
		}
		return emit(ctx, h, bridge.GetCategories{Language: language})

	case "improve":
		fs := flag.NewFlagSet("improve", flag.ExitOnError)
		lang := fs.String("lang", "", "Force output language (ar or en; default: detect)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if fs.NArg() == 0 {
			return fmt.Errorf("usage: improve [flags] <text>")
		}
		return emit(ctx, h, bridge.ImprovePrompt{
			Text:    strings.Join(fs.Args(), " "),
			Options: services.ImproveOptions{Language: *lang},
		})

	case "analyze":
		if len(args) == 0 {
			return fmt.Errorf("usage: analyze <text>")
		}
		return emit(ctx, h, bridge.AnalyzePrompt{Text: strings.Join(args, " ")})

	case "format":
		fs := flag.NewFlagSet("format", flag.ExitOnError)
		htmlIn := fs.Bool("html", false, "Treat input as HTML and strip markup")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if fs.NArg() == 0 {
			return fmt.Errorf("usage: format [flags] <text>")
		}
		out, err := h.Dispatch(ctx, bridge.FormatPrompt{Text: strings.Join(fs.Args(), " "), HTML: *htmlIn})
		if err != nil {
			return err
		}
		fmt.Println(out.(string))
		return nil

	case "export":
		out, err := h.Dispatch(ctx, bridge.ExportData{})
		if err != nil {
			return err
		}
		raw, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		if len(args) == 0 {
			fmt.Println(string(raw))
			return nil
		}
		return os.WriteFile(args[0], raw, 0o644)

	case "import":
		fs := flag.NewFlagSet("import", flag.ExitOnError)
		merge := fs.Bool("merge", true, "Keep existing prompts, add only new ids")
		withSettings := fs.Bool("settings", false, "Also apply the payload's settings")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if fs.NArg() != 1 {
			return fmt.Errorf("usage: import [flags] <file>")
		}
		raw, err := os.ReadFile(fs.Arg(0))
		if err != nil {
			return err
		}
		var data store.Export
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("invalid export file: %w", err)
		}
		return emit(ctx, h, bridge.ImportData{
			Data:          &data,
			Options:       store.ImportOptions{Merge: *merge},
			ApplySettings: *withSettings,
		})

	case "import-file":
		if len(args) != 1 {
			return fmt.Errorf("usage: import-file <file.md>")
		}
		return printJSON(files.CreateFromFile(ctx, args[0]))

	case "export-file":
		if len(args) != 2 {
			return fmt.Errorf("usage: export-file <id> <file.md>")
		}
		return files.ExportToFile(ctx, args[0], args[1])

	case "settings":
		if len(args) == 0 {
			return fmt.Errorf("usage: settings <get|set>")
		}
		switch args[0] {
		case "get":
			return emit(ctx, h, bridge.GetSettings{})
		case "set":
			fs := flag.NewFlagSet("settings set", flag.ExitOnError)
			lang := fs.String("language", "", "UI language (ar or en)")
			theme := fs.String("theme", "", "Theme (dark or light)")
			useAI := fs.Bool("use-ai", true, "Use the AI provider for improvement")
			apiKey := fs.String("api-key", "", "Provider API key")
			if err := fs.Parse(args[1:]); err != nil {
				return err
			}
			var patch config.SettingsPatch
			fs.Visit(func(f *flag.Flag) {
				switch f.Name {
				case "language":
					patch.Language = lang
				case "theme":
					patch.Theme = theme
				case "use-ai":
					patch.UseAI = useAI
				case "api-key":
					patch.APIKey = apiKey
				}
			})
			return emit(ctx, h, bridge.SaveSettings{Patch: patch})
		default:
			return fmt.Errorf("unknown settings action %q", args[0])
		}

	default:
		return fmt.Errorf("unknown command %q (run with -h for usage)", cmd)
	}
}

// emit dispatches a request and prints the JSON result.
func emit(ctx context.Context, h *bridge.Handler, req bridge.Request) error {
	raw, err := h.DispatchJSON(ctx, req)
	if err != nil {
		return err
	}
	fmt.Println(string(raw))
	return nil
}

func printJSON(v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(raw))
	return nil
}

func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// getConfigPath returns the configuration file path using the following priority:
// 1. CLI flag
// 2. Environment variable PROMPTVAULT_CONFIG
// 3. Default path ~/.config/promptvault/config.json
func getConfigPath(flagValue string) string {
	if flagValue != "" {
		return expandPath(flagValue)
	}

	if envPath := os.Getenv("PROMPTVAULT_CONFIG"); envPath != "" {
		return expandPath(envPath)
	}

	return config.DefaultConfigPath()
}

// getDataDir returns the storage directory using the following priority:
// 1. CLI flag
// 2. Environment variable PROMPTVAULT_DATA_DIR
// 3. Config file setting
// 4. Default path ~/.config/promptvault/data
func getDataDir(flagValue, configValue string) string {
	if flagValue != "" {
		return expandPath(flagValue)
	}

	if envPath := os.Getenv("PROMPTVAULT_DATA_DIR"); envPath != "" {
		return expandPath(envPath)
	}

	if configValue != "" {
		return expandPath(configValue)
	}

	return config.DefaultDataDir()
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if path == "~" {
		return home
	}

	return filepath.Join(home, path[2:])
}

// runSetupWizard runs an interactive setup wizard to help users configure PromptVault
func runSetupWizard() {
	fmt.Println("PromptVault Setup Wizard")
	fmt.Println("========================")
	fmt.Println()

	defaultConfigPath := config.DefaultConfigPath()
	dataDir := config.DefaultDataDir()

	if _, err := os.Stat(defaultConfigPath); err == nil {
		fmt.Printf("Configuration file already exists: %s\n", defaultConfigPath)
	} else {
		fmt.Printf("Will create configuration file: %s\n", defaultConfigPath)
	}
	fmt.Printf("Storage directory: %s\n", dataDir)

	// Create default config if it doesn't exist
	if _, err := os.Stat(defaultConfigPath); os.IsNotExist(err) {
		fmt.Println()
		fmt.Print("Create default configuration file? [Y/n]: ")

		var response string
		_, _ = fmt.Scanln(&response) // User input - error not actionable

		if response == "" || strings.EqualFold(response, "y") || strings.EqualFold(response, "yes") {
			cfg := config.DefaultConfig()
			if err := cfg.SaveConfig(defaultConfigPath); err != nil {
				fmt.Printf("Failed to create config file: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Created configuration file: %s\n", defaultConfigPath)
		}
	}

	fmt.Println()
	fmt.Println("Setup complete! Try:")
	fmt.Printf("   %s list\n", os.Args[0])
	fmt.Printf("   %s improve \"write article about sports\"\n", os.Args[0])
	fmt.Println()
	fmt.Println("Tips:")
	fmt.Println("- Set an API key to enable AI improvement: settings set --api-key ...")
	fmt.Println("- Edit the config file to change provider, model or endpoint")
}
