package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fixitquick/fixitquick"
	"github.com/fixitquick/fixitquick/catalog"
	"github.com/fixitquick/fixitquick/gemini"
	fixslog "github.com/fixitquick/fixitquick/slog"
	"github.com/fixitquick/fixitquick/sqlite"
	"github.com/fixitquick/fixitquick/storage"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database backing the key-value store.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Accessor *storage.Accessor
	Auth     fixitquick.AuthService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// A .env file may carry GEMINI_API_KEY; absence is fine.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("fixitquick"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'fixitquick --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if os.Getenv("FIXITQUICK_DEBUG") != "" {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Open the key-value store
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set FIXITQUICK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	var kv fixitquick.KV = sqlite.NewKV(m.DB)
	kv = fixslog.NewLoggingKV(kv, logger)

	// Wire core services into dependencies
	broker := storage.NewBroker()
	m.Accessor = storage.NewAccessor(kv, logger)
	m.Accessor.Initialize(ctx)

	cat := catalog.NewService()
	m.Auth = storage.NewAuthService(m.Accessor, broker)

	deps.Accessor = m.Accessor
	deps.Catalog = cat
	deps.Search = catalog.NewSearcher(cat)
	deps.Auth = m.Auth
	deps.Bookmarks = storage.NewBookmarkService(m.Accessor, broker, cat, m.Auth)
	deps.Recent = storage.NewRecentlyViewedService(m.Accessor, broker, cat)
	deps.Feedback = storage.NewFeedbackService(kv, m.Accessor, broker, logger)
	deps.Suggestions = storage.NewSuggestionService(m.Accessor, broker, cat, m.Auth)
	deps.Theme = storage.NewThemeService(ctx, m.Accessor, broker)
	deps.ChatHistory = storage.NewChatHistoryService(m.Accessor, broker)

	// The assistant needs a remote client; wire it only for ask.
	if cmd == "ask" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Assistant = gemini.NewAssistant(client)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("FIXITQUICK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "fixitquick.db"
	}
	dir := filepath.Join(home, ".fixitquick")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "fixitquick.db")
}
