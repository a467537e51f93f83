package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/example/vocabsrs/internal/api"
	"github.com/example/vocabsrs/internal/database"
	"github.com/example/vocabsrs/internal/deck"
	"github.com/example/vocabsrs/internal/excel"
	"github.com/example/vocabsrs/internal/notify"
	"github.com/example/vocabsrs/internal/scheduler"
	"github.com/example/vocabsrs/internal/seed"
)

func main() {
	importFile := flag.String("import", "", "import vocabulary from an Excel or CSV file at startup")
	flag.Parse()

	// Load .env if present
	_ = godotenv.Load()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	store := database.NewCardStore()
	d, err := deck.Load(store, seed.Entries(), time.Now())
	if err != nil {
		log.Fatalf("Failed to load deck: %v", err)
	}

	if *importFile != "" {
		if err := importVocabulary(d, *importFile); err != nil {
			log.Fatalf("Failed to import vocabulary: %v", err)
		}
	}

	service := api.NewService(d)

	sched := scheduler.New(service, buildNotifier())
	sched.CatchUpReset()
	sched.Start()
	defer sched.Stop()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	server := api.NewServer(service)
	go func() {
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	log.Printf("Vocabulary server started on %s. Press Ctrl+C to stop.", addr)
	sig := <-sigChan
	log.Printf("Received signal: %v", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	if err := service.Flush(); err != nil {
		log.Printf("Error flushing deck state: %v", err)
	}
	log.Println("Server stopped successfully")
}

// importVocabulary adds the entries from an import file to the deck, skipping
// words that are already present.
func importVocabulary(d *deck.Deck, path string) error {
	entries, result, err := excel.ImportEntries(excel.DefaultImportConfig(path))
	if err != nil {
		return err
	}

	added := 0
	now := time.Now()
	for _, entry := range entries {
		if d.ContainsWord(entry.Word) {
			continue
		}
		if _, err := d.AddWord(entry.Word, entry.Meaning, entry.Translation, now); err != nil {
			return err
		}
		added++
	}

	log.Printf("Import finished: %d rows processed, %d added, %d skipped, %d errors",
		result.TotalProcessed, added, result.Skipped, len(result.Errors))
	for _, e := range result.Errors {
		log.Printf("Import: %s", e)
	}
	return nil
}

// buildNotifier creates the Telegram reminder sender if configured, or
// returns nil to disable reminders.
func buildNotifier() scheduler.Notifier {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	if token == "" || chatIDStr == "" {
		return nil
	}

	chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		log.Printf("Warning: invalid TELEGRAM_CHAT_ID, reminders disabled: %v", err)
		return nil
	}

	notifier, err := notify.NewTelegram(token, chatID)
	if err != nil {
		log.Printf("Warning: unable to initialize Telegram notifier: %v", err)
		return nil
	}
	return notifier
}
