// Command leads-tail prints the most recent leads from the append-only log.
// The log directory comes from LEADLOG_DIR (default "data"), or -dir.
//
// Exit codes: 0 = success (including an empty or missing log), 1 = error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/heartmarshall/lead-intake/internal/adapter/leadlog"
	"github.com/heartmarshall/lead-intake/internal/domain"
)

const noName = "без имени"

func main() {
	defaultDir := os.Getenv("LEADLOG_DIR")
	if defaultDir == "" {
		defaultDir = "data"
	}

	dir := flag.String("dir", defaultDir, "directory holding leads.jsonl")
	n := flag.Int("n", 20, "number of leads to print")
	flag.Parse()

	if err := run(os.Stdout, leadlog.New(*dir, false), *n); err != nil {
		fmt.Fprintf(os.Stderr, "leads-tail: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, store *leadlog.Store, n int) error {
	entries, err := store.Tail(n)
	if errors.Is(err, domain.ErrNotFound) {
		_, err = fmt.Fprintln(w, "Файл лидов не найден.")
		return err
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		_, err = fmt.Fprintln(w, "Лидов пока нет.")
		return err
	}

	fmt.Fprintln(w, "Последние лиды:")
	for _, e := range entries {
		if e.Err != nil {
			fmt.Fprintln(w, "- [ошибка чтения строки]")
			continue
		}
		name := noName
		if e.Lead.Name != nil {
			name = *e.Lead.Name
		}
		fmt.Fprintf(w, "- %s | %s | %s | %s\n",
			e.Lead.ReceivedAt.UTC().Format(time.RFC3339), e.Lead.Phone, name, e.Lead.Source)
	}
	return nil
}
