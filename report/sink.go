package report

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/habibrosyad/pocketbase-go-sdk"
)

// Sink persists a named word list.
type Sink interface {
	Persist(ctx context.Context, name string, words []string) error
}

// Publish orders words with rp and hands them to sink under name.
func (rp *Reporter) Publish(ctx context.Context, sink Sink, name string, words []string) error {
	return sink.Persist(ctx, name, rp.Order(words))
}

// DirSink writes each list to Dir/name, one word per line, UTF-8.
type DirSink struct {
	Dir string
}

// Persist creates Dir if needed and writes the file, replacing any previous one.
func (s DirSink) Persist(ctx context.Context, name string, words []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("report: create %s: %w", s.Dir, err)
	}
	path := filepath.Join(s.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, word := range words {
		w.WriteString(word)
		w.WriteByte('\n')
	}
	if err = w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("report: close %s: %w", path, err)
	}

	return nil
}

// PocketBaseSink stores each list as a record {name, words, count} in a
// PocketBase collection; words are newline-joined.
type PocketBaseSink struct {
	client     *pocketbase.Client
	collection string
}

// NewPocketBaseSink connects to the PocketBase instance at url. Superuser
// credentials are used when email is non-empty.
func NewPocketBaseSink(url, email, password, collection string) *PocketBaseSink {
	var client *pocketbase.Client
	if email != "" {
		client = pocketbase.NewClient(url, pocketbase.WithSuperuserEmailPassword(email, password))
	} else {
		client = pocketbase.NewClient(url)
	}

	return &PocketBaseSink{client: client, collection: collection}
}

// Persist creates one record for the list.
func (s *PocketBaseSink) Persist(ctx context.Context, name string, words []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.client.Create(s.collection, map[string]any{
		"name":  name,
		"words": strings.Join(words, "\n"),
		"count": len(words),
	})
	if err != nil {
		return fmt.Errorf("report: pocketbase %s/%s: %w", s.collection, name, err)
	}

	return nil
}

// MultiSink persists to every sink in order and stops at the first error.
type MultiSink []Sink

// Persist implements Sink.
func (m MultiSink) Persist(ctx context.Context, name string, words []string) error {
	for _, s := range m {
		if err := s.Persist(ctx, name, words); err != nil {
			return err
		}
	}
	return nil
}
