package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
)

// waitForChange drains events until one for the given ID arrives.
// Editors and filesystems differ in how many events a single write
// produces, so the exact sequence is not asserted.
func waitForChange(t *testing.T, events <-chan domain.ChangeEvent, id string) domain.ChangeEvent {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatal("event channel closed before the expected change")
			}
			if ev.ID == id {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for a change to %s", id)
		}
	}
}

func TestWatchReportsFileChanges(t *testing.T) {
	root := t.TempDir()
	c := New(root, testExtensions)
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := c.Watch(ctx)
	require.NoError(t, err)

	writeFile(t, root, "guide.rst", "Guide\n=====\n")
	ev := waitForChange(t, events, "guide.rst")
	require.Contains(t, []domain.ChangeType{domain.ChangeCreated, domain.ChangeUpdated}, ev.Type)

	require.NoError(t, os.Remove(filepath.Join(root, "guide.rst")))
	ev = waitForChange(t, events, "guide.rst")
	require.Equal(t, domain.ChangeDeleted, ev.Type)
}

func TestWatchIgnoresOtherExtensions(t *testing.T) {
	root := t.TempDir()
	c := New(root, testExtensions)
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := c.Watch(ctx)
	require.NoError(t, err)

	writeFile(t, root, "image.png", "not a document")
	writeFile(t, root, "doc.txt", "a document")

	// Only the document shows up; the image event is filtered out.
	ev := waitForChange(t, events, "doc.txt")
	require.NotEqual(t, "image.png", ev.ID)
}
