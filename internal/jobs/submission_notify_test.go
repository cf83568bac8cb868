package jobs

import (
	"context"
	"strings"
	"testing"
)

func TestSubmissionNotifyArgsKind(t *testing.T) {
	t.Parallel()

	if got := (SubmissionNotifyArgs{}).Kind(); got != "submission_notify" {
		t.Fatalf("Kind() = %q, want %q", got, "submission_notify")
	}
}

func TestSubmissionNotifyArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (SubmissionNotifyArgs{}).InsertOpts()
	if opts.Queue != "notifications" {
		t.Fatalf("Queue = %q, want %q", opts.Queue, "notifications")
	}
	if opts.MaxAttempts != 3 {
		t.Fatalf("MaxAttempts = %d, want 3", opts.MaxAttempts)
	}
	if !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts.ByArgs = false, want true")
	}
	if !opts.UniqueOpts.ByQueue {
		t.Fatal("UniqueOpts.ByQueue = false, want true")
	}
}

func TestSubmissionNotifyWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	t.Run("nil receiver", func(t *testing.T) {
		var w *SubmissionNotifyWorker
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})

	t.Run("nil dependencies", func(t *testing.T) {
		w := &SubmissionNotifyWorker{}
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})
}
