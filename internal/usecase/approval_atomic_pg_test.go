package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"

	"formgate.io/formgate/internal/domain"
	apperrors "formgate.io/formgate/internal/pkg/errors"
	"formgate.io/formgate/internal/testutil"
)

// decisionTablesDDL mirrors the columns the ent migration produces for the two
// tables the atomic writers touch, including the duplicate-action guard index.
const decisionTablesDDL = `
CREATE TABLE submissions (
	id text PRIMARY KEY,
	form_template_id text NOT NULL,
	form_name text NOT NULL,
	form_category text,
	submitted_by text NOT NULL,
	submitter_name text NOT NULL,
	submitter_position text,
	submitter_department text,
	submitter_email text,
	signature bytea,
	form_data jsonb,
	attachments jsonb,
	assigned_approvers jsonb,
	status text NOT NULL,
	submitted_at timestamptz,
	approved_at timestamptz,
	rejected_at timestamptz,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now()
);
CREATE TABLE approval_records (
	id text PRIMARY KEY,
	submission_id text NOT NULL REFERENCES submissions (id) ON DELETE CASCADE,
	action text NOT NULL,
	actor_id text NOT NULL,
	actor_name text NOT NULL,
	actor_position text NOT NULL DEFAULT '',
	actor_department text NOT NULL DEFAULT '',
	signature bytea,
	created_at timestamptz NOT NULL,
	UNIQUE (submission_id, actor_id, action)
);
`

// newDecisionHarness opens a schema-isolated Postgres pool with the decision
// tables and River's queue tables, and returns an atomic writer wired to an
// insert-only River client. Skips when no test DSN is configured.
func newDecisionHarness(t *testing.T, prefix string) (*pgxpool.Pool, *SubmissionAtomicWriter) {
	t.Helper()

	pool := testutil.OpenPGXPool(t, prefix)
	ctx := context.Background()

	if _, err := pool.Exec(ctx, decisionTablesDDL); err != nil {
		t.Fatalf("create decision tables: %v", err)
	}

	migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
	if err != nil {
		t.Fatalf("create river migrator: %v", err)
	}
	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil); err != nil {
		t.Fatalf("river migrate up: %v", err)
	}

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{})
	if err != nil {
		t.Fatalf("create river client: %v", err)
	}

	return pool, NewSubmissionAtomicWriter(pool, riverClient)
}

func seedPendingSubmission(t *testing.T, pool *pgxpool.Pool, id string, approvers []domain.Approver) {
	t.Helper()

	encoded, err := json.Marshal(approvers)
	if err != nil {
		t.Fatalf("marshal approvers: %v", err)
	}
	const insertSQL = `
INSERT INTO submissions
  (id, form_template_id, form_name, submitted_by, submitter_name,
   form_data, assigned_approvers, status, submitted_at)
VALUES ($1, 'tpl-1', 'Leave Request', 'employee-1', 'Jordan Park',
        '{}'::jsonb, $2, 'PENDING_APPROVAL', now());
`
	if _, err := pool.Exec(context.Background(), insertSQL, id, encoded); err != nil {
		t.Fatalf("seed submission %s: %v", id, err)
	}
}

func submissionStatus(t *testing.T, pool *pgxpool.Pool, id string) (status string, approvedAt, rejectedAt *string) {
	t.Helper()

	err := pool.QueryRow(context.Background(),
		`SELECT status, approved_at::text, rejected_at::text FROM submissions WHERE id = $1`, id).
		Scan(&status, &approvedAt, &rejectedAt)
	if err != nil {
		t.Fatalf("load submission %s: %v", id, err)
	}
	return status, approvedAt, rejectedAt
}

func countRows(t *testing.T, pool *pgxpool.Pool, query string, args ...any) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		t.Fatalf("count query %q: %v", query, err)
	}
	return n
}

type decideResult struct {
	decision domain.Decision
	err      error
}

// Two approvers racing their final approvals must serialize on the row lock:
// both succeed, exactly one observes completion, and exactly one fanout job
// is enqueued with the committed transition.
func TestSubmissionAtomicWriter_ConcurrentFinalApprovals(t *testing.T) {
	t.Parallel()

	pool, writer := newDecisionHarness(t, "atomic_concurrent_approvals")
	approvers := []domain.Approver{
		{ID: "approver-1", Name: "Approver One"},
		{ID: "approver-2", Name: "Approver Two"},
	}
	seedPendingSubmission(t, pool, "sub-1", approvers)

	start := make(chan struct{})
	results := make(chan decideResult, len(approvers))
	for _, a := range approvers {
		go func(actor domain.Actor) {
			<-start
			d, err := writer.Approve(context.Background(), "sub-1", actor, nil)
			results <- decideResult{decision: d, err: err}
		}(domain.Actor{ID: a.ID, Name: a.Name})
	}
	close(start)

	completed := 0
	for range approvers {
		res := <-results
		if res.err != nil {
			t.Fatalf("Approve() error = %v", res.err)
		}
		if res.decision.Completed {
			completed++
			if res.decision.NewStatus != domain.StatusApproved {
				t.Errorf("completing decision NewStatus = %s, want %s", res.decision.NewStatus, domain.StatusApproved)
			}
		}
	}
	if completed != 1 {
		t.Fatalf("completed decisions = %d, want exactly 1", completed)
	}

	status, approvedAt, _ := submissionStatus(t, pool, "sub-1")
	if status != string(domain.StatusApproved) {
		t.Fatalf("submission status = %s, want %s", status, domain.StatusApproved)
	}
	if approvedAt == nil {
		t.Fatal("approved_at not stamped")
	}
	if got := countRows(t, pool, `SELECT count(*) FROM approval_records WHERE submission_id = $1`, "sub-1"); got != 2 {
		t.Fatalf("timeline rows = %d, want 2", got)
	}
	if got := countRows(t, pool, `SELECT count(*) FROM river_job WHERE kind = 'submission_notify'`); got != 1 {
		t.Fatalf("submission_notify jobs = %d, want 1", got)
	}
}

// A final approval racing a rejection cannot both finalize: the loser of the
// row lock sees the terminal status and gets a stale-state conflict, and the
// stored state matches whichever decision committed.
func TestSubmissionAtomicWriter_ApproveRejectRace(t *testing.T) {
	t.Parallel()

	pool, writer := newDecisionHarness(t, "atomic_approve_reject_race")
	seedPendingSubmission(t, pool, "sub-1", []domain.Approver{{ID: "approver-1", Name: "Approver One"}})

	actor := domain.Actor{ID: "approver-1", Name: "Approver One"}
	start := make(chan struct{})
	results := make(chan decideResult, 2)
	go func() {
		<-start
		d, err := writer.Approve(context.Background(), "sub-1", actor, nil)
		results <- decideResult{decision: d, err: err}
	}()
	go func() {
		<-start
		d, err := writer.Reject(context.Background(), "sub-1", actor, nil)
		results <- decideResult{decision: d, err: err}
	}()
	close(start)

	var winner *decideResult
	for i := 0; i < 2; i++ {
		res := <-results
		if res.err == nil {
			if winner != nil {
				t.Fatal("both racing decisions committed; one must see stale state")
			}
			res := res
			winner = &res
			continue
		}
		var appErr *apperrors.AppError
		if !errors.As(res.err, &appErr) || appErr.Code != apperrors.CodeStaleState {
			t.Fatalf("losing decision error = %v, want code %s", res.err, apperrors.CodeStaleState)
		}
	}
	if winner == nil {
		t.Fatal("no racing decision committed")
	}
	if !winner.decision.Completed {
		t.Fatal("single-approver decision must finalize the submission")
	}

	status, approvedAt, rejectedAt := submissionStatus(t, pool, "sub-1")
	if status != string(winner.decision.NewStatus) {
		t.Fatalf("submission status = %s, want committed %s", status, winner.decision.NewStatus)
	}
	switch winner.decision.NewStatus {
	case domain.StatusApproved:
		if approvedAt == nil {
			t.Fatal("approved_at not stamped")
		}
	case domain.StatusRejected:
		if rejectedAt == nil {
			t.Fatal("rejected_at not stamped")
		}
	}
	if got := countRows(t, pool, `SELECT count(*) FROM approval_records WHERE submission_id = $1`, "sub-1"); got != 1 {
		t.Fatalf("timeline rows = %d, want 1", got)
	}
	if got := countRows(t, pool, `SELECT count(*) FROM river_job WHERE kind = 'submission_notify'`); got != 1 {
		t.Fatalf("submission_notify jobs = %d, want 1", got)
	}
}
