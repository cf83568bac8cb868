package approval

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"formgate.io/formgate/internal/domain"
	"formgate.io/formgate/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

// memDecisionWriter applies the same decision logic as the transactional
// writer against in-memory state, with a mutex standing in for the row lock.
type memDecisionWriter struct {
	mu   sync.Mutex
	subs map[string]*memSubmission
}

type memSubmission struct {
	status   domain.Status
	assigned []domain.Approver
	timeline []domain.ApprovalRecord
}

func newMemDecisionWriter() *memDecisionWriter {
	return &memDecisionWriter{subs: make(map[string]*memSubmission)}
}

func (w *memDecisionWriter) add(id string, assigned ...domain.Approver) {
	w.subs[id] = &memSubmission{
		status:   domain.StatusPendingApproval,
		assigned: assigned,
		timeline: []domain.ApprovalRecord{{Action: domain.ActionSubmitted, ActorID: "submitter"}},
	}
}

func (w *memDecisionWriter) Approve(_ context.Context, id string, actor domain.Actor, sig []byte) (domain.Decision, error) {
	return w.decide(id, actor, sig, domain.DecideApproval)
}

func (w *memDecisionWriter) Reject(_ context.Context, id string, actor domain.Actor, sig []byte) (domain.Decision, error) {
	return w.decide(id, actor, sig, domain.DecideRejection)
}

func (w *memDecisionWriter) decide(
	id string,
	actor domain.Actor,
	sig []byte,
	fn func(domain.Status, []domain.Approver, []domain.ApprovalRecord, domain.Actor, []byte, time.Time) (domain.Decision, error),
) (domain.Decision, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, ok := w.subs[id]
	if !ok {
		return domain.Decision{}, errors.New("submission not found")
	}
	d, err := fn(s.status, s.assigned, s.timeline, actor, sig, time.Now().UTC())
	if err != nil {
		return domain.Decision{}, err
	}
	s.timeline = append(s.timeline, d.Record)
	s.status = d.NewStatus
	return d, nil
}

func (w *memDecisionWriter) status(id string) domain.Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.subs[id].status
}

func approverSet(ids ...string) []domain.Approver {
	out := make([]domain.Approver, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Approver{ID: id, Name: "Approver " + id})
	}
	return out
}

func newTestGateway(w *memDecisionWriter) *Gateway {
	return NewGateway(nil, nil, nil, w, nil)
}

func TestGatewayApprove_AllApproversCompleteTheSubmission(t *testing.T) {
	t.Parallel()

	writer := newMemDecisionWriter()
	writer.add("sub-1", approverSet("a", "b", "c")...)
	gw := newTestGateway(writer)

	for i, id := range []string{"a", "b"} {
		d, err := gw.Approve(context.Background(), "sub-1", domain.Actor{ID: id}, []byte("sig-"+id))
		if err != nil {
			t.Fatalf("Approve(%s) error = %v", id, err)
		}
		if d.Completed {
			t.Fatalf("approval %d reported completion with approvers outstanding", i+1)
		}
		if d.NewStatus != domain.StatusPendingApproval {
			t.Fatalf("approval %d status = %s, want PENDING_APPROVAL", i+1, d.NewStatus)
		}
	}

	final, err := gw.Approve(context.Background(), "sub-1", domain.Actor{ID: "c"}, []byte("sig-c"))
	if err != nil {
		t.Fatalf("final Approve() error = %v", err)
	}
	if !final.Completed || final.NewStatus != domain.StatusApproved {
		t.Fatalf("final decision = %+v, want completed APPROVED", final)
	}
	if got := writer.status("sub-1"); got != domain.StatusApproved {
		t.Fatalf("stored status = %s, want APPROVED", got)
	}
}

func TestGatewayApprove_OrderIrrelevant(t *testing.T) {
	t.Parallel()

	orders := [][]string{
		{"a", "b", "c"},
		{"c", "a", "b"},
		{"b", "c", "a"},
	}
	for _, order := range orders {
		writer := newMemDecisionWriter()
		writer.add("sub-1", approverSet("a", "b", "c")...)
		gw := newTestGateway(writer)

		for _, id := range order {
			if _, err := gw.Approve(context.Background(), "sub-1", domain.Actor{ID: id}, nil); err != nil {
				t.Fatalf("order %v: Approve(%s) error = %v", order, id, err)
			}
		}
		if got := writer.status("sub-1"); got != domain.StatusApproved {
			t.Fatalf("order %v: status = %s, want APPROVED", order, got)
		}
	}
}

func TestGatewayReject_VetoesDespitePriorApprovals(t *testing.T) {
	t.Parallel()

	writer := newMemDecisionWriter()
	writer.add("sub-1", approverSet("a", "b", "c")...)
	gw := newTestGateway(writer)

	if _, err := gw.Approve(context.Background(), "sub-1", domain.Actor{ID: "a"}, nil); err != nil {
		t.Fatalf("Approve(a) error = %v", err)
	}
	d, err := gw.Reject(context.Background(), "sub-1", domain.Actor{ID: "b"}, nil)
	if err != nil {
		t.Fatalf("Reject(b) error = %v", err)
	}
	if !d.Completed || d.NewStatus != domain.StatusRejected {
		t.Fatalf("rejection decision = %+v, want completed REJECTED", d)
	}

	// The submission is terminal; the remaining approver acts too late.
	if _, err := gw.Approve(context.Background(), "sub-1", domain.Actor{ID: "c"}, nil); !errors.Is(err, domain.ErrStaleState) {
		t.Fatalf("late Approve(c) error = %v, want ErrStaleState", err)
	}
}

func TestGatewayApprove_DuplicateAndUnassignedActors(t *testing.T) {
	t.Parallel()

	writer := newMemDecisionWriter()
	writer.add("sub-1", approverSet("a", "b")...)
	gw := newTestGateway(writer)

	if _, err := gw.Approve(context.Background(), "sub-1", domain.Actor{ID: "a"}, nil); err != nil {
		t.Fatalf("Approve(a) error = %v", err)
	}
	if _, err := gw.Approve(context.Background(), "sub-1", domain.Actor{ID: "a"}, nil); !errors.Is(err, domain.ErrDuplicateAction) {
		t.Fatalf("duplicate Approve(a) error = %v, want ErrDuplicateAction", err)
	}
	if _, err := gw.Approve(context.Background(), "sub-1", domain.Actor{ID: "intruder"}, nil); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("unassigned Approve() error = %v, want ErrNotAuthorized", err)
	}

	// Failed attempts never advance the submission.
	if got := writer.status("sub-1"); got != domain.StatusPendingApproval {
		t.Fatalf("status = %s, want PENDING_APPROVAL", got)
	}
}

func TestGatewayApprove_ConcurrentFinalApprovals(t *testing.T) {
	t.Parallel()

	writer := newMemDecisionWriter()
	writer.add("sub-1", approverSet("a", "b")...)
	gw := newTestGateway(writer)

	var wg sync.WaitGroup
	decisions := make([]domain.Decision, 2)
	errs := make([]error, 2)
	for i, id := range []string{"a", "b"} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			decisions[i], errs[i] = gw.Approve(context.Background(), "sub-1", domain.Actor{ID: id}, nil)
		}(i, id)
	}
	wg.Wait()

	if errs[0] != nil || errs[1] != nil {
		t.Fatalf("concurrent approvals errored: %v, %v", errs[0], errs[1])
	}
	completed := 0
	for _, d := range decisions {
		if d.Completed {
			completed++
		}
	}
	if completed != 1 {
		t.Fatalf("completed count = %d, want exactly 1", completed)
	}
	if got := writer.status("sub-1"); got != domain.StatusApproved {
		t.Fatalf("status = %s, want APPROVED", got)
	}
}

func TestGatewayApproveReject_ConcurrentRaceHasOneWinner(t *testing.T) {
	t.Parallel()

	writer := newMemDecisionWriter()
	writer.add("sub-1", approverSet("a", "b")...)
	gw := newTestGateway(writer)

	if _, err := gw.Approve(context.Background(), "sub-1", domain.Actor{ID: "a"}, nil); err != nil {
		t.Fatalf("Approve(a) error = %v", err)
	}

	// The remaining approver's final approval races their own rejection.
	var wg sync.WaitGroup
	var approveErr, rejectErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, approveErr = gw.Approve(context.Background(), "sub-1", domain.Actor{ID: "b"}, nil)
	}()
	go func() {
		defer wg.Done()
		_, rejectErr = gw.Reject(context.Background(), "sub-1", domain.Actor{ID: "b"}, nil)
	}()
	wg.Wait()

	// Whichever landed second hit a terminal submission.
	if (approveErr == nil) == (rejectErr == nil) {
		t.Fatalf("exactly one operation must win: approveErr=%v rejectErr=%v", approveErr, rejectErr)
	}
	loserErr := approveErr
	if loserErr == nil {
		loserErr = rejectErr
	}
	if !errors.Is(loserErr, domain.ErrStaleState) && !errors.Is(loserErr, domain.ErrDuplicateAction) {
		t.Fatalf("loser error = %v, want stale state or duplicate", loserErr)
	}
	if got := writer.status("sub-1"); !got.Terminal() {
		t.Fatalf("status = %s, want terminal", got)
	}
}
