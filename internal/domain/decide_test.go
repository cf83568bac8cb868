package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var decideNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func approvers(ids ...string) []Approver {
	out := make([]Approver, 0, len(ids))
	for _, id := range ids {
		out = append(out, Approver{ID: id, Name: "Approver " + id})
	}
	return out
}

func approvedRecord(actorID string) ApprovalRecord {
	return ApprovalRecord{Action: ActionApproved, ActorID: actorID, ActorName: "Approver " + actorID, Timestamp: decideNow}
}

func TestEvaluateStatus(t *testing.T) {
	t.Parallel()

	assigned := approvers("a", "b", "c")

	tests := []struct {
		name     string
		timeline []ApprovalRecord
		want     Status
	}{
		{
			name:     "no decisions yet",
			timeline: []ApprovalRecord{{Action: ActionSubmitted, ActorID: "submitter"}},
			want:     StatusPendingApproval,
		},
		{
			name:     "partial approval stays pending",
			timeline: []ApprovalRecord{approvedRecord("a"), approvedRecord("b")},
			want:     StatusPendingApproval,
		},
		{
			name:     "all assigned approved",
			timeline: []ApprovalRecord{approvedRecord("a"), approvedRecord("b"), approvedRecord("c")},
			want:     StatusApproved,
		},
		{
			name:     "order of approvals is irrelevant",
			timeline: []ApprovalRecord{approvedRecord("c"), approvedRecord("a"), approvedRecord("b")},
			want:     StatusApproved,
		},
		{
			name:     "rejection vetoes despite approvals",
			timeline: []ApprovalRecord{approvedRecord("a"), {Action: ActionRejected, ActorID: "b"}},
			want:     StatusRejected,
		},
		{
			name:     "duplicate approvals count once",
			timeline: []ApprovalRecord{approvedRecord("a"), approvedRecord("a")},
			want:     StatusPendingApproval,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, EvaluateStatus(assigned, tc.timeline))
		})
	}
}

func TestEvaluateStatus_EmptyApproverSetNeverAutoApproves(t *testing.T) {
	t.Parallel()
	require.Equal(t, StatusPendingApproval, EvaluateStatus(nil, nil))
}

func TestDecideApproval_PartialThenFinal(t *testing.T) {
	t.Parallel()

	assigned := approvers("a", "b")
	timeline := []ApprovalRecord{{Action: ActionSubmitted, ActorID: "submitter"}}

	first, err := DecideApproval(StatusPendingApproval, assigned, timeline, Actor{ID: "a", Name: "Approver a"}, []byte("sig-a"), decideNow)
	require.NoError(t, err)
	require.Equal(t, StatusPendingApproval, first.NewStatus)
	require.False(t, first.Completed)
	require.Equal(t, ActionApproved, first.Record.Action)

	timeline = append(timeline, first.Record)

	second, err := DecideApproval(StatusPendingApproval, assigned, timeline, Actor{ID: "b", Name: "Approver b"}, []byte("sig-b"), decideNow)
	require.NoError(t, err)
	require.Equal(t, StatusApproved, second.NewStatus)
	require.True(t, second.Completed)
}

func TestDecideApproval_Commutative(t *testing.T) {
	t.Parallel()

	assigned := approvers("a", "b", "c")
	orders := [][]string{
		{"a", "b", "c"},
		{"c", "b", "a"},
		{"b", "c", "a"},
	}

	for _, order := range orders {
		var timeline []ApprovalRecord
		status := StatusPendingApproval
		for i, id := range order {
			d, err := DecideApproval(status, assigned, timeline, Actor{ID: id}, nil, decideNow)
			require.NoError(t, err)
			timeline = append(timeline, d.Record)
			status = d.NewStatus
			if i < len(order)-1 {
				require.Equal(t, StatusPendingApproval, status, "order %v step %d", order, i)
			}
		}
		require.Equal(t, StatusApproved, status, "order %v", order)
	}
}

func TestDecideApproval_Guards(t *testing.T) {
	t.Parallel()

	assigned := approvers("a", "b")

	tests := []struct {
		name     string
		status   Status
		timeline []ApprovalRecord
		actor    string
		wantErr  error
	}{
		{name: "draft is stale", status: StatusDraft, actor: "a", wantErr: ErrStaleState},
		{name: "approved is terminal", status: StatusApproved, actor: "a", wantErr: ErrStaleState},
		{name: "rejected is terminal", status: StatusRejected, actor: "a", wantErr: ErrStaleState},
		{name: "unassigned actor", status: StatusPendingApproval, actor: "x", wantErr: ErrNotAuthorized},
		{
			name:     "duplicate approval",
			status:   StatusPendingApproval,
			timeline: []ApprovalRecord{approvedRecord("a")},
			actor:    "a",
			wantErr:  ErrDuplicateAction,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := DecideApproval(tc.status, assigned, tc.timeline, Actor{ID: tc.actor}, nil, decideNow)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestDecideRejection_VetoesAfterApproval(t *testing.T) {
	t.Parallel()

	assigned := approvers("a", "b")
	timeline := []ApprovalRecord{approvedRecord("a")}

	d, err := DecideRejection(StatusPendingApproval, assigned, timeline, Actor{ID: "b", Name: "Approver b"}, []byte("sig"), decideNow)
	require.NoError(t, err)
	require.Equal(t, StatusRejected, d.NewStatus)
	require.True(t, d.Completed)
	require.Equal(t, ActionRejected, d.Record.Action)
}

func TestDecideRejection_Guards(t *testing.T) {
	t.Parallel()

	assigned := approvers("a")

	_, err := DecideRejection(StatusApproved, assigned, nil, Actor{ID: "a"}, nil, decideNow)
	require.ErrorIs(t, err, ErrStaleState)

	_, err = DecideRejection(StatusPendingApproval, assigned, nil, Actor{ID: "x"}, nil, decideNow)
	require.ErrorIs(t, err, ErrNotAuthorized)
}

func TestApprovedRecords_ExcludesRejections(t *testing.T) {
	t.Parallel()

	timeline := []ApprovalRecord{
		{Action: ActionSubmitted, ActorID: "s"},
		approvedRecord("a"),
		{Action: ActionRejected, ActorID: "b"},
	}
	got := ApprovedRecords(timeline)
	require.Len(t, got, 1)
	require.Equal(t, "a", got[0].ActorID)
}

func TestNewRevisionNumber(t *testing.T) {
	t.Parallel()
	require.Equal(t, "FG-REV/ 01 Mar 2026", NewRevisionNumber("FG-REV", decideNow))
}
