package modules

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"

	"formgate.io/formgate/internal/api/handlers"
	"formgate.io/formgate/internal/governance/approval"
	"formgate.io/formgate/internal/usecase"
)

// ApprovalModule wires the approval gateway with the pgx atomic writers.
// Decisions and notification enqueues commit in one transaction, so this
// module must be created after the River client is initialized.
type ApprovalModule struct {
	gateway *approval.Gateway
	deleter *usecase.SubmissionDeleter
}

// NewApprovalModule creates the approval module after River client is initialized.
func NewApprovalModule(infra *Infrastructure, forms *FormsModule) (*ApprovalModule, error) {
	if infra == nil || infra.EntClient == nil || infra.Pool == nil || infra.RiverClient == nil {
		return nil, fmt.Errorf("approval module requires ent client, pgx pool, and river client")
	}
	if forms == nil || forms.Templates() == nil {
		return nil, fmt.Errorf("approval module requires the forms module")
	}

	atomicWriter := usecase.NewSubmissionAtomicWriter(infra.Pool, infra.RiverClient)
	submissionWriter := usecase.NewSubmissionWriter(infra.Pool, infra.RiverClient)
	gateway := approval.NewGateway(infra.EntClient, infra.AuditLogger, forms.Templates(), atomicWriter, submissionWriter)

	return &ApprovalModule{
		gateway: gateway,
		deleter: usecase.NewSubmissionDeleter(infra.Pool),
	}, nil
}

func (m *ApprovalModule) Name() string { return "approval" }

func (m *ApprovalModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Gateway = m.gateway
	deps.Deleter = m.deleter
}

func (m *ApprovalModule) RegisterWorkers(_ *river.Workers) {}

func (m *ApprovalModule) Shutdown(context.Context) error { return nil }
