package modules

import (
	"os"
	"strings"
	"testing"

	"formgate.io/formgate/ent"
	"formgate.io/formgate/internal/config"
)

func TestNewApprovalModule_RequiresInfraDependencies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		infra *Infrastructure
		forms *FormsModule
	}{
		{name: "nil infra", infra: nil},
		{name: "missing all core deps", infra: &Infrastructure{}},
		{name: "missing pool and river", infra: &Infrastructure{EntClient: &ent.Client{}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewApprovalModule(tc.infra, tc.forms); err == nil {
				t.Fatalf("NewApprovalModule(%s) expected error, got nil", tc.name)
			}
		})
	}
}

func TestNewFormsModule_RequiresInfraDependencies(t *testing.T) {
	t.Parallel()

	if _, err := NewFormsModule(nil); err == nil {
		t.Fatal("NewFormsModule(nil) expected error, got nil")
	}
	if _, err := NewFormsModule(&Infrastructure{Config: &config.Config{}}); err == nil {
		t.Fatal("NewFormsModule without ent client expected error, got nil")
	}
}

func TestApprovalModule_WiringContract(t *testing.T) {
	t.Parallel()

	src, err := os.ReadFile("approval.go")
	if err != nil {
		t.Fatalf("read approval.go: %v", err)
	}
	text := string(src)

	required := []string{
		"approval.NewGateway(",
		"usecase.NewSubmissionAtomicWriter(",
		"usecase.NewSubmissionWriter(",
		"usecase.NewSubmissionDeleter(",
	}
	for _, fragment := range required {
		if !strings.Contains(text, fragment) {
			t.Fatalf("approval module missing required wiring fragment %q", fragment)
		}
	}
}

func TestNotificationsModule_WiringContract(t *testing.T) {
	t.Parallel()

	src, err := os.ReadFile("notifications.go")
	if err != nil {
		t.Fatalf("read notifications.go: %v", err)
	}
	text := string(src)

	required := []string{
		"notification.NewInboxSender(",
		"notification.NewTriggers(",
		"jobs.NewSubmissionNotifyWorker(",
		"jobs.NewNotificationCleanupWorker(",
	}
	for _, fragment := range required {
		if !strings.Contains(text, fragment) {
			t.Fatalf("notifications module missing required wiring fragment %q", fragment)
		}
	}
}
