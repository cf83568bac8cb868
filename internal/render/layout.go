package render

import "fmt"

// Signature block labels are positional: they follow the order approvals
// landed in the timeline, not any role field on the approver.
const (
	labelSubmitter = "Submitted By"

	labelFirstApprover  = "Supervisor's Approval"
	labelSecondApprover = "HR Approval"
	labelThirdApprover  = "Management Approval"
)

// ApproverLabel returns the display label for the approver signature block at
// the given zero-based timeline position.
func ApproverLabel(index int) string {
	switch index {
	case 0:
		return labelFirstApprover
	case 1:
		return labelSecondApprover
	case 2:
		return labelThirdApprover
	default:
		return fmt.Sprintf("Level %d Approval", index+1)
	}
}

// SignatureRow is one row of the signature grid.
type SignatureRow struct {
	// Indexes into the flattened block list (submitter first, then
	// approved records in timeline order).
	Indexes []int

	// Centered marks the single block that sits centered on its own row.
	Centered bool
}

// SignatureRows arranges total signature blocks two per row. With exactly
// three blocks the third is centered on its own row instead of left-aligned,
// a deliberate symmetry rule; any other odd count leaves the last block
// left-aligned.
func SignatureRows(total int) []SignatureRow {
	var rows []SignatureRow
	for i := 0; i < total; i += 2 {
		row := SignatureRow{Indexes: []int{i}}
		if i+1 < total {
			row.Indexes = append(row.Indexes, i+1)
		} else if total == 3 {
			row.Centered = true
		}
		rows = append(rows, row)
	}
	return rows
}
