package render

import (
	"reflect"
	"testing"
)

func TestApproverLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		index int
		want  string
	}{
		{0, "Supervisor's Approval"},
		{1, "HR Approval"},
		{2, "Management Approval"},
		{3, "Level 4 Approval"},
		{6, "Level 7 Approval"},
	}
	for _, tt := range tests {
		if got := ApproverLabel(tt.index); got != tt.want {
			t.Errorf("ApproverLabel(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestSignatureRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total int
		want  []SignatureRow
	}{
		{
			name:  "single block alone left aligned",
			total: 1,
			want:  []SignatureRow{{Indexes: []int{0}}},
		},
		{
			name:  "two blocks share a row",
			total: 2,
			want:  []SignatureRow{{Indexes: []int{0, 1}}},
		},
		{
			name:  "three blocks center the last",
			total: 3,
			want: []SignatureRow{
				{Indexes: []int{0, 1}},
				{Indexes: []int{2}, Centered: true},
			},
		},
		{
			name:  "four blocks fill two rows",
			total: 4,
			want: []SignatureRow{
				{Indexes: []int{0, 1}},
				{Indexes: []int{2, 3}},
			},
		},
		{
			name:  "five blocks leave the last left aligned",
			total: 5,
			want: []SignatureRow{
				{Indexes: []int{0, 1}},
				{Indexes: []int{2, 3}},
				{Indexes: []int{4}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SignatureRows(tt.total); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SignatureRows(%d) = %+v, want %+v", tt.total, got, tt.want)
			}
		})
	}
}
