// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApprovalRecordsColumns holds the columns for the "approval_records" table.
	ApprovalRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "submission_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"SUBMITTED", "APPROVED", "REJECTED"}},
		{Name: "actor_id", Type: field.TypeString},
		{Name: "actor_name", Type: field.TypeString},
		{Name: "actor_position", Type: field.TypeString, Nullable: true},
		{Name: "actor_department", Type: field.TypeString, Nullable: true},
		{Name: "signature", Type: field.TypeBytes, Nullable: true},
	}
	// ApprovalRecordsTable holds the schema information for the "approval_records" table.
	ApprovalRecordsTable = &schema.Table{
		Name:       "approval_records",
		Columns:    ApprovalRecordsColumns,
		PrimaryKey: []*schema.Column{ApprovalRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "approvalrecord_submission_id",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRecordsColumns[2]},
			},
			{
				Name:    "approvalrecord_submission_id_action",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRecordsColumns[2], ApprovalRecordsColumns[3]},
			},
			{
				Name:    "approvalrecord_submission_id_actor_id_action",
				Unique:  true,
				Columns: []*schema.Column{ApprovalRecordsColumns[2], ApprovalRecordsColumns[4], ApprovalRecordsColumns[3]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3], AuditLogsColumns[4]},
			},
			{
				Name:    "auditlog_actor",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[5]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
		},
	}
	// FormTemplatesColumns holds the columns for the "form_templates" table.
	FormTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "fields", Type: field.TypeJSON},
		{Name: "approvers", Type: field.TypeJSON},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "revision_number", Type: field.TypeString},
		{Name: "created_by", Type: field.TypeString},
		{Name: "reference_doc", Type: field.TypeBytes, Nullable: true},
		{Name: "reference_doc_name", Type: field.TypeString, Nullable: true},
		{Name: "reference_doc_type", Type: field.TypeString, Nullable: true},
		{Name: "reference_doc_size", Type: field.TypeInt64, Nullable: true},
	}
	// FormTemplatesTable holds the schema information for the "form_templates" table.
	FormTemplatesTable = &schema.Table{
		Name:       "form_templates",
		Columns:    FormTemplatesColumns,
		PrimaryKey: []*schema.Column{FormTemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "formtemplate_category",
				Unique:  false,
				Columns: []*schema.Column{FormTemplatesColumns[5]},
			},
			{
				Name:    "formtemplate_name",
				Unique:  false,
				Columns: []*schema.Column{FormTemplatesColumns[3]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"SUBMISSION_PENDING", "SUBMISSION_APPROVED", "SUBMISSION_REJECTED"}},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2048},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_notifications", Type: field.TypeString},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_users_notifications",
				Columns:    []*schema.Column{NotificationsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notification_read_user_notifications",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[7], NotificationsColumns[9]},
			},
			{
				Name:    "notification_created_at_user_notifications",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[9]},
			},
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1]},
			},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "form_template_id", Type: field.TypeString},
		{Name: "form_name", Type: field.TypeString},
		{Name: "form_category", Type: field.TypeString, Nullable: true},
		{Name: "submitted_by", Type: field.TypeString},
		{Name: "submitter_name", Type: field.TypeString},
		{Name: "submitter_position", Type: field.TypeString, Nullable: true},
		{Name: "submitter_department", Type: field.TypeString, Nullable: true},
		{Name: "submitter_email", Type: field.TypeString, Nullable: true},
		{Name: "signature", Type: field.TypeBytes, Nullable: true},
		{Name: "form_data", Type: field.TypeJSON},
		{Name: "attachments", Type: field.TypeJSON, Nullable: true},
		{Name: "assigned_approvers", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"DRAFT", "PENDING_APPROVAL", "APPROVED", "REJECTED"}, Default: "DRAFT"},
		{Name: "submitted_at", Type: field.TypeTime, Nullable: true},
		{Name: "approved_at", Type: field.TypeTime, Nullable: true},
		{Name: "rejected_at", Type: field.TypeTime, Nullable: true},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submission_status",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[15]},
			},
			{
				Name:    "submission_submitted_by",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[6]},
			},
			{
				Name:    "submission_form_template_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "name", Type: field.TypeString},
		{Name: "position", Type: field.TypeString, Nullable: true},
		{Name: "department", Type: field.TypeString, Nullable: true},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "force_password_change", Type: field.TypeBool, Default: false},
		{Name: "roles", Type: field.TypeJSON, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApprovalRecordsTable,
		AuditLogsTable,
		FormTemplatesTable,
		NotificationsTable,
		SubmissionsTable,
		UsersTable,
	}
)

func init() {
	NotificationsTable.ForeignKeys[0].RefTable = UsersTable
}
