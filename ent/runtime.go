// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"formgate.io/formgate/ent/approvalrecord"
	"formgate.io/formgate/ent/auditlog"
	"formgate.io/formgate/ent/formtemplate"
	"formgate.io/formgate/ent/notification"
	"formgate.io/formgate/ent/schema"
	"formgate.io/formgate/ent/submission"
	"formgate.io/formgate/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	approvalrecordMixin := schema.ApprovalRecord{}.Mixin()
	approvalrecordMixinFields0 := approvalrecordMixin[0].Fields()
	_ = approvalrecordMixinFields0
	approvalrecordFields := schema.ApprovalRecord{}.Fields()
	_ = approvalrecordFields
	// approvalrecordDescCreatedAt is the schema descriptor for created_at field.
	approvalrecordDescCreatedAt := approvalrecordMixinFields0[0].Descriptor()
	// approvalrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	approvalrecord.DefaultCreatedAt = approvalrecordDescCreatedAt.Default.(func() time.Time)
	// approvalrecordDescSubmissionID is the schema descriptor for submission_id field.
	approvalrecordDescSubmissionID := approvalrecordFields[1].Descriptor()
	// approvalrecord.SubmissionIDValidator is a validator for the "submission_id" field. It is called by the builders before save.
	approvalrecord.SubmissionIDValidator = approvalrecordDescSubmissionID.Validators[0].(func(string) error)
	// approvalrecordDescActorID is the schema descriptor for actor_id field.
	approvalrecordDescActorID := approvalrecordFields[3].Descriptor()
	// approvalrecord.ActorIDValidator is a validator for the "actor_id" field. It is called by the builders before save.
	approvalrecord.ActorIDValidator = approvalrecordDescActorID.Validators[0].(func(string) error)
	// approvalrecordDescActorName is the schema descriptor for actor_name field.
	approvalrecordDescActorName := approvalrecordFields[4].Descriptor()
	// approvalrecord.ActorNameValidator is a validator for the "actor_name" field. It is called by the builders before save.
	approvalrecord.ActorNameValidator = approvalrecordDescActorName.Validators[0].(func(string) error)
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescResourceType is the schema descriptor for resource_type field.
	auditlogDescResourceType := auditlogFields[2].Descriptor()
	// auditlog.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	auditlog.ResourceTypeValidator = auditlogDescResourceType.Validators[0].(func(string) error)
	// auditlogDescResourceID is the schema descriptor for resource_id field.
	auditlogDescResourceID := auditlogFields[3].Descriptor()
	// auditlog.ResourceIDValidator is a validator for the "resource_id" field. It is called by the builders before save.
	auditlog.ResourceIDValidator = auditlogDescResourceID.Validators[0].(func(string) error)
	// auditlogDescActor is the schema descriptor for actor field.
	auditlogDescActor := auditlogFields[4].Descriptor()
	// auditlog.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditlog.ActorValidator = auditlogDescActor.Validators[0].(func(string) error)
	formtemplateMixin := schema.FormTemplate{}.Mixin()
	formtemplateMixinFields0 := formtemplateMixin[0].Fields()
	_ = formtemplateMixinFields0
	formtemplateFields := schema.FormTemplate{}.Fields()
	_ = formtemplateFields
	// formtemplateDescCreatedAt is the schema descriptor for created_at field.
	formtemplateDescCreatedAt := formtemplateMixinFields0[0].Descriptor()
	// formtemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	formtemplate.DefaultCreatedAt = formtemplateDescCreatedAt.Default.(func() time.Time)
	// formtemplateDescUpdatedAt is the schema descriptor for updated_at field.
	formtemplateDescUpdatedAt := formtemplateMixinFields0[1].Descriptor()
	// formtemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	formtemplate.DefaultUpdatedAt = formtemplateDescUpdatedAt.Default.(func() time.Time)
	// formtemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	formtemplate.UpdateDefaultUpdatedAt = formtemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// formtemplateDescName is the schema descriptor for name field.
	formtemplateDescName := formtemplateFields[1].Descriptor()
	// formtemplate.NameValidator is a validator for the "name" field. It is called by the builders before save.
	formtemplate.NameValidator = func() func(string) error {
		validators := formtemplateDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// formtemplateDescRevisionNumber is the schema descriptor for revision_number field.
	formtemplateDescRevisionNumber := formtemplateFields[7].Descriptor()
	// formtemplate.RevisionNumberValidator is a validator for the "revision_number" field. It is called by the builders before save.
	formtemplate.RevisionNumberValidator = formtemplateDescRevisionNumber.Validators[0].(func(string) error)
	// formtemplateDescCreatedBy is the schema descriptor for created_by field.
	formtemplateDescCreatedBy := formtemplateFields[8].Descriptor()
	// formtemplate.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	formtemplate.CreatedByValidator = formtemplateDescCreatedBy.Validators[0].(func(string) error)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = func() func(string) error {
		validators := notificationDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescMessage is the schema descriptor for message field.
	notificationDescMessage := notificationFields[3].Descriptor()
	// notification.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	notification.MessageValidator = func() func(string) error {
		validators := notificationDescMessage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(message string) error {
			for _, fn := range fns {
				if err := fn(message); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[6].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	submissionMixin := schema.Submission{}.Mixin()
	submissionMixinFields0 := submissionMixin[0].Fields()
	_ = submissionMixinFields0
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionMixinFields0[0].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	// submissionDescUpdatedAt is the schema descriptor for updated_at field.
	submissionDescUpdatedAt := submissionMixinFields0[1].Descriptor()
	// submission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	submission.DefaultUpdatedAt = submissionDescUpdatedAt.Default.(func() time.Time)
	// submission.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	submission.UpdateDefaultUpdatedAt = submissionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// submissionDescFormTemplateID is the schema descriptor for form_template_id field.
	submissionDescFormTemplateID := submissionFields[1].Descriptor()
	// submission.FormTemplateIDValidator is a validator for the "form_template_id" field. It is called by the builders before save.
	submission.FormTemplateIDValidator = submissionDescFormTemplateID.Validators[0].(func(string) error)
	// submissionDescFormName is the schema descriptor for form_name field.
	submissionDescFormName := submissionFields[2].Descriptor()
	// submission.FormNameValidator is a validator for the "form_name" field. It is called by the builders before save.
	submission.FormNameValidator = submissionDescFormName.Validators[0].(func(string) error)
	// submissionDescSubmittedBy is the schema descriptor for submitted_by field.
	submissionDescSubmittedBy := submissionFields[4].Descriptor()
	// submission.SubmittedByValidator is a validator for the "submitted_by" field. It is called by the builders before save.
	submission.SubmittedByValidator = submissionDescSubmittedBy.Validators[0].(func(string) error)
	// submissionDescSubmitterName is the schema descriptor for submitter_name field.
	submissionDescSubmitterName := submissionFields[5].Descriptor()
	// submission.SubmitterNameValidator is a validator for the "submitter_name" field. It is called by the builders before save.
	submission.SubmitterNameValidator = submissionDescSubmitterName.Validators[0].(func(string) error)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[3].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescForcePasswordChange is the schema descriptor for force_password_change field.
	userDescForcePasswordChange := userFields[7].Descriptor()
	// user.DefaultForcePasswordChange holds the default value on creation for the force_password_change field.
	user.DefaultForcePasswordChange = userDescForcePasswordChange.Default.(bool)
	// userDescEnabled is the schema descriptor for enabled field.
	userDescEnabled := userFields[9].Descriptor()
	// user.DefaultEnabled holds the default value on creation for the enabled field.
	user.DefaultEnabled = userDescEnabled.Default.(bool)
}
