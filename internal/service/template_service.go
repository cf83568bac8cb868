package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"formgate.io/formgate/ent"
	"formgate.io/formgate/ent/formtemplate"
	"formgate.io/formgate/internal/domain"
	apperrors "formgate.io/formgate/internal/pkg/errors"
)

// TemplateService handles form template business logic. Templates carry the
// ordered field list, the required approver set, and an immutable revision
// tag assigned at creation time.
type TemplateService struct {
	client         *ent.Client
	revisionPrefix string
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(client *ent.Client, revisionPrefix string) *TemplateService {
	return &TemplateService{client: client, revisionPrefix: revisionPrefix}
}

// TemplateInput carries the admin-provided template definition.
type TemplateInput struct {
	Name        string
	Description string
	Category    string
	Fields      []domain.FormField
	Approvers   []domain.Approver
	Notes       string

	ReferenceDoc     []byte
	ReferenceDocName string
	ReferenceDocType string
}

// Create validates and stores a new template. The revision tag is derived
// from the configured prefix and the creation date and never changes.
func (s *TemplateService) Create(ctx context.Context, in TemplateInput, createdBy string) (*domain.FormTemplate, error) {
	if err := validateTemplateInput(in); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate template id: %w", err)
	}

	create := s.client.FormTemplate.Create().
		SetID(id.String()).
		SetName(in.Name).
		SetDescription(in.Description).
		SetCategory(in.Category).
		SetFields(in.Fields).
		SetApprovers(in.Approvers).
		SetNotes(in.Notes).
		SetRevisionNumber(domain.NewRevisionNumber(s.revisionPrefix, time.Now().UTC())).
		SetCreatedBy(createdBy)
	if len(in.ReferenceDoc) > 0 {
		create = create.
			SetReferenceDoc(in.ReferenceDoc).
			SetReferenceDocName(in.ReferenceDocName).
			SetReferenceDocType(in.ReferenceDocType).
			SetReferenceDocSize(int64(len(in.ReferenceDoc)))
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create template %s: %w", in.Name, err)
	}
	return templateToDomain(row), nil
}

// Update replaces the mutable parts of a template. In-flight submissions are
// unaffected: they carry their own snapshot.
func (s *TemplateService) Update(ctx context.Context, id string, in TemplateInput) (*domain.FormTemplate, error) {
	if err := validateTemplateInput(in); err != nil {
		return nil, err
	}

	update := s.client.FormTemplate.UpdateOneID(id).
		SetName(in.Name).
		SetDescription(in.Description).
		SetCategory(in.Category).
		SetFields(in.Fields).
		SetApprovers(in.Approvers).
		SetNotes(in.Notes)
	if len(in.ReferenceDoc) > 0 {
		update = update.
			SetReferenceDoc(in.ReferenceDoc).
			SetReferenceDocName(in.ReferenceDocName).
			SetReferenceDocType(in.ReferenceDocType).
			SetReferenceDocSize(int64(len(in.ReferenceDoc)))
	}

	row, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, templateNotFound(id)
		}
		return nil, fmt.Errorf("update template %s: %w", id, err)
	}
	return templateToDomain(row), nil
}

// Get returns a template by id.
func (s *TemplateService) Get(ctx context.Context, id string) (*domain.FormTemplate, error) {
	row, err := s.client.FormTemplate.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, templateNotFound(id)
		}
		return nil, fmt.Errorf("get template %s: %w", id, err)
	}
	return templateToDomain(row), nil
}

// List returns all templates, optionally filtered by category, newest first.
func (s *TemplateService) List(ctx context.Context, category string) ([]*domain.FormTemplate, error) {
	q := s.client.FormTemplate.Query()
	if category != "" {
		q = q.Where(formtemplate.CategoryEQ(category))
	}
	rows, err := q.Order(ent.Desc(formtemplate.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	out := make([]*domain.FormTemplate, 0, len(rows))
	for _, row := range rows {
		out = append(out, templateToDomain(row))
	}
	return out, nil
}

// Delete removes a template. Submissions created from it keep working off
// their snapshots.
func (s *TemplateService) Delete(ctx context.Context, id string) error {
	if err := s.client.FormTemplate.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return templateNotFound(id)
		}
		return fmt.Errorf("delete template %s: %w", id, err)
	}
	return nil
}

func templateNotFound(id string) error {
	return apperrors.NotFound(apperrors.CodeTemplateNotFound, "form template not found").
		WithParams(map[string]interface{}{"template_id": id})
}

func validateTemplateInput(in TemplateInput) error {
	var fieldErrs []apperrors.FieldError

	if in.Name == "" {
		fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "name", Code: "required"})
	}
	if len(in.Fields) == 0 {
		fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "fields", Code: "required"})
	}

	seen := make(map[string]struct{}, len(in.Fields))
	for _, f := range in.Fields {
		switch {
		case f.ID == "":
			fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "fields", Code: "missing_id", Message: fmt.Sprintf("field %q has no id", f.Label)})
		default:
			if _, dup := seen[f.ID]; dup {
				fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "fields", Code: "duplicate_id", Message: fmt.Sprintf("duplicate field id %q", f.ID)})
			}
			seen[f.ID] = struct{}{}
		}
		if !f.IsNote && !domain.KnownFieldType(f.Type) {
			fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "fields", Code: "unknown_type", Message: fmt.Sprintf("field %q has unknown type %q", f.ID, f.Type)})
		}
		if f.Type == domain.FieldSelect && len(f.Options) == 0 && !f.IsNote {
			fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "fields", Code: "missing_options", Message: fmt.Sprintf("select field %q has no options", f.ID)})
		}
	}

	for i, a := range in.Approvers {
		if a.ID == "" || a.Name == "" {
			fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "approvers", Code: "incomplete", Message: fmt.Sprintf("approver %d is missing id or name", i)})
		}
	}

	if len(fieldErrs) > 0 {
		return apperrors.BadRequest(apperrors.CodeTemplateInvalid, "template definition is invalid").
			WithFieldErrors(fieldErrs)
	}
	return nil
}

func templateToDomain(row *ent.FormTemplate) *domain.FormTemplate {
	return &domain.FormTemplate{
		ID:               row.ID,
		Name:             row.Name,
		Description:      row.Description,
		Category:         row.Category,
		Fields:           row.Fields,
		Approvers:        row.Approvers,
		Notes:            row.Notes,
		RevisionNumber:   row.RevisionNumber,
		CreatedBy:        row.CreatedBy,
		ReferenceDocName: row.ReferenceDocName,
		ReferenceDocType: row.ReferenceDocType,
		ReferenceDocSize: row.ReferenceDocSize,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}
