// Package main provides data seeding for FormGate.
//
// The server auto-migrates its schema but never invents data; this command
// performs idempotent bootstrap of the default admin account and, when a
// seed file is present, demo users and form templates.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"formgate.io/formgate/ent"
	"formgate.io/formgate/internal/api/handlers"
	"formgate.io/formgate/internal/config"
	"formgate.io/formgate/internal/domain"
	"formgate.io/formgate/internal/infrastructure"
	"formgate.io/formgate/internal/pkg/logger"
	"formgate.io/formgate/internal/service"
)

const (
	defaultAdminID       = "user-default-admin"
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	client := db.EntClient

	logger.Info("Starting data seeding...")

	// Schema and River migrations are expected to be executed before seeding.
	// This command only performs idempotent data bootstrap.

	if err := seedDefaultAdmin(ctx, client); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	if path := seedFilePath(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read seed file %s: %w", path, err)
		}
		file, err := parseSeedFile(data)
		if err != nil {
			return fmt.Errorf("parse seed file %s: %w", path, err)
		}
		if err := seedUsers(ctx, client, file.Users); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		templates := service.NewTemplateService(client, cfg.Forms.RevisionPrefix)
		if err := seedTemplates(ctx, templates, file.Templates); err != nil {
			return fmt.Errorf("seed templates: %w", err)
		}
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

// seedFilePath returns the optional YAML seed file path. Empty means only the
// default admin is seeded.
func seedFilePath() string {
	if path := os.Getenv("SEED_FILE"); path != "" {
		return path
	}
	if _, err := os.Stat("seed.yaml"); err == nil {
		return "seed.yaml"
	}
	return ""
}

// seedFile is the YAML document layout for optional bootstrap data.
type seedFile struct {
	Users     []seedUser     `yaml:"users"`
	Templates []seedTemplate `yaml:"templates"`
}

type seedUser struct {
	ID         string   `yaml:"id"`
	Username   string   `yaml:"username"`
	Name       string   `yaml:"name"`
	Email      string   `yaml:"email"`
	Position   string   `yaml:"position"`
	Department string   `yaml:"department"`
	Password   string   `yaml:"password"`
	Roles      []string `yaml:"roles"`
}

type seedTemplate struct {
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	Category    string             `yaml:"category"`
	Notes       string             `yaml:"notes"`
	Fields      []domain.FormField `yaml:"fields"`
	Approvers   []domain.Approver  `yaml:"approvers"`
}

func parseSeedFile(data []byte) (*seedFile, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	for i, u := range file.Users {
		if u.Username == "" || u.Name == "" || u.Password == "" {
			return nil, fmt.Errorf("user %d: username, name and password are required", i)
		}
	}
	for i, tpl := range file.Templates {
		if tpl.Name == "" {
			return nil, fmt.Errorf("template %d: name is required", i)
		}
	}
	return &file, nil
}

// seedDefaultAdmin creates the default admin user (admin/admin,
// force_password_change=true) so a fresh install is reachable.
func seedDefaultAdmin(ctx context.Context, client *ent.Client) error {
	hash, err := handlers.HashPassword(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	_, err = client.User.Create().
		SetID(defaultAdminID).
		SetUsername(defaultAdminUsername).
		SetEmail("admin@localhost").
		SetName("Default Administrator").
		SetPasswordHash(hash).
		SetRoles([]string{"admin"}).
		SetForcePasswordChange(true).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			logger.Info("Default admin already exists, skipping")
			return nil
		}
		return fmt.Errorf("create default admin: %w", err)
	}

	logger.Info("Seeded default admin user",
		zap.String("username", defaultAdminUsername),
		zap.Bool("force_password_change", true),
	)
	return nil
}

// seedUsers creates portal accounts from the seed file. Existing usernames
// are skipped (ON CONFLICT DO NOTHING equivalent).
func seedUsers(ctx context.Context, client *ent.Client, users []seedUser) error {
	for _, u := range users {
		hash, err := handlers.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Username, err)
		}

		id := u.ID
		if id == "" {
			id = handlers.GenerateUserID()
		}
		_, err = client.User.Create().
			SetID(id).
			SetUsername(u.Username).
			SetName(u.Name).
			SetEmail(u.Email).
			SetPosition(u.Position).
			SetDepartment(u.Department).
			SetPasswordHash(hash).
			SetRoles(u.Roles).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("User already exists, skipping", zap.String("username", u.Username))
				continue
			}
			return fmt.Errorf("create user %s: %w", u.Username, err)
		}
		logger.Info("Seeded user", zap.String("username", u.Username))
	}
	return nil
}

// seedTemplates creates form templates through the template service so seeded
// templates get the same validation and revision tags as admin-created ones.
func seedTemplates(ctx context.Context, templates *service.TemplateService, defs []seedTemplate) error {
	existing, err := templates.List(ctx, "")
	if err != nil {
		return fmt.Errorf("list templates: %w", err)
	}
	byName := make(map[string]bool, len(existing))
	for _, tpl := range existing {
		byName[tpl.Name] = true
	}

	for _, def := range defs {
		if byName[def.Name] {
			logger.Info("Template already exists, skipping", zap.String("template", def.Name))
			continue
		}
		tpl, err := templates.Create(ctx, service.TemplateInput{
			Name:        def.Name,
			Description: def.Description,
			Category:    def.Category,
			Notes:       def.Notes,
			Fields:      def.Fields,
			Approvers:   def.Approvers,
		}, "system-seed")
		if err != nil {
			return fmt.Errorf("create template %s: %w", def.Name, err)
		}
		logger.Info("Seeded form template",
			zap.String("template", tpl.Name),
			zap.String("revision", tpl.RevisionNumber),
		)
	}
	return nil
}
