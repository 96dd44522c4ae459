// The seeder provisions a demo account: ensure user, then clinic, then
// project, then a settled demo payment. The get-or-create sequence is not
// transactional and can race under concurrent runs; it is meant for
// single-admin seeding only.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/clinicflow/backend/money"
	"github.com/clinicflow/backend/postgres"
)

func main() {
	log, err := newLog("clinicflow-seeder")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := run(log); err != nil {
		log.Errorw("seed", "err", err)
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {
	if err := godotenv.Load(); err != nil {
		log.Infow("startup", "status", "no .env file, using process environment")
	}

	cfg := struct {
		DB struct {
			User       string `conf:"default:clinicflow"`
			Password   string `conf:"default:clinicflow,mask"`
			Host       string `conf:"default:localhost"`
			Name       string `conf:"default:clinicflow"`
			DisableTLS bool   `conf:"default:true"`
		}
		Demo struct {
			Email  string `conf:"default:demo@clinicflow.com.br"`
			Name   string `conf:"default:Dra. Demo"`
			Clinic string `conf:"default:Clinica Demo"`
			City   string `conf:"default:Curitiba"`
			Plan   string `conf:"default:starter"`
		}
	}{}

	help, err := conf.Parse("CLINICFLOW", &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	db, err := postgres.Open(postgres.Config{
		User:       cfg.DB.User,
		Password:   cfg.DB.Password,
		Host:       cfg.DB.Host,
		Name:       cfg.DB.Name,
		DisableTLS: cfg.DB.DisableTLS,
	})
	if err != nil {
		return fmt.Errorf("connecting to db: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.Migrate(ctx, db); err != nil {
		return fmt.Errorf("updating database schema: %w", err)
	}

	userID, err := ensureUser(ctx, db, cfg.Demo.Name, cfg.Demo.Email)
	if err != nil {
		return fmt.Errorf("ensuring user: %w", err)
	}
	log.Infow("seed", "status", "user ready", "user_id", userID)

	clinicID, err := ensureClinic(ctx, db, userID, cfg.Demo.Clinic, cfg.Demo.City)
	if err != nil {
		return fmt.Errorf("ensuring clinic: %w", err)
	}
	log.Infow("seed", "status", "clinic ready", "clinic_id", clinicID)

	projectID, err := ensureProject(ctx, db, clinicID, cfg.Demo.Clinic+" Website")
	if err != nil {
		return fmt.Errorf("ensuring project: %w", err)
	}
	log.Infow("seed", "status", "project ready", "project_id", projectID)

	// Demo amounts come from the old billing sheet, formatted; parse into
	// centavos before they touch the database.
	const demoPaid = "R$ 97,00"
	amount, err := money.ParseBRL(demoPaid)
	if err != nil {
		return fmt.Errorf("parsing demo payment amount %q: %w", demoPaid, err)
	}

	paymentID, err := ensurePayment(ctx, db, clinicID, cfg.Demo.Plan, amount)
	if err != nil {
		return fmt.Errorf("ensuring payment: %w", err)
	}
	log.Infow("seed", "status", "payment ready", "payment_id", paymentID, "amount", money.FormatBRL(amount))

	return nil
}

func ensureUser(ctx context.Context, db *sqlx.DB, name, email string) (string, error) {
	var id string
	err := db.GetContext(ctx, &id, `SELECT id FROM users WHERE email = $1`, email)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	id = uuid.NewString()
	_, err = db.ExecContext(ctx,
		`INSERT INTO users (id, name, email) VALUES ($1, $2, $3)`,
		id, name, email)
	return id, err
}

func ensureClinic(ctx context.Context, db *sqlx.DB, ownerID, name, city string) (string, error) {
	var id string
	err := db.GetContext(ctx, &id, `SELECT id FROM clinics WHERE owner_id = $1 AND name = $2`, ownerID, name)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	id = uuid.NewString()
	_, err = db.ExecContext(ctx,
		`INSERT INTO clinics (id, owner_id, name, city) VALUES ($1, $2, $3, $4)`,
		id, ownerID, name, city)
	return id, err
}

func ensureProject(ctx context.Context, db *sqlx.DB, clinicID, name string) (string, error) {
	var id string
	err := db.GetContext(ctx, &id, `SELECT id FROM projects WHERE clinic_id = $1`, clinicID)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	id = uuid.NewString()
	_, err = db.ExecContext(ctx,
		`INSERT INTO projects (id, clinic_id, name) VALUES ($1, $2, $3)`,
		id, clinicID, name)
	return id, err
}

func ensurePayment(ctx context.Context, db *sqlx.DB, clinicID, plan string, amount money.Cents) (string, error) {
	var id string
	err := db.GetContext(ctx, &id, `SELECT id FROM payments WHERE clinic_id = $1 AND plan = $2 AND status = 'paid'`, clinicID, plan)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	id = uuid.NewString()
	_, err = db.ExecContext(ctx,
		`INSERT INTO payments (id, clinic_id, plan, amount_cents, status) VALUES ($1, $2, $3, $4, 'paid')`,
		id, clinicID, plan, amount)
	return id, err
}

func newLog(serviceName string) (*zap.SugaredLogger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	config.InitialFields = map[string]interface{}{
		"service": serviceName,
	}

	log, err := config.Build()
	if err != nil {
		return nil, err
	}

	return log.Sugar(), nil
}
