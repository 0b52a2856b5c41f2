package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"studytrack/internal/config"
	"studytrack/internal/database"
	"studytrack/internal/logger"
	"studytrack/internal/repository"
	"studytrack/internal/repository/models"
	"studytrack/internal/service"
	"studytrack/internal/util"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const seedFilePath = "configs/seed_data/initial_catalog.json"

type seedQuestion struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	ExpectedTime  float64  `json:"expected_time"`
}

type seedMaterial struct {
	ContentType string `json:"content_type"`
	Body        string `json:"body"`
}

type seedTopic struct {
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	DifficultyTier string         `json:"difficulty_tier"`
	EstimatedHours float64        `json:"estimated_hours"`
	Prerequisites  []string       `json:"prerequisites"`
	Materials      []seedMaterial `json:"materials"`
	Questions      []seedQuestion `json:"questions"`
}

type seedSubject struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Topics      []seedTopic `json:"topics"`
}

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting catalog seeding")
	db, err := database.NewSQLXSQLiteDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db, cfg.DB.MigrationsDir); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	raw, err := os.ReadFile(seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", seedFilePath), zap.Error(err))
	}

	var subjects []seedSubject
	if err := json.Unmarshal(raw, &subjects); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Loaded seed data", zap.Int("subjects", len(subjects)))

	if err := seedDemoUser(ctx, cfg, db, log); err != nil {
		log.Error("Failed to seed demo user", zap.Error(err))
	}

	catalogRepo := repository.NewSQLXCatalogRepository(db)

	for _, sub := range subjects {
		existing, err := catalogRepo.GetSubjectByName(ctx, sub.Name)
		if err != nil {
			log.Error("Failed to check subject", zap.String("subject", sub.Name), zap.Error(err))
			continue
		}
		if existing != nil {
			log.Info("Subject already seeded, skipping", zap.String("subject", sub.Name))
			continue
		}
		if err := seedSubjectData(ctx, db, sub); err != nil {
			log.Error("Failed to seed subject, transaction rolled back", zap.String("subject", sub.Name), zap.Error(err))
			continue
		}
		log.Info("Seeded subject", zap.String("subject", sub.Name), zap.Int("topics", len(sub.Topics)))
	}

	log.Info("Catalog seeding completed")
}

// seedDemoUser registers a demo account for local exploration. Safe to rerun;
// an already-registered email is skipped.
func seedDemoUser(ctx context.Context, cfg *config.Config, db *sqlx.DB, log *zap.Logger) error {
	userRepo := repository.NewSQLXUserRepository(db)
	authService, err := service.NewAuthService(userRepo, cfg.Auth)
	if err != nil {
		return err
	}

	const demoEmail = "demo@studytrack.local"
	_, err = authService.Register(ctx, demoEmail, "Demo Learner", "demo-password")
	if errors.Is(err, service.ErrEmailTaken) {
		log.Info("Demo user already seeded, skipping", zap.String("email", demoEmail))
		return nil
	}
	if err != nil {
		return err
	}
	log.Info("Seeded demo user", zap.String("email", demoEmail))
	return nil
}

func seedSubjectData(ctx context.Context, db *sqlx.DB, sub seedSubject) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for subject %s: %w", sub.Name, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	now := time.Now()

	subject := models.Subject{
		ID:          util.NewULID(),
		Name:        sub.Name,
		Description: util.StringToNullString(sub.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err = tx.NamedExecContext(ctx,
		`INSERT INTO subjects (id, name, description, created_at, updated_at, deleted_at)
		 VALUES (:id, :name, :description, :created_at, :updated_at, :deleted_at)`, subject); err != nil {
		return fmt.Errorf("failed to insert subject %s: %w", sub.Name, err)
	}

	// Prerequisites in the seed file reference topic titles; resolve them to
	// the IDs generated in this pass.
	topicIDs := make(map[string]string, len(sub.Topics))
	for _, t := range sub.Topics {
		topicIDs[t.Title] = util.NewULID()
	}

	for _, t := range sub.Topics {
		prereqs := models.StringSlice{}
		for _, title := range t.Prerequisites {
			id, ok := topicIDs[title]
			if !ok {
				return fmt.Errorf("topic %s lists unknown prerequisite %q", t.Title, title)
			}
			prereqs = append(prereqs, id)
		}

		topic := models.Topic{
			ID:             topicIDs[t.Title],
			SubjectID:      subject.ID,
			Title:          t.Title,
			Description:    util.StringToNullString(t.Description),
			DifficultyTier: t.DifficultyTier,
			EstimatedHours: t.EstimatedHours,
			Prerequisites:  prereqs,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if _, err = tx.NamedExecContext(ctx,
			`INSERT INTO topics (id, subject_id, title, description, difficulty_tier, estimated_hours, prerequisites, created_at, updated_at, deleted_at)
			 VALUES (:id, :subject_id, :title, :description, :difficulty_tier, :estimated_hours, :prerequisites, :created_at, :updated_at, :deleted_at)`, topic); err != nil {
			return fmt.Errorf("failed to insert topic %s: %w", t.Title, err)
		}

		for _, m := range t.Materials {
			material := models.StudyMaterial{
				ID:          util.NewULID(),
				TopicID:     topic.ID,
				ContentType: m.ContentType,
				Body:        m.Body,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if _, err = tx.NamedExecContext(ctx,
				`INSERT INTO study_materials (id, topic_id, content_type, body, created_at, updated_at, deleted_at)
				 VALUES (:id, :topic_id, :content_type, :body, :created_at, :updated_at, :deleted_at)`, material); err != nil {
				return fmt.Errorf("failed to insert material for topic %s: %w", t.Title, err)
			}
		}

		for _, q := range t.Questions {
			expectedTime := q.ExpectedTime
			if expectedTime <= 0 {
				expectedTime = 10
			}
			question := models.Question{
				ID:            util.NewULID(),
				TopicID:       topic.ID,
				Text:          q.Text,
				Options:       models.StringSlice(q.Options),
				CorrectAnswer: q.CorrectAnswer,
				Explanation:   util.StringToNullString(q.Explanation),
				ExpectedTime:  expectedTime,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if _, err = tx.NamedExecContext(ctx,
				`INSERT INTO questions (id, topic_id, text, options, correct_answer, explanation, expected_time, created_at, updated_at, deleted_at)
				 VALUES (:id, :topic_id, :text, :options, :correct_answer, :explanation, :expected_time, :created_at, :updated_at, :deleted_at)`, question); err != nil {
				return fmt.Errorf("failed to insert question for topic %s: %w", t.Title, err)
			}
		}
	}

	return nil
}
