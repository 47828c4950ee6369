package main

import (
	"context"
	"log"
	"time"

	"careerpath/internal/config"
	"careerpath/internal/database"
	"careerpath/internal/logger"
	"careerpath/internal/repository/models"
	"careerpath/internal/util"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type seedQuestion struct {
	Text          string
	Type          string
	Options       []string
	SkillCategory string
	CorrectAnswer string
}

type seedCareer struct {
	Name           string
	RequiredSkills []string
	Description    string
	SalaryRange    string
}

var questions = []seedQuestion{
	{"Which keyword defines a function in Python?", "multiple_choice", []string{"def", "func", "fn", "lambda"}, "Python", "def"},
	{"Which Python type stores key-value pairs?", "multiple_choice", []string{"list", "dict", "tuple", "set"}, "Python", "1"},
	{"Explain what a Python list comprehension does.", "open_ended", nil, "Python", "comprehension, loop, expression"},
	{"Which SQL clause filters rows?", "multiple_choice", []string{"WHERE", "GROUP BY", "ORDER BY", "HAVING"}, "SQL", "WHERE"},
	{"What does a SQL JOIN do?", "open_ended", nil, "SQL", "combine, tables, rows"},
	{"Which Excel function sums a range?", "multiple_choice", []string{"SUM", "COUNT", "AVG", "ADD"}, "Excel", "SUM"},
	{"Which HTML tag starts an unordered list?", "multiple_choice", []string{"<ul>", "<ol>", "<li>", "<list>"}, "HTML", "<ul>"},
	{"What does CSS stand for?", "open_ended", nil, "CSS", "cascading, style, sheets"},
	{"Which keyword declares a constant in modern JavaScript?", "multiple_choice", []string{"var", "let", "const", "static"}, "JavaScript", "const"},
	{"Describe what version control is used for.", "open_ended", nil, "Git", "history, changes, collaborate"},
}

var careers = []seedCareer{
	{"Data Analyst", []string{"Python", "SQL", "Excel"}, "Analyzes data sets to produce business insights.", "$60k-$90k"},
	{"Backend Developer", []string{"Python", "SQL", "Git"}, "Builds server-side applications and APIs.", "$75k-$120k"},
	{"Frontend Developer", []string{"HTML", "CSS", "JavaScript", "Git"}, "Builds user interfaces for the web.", "$70k-$110k"},
	{"Database Administrator", []string{"SQL"}, "Operates and tunes production databases.", "$70k-$105k"},
	{"Web Designer", []string{"HTML", "CSS"}, "Designs and prototypes web experiences.", "$50k-$80k"},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Logger)
	defer logger.Sync()
	l := logger.Get()

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := seedQuestions(ctx, db); err != nil {
		l.Fatal("Failed to seed questions", zap.Error(err))
	}
	if err := seedCareers(ctx, db); err != nil {
		l.Fatal("Failed to seed careers", zap.Error(err))
	}
	l.Info("Seed data applied", zap.Int("questions", len(questions)), zap.Int("careers", len(careers)))
}

func seedQuestions(ctx context.Context, db *sqlx.DB) error {
	query := `INSERT INTO questions (id, question_text, question_type, options, skill_category, correct_answer, active, created_at, updated_at)
		VALUES (:1, :2, :3, :4, :5, :6, 1, :7, :8)`
	now := time.Now()
	for _, q := range questions {
		var exists int
		if err := db.GetContext(ctx, &exists, `SELECT COUNT(*) FROM questions WHERE question_text = :1`, q.Text); err != nil {
			return err
		}
		if exists > 0 {
			continue
		}
		_, err := db.ExecContext(ctx, query,
			util.NewULID(), q.Text, q.Type, models.StringSlice(q.Options), q.SkillCategory, q.CorrectAnswer, now, now)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedCareers(ctx context.Context, db *sqlx.DB) error {
	query := `INSERT INTO careers (id, name, required_skills, description, salary_range, created_at, updated_at)
		VALUES (:1, :2, :3, :4, :5, :6, :7)`
	now := time.Now()
	for _, c := range careers {
		var exists int
		if err := db.GetContext(ctx, &exists, `SELECT COUNT(*) FROM careers WHERE name = :1`, c.Name); err != nil {
			return err
		}
		if exists > 0 {
			continue
		}
		_, err := db.ExecContext(ctx, query,
			util.NewULID(), c.Name, models.StringSlice(c.RequiredSkills), c.Description, c.SalaryRange, now, now)
		if err != nil {
			return err
		}
	}
	return nil
}
