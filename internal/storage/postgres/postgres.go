package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"webinarPlanner/internal/config"
	"webinarPlanner/internal/models"
)

const uniqueViolation = "23505"

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) SaveWebinar(ctx context.Context, webinar *models.Webinar) error {
	query := `
		INSERT INTO webinars (id, organizer_id, title, seats, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.DB.ExecContext(ctx, query,
		webinar.ID,
		webinar.OrganizerID,
		webinar.Title,
		webinar.Seats,
		webinar.StartDate,
		webinar.EndDate,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return models.ErrWebinarAlreadyExists
		}
		return fmt.Errorf("failed to save webinar: %w", err)
	}

	return nil
}

func (s *Storage) FindWebinarByID(ctx context.Context, id string) (*models.Webinar, error) {
	query := `
		SELECT id, organizer_id, title, seats, start_date, end_date
		FROM webinars
		WHERE id = $1`

	var webinar models.Webinar
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&webinar.ID,
		&webinar.OrganizerID,
		&webinar.Title,
		&webinar.Seats,
		&webinar.StartDate,
		&webinar.EndDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrWebinarNotFound
		}
		return nil, fmt.Errorf("failed to get webinar: %w", err)
	}

	return &webinar, nil
}

func (s *Storage) UpdateWebinar(ctx context.Context, webinar *models.Webinar) error {
	query := `
		UPDATE webinars
		SET title = $2, seats = $3, start_date = $4, end_date = $5
		WHERE id = $1`

	result, err := s.DB.ExecContext(ctx, query,
		webinar.ID,
		webinar.Title,
		webinar.Seats,
		webinar.StartDate,
		webinar.EndDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update webinar: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update webinar: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrWebinarNotFound
	}

	return nil
}
