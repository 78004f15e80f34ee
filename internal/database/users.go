package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"commercial-portal/internal/metrics"
	"commercial-portal/internal/model"
)

// GetUserByUsername ищет пользователя по логину.
func (s *postgresStorage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetUserByUsername")
	defer span.End()

	var user model.User
	err := s.db.GetContext(ctx, &user, `SELECT * FROM users WHERE username = $1`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		metrics.DBErrors.WithLabelValues("get_user").Inc()
		return nil, fmt.Errorf("ошибка поиска пользователя: %w", err)
	}
	return &user, nil
}

// GetUserByID ищет пользователя по идентификатору.
func (s *postgresStorage) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetUserByID")
	defer span.End()

	var user model.User
	err := s.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		metrics.DBErrors.WithLabelValues("get_user").Inc()
		return nil, fmt.Errorf("ошибка поиска пользователя: %w", err)
	}
	return &user, nil
}

// CreateSession сохраняет новую сессию.
func (s *postgresStorage) CreateSession(ctx context.Context, session *model.Session) error {
	ctx, span := s.tracer.Start(ctx, "DB.CreateSession")
	defer span.End()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (token, user_id) VALUES ($1, $2)`,
		session.Token, session.UserID,
	)
	if err != nil {
		metrics.DBErrors.WithLabelValues("create_session").Inc()
		return fmt.Errorf("ошибка создания сессии: %w", err)
	}
	return nil
}

// GetSessionUser возвращает пользователя по токену сессии.
func (s *postgresStorage) GetSessionUser(ctx context.Context, token string) (*model.User, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetSessionUser")
	defer span.End()

	var user model.User
	query := `
        SELECT u.* FROM users u
        JOIN sessions s ON s.user_id = u.id
        WHERE s.token = $1`
	err := s.db.GetContext(ctx, &user, query, token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		metrics.DBErrors.WithLabelValues("get_session").Inc()
		return nil, fmt.Errorf("ошибка поиска сессии: %w", err)
	}
	return &user, nil
}

// DeleteSession удаляет сессию (logout).
func (s *postgresStorage) DeleteSession(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "DB.DeleteSession")
	defer span.End()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		metrics.DBErrors.WithLabelValues("delete_session").Inc()
		return fmt.Errorf("ошибка удаления сессии: %w", err)
	}
	return nil
}
