package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pocketledger/pocketledger/internal/apperrors"
	"github.com/pocketledger/pocketledger/internal/core/domain"
	portsrepo "github.com/pocketledger/pocketledger/internal/core/ports/repositories"
)

const goalColumns = `goal_id, name, target_amount, current_amount, target_date, linked_account_id, is_completed, created_at, last_updated_at`

type PgxGoalRepository struct {
	BaseRepository
}

func newPgxGoalRepository(pool *pgxpool.Pool) *PgxGoalRepository {
	return &PgxGoalRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.GoalRepository = (*PgxGoalRepository)(nil)

func scanGoal(row pgx.Row) (domain.Goal, error) {
	var g domain.Goal
	var linkedAccountID sql.NullString
	err := row.Scan(
		&g.GoalID,
		&g.Name,
		&g.TargetAmount,
		&g.CurrentAmount,
		&g.TargetDate,
		&linkedAccountID,
		&g.IsCompleted,
		&g.CreatedAt,
		&g.LastUpdatedAt,
	)
	if err != nil {
		return domain.Goal{}, err
	}
	g.LinkedAccountID = linkedAccountID.String
	return g, nil
}

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	query := `
		INSERT INTO goals (` + goalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		goal.GoalID,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.TargetDate,
		nullString(goal.LinkedAccountID),
		goal.IsCompleted,
		goal.CreatedAt,
		goal.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save goal %s: %w", goal.GoalID, err)
	}
	return nil
}

func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE goal_id = $1;`

	g, err := scanGoal(r.Pool.QueryRow(ctx, query, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal by ID %s: %w", goalID, err)
	}
	return &g, nil
}

func (r *PgxGoalRepository) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	goals := []domain.Goal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, g)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating goal rows: %w", rows.Err())
	}
	return goals, nil
}

func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	query := `
		UPDATE goals
		SET name = $2, target_amount = $3, current_amount = $4, target_date = $5, linked_account_id = $6, is_completed = $7, last_updated_at = $8
		WHERE goal_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		goal.GoalID,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.TargetDate,
		nullString(goal.LinkedAccountID),
		goal.IsCompleted,
		goal.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update goal %s: %w", goal.GoalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM goals WHERE goal_id = $1;`, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal %s: %w", goalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
