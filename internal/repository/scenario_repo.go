package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-calc-api/internal/model"
)

type ScenarioRepository struct {
	pool *pgxpool.Pool
}

func NewScenarioRepository(pool *pgxpool.Pool) *ScenarioRepository {
	return &ScenarioRepository{pool: pool}
}

func (r *ScenarioRepository) Create(ctx context.Context, s model.Scenario) (model.Scenario, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO scenarios (user_id, name, project, operand_a, operand_b, sum, division, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		s.UserID, s.Name, s.Project, s.OperandA, s.OperandB, s.Sum, s.Division, s.CreatedAt).
		Scan(&s.ID)
	if err != nil {
		return model.Scenario{}, fmt.Errorf("create scenario: %w", err)
	}
	return s, nil
}

func (r *ScenarioRepository) FindByID(ctx context.Context, id int64) (model.Scenario, error) {
	var s model.Scenario
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, name, project, operand_a, operand_b, sum, division, created_at
		 FROM scenarios WHERE id = $1`, id).
		Scan(&s.ID, &s.UserID, &s.Name, &s.Project, &s.OperandA, &s.OperandB, &s.Sum, &s.Division, &s.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Scenario{}, model.ErrScenarioNotFound
	}
	if err != nil {
		return model.Scenario{}, fmt.Errorf("find scenario by id: %w", err)
	}
	return s, nil
}

func (r *ScenarioRepository) List(ctx context.Context) ([]model.Scenario, error) {
	return r.list(ctx,
		`SELECT id, user_id, name, project, operand_a, operand_b, sum, division, created_at
		 FROM scenarios ORDER BY created_at DESC, id DESC`)
}

func (r *ScenarioRepository) ListByOwner(ctx context.Context, userID string) ([]model.Scenario, error) {
	return r.list(ctx,
		`SELECT id, user_id, name, project, operand_a, operand_b, sum, division, created_at
		 FROM scenarios WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
}

func (r *ScenarioRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM scenarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete scenario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrScenarioNotFound
	}
	return nil
}

func (r *ScenarioRepository) list(ctx context.Context, query string, args ...any) ([]model.Scenario, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	defer rows.Close()

	scenarios := make([]model.Scenario, 0)
	for rows.Next() {
		var s model.Scenario
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Project, &s.OperandA, &s.OperandB, &s.Sum, &s.Division, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan scenario: %w", err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, rows.Err()
}
