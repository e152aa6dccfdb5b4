package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Scenario is a saved set of input parameters owned by a user. The
// input is kept as raw JSON so stored scenarios survive additive field
// changes.
type Scenario struct {
	ID        int             `json:"id"`
	UserID    int             `json:"user_id"`
	Name      string          `json:"name"`
	Input     json.RawMessage `json:"input"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	CreateScenario(ctx context.Context, userID int, name string, input []byte) (int, error)
	ListScenarios(ctx context.Context, userID int) ([]Scenario, error)
	GetScenario(ctx context.Context, id int) (Scenario, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) CreateScenario(ctx context.Context, userID int, name string, input []byte) (int, error) {
	var id int
	query := "INSERT INTO scenarios (user_id, name, input) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, name, input).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListScenarios(ctx context.Context, userID int) ([]Scenario, error) {
	query := "SELECT id, user_id, name, input, created_at FROM scenarios WHERE user_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scenarios []Scenario
	for rows.Next() {
		var s Scenario
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Input, &s.CreatedAt); err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, rows.Err()
}

func (r *PostgresRepository) GetScenario(ctx context.Context, id int) (Scenario, error) {
	var s Scenario
	query := "SELECT id, user_id, name, input, created_at FROM scenarios WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.UserID, &s.Name, &s.Input, &s.CreatedAt)
	return s, err
}
