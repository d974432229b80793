package repositories

import (
	"context"

	"github.com/degen-api/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WalletRepo struct {
	pool *pgxpool.Pool
}

func NewWalletRepo(pool *pgxpool.Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

func (r *WalletRepo) ExistsByAddress(ctx context.Context, address string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM wallets WHERE address = $1)`, address,
	).Scan(&exists)
	return exists, err
}

func (r *WalletRepo) Create(ctx context.Context, w *models.Wallet) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO wallets (id, address, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, w.ID, w.Address, w.Name, w.CreatedAt, w.UpdatedAt)
	return err
}

func (r *WalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Wallet, error) {
	var w models.Wallet
	err := r.pool.QueryRow(ctx, `
		SELECT id, address, name, created_at, updated_at
		FROM wallets WHERE id = $1
	`, id).Scan(&w.ID, &w.Address, &w.Name, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WalletRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM wallets`).Scan(&count)
	return count, err
}

func (r *WalletRepo) List(ctx context.Context, limit, offset int) ([]models.Wallet, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, address, name, created_at, updated_at
		FROM wallets
		ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wallets []models.Wallet
	for rows.Next() {
		var w models.Wallet
		if err := rows.Scan(&w.ID, &w.Address, &w.Name, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		wallets = append(wallets, w)
	}
	return wallets, rows.Err()
}
