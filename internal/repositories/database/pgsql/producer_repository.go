package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Leonzuka/Projeto-Valex/internal/apperrors"
	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	portsrepo "github.com/Leonzuka/Projeto-Valex/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProducerRepository struct {
	BaseRepository
}

// newPgxProducerRepository creates a new repository for producer data.
func newPgxProducerRepository(pool *pgxpool.Pool) portsrepo.ProducerRepositoryFacade {
	return &PgxProducerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProducerRepositoryFacade = (*PgxProducerRepository)(nil)

const producerColumns = `id, nome, COALESCE(ggn, ''), COALESCE(sigla, ''), COALESCE(telefone, ''), COALESCE(endereco, ''), created_at, updated_at`

func scanProducer(row pgx.Row) (*domain.Producer, error) {
	var p domain.Producer
	err := row.Scan(&p.ID, &p.Name, &p.GGN, &p.Initials, &p.Phone, &p.Address, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindProducerByID retrieves a producer by its identifier.
func (r *PgxProducerRepository) FindProducerByID(ctx context.Context, producerID int64) (*domain.Producer, error) {
	query := `SELECT ` + producerColumns + ` FROM produtor WHERE id = $1`
	p, err := scanProducer(r.Pool.QueryRow(ctx, query, producerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find producer %d: %w", producerID, err)
	}
	return p, nil
}

// ListProducers retrieves all producers ordered by name.
func (r *PgxProducerRepository) ListProducers(ctx context.Context) ([]domain.Producer, error) {
	query := `SELECT ` + producerColumns + ` FROM produtor ORDER BY nome`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list producers: %w", err)
	}
	defer rows.Close()

	var producers []domain.Producer
	for rows.Next() {
		p, err := scanProducer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan producer: %w", err)
		}
		producers = append(producers, *p)
	}
	return producers, rows.Err()
}

// SaveProducer inserts a new producer and fills its generated ID.
func (r *PgxProducerRepository) SaveProducer(ctx context.Context, producer *domain.Producer) error {
	now := time.Now().UTC()
	query := `
		INSERT INTO produtor (nome, ggn, sigla, telefone, endereco, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $6)
		RETURNING id
	`
	err := r.Pool.QueryRow(ctx, query,
		producer.Name, producer.GGN, producer.Initials, producer.Phone, producer.Address, now,
	).Scan(&producer.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save producer: %w", err)
	}
	producer.CreatedAt = now
	producer.UpdatedAt = now
	return nil
}

// UpdateProducer updates an existing producer.
func (r *PgxProducerRepository) UpdateProducer(ctx context.Context, producer *domain.Producer) error {
	now := time.Now().UTC()
	query := `
		UPDATE produtor
		SET nome = $2, ggn = NULLIF($3, ''), sigla = $4, telefone = $5, endereco = $6, updated_at = $7
		WHERE id = $1
	`
	tag, err := r.Pool.Exec(ctx, query,
		producer.ID, producer.Name, producer.GGN, producer.Initials, producer.Phone, producer.Address, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update producer %d: %w", producer.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	producer.UpdatedAt = now
	return nil
}

// DeleteProducer removes a producer.
func (r *PgxProducerRepository) DeleteProducer(ctx context.Context, producerID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM produtor WHERE id = $1`, producerID)
	if err != nil {
		return fmt.Errorf("failed to delete producer %d: %w", producerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
