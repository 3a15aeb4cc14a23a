package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shareit-booking/internal/domain"
	"shareit-booking/internal/logger"
	"shareit-booking/internal/repository"
)

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	query := `SELECT id, owner_id, name, COALESCE(description, ''), is_available, request_id FROM items WHERE id = $1`
	logger.DatabaseCall("items.GetByID", query, "itemID", id)

	it := &domain.Item{}
	var requestID sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, id).Scan(&it.ID, &it.OwnerID, &it.Name, &it.Description, &it.Available, &requestID)
	if errors.Is(err, sql.ErrNoRows) {
		logger.DatabaseResult("items.GetByID", 0, nil, "itemID", id)
		return nil, domain.NotFoundf("item %d", id)
	}
	if err != nil {
		logger.DatabaseResult("items.GetByID", 0, err, "itemID", id)
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	if requestID.Valid {
		it.RequestID = &requestID.Int64
	}
	logger.DatabaseResult("items.GetByID", 1, nil, "itemID", id)
	return it, nil
}

func (r *itemRepository) ListIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	query := `SELECT id FROM items WHERE owner_id = $1 ORDER BY id`
	logger.DatabaseCall("items.ListIDsByOwner", query, "ownerID", ownerID)

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		logger.DatabaseResult("items.ListIDsByOwner", 0, err, "ownerID", ownerID)
		return nil, fmt.Errorf("list items of owner %d: %w", ownerID, err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan item id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate item ids: %w", err)
	}
	logger.DatabaseResult("items.ListIDsByOwner", int64(len(ids)), nil, "ownerID", ownerID)
	return ids, nil
}
