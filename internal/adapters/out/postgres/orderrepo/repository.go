package orderrepo

import (
	"context"
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order with all of its item rows.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order. The order row carries the denormalized
// status and the bookkeeping flags; each item row is written individually
// with only its mutable columns, and items appended since the last read are
// inserted. The item collection is never replaced wholesale.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":        dto.Status,
			"edited":        dto.Edited,
			"ready_alerted": dto.ReadyAlerted,
			"updated_at":    time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	for _, itemDTO := range dto.Items {
		if err = r.updateItem(ctx, itemDTO); err != nil {
			return err
		}
	}

	return nil
}

func (r *GormOrderRepository) updateItem(ctx context.Context, dto ItemDTO) error {
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":     dto.Status,
			"started_at": dto.StartedAt,
			"ready_at":   dto.ReadyAt,
			"served_at":  dto.ServedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	// No row means the item was appended after the last read.
	if result.RowsAffected == 0 {
		return r.db.WithContext(ctx).Create(&dto).Error
	}

	return nil
}

// Get retrieves an order by ID with its complete item sequence. The order
// row is locked for update, so inside a transaction concurrent writers to
// the same order serialize behind this read.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves every order of the location whose canonical status
// has not reached served, oldest first.
func (r *GormOrderRepository) GetAllActive(ctx context.Context, locationID kernel.UUID) ([]*order.Order, error) {
	if err := locationID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where("location_id = ? AND status <> ?", locationID.Bytes(), int(order.StatusServed)).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// DeleteServedBefore purges fully served orders whose last write is older
// than the cutoff, item rows included. Returns the number of orders purged.
func (r *GormOrderRepository) DeleteServedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	servedOrders := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select("id").
		Where("status = ? AND updated_at < ?", int(order.StatusServed), cutoff)

	if err := r.db.WithContext(ctx).
		Where("order_id IN (?)", servedOrders).
		Delete(&ItemDTO{}).Error; err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", int(order.StatusServed), cutoff).
		Delete(&OrderDTO{})
	return result.RowsAffected, result.Error
}
