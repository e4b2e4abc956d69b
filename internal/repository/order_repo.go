package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/GTDGit/seller_hub/internal/database"
	"github.com/GTDGit/seller_hub/internal/models"
)

const orderColumns = `id, order_id, order_date, status, buyer_name, buyer_address, total_amount,
        shipping_fee, commission, gst, dispatch_by_date, tracking_id, courier_name, invoice_url,
        packing_slip_url, created_at, updated_at`

// OrderRepository handles data access for orders and their items.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// List returns orders, newest first. status is an exact match; search is a
// case-insensitive substring of the buyer name or the external order id.
// Empty filters are ignored.
func (r *OrderRepository) List(ctx context.Context, search, status string) ([]models.Order, error) {
	const q = `
        SELECT ` + orderColumns + ` FROM orders
        WHERE ($1 = '' OR status = $1)
        AND ($2 = '' OR buyer_name ILIKE '%' || $2 || '%' OR order_id ILIKE '%' || $2 || '%')
        ORDER BY order_date DESC, id DESC`

	orders := []models.Order{}
	if err := r.db.SelectContext(ctx, &orders, q, status, escapeLike(search)); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByID returns a single order by id or sql.ErrNoRows.
func (r *OrderRepository) GetByID(ctx context.Context, id int) (*models.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	var o models.Order
	if err := r.db.GetContext(ctx, &o, q, id); err != nil {
		return nil, err
	}
	return &o, nil
}

// GetItems returns the items of an order ordered by id.
func (r *OrderRepository) GetItems(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	const q = `
        SELECT id, order_id, product_id, sku, quantity, price
        FROM order_items WHERE order_id = $1 ORDER BY id`

	items := []models.OrderItem{}
	if err := r.db.SelectContext(ctx, &items, q, orderID); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateWithItems inserts the order and its items in one transaction. Each item
// is linked to the product with the same SKU, whose stock is decremented by the
// item quantity; items with an unknown SKU are stored unlinked. Any failure
// rolls back the whole order.
func (r *OrderRepository) CreateWithItems(ctx context.Context, o *models.Order, items []models.NewOrderItem) (*models.OrderWithItems, error) {
	const insertOrder = `
        INSERT INTO orders (order_id, order_date, status, buyer_name, buyer_address, total_amount,
            shipping_fee, commission, gst, dispatch_by_date, tracking_id, courier_name, invoice_url,
            packing_slip_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING id, created_at, updated_at`

	const insertItem = `
        INSERT INTO order_items (order_id, product_id, sku, quantity, price)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	out := &models.OrderWithItems{Items: make([]models.OrderItem, 0, len(items))}

	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := tx.QueryRowxContext(ctx, insertOrder,
			o.OrderID,
			o.OrderDate,
			o.Status,
			o.BuyerName,
			o.BuyerAddress,
			o.TotalAmount,
			o.ShippingFee,
			o.Commission,
			o.GST,
			o.DispatchByDate,
			o.TrackingID,
			o.CourierName,
			o.InvoiceURL,
			o.PackingSlipURL,
		).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return err
		}

		for _, it := range items {
			item := models.OrderItem{OrderID: o.ID, SKU: it.SKU, Quantity: it.Quantity, Price: it.Price}

			productID, found, err := lockBySKU(ctx, tx, it.SKU)
			if err != nil {
				return err
			}
			if found {
				item.ProductID = &productID
			}

			if err := tx.QueryRowxContext(ctx, insertItem,
				item.OrderID, item.ProductID, item.SKU, item.Quantity, item.Price,
			).Scan(&item.ID); err != nil {
				return err
			}

			if found {
				if err := decrementStock(ctx, tx, productID, it.Quantity); err != nil {
					return err
				}
			}
			out.Items = append(out.Items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out.Order = *o
	return out, nil
}

// Update applies the non-nil fields of patch and returns the updated row.
// A missing row yields sql.ErrNoRows.
func (r *OrderRepository) Update(ctx context.Context, id int, patch models.OrderPatch) (*models.Order, error) {
	var b setBuilder
	if patch.Status != nil {
		b.add("status", *patch.Status)
	}
	if patch.DispatchByDate != nil {
		b.add("dispatch_by_date", *patch.DispatchByDate)
	}
	if patch.TrackingID != nil {
		b.add("tracking_id", *patch.TrackingID)
	}
	if patch.CourierName != nil {
		b.add("courier_name", *patch.CourierName)
	}
	if patch.InvoiceURL != nil {
		b.add("invoice_url", *patch.InvoiceURL)
	}
	if patch.PackingSlipURL != nil {
		b.add("packing_slip_url", *patch.PackingSlipURL)
	}

	q, args := b.build("orders", id, orderColumns)

	var o models.Order
	if err := r.db.GetContext(ctx, &o, q, args...); err != nil {
		return nil, err
	}
	return &o, nil
}

// BulkUpdateStatus sets status on every order whose id is in ids and returns
// how many rows were updated. Unknown ids are ignored.
func (r *OrderRepository) BulkUpdateStatus(ctx context.Context, ids []int, status string) (int, error) {
	const q = `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = ANY($2)`

	ids64 := make([]int64, len(ids))
	for i, id := range ids {
		ids64[i] = int64(id)
	}

	res, err := r.db.ExecContext(ctx, q, status, pq.Array(ids64))
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// ListWithRTOReturns returns orders that have at least one RTO return.
func (r *OrderRepository) ListWithRTOReturns(ctx context.Context) ([]models.Order, error) {
	const q = `
        SELECT ` + orderColumns + ` FROM orders
        WHERE id IN (SELECT order_id FROM returns WHERE type = 'RTO' AND order_id IS NOT NULL)
        ORDER BY order_date DESC, id DESC`

	orders := []models.Order{}
	if err := r.db.SelectContext(ctx, &orders, q); err != nil {
		return nil, err
	}
	return orders, nil
}
