package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/ryanhellerud1/go-shop-backend/internal/app/entity"
	err_storage "github.com/ryanhellerud1/go-shop-backend/internal/app/storage/api/errors"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const pgUniqueViolationCode = "23505"

type Postgres struct {
	db *sql.DB
}

func NewPostgresStorage(dbStorageConnect string) (*Postgres, error) {
	db, err := sql.Open("pgx", dbStorageConnect)
	if err != nil {
		return nil, fmt.Errorf("error while postgresql connect: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("error while setting goose dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return nil, fmt.Errorf("error while applying migrations: %w", err)
	}

	return &Postgres{
		db: db,
	}, nil
}

func (s *Postgres) Close() error {
	return s.db.Close()
}

func (s *Postgres) CreateUser(ctx context.Context, user entity.User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, login, password_hash, is_admin) VALUES ($1, $2, $3, $4)`,
		user.ID.String(), user.Login, user.Password, user.IsAdmin)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			return err_storage.ErrLoginExists
		}

		return fmt.Errorf("error while creating user: %w", err)
	}

	return nil
}

func (s *Postgres) GetUserByLogin(ctx context.Context, login string) (entity.User, error) {
	var user entity.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, login, password_hash, is_admin FROM users WHERE login = $1`, login).
		Scan(&user.ID, &user.Login, &user.Password, &user.IsAdmin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, err_storage.ErrLoginNotFound
		}

		return entity.User{}, fmt.Errorf("error while getting user by login: %w", err)
	}

	return user, nil
}

func (s *Postgres) GetProduct(ctx context.Context, id entity.ProductID) (entity.Product, error) {
	var product entity.Product
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, slug, image, price, count_in_stock, sold FROM products WHERE id = $1`,
		id.String()).
		Scan(&product.ID, &product.Name, &product.Slug, &product.Image,
			&product.Price, &product.CountInStock, &product.Sold)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Product{}, err_storage.ErrProductNotFound
		}

		return entity.Product{}, fmt.Errorf("error while getting product: %w", err)
	}

	return product, nil
}

func (s *Postgres) CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while beginning create order transaction: %w", err)
	}
	defer tx.Rollback()

	for _, item := range order.Items {
		if err := reserveStock(ctx, tx, item); err != nil {
			return entity.Order{}, err
		}
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO orders (id, user_id, payment_method,
			shipping_full_name, shipping_address, shipping_city,
			shipping_postal_code, shipping_country, shipping_phone,
			items_price, tax_price, shipping_price, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at`,
		order.ID.String(), order.UserID.String(), order.PaymentMethod,
		order.ShippingAddress.FullName, order.ShippingAddress.Address, order.ShippingAddress.City,
		order.ShippingAddress.PostalCode, order.ShippingAddress.Country, order.ShippingAddress.Phone,
		order.ItemsPrice, order.TaxPrice, order.ShippingPrice, order.TotalPrice, string(order.Status)).
		Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while inserting order: %w", err)
	}

	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (order_id, product_id, name, image, qty, price)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			order.ID.String(), item.ProductID.String(), item.Name, item.Image, item.Quantity, item.Price)
		if err != nil {
			return entity.Order{}, fmt.Errorf("error while inserting order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return entity.Order{}, fmt.Errorf("error while committing create order transaction: %w", err)
	}

	return order, nil
}

// reserveStock decrements the available count with a conditional update
// so that concurrent reservations can never drive the stock negative.
func reserveStock(ctx context.Context, tx *sql.Tx, item entity.OrderItem) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE products SET count_in_stock = count_in_stock - $1, sold = sold + $1
		WHERE id = $2 AND count_in_stock >= $1`,
		item.Quantity, item.ProductID.String())
	if err != nil {
		return fmt.Errorf("error while reserving stock: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error while checking stock reservation result: %w", err)
	}

	if rows == 0 {
		var available int
		err := tx.QueryRowContext(ctx,
			`SELECT count_in_stock FROM products WHERE id = $1`, item.ProductID.String()).
			Scan(&available)
		if errors.Is(err, sql.ErrNoRows) {
			return err_storage.ErrProductNotFound
		}
		if err != nil {
			return fmt.Errorf("error while reading available stock: %w", err)
		}

		return &err_storage.InsufficientStockError{
			ProductName: item.Name,
			Available:   available,
			Requested:   item.Quantity,
		}
	}

	return nil
}

const selectOrderColumns = `SELECT id, user_id, payment_method,
	shipping_full_name, shipping_address, shipping_city,
	shipping_postal_code, shipping_country, shipping_phone,
	payment_result_id, payment_result_status, payment_result_update_time, payment_result_email,
	items_price, tax_price, shipping_price, total_price, status,
	is_paid, paid_at, is_delivered, delivered_at, tracking_number,
	created_at, updated_at
	FROM orders`

func (s *Postgres) GetOrder(ctx context.Context, id entity.OrderID) (entity.Order, error) {
	row := s.db.QueryRowContext(ctx, selectOrderColumns+` WHERE id = $1`, id.String())

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Order{}, err_storage.ErrOrderNotFound
		}

		return entity.Order{}, fmt.Errorf("error while getting order: %w", err)
	}

	order.Items, err = s.getOrderItems(ctx, order.ID)
	if err != nil {
		return entity.Order{}, err
	}

	return order, nil
}

func (s *Postgres) GetUserOrders(ctx context.Context, userID entity.UserID) (entity.Orders, error) {
	rows, err := s.db.QueryContext(ctx,
		selectOrderColumns+` WHERE user_id = $1 ORDER BY created_at DESC`, userID.String())
	if err != nil {
		return nil, fmt.Errorf("error while getting user orders: %w", err)
	}
	defer rows.Close()

	return s.collectOrders(ctx, rows)
}

func (s *Postgres) ListOrders(ctx context.Context, filter entity.OrderFilter) (entity.Orders, int, error) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 4)

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, `status = $`+strconv.Itoa(len(args)))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID.String())
		conditions = append(conditions, `user_id = $`+strconv.Itoa(len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = ` WHERE ` + strings.Join(conditions, ` AND `)
	}

	var total int
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM orders`+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("error while counting orders: %w", err)
	}

	args = append(args, filter.Limit)
	limitPos := len(args)
	args = append(args, (filter.Page-1)*filter.Limit)
	offsetPos := len(args)

	rows, err := s.db.QueryContext(ctx,
		selectOrderColumns+where+
			` ORDER BY created_at DESC LIMIT $`+strconv.Itoa(limitPos)+` OFFSET $`+strconv.Itoa(offsetPos),
		args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error while listing orders: %w", err)
	}
	defer rows.Close()

	orders, err := s.collectOrders(ctx, rows)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (s *Postgres) SaveOrder(ctx context.Context, order entity.Order) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE orders SET status = $1,
			is_paid = $2, paid_at = $3,
			payment_result_id = $4, payment_result_status = $5,
			payment_result_update_time = $6, payment_result_email = $7,
			is_delivered = $8, delivered_at = $9,
			tracking_number = $10, updated_at = now()
		WHERE id = $11`,
		string(order.Status),
		order.IsPaid, order.PaidAt,
		order.PaymentResult.ID, order.PaymentResult.Status,
		order.PaymentResult.UpdateTime, order.PaymentResult.EmailAddress,
		order.IsDelivered, order.DeliveredAt,
		order.TrackingNumber, order.ID.String())
	if err != nil {
		return fmt.Errorf("error while saving order: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error while checking save order result: %w", err)
	}

	if rows == 0 {
		return err_storage.ErrOrderNotFound
	}

	return nil
}

func (s *Postgres) CancelOrder(ctx context.Context, id entity.OrderID) (entity.Order, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while beginning cancel order transaction: %w", err)
	}
	defer tx.Rollback()

	// The row lock serializes concurrent cancellations so the stock
	// release below runs exactly once per order.
	var status string
	err = tx.QueryRowContext(ctx,
		`SELECT status FROM orders WHERE id = $1 FOR UPDATE`, id.String()).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Order{}, err_storage.ErrOrderNotFound
		}

		return entity.Order{}, fmt.Errorf("error while locking order for cancellation: %w", err)
	}

	if entity.OrderStatus(status) == entity.StatusCancelled {
		return entity.Order{}, err_storage.ErrOrderCancelled
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE orders SET status = $1, updated_at = now() WHERE id = $2`,
		string(entity.StatusCancelled), id.String())
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while cancelling order: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE products p SET count_in_stock = p.count_in_stock + i.qty,
			sold = GREATEST(p.sold - i.qty, 0)
		FROM order_items i
		WHERE i.order_id = $1 AND p.id = i.product_id`,
		id.String())
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while releasing stock: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return entity.Order{}, fmt.Errorf("error while committing cancel order transaction: %w", err)
	}

	return s.GetOrder(ctx, id)
}

func (s *Postgres) GetOrderStats(ctx context.Context, since time.Time) (entity.OrderStats, error) {
	var stats entity.OrderStats

	rows, err := s.db.QueryContext(ctx,
		`SELECT status, count(*) FROM orders GROUP BY status ORDER BY status`)
	if err != nil {
		return entity.OrderStats{}, fmt.Errorf("error while counting orders by status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var count entity.StatusCount
		if err := rows.Scan(&count.Status, &count.Count); err != nil {
			return entity.OrderStats{}, fmt.Errorf("error while scanning status count: %w", err)
		}
		stats.StatusCounts = append(stats.StatusCounts, count)
	}
	if err := rows.Err(); err != nil {
		return entity.OrderStats{}, fmt.Errorf("error while iterating status counts: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT COALESCE(sum(total_price), 0) FROM orders WHERE is_paid`).Scan(&stats.TotalSales)
	if err != nil {
		return entity.OrderStats{}, fmt.Errorf("error while summing total sales: %w", err)
	}

	dailyRows, err := s.db.QueryContext(ctx,
		`SELECT to_char(created_at, 'YYYY-MM-DD') AS day, sum(total_price), count(*)
		FROM orders
		WHERE is_paid AND created_at >= $1
		GROUP BY day ORDER BY day`, since)
	if err != nil {
		return entity.OrderStats{}, fmt.Errorf("error while aggregating daily sales: %w", err)
	}
	defer dailyRows.Close()

	for dailyRows.Next() {
		var daily entity.DailySales
		if err := dailyRows.Scan(&daily.Date, &daily.Sales, &daily.Count); err != nil {
			return entity.OrderStats{}, fmt.Errorf("error while scanning daily sales: %w", err)
		}
		stats.SalesByDate = append(stats.SalesByDate, daily)
	}
	if err := dailyRows.Err(); err != nil {
		return entity.OrderStats{}, fmt.Errorf("error while iterating daily sales: %w", err)
	}

	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (entity.Order, error) {
	var order entity.Order
	err := row.Scan(&order.ID, &order.UserID, &order.PaymentMethod,
		&order.ShippingAddress.FullName, &order.ShippingAddress.Address, &order.ShippingAddress.City,
		&order.ShippingAddress.PostalCode, &order.ShippingAddress.Country, &order.ShippingAddress.Phone,
		&order.PaymentResult.ID, &order.PaymentResult.Status,
		&order.PaymentResult.UpdateTime, &order.PaymentResult.EmailAddress,
		&order.ItemsPrice, &order.TaxPrice, &order.ShippingPrice, &order.TotalPrice, &order.Status,
		&order.IsPaid, &order.PaidAt, &order.IsDelivered, &order.DeliveredAt, &order.TrackingNumber,
		&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return entity.Order{}, err
	}

	return order, nil
}

func (s *Postgres) collectOrders(ctx context.Context, rows *sql.Rows) (entity.Orders, error) {
	orders := make(entity.Orders, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("error while scanning order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating orders: %w", err)
	}

	for i := range orders {
		items, err := s.getOrderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (s *Postgres) getOrderItems(ctx context.Context, orderID entity.OrderID) ([]entity.OrderItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT product_id, name, image, qty, price FROM order_items WHERE order_id = $1 ORDER BY id`,
		orderID.String())
	if err != nil {
		return nil, fmt.Errorf("error while getting order items: %w", err)
	}
	defer rows.Close()

	items := make([]entity.OrderItem, 0)
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Image, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("error while scanning order item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating order items: %w", err)
	}

	return items, nil
}
