package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emreakdogan/cinema-booking-api/internal/domain"
)

type PostgresOrderRepository struct {
	db *pgxpool.Pool
}

func NewPostgresOrderRepository(db *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		db: db,
	}
}

// Create persists an order and its tickets in one transaction. Hall bounds
// are read inside the transaction so hall edits are reflected at write time,
// and the unique (movie_session_id, seat_row, seat_number) constraint is the
// double-booking guard: of two concurrent orders racing for the same seat,
// exactly one insert succeeds and the loser rolls back with ErrSeatAlreadyTaken.
func (p *PostgresOrderRepository) Create(ctx context.Context, order *domain.Order, tickets []domain.TicketRequest) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `INSERT INTO orders (user_id) VALUES ($1) RETURNING id, created_at`

		err := tx.QueryRow(ctx, query, order.UserID).Scan(&order.ID, &order.CreatedAt)
		if err != nil {
			return err
		}

		order.Tickets = make([]domain.Ticket, 0, len(tickets))

		for i, req := range tickets {
			var rows, seatsInRow int

			query = `
				SELECT h.rows, h.seats_in_row
				FROM movie_sessions ms
				JOIN cinema_halls h ON h.id = ms.cinema_hall_id
				WHERE ms.id = $1
			`

			err := tx.QueryRow(ctx, query, req.MovieSessionID).Scan(&rows, &seatsInRow)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domain.ValidationError{
						Field:   "movieSessionId",
						Message: fmt.Sprintf("movie session with id %d does not exist", req.MovieSessionID),
					}
				}

				return err
			}

			if err := domain.ValidateRow(req.Row, rows); err != nil {
				return err
			}

			if err := domain.ValidateSeat(req.Seat, seatsInRow); err != nil {
				return err
			}

			ticket := domain.Ticket{
				MovieSessionID: req.MovieSessionID,
				OrderID:        order.ID,
				Row:            req.Row,
				Seat:           req.Seat,
			}

			query = `
				INSERT INTO tickets (movie_session_id, order_id, seat_row, seat_number)
				VALUES ($1, $2, $3, $4)
				RETURNING id
			`

			err = tx.QueryRow(ctx, query, ticket.MovieSessionID, ticket.OrderID, ticket.Row, ticket.Seat).Scan(&ticket.ID)
			if err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
					return fmt.Errorf("ticket %d (row %d, seat %d): %w", i+1, req.Row, req.Seat, domain.ErrSeatAlreadyTaken)
				}

				return err
			}

			order.Tickets = append(order.Tickets, ticket)
		}

		return nil
	})
}

func (p *PostgresOrderRepository) GetAllByUserId(ctx context.Context, userId int, pagination domain.Pagination) ([]domain.Order, *domain.Metadata, error) {
	query := `
		SELECT count(*) OVER(), id, user_id, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userId, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	totalRecords := 0

	for rows.Next() {
		var order domain.Order

		err := rows.Scan(&totalRecords, &order.ID, &order.UserID, &order.CreatedAt)
		if err != nil {
			return nil, nil, err
		}

		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	err = p.attachTickets(ctx, orders)
	if err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return orders, metadata, nil
}

func (p *PostgresOrderRepository) GetById(ctx context.Context, id int) (*domain.Order, error) {
	query := `SELECT id, user_id, created_at FROM orders WHERE id = $1`

	var order domain.Order

	err := p.db.QueryRow(ctx, query, id).Scan(&order.ID, &order.UserID, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	orders := []domain.Order{order}

	err = p.attachTickets(ctx, orders)
	if err != nil {
		return nil, err
	}

	return &orders[0], nil
}

func (p *PostgresOrderRepository) attachTickets(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	orderIds := make([]int, len(orders))
	for i, order := range orders {
		orderIds[i] = order.ID
	}

	query := `
		SELECT id, movie_session_id, order_id, seat_row, seat_number
		FROM tickets
		WHERE order_id = ANY($1::int[])
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query, orderIds)
	if err != nil {
		return err
	}
	defer rows.Close()

	ticketsByOrder := make(map[int][]domain.Ticket)

	for rows.Next() {
		var ticket domain.Ticket

		err := rows.Scan(&ticket.ID, &ticket.MovieSessionID, &ticket.OrderID, &ticket.Row, &ticket.Seat)
		if err != nil {
			return err
		}

		ticketsByOrder[ticket.OrderID] = append(ticketsByOrder[ticket.OrderID], ticket)
	}

	if err = rows.Err(); err != nil {
		return err
	}

	for i := range orders {
		tickets := ticketsByOrder[orders[i].ID]
		if tickets == nil {
			tickets = make([]domain.Ticket, 0)
		}

		orders[i].Tickets = tickets
	}

	return nil
}
