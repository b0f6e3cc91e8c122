package domain

import "fmt"

type Ticket struct {
	ID             int
	MovieSessionID int
	OrderID        int
	Row            int
	Seat           int
}

// TicketRequest is a requested seat for a not-yet-created order.
type TicketRequest struct {
	MovieSessionID int
	Row            int
	Seat           int
}

// ValidateRow checks that row lies within the hall's row range. It is pure so
// it can run both before any write and again inside the order transaction.
func ValidateRow(row, rows int) error {
	if row < 1 || row > rows {
		return ValidationError{
			Field:   "row",
			Message: fmt.Sprintf("row must be in range [1, %d], not %d", rows, row),
		}
	}

	return nil
}

// ValidateSeat checks that seat lies within the hall's seats-in-row range.
func ValidateSeat(seat, seatsInRow int) error {
	if seat < 1 || seat > seatsInRow {
		return ValidationError{
			Field:   "seat",
			Message: fmt.Sprintf("seat must be in range [1, %d], not %d", seatsInRow, seat),
		}
	}

	return nil
}
