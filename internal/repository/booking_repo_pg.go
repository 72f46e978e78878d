package repository

import (
	"context"

	"github.com/dzair-travel/skyflow/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, record *domain.BookingRecord) error
	GetByPNR(ctx context.Context, pnr string) (*domain.BookingRecord, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Create(ctx context.Context, record *domain.BookingRecord) error {
	return r.db.QueryRow(ctx, `INSERT INTO bookings (id, pnr_reference, supplier_order_id, origin, destination, departure_date, total_price_dzd, status, offer_snapshot)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`,
		record.ID, record.PNRReference, record.SupplierOrderID, record.Origin, record.Destination, record.DepartureDate, record.TotalPriceDZD, record.Status, record.OfferSnapshot).
		Scan(&record.CreatedAt)
}

func (r *PGBookingRepository) GetByPNR(ctx context.Context, pnr string) (*domain.BookingRecord, error) {
	row := r.db.QueryRow(ctx, `SELECT id, pnr_reference, supplier_order_id, origin, destination, departure_date, total_price_dzd, status, offer_snapshot, created_at FROM bookings WHERE pnr_reference=$1`, pnr)
	var b domain.BookingRecord
	if err := row.Scan(&b.ID, &b.PNRReference, &b.SupplierOrderID, &b.Origin, &b.Destination, &b.DepartureDate, &b.TotalPriceDZD, &b.Status, &b.OfferSnapshot, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
