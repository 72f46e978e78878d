package domain

import (
	"encoding/json"
	"time"
)

type BookingStatus string

const (
	// BookingStatusConfirmed means the supplier issued a PNR and the record
	// was stored locally.
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	// BookingStatusConfirmedUnpersisted means the supplier issued a PNR but
	// the local write failed. The booking is real; the record exists only in
	// the supplier's system until reconciled out of band.
	BookingStatusConfirmedUnpersisted BookingStatus = "CONFIRMED_UNPERSISTED"
)

// BookingRecord is the local copy of a committed supplier order. The PNR is
// the source of truth; this record is a best-effort cache of it.
type BookingRecord struct {
	ID              string
	PNRReference    string
	SupplierOrderID string
	Origin          string
	Destination     string
	DepartureDate   string
	TotalPriceDZD   int64
	Status          BookingStatus
	OfferSnapshot   json.RawMessage
	CreatedAt       time.Time
}
