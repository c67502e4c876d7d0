package jobs

import (
	"context"
	"time"

	"fleetrental-backend/internal/logger"
)

// MarkOverdueRentals flags rentals as OVERDUE when they are past their
// end date and still out. OVERDUE is never produced by a lifecycle
// transition; this sweep is its only driver.
func (jr *JobRunner) MarkOverdueRentals() {
	jr.runWithRecovery("MarkOverdueRentals", func() {
		ctx := context.Background()

		query := `
			UPDATE rentals
			SET status = 'OVERDUE',
			    updated_on = NOW()
			WHERE status IN ('ACTIVE', 'EXTENDED')
			  AND end_date < $1
			RETURNING id, vehicle_id, end_date
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now())
		if err != nil {
			logger.Error("Failed to mark overdue rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id, vehicleID int32
			var endDate time.Time
			if err := rows.Scan(&id, &vehicleID, &endDate); err != nil {
				logger.Error("Failed to scan overdue rental", "error", err)
				continue
			}
			count++

			plate := "unknown"
			if vehicle, err := jr.store.VehicleRepository.GetByID(ctx, vehicleID); err == nil {
				plate = vehicle.PlateNumber
			}
			logger.Info("Marked rental as overdue",
				"rental_id", id,
				"vehicle_id", vehicleID,
				"plate_number", plate,
				"end_date", endDate.Format("2006-01-02"))
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue rentals", "error", err)
			return
		}

		logger.Info("Marked rentals as overdue", "count", count)
	})
}

// ReleaseExpiredReservations cancels RESERVED rentals whose start date
// passed by more than the configured grace window (the customer never
// showed) and puts their vehicles back in service.
func (jr *JobRunner) ReleaseExpiredReservations() {
	jr.runWithRecovery("ReleaseExpiredReservations", func() {
		ctx := context.Background()
		cutoff := time.Now().Add(-time.Duration(jr.config.Booking.ReservationGraceHours) * time.Hour)

		tx, err := jr.db.BeginTx(ctx, nil)
		if err != nil {
			logger.Error("Failed to begin release transaction", "error", err)
			return
		}
		defer tx.Rollback()

		rows, err := tx.QueryContext(ctx, `
			UPDATE rentals
			SET status = 'CANCELLED',
			    notes = CASE WHEN notes = '' THEN 'Reservation expired'
			                 ELSE notes || E'\n' || 'Reservation expired' END,
			    updated_on = NOW()
			WHERE status = 'RESERVED'
			  AND start_date < $1
			RETURNING vehicle_id
		`, cutoff)
		if err != nil {
			logger.Error("Failed to release expired reservations", "error", err)
			return
		}

		var vehicleIDs []int32
		for rows.Next() {
			var vehicleID int32
			if err := rows.Scan(&vehicleID); err != nil {
				logger.Error("Failed to scan released reservation", "error", err)
				rows.Close()
				return
			}
			vehicleIDs = append(vehicleIDs, vehicleID)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			logger.Error("Error iterating released reservations", "error", err)
			return
		}
		rows.Close()

		// Only vehicles still parked in RESERVED flip back; a vehicle
		// re-reserved by a later rental keeps its status.
		for _, vehicleID := range vehicleIDs {
			if _, err := tx.ExecContext(ctx, `
				UPDATE vehicles
				SET status = 'AVAILABLE', updated_on = NOW()
				WHERE id = $1
				  AND status = 'RESERVED'
				  AND NOT EXISTS (
					SELECT 1 FROM rentals
					WHERE vehicle_id = $1 AND status = 'RESERVED'
				  )
			`, vehicleID); err != nil {
				logger.Error("Failed to release vehicle", "vehicle_id", vehicleID, "error", err)
				return
			}
		}

		if err := tx.Commit(); err != nil {
			logger.Error("Failed to commit reservation release", "error", err)
			return
		}

		logger.Info("Released expired reservations", "count", len(vehicleIDs))
	})
}
