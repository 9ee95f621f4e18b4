// internal/loads/postgres.go
package loads

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"carrier-sales-api/internal/common/config"

	_ "github.com/lib/pq"
)

const loadsQuery = `
	SELECT reference_number, origin, destination, equipment_type, rate, commodity,
	       mc_number, is_partial, pickup_time, delivery_time
	FROM loads
	ORDER BY reference_number`

// OpenPostgres opens the load dataset database with bounded pool settings.
func OpenPostgres(cfg config.PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}

// FetchLoads reads the full loads table. Called once at startup; the rows are
// indexed into a MemoryStore and the connection can be closed afterwards.
func FetchLoads(ctx context.Context, db *sql.DB) ([]Load, error) {
	rows, err := db.QueryContext(ctx, loadsQuery)
	if err != nil {
		return nil, fmt.Errorf("query loads: %w", err)
	}
	defer rows.Close()

	var out []Load
	for rows.Next() {
		var (
			load         Load
			mcNumber     sql.NullString
			pickupTime   sql.NullString
			deliveryTime sql.NullString
		)
		if err := rows.Scan(
			&load.ReferenceNumber,
			&load.Origin,
			&load.Destination,
			&load.EquipmentType,
			&load.Rate,
			&load.Commodity,
			&mcNumber,
			&load.IsPartial,
			&pickupTime,
			&deliveryTime,
		); err != nil {
			return nil, fmt.Errorf("scan load: %w", err)
		}
		load.MCNumber = mcNumber.String
		load.PickupTime = pickupTime.String
		load.DeliveryTime = deliveryTime.String
		out = append(out, load)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate loads: %w", err)
	}

	return out, nil
}
