package db

import (
	"context"
	"fmt"
)

// Tables in dependency order; every foreign key cascades on delete.
var schema = []struct {
	Table string
	DDL   string
}{
	{"users", `
CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	username VARCHAR(150) NOT NULL,
	email VARCHAR(254) NOT NULL DEFAULT '',
	password_hash VARCHAR(255) NOT NULL,
	is_staff TINYINT(1) NOT NULL DEFAULT 0,
	is_superuser TINYINT(1) NOT NULL DEFAULT 0,
	is_active TINYINT(1) NOT NULL DEFAULT 1,
	created DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
	updated DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6),
	UNIQUE KEY uniq_users_username (username)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"customers", `
CREATE TABLE IF NOT EXISTS customers (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	fullname VARCHAR(150) NOT NULL,
	email VARCHAR(254) NOT NULL,
	address VARCHAR(100) NOT NULL,
	next_of_kin VARCHAR(150) NOT NULL,
	next_of_kin_phonenumber VARCHAR(11) NOT NULL,
	created DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
	updated DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6),
	UNIQUE KEY uniq_customers_fullname (fullname)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"buses", `
CREATE TABLE IF NOT EXISTS buses (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	plate_number VARCHAR(11) NOT NULL,
	driver_name VARCHAR(150) NOT NULL,
	max_luggage_weight INT UNSIGNED NULL,
	created DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
	updated DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6),
	UNIQUE KEY uniq_buses_plate_number (plate_number)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"states", `
CREATE TABLE IF NOT EXISTS states (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(20) NOT NULL,
	short_code VARCHAR(3) NOT NULL,
	created DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
	updated DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6),
	UNIQUE KEY uniq_states_name (name)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"park_locations", `
CREATE TABLE IF NOT EXISTS park_locations (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	state_id BIGINT NOT NULL,
	location VARCHAR(50) NOT NULL,
	full_address VARCHAR(255) NOT NULL,
	contact TEXT NOT NULL,
	created DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
	updated DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6),
	UNIQUE KEY uniq_park_locations_location (location),
	KEY idx_park_locations_state (state_id),
	CONSTRAINT fk_park_locations_state FOREIGN KEY (state_id) REFERENCES states (id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"weights", `
CREATE TABLE IF NOT EXISTS weights (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(20) NOT NULL,
	min_weight INT UNSIGNED NOT NULL,
	price DECIMAL(10,2) NOT NULL,
	created DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
	updated DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6),
	CONSTRAINT chk_weights_min_weight CHECK (min_weight >= 1),
	CONSTRAINT chk_weights_price CHECK (price >= 0.01)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"bag_types", `
CREATE TABLE IF NOT EXISTS bag_types (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(50) NOT NULL,
	size CHAR(1) NOT NULL,
	description TEXT NULL,
	created DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
	updated DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6),
	CONSTRAINT chk_bag_types_size CHECK (size IN ('S','M','L'))
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"trips", `
CREATE TABLE IF NOT EXISTS trips (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(50) NOT NULL,
	bus_id BIGINT NOT NULL,
	departure_id BIGINT NOT NULL,
	destination_id BIGINT NOT NULL,
	date_of_journey DATETIME(6) NOT NULL,
	created DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
	updated DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6),
	UNIQUE KEY uniq_trips_name (name),
	KEY idx_trips_date (date_of_journey),
	CONSTRAINT fk_trips_bus FOREIGN KEY (bus_id) REFERENCES buses (id) ON DELETE CASCADE,
	CONSTRAINT fk_trips_departure FOREIGN KEY (departure_id) REFERENCES park_locations (id) ON DELETE CASCADE,
	CONSTRAINT fk_trips_destination FOREIGN KEY (destination_id) REFERENCES park_locations (id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"luggage_bills", `
CREATE TABLE IF NOT EXISTS luggage_bills (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	customer_id BIGINT NOT NULL,
	trip_id BIGINT NOT NULL,
	added_by_id BIGINT NOT NULL,
	created DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
	updated DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6),
	KEY idx_luggage_bills_created (created),
	CONSTRAINT fk_luggage_bills_customer FOREIGN KEY (customer_id) REFERENCES customers (id) ON DELETE CASCADE,
	CONSTRAINT fk_luggage_bills_trip FOREIGN KEY (trip_id) REFERENCES trips (id) ON DELETE CASCADE,
	CONSTRAINT fk_luggage_bills_added_by FOREIGN KEY (added_by_id) REFERENCES users (id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"luggages", `
CREATE TABLE IF NOT EXISTS luggages (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	luggagebill_id BIGINT NOT NULL,
	weight_id BIGINT NOT NULL,
	bag_type_id BIGINT NOT NULL,
	quantity INT UNSIGNED NOT NULL DEFAULT 1,
	created DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
	updated DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6),
	CONSTRAINT chk_luggages_quantity CHECK (quantity >= 1),
	CONSTRAINT fk_luggages_bill FOREIGN KEY (luggagebill_id) REFERENCES luggage_bills (id) ON DELETE CASCADE,
	CONSTRAINT fk_luggages_weight FOREIGN KEY (weight_id) REFERENCES weights (id) ON DELETE CASCADE,
	CONSTRAINT fk_luggages_bag_type FOREIGN KEY (bag_type_id) REFERENCES bag_types (id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
}

// Tables lists the managed tables in creation order.
func Tables() []string {
	out := make([]string, 0, len(schema))
	for _, s := range schema {
		out = append(out, s.Table)
	}
	return out
}

// EnsureSchema creates missing tables. Existing tables are left untouched.
func EnsureSchema(ctx context.Context, conn DBTX) error {
	for _, s := range schema {
		if HasTable(ctx, conn, s.Table) {
			continue
		}
		if _, err := conn.ExecContext(ctx, s.DDL); err != nil {
			return fmt.Errorf("create table %s: %w", s.Table, err)
		}
	}
	return nil
}
