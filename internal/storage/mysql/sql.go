package mysql

// Table DDL. Dates stay CHAR(10) ISO text so comparisons match the SQLite store.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS hotel (
  id          BIGINT NOT NULL AUTO_INCREMENT,
  city        VARCHAR(255) NOT NULL,
  country     VARCHAR(255) NOT NULL,
  postal_code INT NULL,
  PRIMARY KEY (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS client (
  id          BIGINT NOT NULL AUTO_INCREMENT,
  name        VARCHAR(255) NOT NULL,
  address     VARCHAR(255) NULL,
  city        VARCHAR(255) NULL,
  postal_code INT NULL,
  email       VARCHAR(255) NULL,
  phone       VARCHAR(64) NULL,
  PRIMARY KEY (id),
  KEY idx_client_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS room_type (
  id         BIGINT NOT NULL AUTO_INCREMENT,
  label      VARCHAR(255) NOT NULL,
  base_price DOUBLE NULL,
  PRIMARY KEY (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS room (
  id       BIGINT NOT NULL AUTO_INCREMENT,
  number   INT NULL,
  floor    INT NULL,
  sea_view TINYINT(1) NOT NULL DEFAULT 0,
  hotel_id BIGINT NOT NULL,
  type_id  BIGINT NOT NULL,
  PRIMARY KEY (id),
  CONSTRAINT fk_room_hotel FOREIGN KEY (hotel_id) REFERENCES hotel(id),
  CONSTRAINT fk_room_type FOREIGN KEY (type_id) REFERENCES room_type(id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS reservation (
  id         BIGINT NOT NULL AUTO_INCREMENT,
  start_date CHAR(10) NOT NULL,
  end_date   CHAR(10) NOT NULL,
  client_id  BIGINT NOT NULL,
  PRIMARY KEY (id),
  CONSTRAINT fk_reservation_client FOREIGN KEY (client_id) REFERENCES client(id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS reservation_room (
  reservation_id BIGINT NOT NULL,
  room_id        BIGINT NOT NULL,
  PRIMARY KEY (reservation_id, room_id),
  KEY idx_reservation_room_room (room_id),
  CONSTRAINT fk_rr_reservation FOREIGN KEY (reservation_id) REFERENCES reservation(id),
  CONSTRAINT fk_rr_room FOREIGN KEY (room_id) REFERENCES room(id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

const countTablesSQL = `
SELECT COUNT(*)
FROM information_schema.tables
WHERE table_schema = DATABASE()
`
