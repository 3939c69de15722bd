package database

import "laundrypos/internal/config"

type migration struct {
	version    string
	statements map[string][]string
}

var migrations = []migration{
	{
		version: "0001_initial_schema",
		statements: map[string][]string{
			config.DriverSQLite: {
				`CREATE TABLE IF NOT EXISTS customers (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL COLLATE NOCASE UNIQUE,
					contact TEXT NOT NULL DEFAULT '',
					createdAt DATETIME NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS service_types (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL COLLATE NOCASE UNIQUE,
					price REAL NOT NULL,
					minWeight REAL
				)`,
				`CREATE TABLE IF NOT EXISTS addons (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL COLLATE NOCASE UNIQUE,
					price REAL NOT NULL
				)`,
				"CREATE TABLE IF NOT EXISTS services (" +
					"id TEXT PRIMARY KEY," +
					"customerId TEXT NOT NULL REFERENCES customers(id)," +
					"serviceType TEXT NOT NULL," +
					"weight REAL NOT NULL," +
					"`load` INTEGER NOT NULL," +
					"instructions TEXT NOT NULL DEFAULT ''," +
					"addons TEXT NOT NULL DEFAULT '[]'," +
					"gross REAL NOT NULL," +
					"createdAt DATETIME NOT NULL)",
				`CREATE INDEX IF NOT EXISTS idx_services_customer ON services(customerId)`,
				`CREATE INDEX IF NOT EXISTS idx_services_created ON services(createdAt)`,
				`CREATE TABLE IF NOT EXISTS services_status (
					serviceId TEXT PRIMARY KEY REFERENCES services(id),
					customerId TEXT NOT NULL REFERENCES customers(id),
					isFinished INTEGER NOT NULL DEFAULT 0,
					finishedAt DATETIME,
					isPaid INTEGER NOT NULL DEFAULT 0,
					paidAt DATETIME,
					isClaimed INTEGER NOT NULL DEFAULT 0,
					claimedAt DATETIME
				)`,
				`CREATE INDEX IF NOT EXISTS idx_services_status_customer ON services_status(customerId)`,
				`CREATE TABLE IF NOT EXISTS order_addons (
					orderId TEXT NOT NULL REFERENCES services(id),
					addOnId TEXT NOT NULL,
					position INTEGER NOT NULL,
					price REAL NOT NULL,
					PRIMARY KEY (orderId, addOnId)
				)`,
				`CREATE TABLE IF NOT EXISTS settings (
					settingKey TEXT PRIMARY KEY,
					settingValue TEXT NOT NULL
				)`,
			},
			config.DriverMySQL: {
				`CREATE TABLE IF NOT EXISTS customers (
					id VARCHAR(36) NOT NULL PRIMARY KEY,
					name VARCHAR(191) NOT NULL,
					contact VARCHAR(64) NOT NULL DEFAULT '',
					createdAt DATETIME(6) NOT NULL,
					UNIQUE KEY uq_customers_name (name)
				) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
				`CREATE TABLE IF NOT EXISTS service_types (
					id VARCHAR(36) NOT NULL PRIMARY KEY,
					name VARCHAR(191) NOT NULL,
					price DECIMAL(12,2) NOT NULL,
					minWeight DECIMAL(10,3) NULL,
					UNIQUE KEY uq_service_types_name (name)
				) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
				`CREATE TABLE IF NOT EXISTS addons (
					id VARCHAR(36) NOT NULL PRIMARY KEY,
					name VARCHAR(191) NOT NULL,
					price DECIMAL(12,2) NOT NULL,
					UNIQUE KEY uq_addons_name (name)
				) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
				"CREATE TABLE IF NOT EXISTS services (" +
					"id VARCHAR(36) NOT NULL PRIMARY KEY," +
					"customerId VARCHAR(36) NOT NULL," +
					"serviceType VARCHAR(191) NOT NULL," +
					"weight DECIMAL(10,3) NOT NULL," +
					"`load` INT NOT NULL," +
					"instructions TEXT NOT NULL," +
					"addons JSON NOT NULL," +
					"gross DECIMAL(12,2) NOT NULL," +
					"createdAt DATETIME(6) NOT NULL," +
					"INDEX idx_services_customer (customerId)," +
					"INDEX idx_services_created (createdAt)," +
					"FOREIGN KEY (customerId) REFERENCES customers(id)" +
					") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci",
				`CREATE TABLE IF NOT EXISTS services_status (
					serviceId VARCHAR(36) NOT NULL PRIMARY KEY,
					customerId VARCHAR(36) NOT NULL,
					isFinished TINYINT(1) NOT NULL DEFAULT 0,
					finishedAt DATETIME(6) NULL,
					isPaid TINYINT(1) NOT NULL DEFAULT 0,
					paidAt DATETIME(6) NULL,
					isClaimed TINYINT(1) NOT NULL DEFAULT 0,
					claimedAt DATETIME(6) NULL,
					INDEX idx_services_status_customer (customerId),
					FOREIGN KEY (serviceId) REFERENCES services(id),
					FOREIGN KEY (customerId) REFERENCES customers(id)
				) ENGINE=InnoDB`,
				`CREATE TABLE IF NOT EXISTS order_addons (
					orderId VARCHAR(36) NOT NULL,
					addOnId VARCHAR(36) NOT NULL,
					position INT NOT NULL,
					price DECIMAL(12,2) NOT NULL,
					PRIMARY KEY (orderId, addOnId),
					FOREIGN KEY (orderId) REFERENCES services(id)
				) ENGINE=InnoDB`,
				`CREATE TABLE IF NOT EXISTS settings (
					settingKey VARCHAR(64) NOT NULL PRIMARY KEY,
					settingValue TEXT NOT NULL
				) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
			},
		},
	},
}
