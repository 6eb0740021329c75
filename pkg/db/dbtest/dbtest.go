// Package dbtest opens throwaway SQLite stores carrying the inventory and cart
// schema, for repository, service and controller tests.
package dbtest

import (
	"testing"

	"github.com/angelmondragon/guitarshop-backend/pkg/db"
	"github.com/angelmondragon/guitarshop-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const schema = `
CREATE TABLE inventory (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  image TEXT NOT NULL,
  description TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  quantity INTEGER NOT NULL CHECK (quantity >= 0)
);
CREATE TABLE cart (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  inventory_id INTEGER NOT NULL,
  quantity INTEGER NOT NULL
);
CREATE INDEX idx_cart_inventory_id ON cart (inventory_id);
`

// Open returns a Client over a private in-memory database with the schema applied.
func Open(t *testing.T) *db.Client {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if _, err := sqlDB.Exec(schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db.Wrap(conn)
}

// Catalogue mirrors the seed migration so tests assert against the same fixture.
func Catalogue() []models.InventoryItem {
	return []models.InventoryItem{
		{ID: 1, Name: "Stratocaster", Image: "strat.jpg", Description: "One of the most iconic electric guitars ever made.", Price: decimal.RequireFromString("599.99"), Quantity: 3},
		{ID: 2, Name: "Mini Amp", Image: "amp.jpg", Description: "A small practice amp that shouldn't annoy roommates or neighbors.", Price: decimal.RequireFromString("49.99"), Quantity: 10},
		{ID: 3, Name: "Bass Guitar", Image: "bass.jpg", Description: "A four string electric bass guitar.", Price: decimal.RequireFromString("399.99"), Quantity: 10},
		{ID: 4, Name: "Acoustic Guitar", Image: "acoustic.jpg", Description: "Perfect for campfire sing-alongs.", Price: decimal.RequireFromString("799.99"), Quantity: 4},
		{ID: 5, Name: "Ukulele", Image: "ukulele.jpg", Description: "A four string tenor ukulele tuned GCEA.", Price: decimal.RequireFromString("99.99"), Quantity: 15},
		{ID: 6, Name: "Strap", Image: "strap.jpg", Description: "Woven instrument strap keeps your guitar or bass strapped to you to allow playing while standing.", Price: decimal.RequireFromString("29.99"), Quantity: 20},
		{ID: 7, Name: "Assortment of Picks", Image: "picks.jpg", Description: "Picks for acoustic or electric players.", Price: decimal.RequireFromString("9.99"), Quantity: 50},
		{ID: 8, Name: "Guitar Strings", Image: "strings.jpg", Description: "High quality wound strings for your acoustic or electric guitar or bass.", Price: decimal.RequireFromString("12.99"), Quantity: 20},
		{ID: 9, Name: "Instrument Cable", Image: "cable.jpg", Description: "A cable to connect an electric guitar or bass to an amplifier.", Price: decimal.RequireFromString("19.99"), Quantity: 15},
	}
}

// Seed inserts the catalogue plus any extra cart lines.
func Seed(t *testing.T, client *db.Client, lines ...models.CartLine) {
	t.Helper()
	items := Catalogue()
	if err := client.DB().Create(&items).Error; err != nil {
		t.Fatalf("seed inventory: %v", err)
	}
	if len(lines) == 0 {
		return
	}
	if err := client.DB().Create(&lines).Error; err != nil {
		t.Fatalf("seed cart: %v", err)
	}
}
