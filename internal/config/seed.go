package config

import (
	"context"
	"fmt"
	"log/slog"
)

// Inserted only into an empty products table.
const seedProductsSQL = `
	INSERT INTO products (name, description, price, image)
	SELECT v.name, v.description, v.price::NUMERIC(10, 2), v.image
	FROM (VALUES
		('Margherita Pizza', 'Tomato, mozzarella and fresh basil', '250.00', '/uploads/margherita.jpg'),
		('Veg Burger', 'Grilled patty with lettuce and house sauce', '120.00', '/uploads/veg-burger.jpg'),
		('Paneer Tikka', 'Char-grilled cottage cheese with spices', '220.00', '/uploads/paneer-tikka.jpg'),
		('French Fries', 'Crispy salted fries', '90.00', '/uploads/fries.jpg'),
		('Cold Coffee', 'Chilled coffee with ice cream', '110.00', '/uploads/cold-coffee.jpg')
	) AS v(name, description, price, image)
	WHERE NOT EXISTS (SELECT 1 FROM products)`

// SeedProducts fills the catalog with a demo menu when it is empty.
// It returns the number of inserted rows.
func SeedProducts(ctx context.Context, db Execer) (int64, error) {
	tag, err := db.Exec(ctx, seedProductsSQL)
	if err != nil {
		return 0, fmt.Errorf("failed to seed products: %w", err)
	}
	slog.Info("product seed finished", "inserted", tag.RowsAffected())
	return tag.RowsAffected(), nil
}
