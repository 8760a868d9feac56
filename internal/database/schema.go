package database

import (
	"fmt"

	"github.com/matthieukhl/shopsight/internal/models"
)

const customerTableSQL = `
CREATE TABLE IF NOT EXISTS customer (
    customer_id BIGINT PRIMARY KEY,
    gender VARCHAR(16) NOT NULL,
    age INT NOT NULL,
    age_group VARCHAR(32) NOT NULL,
    item_purchased VARCHAR(100) NOT NULL,
    category VARCHAR(100) NOT NULL,
    purchase_amount DECIMAL(10,2) NOT NULL,
    discount_applied ENUM('Yes', 'No') NOT NULL,
    shipping_type VARCHAR(32) NOT NULL,
    review_rating DOUBLE NOT NULL,
    frequency_of_purchases VARCHAR(32),
    purchases_frequency_day INT NOT NULL DEFAULT 0,
    subscription_status VARCHAR(32) NOT NULL,
    previous_purchases INT NOT NULL,
    INDEX idx_category (category),
    INDEX idx_item (item_purchased),
    INDEX idx_age_group (age_group),
    INDEX idx_subscription (subscription_status)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// SetupSchema creates the customer table if it does not exist.
func (db *DB) SetupSchema() error {
	if _, err := db.Exec(customerTableSQL); err != nil {
		return fmt.Errorf("failed to create customer table: %w", err)
	}
	return nil
}

// ReplaceTransactions reloads the customer table from a cleaned
// snapshot: drop, recreate, insert. The table always reflects exactly
// one upstream export, never a merge of two.
func (db *DB) ReplaceTransactions(transactions []models.CustomerTransaction) error {
	if _, err := db.Exec("DROP TABLE IF EXISTS customer"); err != nil {
		return fmt.Errorf("failed to drop customer table: %w", err)
	}
	if err := db.SetupSchema(); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO customer (
			customer_id, gender, age, age_group, item_purchased, category,
			purchase_amount, discount_applied, shipping_type, review_rating,
			frequency_of_purchases, purchases_frequency_day,
			subscription_status, previous_purchases
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range transactions {
		_, err := stmt.Exec(
			t.CustomerID, t.Gender, t.Age, t.AgeGroup, t.ItemPurchased, t.Category,
			t.PurchaseAmount, t.DiscountApplied, t.ShippingType, t.ReviewRating,
			t.FrequencyOfPurchases, t.PurchaseFrequencyDays,
			t.SubscriptionStatus, t.PreviousPurchases,
		)
		if err != nil {
			return fmt.Errorf("failed to insert customer %d: %w", t.CustomerID, err)
		}
	}

	return tx.Commit()
}

// FetchTransactions reads the full customer table back into memory so
// reports can run against a MySQL-sourced snapshot.
func (db *DB) FetchTransactions() ([]models.CustomerTransaction, error) {
	rows, err := db.Query(`
		SELECT
			customer_id, gender, age, age_group, item_purchased, category,
			purchase_amount, discount_applied, shipping_type, review_rating,
			COALESCE(frequency_of_purchases, '') AS frequency_of_purchases,
			purchases_frequency_day, subscription_status, previous_purchases
		FROM customer
		ORDER BY customer_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query customer table: %w", err)
	}
	defer rows.Close()

	var transactions []models.CustomerTransaction
	for rows.Next() {
		var t models.CustomerTransaction
		err := rows.Scan(
			&t.CustomerID, &t.Gender, &t.Age, &t.AgeGroup, &t.ItemPurchased, &t.Category,
			&t.PurchaseAmount, &t.DiscountApplied, &t.ShippingType, &t.ReviewRating,
			&t.FrequencyOfPurchases, &t.PurchaseFrequencyDays,
			&t.SubscriptionStatus, &t.PreviousPurchases,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read customer rows: %w", err)
	}

	return transactions, nil
}
