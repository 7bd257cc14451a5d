package migrations

import (
	"database/sql"
	"fmt"
	"time"
)

var catalogTables = []struct {
	name  string
	query string
}{
	{
		name: "tbl_categories",
		query: `
		CREATE TABLE IF NOT EXISTS tbl_categories (
			categoryId INT AUTO_INCREMENT PRIMARY KEY,
			categoryName VARCHAR(255) NOT NULL,
			description TEXT,
			categoryBanner VARCHAR(512)
		);
	`,
	},
	{
		name: "tbl_products",
		query: `
		CREATE TABLE IF NOT EXISTS tbl_products (
			id INT AUTO_INCREMENT PRIMARY KEY,
			productName VARCHAR(255) NOT NULL,
			categoryId INT NOT NULL,
			description TEXT,
			fullDescription TEXT,
			keyIngredients TEXT,
			keyBenefits TEXT,
			patentsAndCertifications TEXT,
			directionsForUse TEXT,
			cautions TEXT,
			fdaDisclaimer TEXT,
			productImage VARCHAR(512),
			productBanners TEXT,
			FOREIGN KEY (categoryId) REFERENCES tbl_categories(categoryId)
		);
	`,
	},
	{
		name: "tbl_productpricing",
		query: `
		CREATE TABLE IF NOT EXISTS tbl_productpricing (
			productId INT NOT NULL,
			country VARCHAR(64) NOT NULL,
			yourPrice DECIMAL(10,2) NOT NULL,
			basePrice DECIMAL(10,2) NOT NULL,
			preferredCustomerPrice DECIMAL(10,2) NOT NULL,
			PRIMARY KEY (productId, country),
			FOREIGN KEY (productId) REFERENCES tbl_products(id) ON DELETE CASCADE
		);
	`,
	},
}

// retryDelay is a variable so tests can shorten it.
var retryDelay = 1 * time.Second

// AutoMigrateCatalog creates the catalog tables if they do not exist,
// retrying each statement up to retries times.
func AutoMigrateCatalog(retries int, db *sql.DB) error {
	for _, table := range catalogTables {
		_, err := db.Exec(table.query)
		for i := 0; err != nil && i < retries; i++ {
			time.Sleep(retryDelay)
			_, err = db.Exec(table.query)
		}
		if err != nil {
			return fmt.Errorf("create table %s: %w", table.name, err)
		}
	}
	return nil
}
