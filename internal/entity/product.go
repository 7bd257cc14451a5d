package entity

// Pricing holds the three price tiers of a product in one country.
type Pricing struct {
	Country                string  `json:"country"`
	YourPrice              float64 `json:"yourPrice"`
	BasePrice              float64 `json:"basePrice"`
	PreferredCustomerPrice float64 `json:"preferredCustomerPrice"`
}

// Currency decorates priced rows for display.
type Currency struct {
	Code   string `json:"currency"`
	Symbol string `json:"currencySymbol"`
}

// Product is a listing row: a product joined with its category and its
// pricing for a single country.
type Product struct {
	ID           int64   `json:"id"`
	Name         string  `json:"productName"`
	CategoryName string  `json:"categoryName"`
	Description  *string `json:"description"`
	Image        *string `json:"productImage"`
	Pricing
	Currency
}

// ProductDetail extends a listing row with the long-form content shown on
// the product page.
type ProductDetail struct {
	ID                       int64   `json:"id"`
	Name                     string  `json:"productName"`
	CategoryName             string  `json:"categoryName"`
	Description              *string `json:"description"`
	FullDescription          *string `json:"fullDescription"`
	KeyIngredients           *string `json:"keyIngredients"`
	KeyBenefits              *string `json:"keyBenefits"`
	PatentsAndCertifications *string `json:"patentsAndCertifications"`
	DirectionsForUse         *string `json:"directionsForUse"`
	Cautions                 *string `json:"cautions"`
	FDADisclaimer            *string `json:"fdaDisclaimer"`
	Image                    *string `json:"productImage"`
	Banners                  *string `json:"productBanners"`
	Pricing
	Currency
}

/*
Schema MySQL for product tables:
CREATE TABLE `tbl_products` (
  `id` int(11) NOT NULL AUTO_INCREMENT,
  `productName` varchar(255) NOT NULL,
  `categoryId` int(11) NOT NULL,
  `description` text,
  `fullDescription` text,
  `keyIngredients` text,
  `keyBenefits` text,
  `patentsAndCertifications` text,
  `directionsForUse` text,
  `cautions` text,
  `fdaDisclaimer` text,
  `productImage` varchar(512),
  `productBanners` text,
  PRIMARY KEY (`id`),
  FOREIGN KEY (`categoryId`) REFERENCES `tbl_categories` (`categoryId`)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE `tbl_productpricing` (
  `productId` int(11) NOT NULL,
  `country` varchar(64) NOT NULL,
  `yourPrice` decimal(10,2) NOT NULL,
  `basePrice` decimal(10,2) NOT NULL,
  `preferredCustomerPrice` decimal(10,2) NOT NULL,
  PRIMARY KEY (`productId`, `country`),
  FOREIGN KEY (`productId`) REFERENCES `tbl_products` (`id`)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
*/
