package entity

// Category is a product grouping shown in the storefront navigation.
type Category struct {
	ID          int64   `json:"categoryId"`
	Name        string  `json:"categoryName"`
	Description *string `json:"description"`
	Banner      *string `json:"categoryBanner"`
}

/*
Schema MySQL for category table:
CREATE TABLE `tbl_categories` (
  `categoryId` int(11) NOT NULL AUTO_INCREMENT,
  `categoryName` varchar(255) NOT NULL,
  `description` text,
  `categoryBanner` varchar(512),
  PRIMARY KEY (`categoryId`)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
*/
