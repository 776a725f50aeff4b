package enums

import "fmt"

// Classification represents the storefront product categories.
type Classification string

const (
	ClassificationTShirts    Classification = "tshirts"
	ClassificationShorts     Classification = "shorts"
	ClassificationBestSeller Classification = "best-sellers"
	ClassificationSuit       Classification = "suit"
	ClassificationTrouser    Classification = "trouser"
)

var validClassifications = []Classification{
	ClassificationTShirts,
	ClassificationShorts,
	ClassificationBestSeller,
	ClassificationSuit,
	ClassificationTrouser,
}

// String implements fmt.Stringer.
func (c Classification) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Classification.
func (c Classification) IsValid() bool {
	for _, candidate := range validClassifications {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseClassification converts raw input into a Classification.
func ParseClassification(value string) (Classification, error) {
	for _, candidate := range validClassifications {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid classification %q", value)
}

// ProductSize represents the size variants a product may carry. Letter sizes
// cover tops and suits, numeric sizes are waist measurements.
type ProductSize string

const (
	SizeXS  ProductSize = "XS"
	SizeS   ProductSize = "S"
	SizeM   ProductSize = "M"
	SizeL   ProductSize = "L"
	SizeXL  ProductSize = "XL"
	SizeXXL ProductSize = "XXL"
	Size30  ProductSize = "30"
	Size32  ProductSize = "32"
	Size33  ProductSize = "33"
	Size34  ProductSize = "34"
	Size36  ProductSize = "36"
	Size38  ProductSize = "38"
	Size40  ProductSize = "40"
	Size42  ProductSize = "42"
	Size44  ProductSize = "44"
	Size46  ProductSize = "46"
)

var validProductSizes = []ProductSize{
	SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL,
	Size30, Size32, Size33, Size34, Size36, Size38, Size40, Size42, Size44, Size46,
}

var productSizeDisplay = map[ProductSize]string{
	SizeXS:  "XSmall",
	SizeS:   "Small",
	SizeM:   "Medium",
	SizeL:   "Large",
	SizeXL:  "XLarge",
	SizeXXL: "XXLarge",
}

// String implements fmt.Stringer.
func (s ProductSize) String() string {
	return string(s)
}

// Display returns the human readable label for the size. Numeric waist sizes
// display as-is.
func (s ProductSize) Display() string {
	if label, ok := productSizeDisplay[s]; ok {
		return label
	}
	return string(s)
}

// IsValid reports whether the value is a known ProductSize.
func (s ProductSize) IsValid() bool {
	for _, candidate := range validProductSizes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseProductSize converts raw input into a ProductSize.
func ParseProductSize(value string) (ProductSize, error) {
	for _, candidate := range validProductSizes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product size %q", value)
}
