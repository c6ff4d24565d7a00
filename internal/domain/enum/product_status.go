package enum

// ProductStatus represents the availability of a product
type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusOrder        ProductStatus = "order"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

func (s ProductStatus) String() string {
	return string(s)
}

// IsValid reports whether the status is one of the known values
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusOrder, ProductStatusDiscontinued:
		return true
	}
	return false
}
