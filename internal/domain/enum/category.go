package enum

// Category represents a product category in the storefront
type Category string

const (
	CategoryPlants      Category = "Plantas"
	CategoryPots        Category = "Vasos"
	CategorySoil        Category = "Terra"
	CategorySubstrate   Category = "Substrato"
	CategoryAccessories Category = "Acessórios"
	CategoryDecoration  Category = "Decoração"
)

// Categories returns all known categories in display order
func Categories() []Category {
	return []Category{
		CategoryPlants,
		CategoryPots,
		CategorySoil,
		CategorySubstrate,
		CategoryAccessories,
		CategoryDecoration,
	}
}

func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the category is one of the known values
func (c Category) IsValid() bool {
	switch c {
	case CategoryPlants, CategoryPots, CategorySoil, CategorySubstrate, CategoryAccessories, CategoryDecoration:
		return true
	}
	return false
}
