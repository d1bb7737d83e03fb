package models

// Fixed inventory categories, in display order.
const (
	CategoryCrops     = "Cultivos y Productos"
	CategorySupplies  = "Insumos Agrícolas"
	CategoryMachinery = "Maquinaria y Herramientas"
)

// Categories lists the inventory categories in display order.
func Categories() []string {
	return []string{CategoryCrops, CategorySupplies, CategoryMachinery}
}

var seed = map[string][]Item{
	CategoryCrops: {
		{ID: "1", Name: "Maíz", Amount: 500, Unit: "kg", Status: "disponibles", Icon: "🌽"},
		{ID: "2", Name: "Trigo", Amount: 1200, Unit: "kg", Status: "almacenados", Icon: "🌾"},
	},
	CategorySupplies: {
		{ID: "1", Name: "Fertilizante", Amount: 200, Unit: "L", Status: "en stock", Icon: "💧"},
		{ID: "2", Name: "Pesticida", Amount: 150, Unit: "L", Status: "disponible", Icon: "🧪"},
	},
	CategoryMachinery: {
		{ID: "1", Name: "Tractor", Amount: 2, Unit: "unidades", Status: "operativo", Icon: "🚜"},
		{ID: "2", Name: "Arado", Amount: 3, Unit: "unidades", Status: "en uso", Icon: "⚙️"},
	},
}

// SeedItems returns a fresh copy of the first-run items of category, or an
// empty slice for unknown categories.
func SeedItems(category string) []Item {
	items := seed[category]
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
