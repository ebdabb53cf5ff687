package pim

// AttributeLine par nombre/valor ya resuelto para render (PDF, fichas).
type AttributeLine struct {
	Name  string
	Value string
}

// ProductExport es el modelo de lectura plano de un producto para export:
// categoría y familia ya resueltas a nombre, valores listos para imprimir.
type ProductExport struct {
	ID           string
	SKU          string
	Name         string
	Description  string
	Type         string
	Status       string
	Category     string
	Family       string
	Completeness int
	Attributes   []AttributeLine
}

// ProductPDFGenerator genera el catálogo PDF de productos. La implementación
// vive en infraestructura (maroto); aquí solo el puerto.
type ProductPDFGenerator interface {
	Generate(companyName string, products []ProductExport) ([]byte, error)
}
