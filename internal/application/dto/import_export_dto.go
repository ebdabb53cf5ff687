package dto

// ImportRowError error aislado de una fila del CSV (1-based, sin contar header).
type ImportRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportResult resultado agregado de una importación. Una fila malformada
// nunca aborta el resto del lote.
type ImportResult struct {
	Success   bool             `json:"success"`
	Processed int              `json:"processed"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
	Errors    []ImportRowError `json:"errors"`
}

// ExportFilter filtro opcional del export de productos.
type ExportFilter struct {
	CategoryID string `query:"categoryId"`
	FamilyID   string `query:"familyId"`
}
