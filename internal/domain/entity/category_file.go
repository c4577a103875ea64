package entity

// CategoryFile categoría de documentos de domiciliación (ej. sociedad vs
// auto-entrepreneur), agrupa tipos de archivo.
type CategoryFile struct {
	ID                  int64
	CategoryName        string
	CategoryDescription *string
	LabelID             *string // ej. "auto-contractor"
	LabelDescription    *string
}

// DomiciliationFileType tipo de documento aceptado por una Company dentro de
// una categoría.
type DomiciliationFileType struct {
	ID             int64
	CompanyID      int64
	CategoryFileID *int64
	Label          string
	Description    *string
	IsArchived     bool
}
