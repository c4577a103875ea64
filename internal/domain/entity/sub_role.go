package entity

// SubRole rol secundario de un AdminUser (ej. "owner", "manager").
type SubRole struct {
	ID    int64
	Label string
}
