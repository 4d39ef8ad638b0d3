package catalog

// CatalogError is a custom error type for catalog errors
type CatalogError string

// Error implements the error interface
func (e CatalogError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidWord CatalogError = "word must contain only letters"
	ErrNilConfig   CatalogError = "config cannot be nil"
	ErrNilRoller   CatalogError = "roller cannot be nil"
)
