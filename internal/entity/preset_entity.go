package entity

// ServicePreset is a catalog entry for a well-known AI service, used to
// prefill the create form. Seeded via cmd/seed, read-only at runtime.
type ServicePreset struct {
	Name  string
	Color string
	Icon  string
	URL   string
}
