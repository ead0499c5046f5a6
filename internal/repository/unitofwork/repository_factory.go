package unitofwork

import "context"

// RepositoryFactory hands out short-lived units of work, one per request.
// Implemented by the gorm driver here and by the memory driver in
// repository/memory; services never know which one they got.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
