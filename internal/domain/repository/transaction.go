package repository

import "context"

// RepositoryFactory creates repository instances bound to a single
// transaction. Use cases receive one inside TransactionManager.Execute.
type RepositoryFactory interface {
	FoodRepo() FoodRepository
	PurchaseRepo() PurchaseRepository
}

// TransactionManager runs application logic within a single database
// transaction. The callback's error triggers a rollback.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
