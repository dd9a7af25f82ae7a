package entity

// Transaction statuses relevant to stock reporting. Sales and returns are two
// disjoint views over the same transaction-detail rows, filtered by the parent
// transaction status; they are not separate tables.
const (
	TransactionCompleted = "completed"
	TransactionCancelled = "cancelled"
)
