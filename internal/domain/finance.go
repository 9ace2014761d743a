package domain

// FinanceRecord is one income or expense entry. Amounts are integer cents.
type FinanceRecord struct {
	ID          string
	AmountCents int64
	Kind        FinanceKind
	Category    *string
	Note        *string
	OccurredAt  int64
	CreatedAt   int64
	UpdatedAt   int64
}

// FinanceNote is the user's free-form budgeting notepad. One row per scope,
// written through an upsert.
type FinanceNote struct {
	ID        string
	Body      string
	CreatedAt int64
	UpdatedAt int64
}
