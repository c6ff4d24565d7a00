package enum

// EntryType represents the direction of a finance ledger entry
type EntryType string

const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

func (t EntryType) String() string {
	return string(t)
}

// IsValid reports whether the type is one of the known values
func (t EntryType) IsValid() bool {
	return t == EntryTypeIncome || t == EntryTypeExpense
}

// EntrySettlement represents whether a ledger entry has been settled
type EntrySettlement string

const (
	EntrySettlementPaid    EntrySettlement = "paid"
	EntrySettlementPending EntrySettlement = "pending"
)

func (s EntrySettlement) String() string {
	return string(s)
}

// IsValid reports whether the settlement status is one of the known values
func (s EntrySettlement) IsValid() bool {
	return s == EntrySettlementPaid || s == EntrySettlementPending
}
