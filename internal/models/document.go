package models

// MonthKeyFormat is the YYYY-MM layout used to bucket transactions and
// expenses by calendar month.
const MonthKeyFormat = "2006-01"

// UserDocument is the full ledger state for one user: every account with
// its transaction log, plus expenses bucketed by month. Documents are
// loaded, mutated in memory, and saved back as a whole.
type UserDocument struct {
	Accounts        []Account                 `json:"accounts"`
	MonthlyExpenses map[string][]ExpenseEntry `json:"monthly_expenses"`
	NextAccountID   int                       `json:"next_account_id"`
}

// NewUserDocument returns an empty document ready for its first account.
func NewUserDocument() *UserDocument {
	return &UserDocument{
		Accounts:        []Account{},
		MonthlyExpenses: map[string][]ExpenseEntry{},
	}
}

// NextID allocates the next account id. Ids are monotonic and never
// reused, even after deletions. Documents written before the counter
// existed are seeded from the highest id already in use.
func (d *UserDocument) NextID() int {
	if d.NextAccountID == 0 {
		for _, account := range d.Accounts {
			if account.ID > d.NextAccountID {
				d.NextAccountID = account.ID
			}
		}
	}
	d.NextAccountID++
	return d.NextAccountID
}

// FindAccount returns the account with the given id, or nil.
func (d *UserDocument) FindAccount(id int) *Account {
	for i := range d.Accounts {
		if d.Accounts[i].ID == id {
			return &d.Accounts[i]
		}
	}
	return nil
}

// RemoveAccount deletes the account with the given id and reports
// whether anything was removed.
func (d *UserDocument) RemoveAccount(id int) bool {
	for i := range d.Accounts {
		if d.Accounts[i].ID == id {
			d.Accounts = append(d.Accounts[:i], d.Accounts[i+1:]...)
			return true
		}
	}
	return false
}

// AddExpense buckets the entry under its month key.
func (d *UserDocument) AddExpense(entry ExpenseEntry) {
	if d.MonthlyExpenses == nil {
		d.MonthlyExpenses = map[string][]ExpenseEntry{}
	}
	key := entry.MonthKey()
	d.MonthlyExpenses[key] = append(d.MonthlyExpenses[key], entry)
}

// ExpensesFor returns the entries recorded for the given month key.
// An absent month yields an empty slice.
func (d *UserDocument) ExpensesFor(monthKey string) []ExpenseEntry {
	return d.MonthlyExpenses[monthKey]
}
