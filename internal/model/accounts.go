package model

// Account is one entry of the brokerage chart of accounts.
type Account struct {
	Number string
	Name   string
}

// Chart of accounts.
var (
	AccountCash              = Account{Number: "1000", Name: "Cash - Operating"}
	AccountReceivable        = Account{Number: "1200", Name: "Accounts Receivable"}
	AccountPayable           = Account{Number: "2000", Name: "Accounts Payable"}
	AccountFreightRevenue    = Account{Number: "4000", Name: "Freight Revenue"}
	AccountCarrierCosts      = Account{Number: "5000", Name: "Carrier Costs"}
	AccountOperatingExpenses = Account{Number: "6000", Name: "Operating Expenses"}
)

// ChartOfAccounts lists the accounts in number order.
var ChartOfAccounts = []Account{
	AccountCash,
	AccountReceivable,
	AccountPayable,
	AccountFreightRevenue,
	AccountCarrierCosts,
	AccountOperatingExpenses,
}

// Posting names the debit and credit side of a standard double entry.
type Posting struct {
	Debit  Account
	Credit Account
}

// StandardPosting returns the usual double entry for a transaction type.
func StandardPosting(t TransactionType) (Posting, bool) {
	switch t {
	case TransactionPayable:
		return Posting{Debit: AccountCarrierCosts, Credit: AccountPayable}, true
	case TransactionReceivable:
		return Posting{Debit: AccountReceivable, Credit: AccountFreightRevenue}, true
	case TransactionPayment:
		return Posting{Debit: AccountPayable, Credit: AccountCash}, true
	case TransactionReceipt:
		return Posting{Debit: AccountCash, Credit: AccountReceivable}, true
	default:
		return Posting{}, false
	}
}
