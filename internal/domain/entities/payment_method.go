package entities

// PaymentMethod describes how an invoice can be paid: a bank account or a
// Yappy (mobile payment) handle. All fields except ID are optional.
type PaymentMethod struct {
	ID            string `json:"id"`
	Bank          string `json:"bank,omitempty"`
	AccountHolder string `json:"accountHolder,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	AccountType   string `json:"accountType,omitempty"`
	IsYappy       bool   `json:"isYappy,omitempty"`
	YappyPhone    string `json:"yappyPhone,omitempty"`
}
