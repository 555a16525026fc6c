package transaction

// Types is the direction of a transaction: money out or money in.
type Types string

const (
	TypeDebit  Types = "DEBIT"
	TypeCredit Types = "CREDIT"
)

func (t Types) IsValid() bool {
	switch t {
	case TypeDebit, TypeCredit:
		return true
	}
	return false
}

// Sources identifies the channel a transaction was observed on.
type Sources string

const (
	SourceUPI   Sources = "UPI"
	SourceCard  Sources = "CARD"
	SourceBank  Sources = "BANK"
	SourceCash  Sources = "CASH"
	SourceOther Sources = "OTHER"
)

func (s Sources) IsValid() bool {
	switch s {
	case SourceUPI, SourceCard, SourceBank, SourceCash, SourceOther:
		return true
	}
	return false
}
