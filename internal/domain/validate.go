package domain

// ValidateTransfer é a cadeia de validação pré-lock: funções puras sobre o
// snapshot do pagador, sem I/O. A ordem importa: elegibilidade vem antes de
// saldo (lojista com saldo sobrando continua rejeitado).
//
// É um fast-fail: o saldo aqui pode estar defasado, a checagem que vale é a
// refeita pelo processor com a linha travada.
func ValidateTransfer(payer PayerSnapshot, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if !payer.CanInitiateTransfer() {
		return ErrIneligiblePayer
	}
	if !payer.HasSufficientFunds(amount) {
		return ErrInsufficientFunds
	}
	return nil
}
