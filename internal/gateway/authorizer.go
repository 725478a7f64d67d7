package gateway

import "context"

// Authorizer consulta o serviço autorizador externo.
// Chamado exatamente uma vez por tentativa, depois da validação e antes
// de qualquer mutação de saldo. Sem retry aqui: política de retry, se
// houver, é do chamador.
type Authorizer interface {
	// EnsureAuthorized retorna nil se autorizado;
	// domain.ErrAuthorizationDenied se o serviço negar (rejeição de negócio);
	// domain.ErrAuthorizationUnavailable para timeout, transporte ou
	// resposta malformada (falha de infraestrutura).
	EnsureAuthorized(ctx context.Context) error
}
