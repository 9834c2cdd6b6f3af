package httperr

import "errors"

// BusinessError é uma regra de negócio violada. O código vira o
// error_code da resposta; a mensagem de exibição é resolvida na borda
// HTTP, não aqui.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// AsBusiness extrai o erro de negócio da cadeia, quando houver.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

func IsBusiness(err error, code string) bool {
	if be, ok := AsBusiness(err); ok {
		return be.Code == code
	}
	return false
}
