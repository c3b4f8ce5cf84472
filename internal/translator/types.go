package translator

// Request is the wire-level translation request: what to translate and
// between which languages. Codes are assumed validated by the caller.
type Request struct {
	Text       string
	SourceLang string
	TargetLang string
}

// APIError reports a reply the provider returned but that carried no
// translation, such as an error envelope or an unexpected body shape. It is
// distinct from transport failures, which surface as ordinary wrapped errors.
type APIError struct {
	Status string
	Detail string
}

func (e *APIError) Error() string {
	return e.Detail
}
