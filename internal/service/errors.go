package service

// Service errors carry a kind so handlers can map them onto HTTP status
// codes without string matching.

type ErrorKind int

const (
	KindValidation ErrorKind = iota // 400
	KindNotFound                    // 404
	KindConflict                    // 400
	KindDeadline                    // 400
	KindForbidden                   // 403
	KindConsent                     // 403
	KindUnauthorized                // 403
)

type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func validationErr(msg string) error { return &Error{Kind: KindValidation, Msg: msg} }
func notFoundErr(msg string) error   { return &Error{Kind: KindNotFound, Msg: msg} }
func conflictErr(msg string) error   { return &Error{Kind: KindConflict, Msg: msg} }
func deadlineErr(msg string) error   { return &Error{Kind: KindDeadline, Msg: msg} }
func forbiddenErr(msg string) error  { return &Error{Kind: KindForbidden, Msg: msg} }
func consentErr(msg string) error    { return &Error{Kind: KindConsent, Msg: msg} }
