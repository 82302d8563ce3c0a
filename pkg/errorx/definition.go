package errorx

var (
	ErrNotImplemented = Error{Code: NotImplemented, Message: "not implemented"}
	ErrBadRequest     = Error{Code: BadRequest, Message: "bad request"}
)
