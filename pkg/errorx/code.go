package errorx

type Code int

var Unknown = Error{Code: 100000, Message: "Request failed"}

const (
	// Common codes
	BadRequest     Code = 100001
	NotFound       Code = 100004
	Internal       Code = 100007
	NotImplemented Code = 100009

	// Wire codes
	UnknownConstructor Code = 200001
	MalformedPayload   Code = 200002
)
