package models

// Response bodies: single errors are `{"msg": ...}`, validation failures are
// `{"errors": [...]}` so clients always know which shape to expect.

type MsgResponse struct {
	Msg string `json:"msg"`
}

type ErrorsResponse struct {
	Errors []CheckError `json:"errors"`
}

func Msg(msg string) MsgResponse {
	return MsgResponse{Msg: msg}
}

func Errors(errs ...CheckError) ErrorsResponse {
	return ErrorsResponse{Errors: errs}
}

const ServerErrorMsg = "Server Error"
