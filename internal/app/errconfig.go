package app

import "net/http"

type errCtx struct {
	Code  int
	Title string
	Msg   string
}

func get400() errCtx {
	return errCtx{
		Code:  http.StatusBadRequest,
		Title: "Bad request",
		Msg:   "Sorry, we couldn't understand that request.",
	}
}

func get404() errCtx {
	return errCtx{
		Code:  http.StatusNotFound,
		Title: "Not found",
		Msg:   "Sorry, we couldn't find the page you were looking for.",
	}
}

func get429() errCtx {
	return errCtx{
		Code:  http.StatusTooManyRequests,
		Title: "Too many requests",
		Msg:   "Github is rate limiting us, please try again in a minute.",
	}
}

func get500() errCtx {
	return errCtx{
		Code:  http.StatusInternalServerError,
		Title: "Internal server error",
		Msg:   "Sorry, there was an internal server error.",
	}
}

func get502() errCtx {
	return errCtx{
		Code:  http.StatusBadGateway,
		Title: "Bad gateway",
		Msg:   "Sorry, Github could not be reached.",
	}
}
