package http

import "net/http"

// GetJSON mounts a handler whose result is wrapped in a 200 envelope
// and whose error is mapped through perr
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Handle(func(req *http.Request) Response {
		out, err := h(req)
		if err != nil {
			return Error(err)
		}
		return OK(out)
	}))
}

// GetResponse mounts a return-style handler, for lists that carry a page block
func GetResponse(r Router, path string, h func(*http.Request) Response) {
	r.Get(path, Handle(h))
}
