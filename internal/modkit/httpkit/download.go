package httpkit

import (
	"net/http"

	phttp "dagsplott/internal/platform/net/http"
	"dagsplott/internal/platform/net/http/bind"
)

// PostDownload mounts a POST handler whose successful result is streamed as a
// file attachment instead of the JSON envelope. Errors still use the envelope.
func PostDownload[T any](r Router, path string, h func(*http.Request, T) (name, contentType string, body []byte, err error)) {
	r.Post(path, func(w http.ResponseWriter, req *http.Request) {
		in, err := bind.ParseJSON[T](req)
		if err != nil {
			phttp.RespondError(w, req, err)
			return
		}
		name, ct, body, err := h(req, in)
		if err != nil {
			phttp.RespondError(w, req, err)
			return
		}
		phttp.RespondAttachment(w, req, name, ct, body)
	})
}
