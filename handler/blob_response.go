package handler

import (
	"net/http"
	"strconv"
)

type blobResponse struct {
	contentType string
	body        []byte
	headers     map[string]string
}

func (b blobResponse) Render(w http.ResponseWriter, r *http.Request) error {
	h := w.Header()
	h.Set("Content-Type", b.contentType)
	h.Set("Content-Length", strconv.Itoa(len(b.body)))
	for k, v := range b.headers {
		h.Set(k, v)
	}
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(b.body)
	return err
}

// Blob writes body as-is with the given content type.
func Blob(contentType string, body []byte) Response {
	return blobResponse{contentType: contentType, body: body}
}

// Text writes s as text/plain.
func Text(s string) Response {
	return Blob("text/plain; charset=utf-8", []byte(s))
}

// Attachment is like Blob but asks the browser to download the body.
func Attachment(contentType, filename string, body []byte) Response {
	return blobResponse{
		contentType: contentType,
		body:        body,
		headers:     map[string]string{"Content-Disposition": `attachment; filename="` + filename + `"`},
	}
}
