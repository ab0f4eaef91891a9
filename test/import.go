package test

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

// MultipartFile wraps file content in a multipart form body.
//
// The content is returned as a buffer and a map for the HTTP request headers.
func MultipartFile(t *testing.T, filename string, content []byte) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)

	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", filename)
	if err != nil {
		assert.Fail(t, err.Error())
	}

	if _, err := w.Write(content); err != nil {
		assert.Fail(t, err.Error())
	}

	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
