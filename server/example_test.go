package server_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/moottier/ccrev/ruleengine"
	"github.com/moottier/ccrev/server"
	"github.com/moottier/ccrev/store"
)

// ExampleServer demonstrates uploading a CSV batch over HTTP and
// getting back its assigned id.
func ExampleServer() {
	dir, err := os.MkdirTemp("", "ccrev-example")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	defer os.RemoveAll(dir)

	st, err := store.Open(filepath.Join(dir, "ccrev.db"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	defer st.Close()

	s := server.New(st, ruleengine.DefaultCatalog())

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, _ := w.CreateFormFile("file", "batch.csv")
	part.Write([]byte("value\n1\n2\n3\n"))
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/batches", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	fmt.Println(rec.Code)
	// Output:
	// 201
}
