package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/moottier/ccrev/ruleengine"
	"github.com/moottier/ccrev/server"
	"github.com/moottier/ccrev/store"
)

// runServe starts the HTTP front-end backed by a SQLite store.
func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":8080", "address to listen on")
	dbPath := fs.String("db", "ccrev.db", "path to the SQLite database to persist into")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st, err := store.Open(*dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	srv := server.New(st, ruleengine.DefaultCatalog())
	log.Printf("ccrev: listening on %s", *addr)

	return http.ListenAndServe(*addr, srv)
}
