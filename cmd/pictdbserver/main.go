// Command pictdbserver is the HTTP front end for pictDB: it opens a single
// database file and serves the /pictDB/{list,read,insert,delete} routes plus
// a static asset directory over HTTP.
package main

import (
	"net/http"
	"os"

	"github.com/arceus-db/pictdb/internal/pictdb"
	"github.com/arceus-db/pictdb/internal/pictdbhttp"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

// normalizeLongFlags rewrites single-dash multi-character tokens ("-addr")
// into their double-dash form ("--addr") before handing args to pflag.
// pflag otherwise parses a bare "-addr" as a cluster of POSIX single-letter
// shorthands and fails with "unknown shorthand flag".
func normalizeLongFlags(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if len(a) > 2 && a[0] == '-' && a[1] != '-' {
			a = "-" + a
		}
		out[i] = a
	}
	return out
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	addr := flag.String("addr", ":8000", "listen address")
	staticDir := flag.String("static", "static", "static asset directory served at /")
	if err := flag.CommandLine.Parse(normalizeLongFlags(os.Args[1:])); err != nil {
		log.Fatal(err)
	}

	args := flag.Args()
	if len(args) < 1 {
		log.Fatal("usage: pictdbserver [-addr :8000] [-static DIR] <dbfile>")
	}
	dbName := args[0]

	db, err := pictdb.Open(dbName, "rb+")
	if err != nil {
		log.WithField("db", dbName).Fatalf("open: %v", err)
	}
	defer db.Close()

	srv := pictdbhttp.New(db, *staticDir, log.WithField("db", dbName))

	log.WithFields(logrus.Fields{"addr": *addr, "db": dbName}).Info("pictdbserver listening")
	if err := http.ListenAndServe(*addr, srv); err != nil {
		log.Fatal(err)
	}
}
