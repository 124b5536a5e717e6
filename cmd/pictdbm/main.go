// Command pictdbm is the command-line front end for pictDB: create, insert,
// read, delete, list and garbage-collect a single-file image database.
package main

import (
	"fmt"
	"os"

	"github.com/arceus-db/pictdb/internal/pictdb"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if len(os.Args) < 2 {
		printHelp(os.Stdout)
		os.Exit(0)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "help", "-h", "--help":
		printHelp(os.Stdout)
		return
	case "list":
		err = cmdList(log, args)
	case "create":
		err = cmdCreate(log, args)
	case "read":
		err = cmdRead(log, args)
	case "insert":
		err = cmdInsert(log, args)
	case "delete":
		err = cmdDelete(log, args)
	case "gc":
		err = cmdGC(log, args)
	default:
		err = fmt.Errorf("pictdbm: unknown command %q", cmd)
		fmt.Fprintln(os.Stderr, err)
		printHelp(os.Stderr)
		os.Exit(1)
	}

	if err != nil {
		kind, ok := pictdb.ErrorKind(err)
		if ok {
			log.WithField("kind", kind.String()).Error(err)
		} else {
			log.Error(err)
		}
		os.Exit(1)
	}
}

func printHelp(w *os.File) {
	fmt.Fprintln(w, `pictdbm: single-file image database command-line tool

Usage:
  pictdbm help
  pictdbm list <dbfile>
  pictdbm create <dbfile> [-max_files N] [-thumb_res X Y] [-small_res X Y]
  pictdbm read <dbfile> <pict_id> [thumb|small|orig]
  pictdbm insert <dbfile> <pict_id> <path>
  pictdbm delete <dbfile> <pict_id>
  pictdbm gc <dbfile> <tmp_dbfile>`)
}
