package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/arceus-db/pictdb/internal/pictdb"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

// normalizeLongFlags rewrites single-dash multi-character tokens
// ("-max_files") into their double-dash form ("--max_files") before handing
// args to pflag. pflag otherwise parses a bare "-max_files" as a cluster of
// POSIX single-letter shorthands ('m', 'a', 'x', ...) and fails with
// "unknown shorthand flag". The CLI surface (§6) documents the single-dash
// spelling literally (`create <db> [-max_files N] ...`), so both spellings
// must be accepted.
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

func cmdList(log *logrus.Logger, args []string) error {
	if len(args) < 1 {
		return newErr("list", pictdb.KindNotEnoughArguments, "usage: pictdbm list <dbfile>")
	}
	db, err := pictdb.Open(args[0], "rb")
	if err != nil {
		return err
	}
	defer db.Close()

	out, err := db.List(pictdb.ListStdout)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func cmdCreate(log *logrus.Logger, args []string) error {
	if len(args) < 1 {
		return newErr("create", pictdb.KindNotEnoughArguments, "usage: pictdbm create <dbfile> [-max_files N] [-thumb_res X Y] [-small_res X Y]")
	}
	name := args[0]

	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	maxFiles := fs.Int("max_files", pictdb.DefMaxFiles, "maximum number of pictures")
	thumbRes := fs.UintSlice("thumb_res", nil, "thumbnail resolution: X Y")
	smallRes := fs.UintSlice("small_res", nil, "small resolution: X Y")
	// -thumb_res and -small_res take X and Y as two separate arguments;
	// join such a pair into the "X,Y" form UintSlice parses.
	rest := normalizeLongFlags(args[1:])
	joined := make([]string, 0, len(rest))
	for i := 0; i < len(rest); i++ {
		a := rest[i]
		if (a == "--thumb_res" || a == "--small_res") && i+2 < len(rest) &&
			!strings.Contains(rest[i+1], ",") && !strings.HasPrefix(rest[i+2], "-") {
			a = a + "=" + rest[i+1] + "," + rest[i+2]
			i += 2
		}
		joined = append(joined, a)
	}
	if err := fs.Parse(joined); err != nil {
		return newErr("create", pictdb.KindInvalidArgument, err.Error())
	}

	params := pictdb.CreateParams{MaxFiles: *maxFiles}
	if len(*thumbRes) == 2 {
		params.ThumbRes = [2]uint16{uint16((*thumbRes)[0]), uint16((*thumbRes)[1])}
	}
	if len(*smallRes) == 2 {
		params.SmallRes = [2]uint16{uint16((*smallRes)[0]), uint16((*smallRes)[1])}
	}

	db, err := pictdb.Create(name, params)
	if err != nil {
		return err
	}
	defer db.Close()

	log.WithField("db", name).Info("database file created")
	fmt.Printf("%d item(s) written\n", db.MaxFiles()+1)
	return nil
}

func cmdRead(log *logrus.Logger, args []string) error {
	if len(args) < 2 {
		return newErr("read", pictdb.KindNotEnoughArguments, "usage: pictdbm read <dbfile> <pict_id> [thumb|small|orig]")
	}
	name, pictID := args[0], args[1]
	token := "original"
	if len(args) >= 3 {
		token = args[2]
	}
	res, err := pictdb.ParseResolution(token)
	if err != nil {
		return err
	}

	db, err := pictdb.Open(name, "rb+")
	if err != nil {
		return err
	}
	defer db.Close()

	payload, err := db.Read(pictID, res)
	if err != nil {
		return err
	}

	outName, err := pictdb.CreateName(pictID, res)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outName, payload, 0o644); err != nil {
		return newErr("read", pictdb.KindIO, err.Error())
	}

	log.WithFields(logrus.Fields{"db": name, "pict_id": pictID, "res": res.String()}).Info("picture written")
	fmt.Println(outName)
	return nil
}

func cmdInsert(log *logrus.Logger, args []string) error {
	if len(args) < 3 {
		return newErr("insert", pictdb.KindNotEnoughArguments, "usage: pictdbm insert <dbfile> <pict_id> <path>")
	}
	name, pictID, path := args[0], args[1], args[2]

	payload, err := os.ReadFile(path)
	if err != nil {
		return newErr("insert", pictdb.KindIO, err.Error())
	}

	db, err := pictdb.Open(name, "rb+")
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Insert(payload, pictID); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"db": name, "pict_id": pictID}).Info("picture inserted")
	fmt.Println("1 item(s) written")
	return nil
}

func cmdDelete(log *logrus.Logger, args []string) error {
	if len(args) < 2 {
		return newErr("delete", pictdb.KindNotEnoughArguments, "usage: pictdbm delete <dbfile> <pict_id>")
	}
	name, pictID := args[0], args[1]

	db, err := pictdb.Open(name, "rb+")
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Delete(pictID); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"db": name, "pict_id": pictID}).Info("picture deleted")
	return nil
}

func cmdGC(log *logrus.Logger, args []string) error {
	if len(args) < 2 {
		return newErr("gc", pictdb.KindNotEnoughArguments, "usage: pictdbm gc <dbfile> <tmp_dbfile>")
	}
	name, tmpName := args[0], args[1]

	db, err := pictdb.Open(name, "rb+")
	if err != nil {
		return err
	}

	if err := db.GarbageCollect(tmpName); err != nil {
		return err
	}

	log.WithField("db", name).Info("database garbage-collected")
	return nil
}

func newErr(op string, kind pictdb.Kind, msg string) error {
	return fmt.Errorf("pictdbm: %s: %s: %s", op, kind, msg)
}
