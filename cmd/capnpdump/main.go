// Copyright 2017 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

// capnpdump loads a schema pool and a message file, then dumps the
// message's root struct reflectively, colorized when stdout is a
// terminal.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/Nader-Sl/capnproto/dynamic"
	"github.com/Nader-Sl/capnproto/schema"
	"github.com/Nader-Sl/capnproto/wire"
)

var (
	app = kingpin.New("capnpdump", "Dump a cap'n-proto-style message reflectively, given a compiled schema pool.")

	dumpCmd      = app.Command("dump", "dump a message's root struct")
	dumpSchema   = dumpCmd.Flag("schema", "path to a schema pool saved by schema.SaveCompressedFile").Required().String()
	dumpTypeName = dumpCmd.Flag("type", "fully-qualified struct type id, as a decimal uint64").Required().Uint64()
	dumpMessage  = dumpCmd.Arg("message", "path to the encoded message").Required().String()
	dumpNoColor  = dumpCmd.Flag("no-color", "disable ANSI colorization even on a TTY").Bool()
	dumpVerbose  = dumpCmd.Flag("verbose", "print the schema pool's fingerprint before the dump").Bool()
)

func main() {
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case dumpCmd.FullCommand():
		os.Exit(runDump())
	}
}

func runDump() int {
	pool, err := schema.LoadCompressedFile(*dumpSchema, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "capnpdump: loading schema:", err)
		return 1
	}

	mapped, err := wire.OpenMappedMessage(*dumpMessage)
	if err != nil {
		fmt.Fprintln(os.Stderr, "capnpdump: opening message:", err)
		return 1
	}
	defer mapped.Close()

	root, err := dynamic.GetRoot(mapped.Message, pool, *dumpTypeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "capnpdump: resolving root type:", err)
		return 1
	}

	if *dumpVerbose {
		fmt.Fprintln(os.Stderr, "capnpdump: schema fingerprint", pool.FingerprintString())
	}

	out := colorable.NewColorableStdout()
	useColor := !*dumpNoColor && isatty.IsTerminal(os.Stdout.Fd())
	dump := dynamic.Dump(dynamic.StructValue(root))
	if useColor {
		dump = ansi.Color(root.Node().Name, "cyan+b") + "\n" + dump
	} else {
		dump = root.Node().Name + "\n" + dump
	}
	fmt.Fprintln(out, dump)
	return 0
}
