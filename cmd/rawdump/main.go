// Command rawdump is a minimal smoke-test harness for the rawhttp package:
// it parses a request or response from stdin (or a file) and prints its
// start-line, headers, and body length.
//
// Kept as ambient test tooling alongside the library (SPEC_FULL.md §4.12);
// not part of the wire-format library itself.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	rawhttp "github.com/flrdv/rawhttp"
)

func main() {
	var (
		file     = flag.String("file", "", "path to a file containing the message; defaults to stdin")
		response = flag.Bool("response", false, "parse a response instead of a request")
	)
	flag.Parse()

	src := io.Reader(os.Stdin)
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		src = f
	}

	rh := rawhttp.Default()

	if *response {
		resp, err := rh.ParseResponse(src, nil)
		if err != nil {
			log.Fatal(err)
		}
		dumpResponse(resp)
		return
	}

	req, err := rh.ParseRequest(src, nil)
	if err != nil {
		log.Fatal(err)
	}
	dumpRequest(req)
}

func dumpRequest(req rawhttp.Request) {
	fmt.Printf("%s %s\n", req.RequestLine.Method, req.RequestLine.Target)

	for _, e := range req.Headers.Entries() {
		fmt.Printf("  %s: %s\n", e.Name, e.Value)
	}

	if !req.HasBody() {
		fmt.Println("(no body)")
		return
	}

	data, err := req.Body.Eagerly()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("body: %d bytes\n", len(data))
}

func dumpResponse(resp rawhttp.Response) {
	fmt.Printf("%s %d %s\n", resp.StatusLine.Version, resp.StatusLine.Code, resp.StatusLine.Reason)

	for _, e := range resp.Headers.Entries() {
		fmt.Printf("  %s: %s\n", e.Name, e.Value)
	}

	if !resp.HasBody() {
		fmt.Println("(no body)")
		return
	}

	data, err := resp.Body.Eagerly()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("body: %d bytes\n", len(data))
}
