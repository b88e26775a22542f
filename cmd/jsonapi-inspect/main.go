package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/pflag"

	"github.com/apifoundry/jsonapi"
)

func describe(doc *jsonapi.Document) string {
	out := ""
	switch {
	case doc.Data.IsSingle():
		out += "data: single resource\n"
	case doc.HasCollection():
		out += "data: resource collection\n"
	case doc.Data.IsAbsent():
		out += "data: absent\n"
	default:
		out += "data: invalid shape (not an object or array)\n"
	}
	if doc.HasErrors() {
		out += fmt.Sprintf("errors: %d\n", len(doc.Errors))
		for _, e := range doc.Errors {
			out += fmt.Sprintf("  - status=%q code=%q title=%q\n", e.Status, e.Code, e.Title)
		}
	}
	if len(doc.Included) > 0 {
		out += fmt.Sprintf("included: %d resources\n", len(doc.Included))
	}
	if len(doc.Links) > 0 {
		out += "links:\n"
		for name, link := range doc.Links {
			if link == nil {
				out += fmt.Sprintf("  - %v: null\n", name)
				continue
			}
			out += fmt.Sprintf("  - %v: %v\n", name, link.HREF)
		}
	}
	for name := range doc.Extensions {
		out += fmt.Sprintf("extension member: %v\n", name)
	}
	return out
}

func main() {
	input := pflag.StringP("input", "i", "", "the document to inspect (defaults to stdin)")
	reserialize := pflag.BoolP("reserialize", "r", false, "emit the document re-serialized instead of a report")
	pflag.Parse()

	var body []byte
	var err error
	if *input == "" {
		body, err = ioutil.ReadAll(os.Stdin)
	} else {
		body, err = ioutil.ReadFile(*input)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error reading input: "+err.Error())
		os.Exit(1)
	}

	doc, err := jsonapi.ParseDocument(body)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error parsing document: "+err.Error())
		os.Exit(1)
	}
	if doc == nil {
		fmt.Fprintln(os.Stderr, "no document produced")
		os.Exit(1)
	}

	if *reserialize {
		out, err := doc.MarshalJSON()
		if err != nil {
			fmt.Fprintln(os.Stderr, "error serializing document: "+err.Error())
			os.Exit(1)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return
	}

	fmt.Fprint(os.Stdout, describe(doc))
}
