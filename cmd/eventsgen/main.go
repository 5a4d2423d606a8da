// Generates the list of event names for the favor exchange contract
package main

import (
	"bytes"
	"flag"
	"io/ioutil"
	"os"

	log "github.com/golang/glog"

	"github.com/favorexchange/favor-billboard/pkg/gen"
)

func main() {
	packageName := flag.String("package", "contract", "Package name of the generated file")
	outFile := flag.String("out", "events_gen.go", "Path of the generated file")
	flag.Parse()

	buf := &bytes.Buffer{}
	err := gen.GenerateEventLists(buf, *packageName, gen.DefaultContractSpecs())
	if err != nil {
		log.Errorf("Error generating event lists: err: %v", err)
		os.Exit(2)
	}
	err = ioutil.WriteFile(*outFile, buf.Bytes(), 0644)
	if err != nil {
		log.Errorf("Error writing %v: err: %v", *outFile, err)
		os.Exit(2)
	}
	log.Infof("Wrote %v", *outFile)
	log.Flush()
}
