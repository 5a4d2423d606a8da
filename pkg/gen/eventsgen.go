// Package gen contains all the components for code generation.
package gen

import (
	"bytes"
	"go/format"
	"io"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	log "github.com/golang/glog"

	"github.com/favorexchange/favor-billboard/pkg/contract"
)

// EventListContractTmplData represents the events for each supported contract
type EventListContractTmplData struct {
	Name       string
	EventNames []string
}

// EventListTmplData represents the data passed to the EventList template
type EventListTmplData struct {
	PackageName string
	GenTime     time.Time
	Contracts   []*EventListContractTmplData
}

// ContractSpec is the name and ABI of a contract to generate event lists for
type ContractSpec struct {
	Name   string
	AbiStr string
}

// DefaultContractSpecs returns the contracts handled by the billboard
func DefaultContractSpecs() []*ContractSpec {
	return []*ContractSpec{
		{Name: contract.FavorExchangeContractName, AbiStr: contract.FavorExchangeABI},
	}
}

// GenerateEventLists generates the code that represents the list of event names
// for each relevant contract
func GenerateEventLists(writer io.Writer, packageName string, specs []*ContractSpec) error {
	contracts := []*EventListContractTmplData{}
	for _, spec := range specs {
		_abi, err := loadAbiFromStr(spec.AbiStr)
		if err != nil {
			log.Errorf("Error loading ABI from string: err: %v", err)
			continue
		}
		eventNames := retrieveEventNamesFromAbi(_abi)
		contract := &EventListContractTmplData{
			Name:       spec.Name,
			EventNames: eventNames,
		}
		contracts = append(contracts, contract)
	}
	tmplData := &EventListTmplData{
		PackageName: packageName,
		Contracts:   contracts,
		GenTime:     time.Now().UTC(),
	}
	return generate(writer, "eventslist.tmpl", eventListTmpl, tmplData, true)
}

func retrieveEventNamesFromAbi(_abi *abi.ABI) []string {
	sortedEvents := eventsToSortedEventsSlice(_abi.Events)
	eventNames := make([]string, len(_abi.Events))
	for index, event := range sortedEvents {
		eventNames[index] = event.Name
	}
	return eventNames
}

func loadAbiFromStr(abiStr string) (*abi.ABI, error) {
	_abi, err := abi.JSON(strings.NewReader(abiStr))
	if err != nil {
		return nil, err
	}
	return &_abi, nil
}

func eventsToSortedEventsSlice(eventsMap map[string]abi.Event) []abi.Event {
	sortedEvents := make([]abi.Event, 0, len(eventsMap))
	for _, val := range eventsMap {
		sortedEvents = append(sortedEvents, val)
	}
	sort.Slice(sortedEvents, func(i, j int) bool {
		return sortedEvents[i].Name < sortedEvents[j].Name
	})
	return sortedEvents
}

func generate(writer io.Writer, tmplName string, tmpl string,
	tmplData interface{}, gofmt bool) error {
	t := template.Must(template.New(tmplName).Parse(tmpl))
	buf := &bytes.Buffer{}
	err := t.Execute(buf, tmplData)
	if err != nil {
		return err
	}
	output := buf.Bytes()
	if gofmt {
		output, err = format.Source(buf.Bytes())
		if err != nil {
			log.Errorf("ERROR Gofmt: err:%v\ntemplate generated code:\n%v", err, buf.String())
			return err
		}
	}
	_, err = writer.Write(output)
	return err
}
