// Package render writes the billboard and user info as text tables
package render // import "github.com/favorexchange/favor-billboard/pkg/render"

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/favorexchange/favor-billboard/pkg/model"
)

const (
	shortIDLen  = 10
	emptyColumn = "-"
)

// ShortID returns the first bytes of a favor id in hex, enough to tell
// favors apart on a table
func ShortID(id common.Hash) string {
	return shorten(id.Hex())
}

func shorten(hex string) string {
	if len(hex) <= shortIDLen {
		return hex
	}
	return hex[:shortIDLen]
}

func partyColumn(addr common.Address, name string) string {
	if model.IsNullAddress(addr) {
		return emptyColumn
	}
	if name != "" {
		return name
	}
	return shorten(addr.Hex())
}

func controlsColumn(controls []model.Control) string {
	if len(controls) == 0 {
		return emptyColumn
	}
	names := make([]string, len(controls))
	for i, c := range controls {
		names[i] = c.String()
	}
	return strings.Join(names, ",")
}

// WriteBillboard writes one row per favor as seen by user in list order.
// Favors in a terminal state are skipped.
func WriteBillboard(w io.Writer, favors []*model.Favor, user common.Address) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tTITLE\tLOCATION\tCLIENT\tPROVIDER\tCOST\tSTATE\tSTYLE\tCONTROLS") // nolint: errcheck

	for _, f := range favors {
		display := model.Project(f, user)
		if display.Removed {
			continue
		}
		fmt.Fprintf( // nolint: errcheck
			tw,
			"%v\t%v\t%v\t%v\t%v\t%v\t%v\t%v\t%v\t%v\n",
			ShortID(f.ID()),
			model.CategoryName(f.Category()),
			f.Title(),
			f.Location(),
			partyColumn(f.ClientAddr(), f.ClientName()),
			partyColumn(f.ProviderAddr(), f.ProviderName()),
			f.Cost(),
			display.State,
			display.Style,
			controlsColumn(display.Controls),
		)
	}
	return errors.WithMessage(tw.Flush(), "error writing billboard")
}

// WriteFavor writes every field of a single favor as seen by user
func WriteFavor(w io.Writer, f *model.Favor, user common.Address) error {
	display := model.Project(f, user)
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	fmt.Fprintf(tw, "id:\t%v\n", f.ID().Hex())                                          // nolint: errcheck
	fmt.Fprintf(tw, "title:\t%v\n", f.Title())                                          // nolint: errcheck
	fmt.Fprintf(tw, "location:\t%v\n", f.Location())                                    // nolint: errcheck
	fmt.Fprintf(tw, "description:\t%v\n", f.Description())                              // nolint: errcheck
	fmt.Fprintf(tw, "category:\t%v\n", model.CategoryName(f.Category()))                // nolint: errcheck
	fmt.Fprintf(tw, "cost:\t%v\n", f.Cost())                                            // nolint: errcheck
	fmt.Fprintf(tw, "client:\t%v\n", partyColumn(f.ClientAddr(), f.ClientName()))       // nolint: errcheck
	fmt.Fprintf(tw, "provider:\t%v\n", partyColumn(f.ProviderAddr(), f.ProviderName())) // nolint: errcheck
	fmt.Fprintf(tw, "state:\t%v\n", display.State)                                      // nolint: errcheck
	fmt.Fprintf(tw, "involvement:\t%v\n", display.Involvement)                          // nolint: errcheck
	fmt.Fprintf(tw, "controls:\t%v\n", controlsColumn(display.Controls))                // nolint: errcheck
	return errors.WithMessage(tw.Flush(), "error writing favor")
}

// WriteUserInfo writes the profile and balance of a user
func WriteUserInfo(w io.Writer, info *model.UserInfo) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	fmt.Fprintf(tw, "address:\t%v\n", info.Address().Hex())    // nolint: errcheck
	fmt.Fprintf(tw, "registered:\t%v\n", info.IsRegistered())  // nolint: errcheck
	fmt.Fprintf(tw, "name:\t%v\n", info.Name())                // nolint: errcheck
	fmt.Fprintf(tw, "public key:\t%v\n", info.PublicKey())     // nolint: errcheck
	fmt.Fprintf(tw, "contact info:\t%v\n", info.ContactInfo()) // nolint: errcheck
	fmt.Fprintf(tw, "balance:\t%v\n", info.Balance())          // nolint: errcheck
	return errors.WithMessage(tw.Flush(), "error writing user info")
}
