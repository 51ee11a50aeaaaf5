package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List recognized date shapes and file format hints",
		Run: func(cmd *cobra.Command, args []string) {
			p := newPrinter("table")
			p.table(
				[]string{"TAG", "SHAPE", "EXAMPLE"},
				[][]string{
					{"iso", "YYYY-MM-DDTHH:MM:SS[.sss][Z|±HH:MM]", "2023-12-25T10:30:00Z"},
					{"rfc2822", "Ddd, DD Mon YYYY HH:MM:SS TZ", "Mon, 25 Dec 2023 10:30:00 GMT"},
					{"unix", "10 or 13 digit epoch", "1703508600"},
					{"utc", "Ddd Mon DD YYYY HH:MM:SS GMT±HHHH", "Mon Dec 25 2023 10:30:00 GMT+0000"},
					{"local", "M/D/YYYY HH:MM:SS", "12/25/2023 10:30:00"},
					{"simple", "YYYY-MM-DD", "2023-12-25"},
					{"custom", "format-specific carriers", `datetime="2023-12-25", new Date("...")`},
				},
			)
			fmt.Fprintln(p.w, "\nFile format hints: json, yaml, csv, xml, log, javascript, typescript, html")
		},
	}
}
