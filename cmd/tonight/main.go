// Command tonight prints the sky report for one night on stdout.
//
//	tonight -lat 40.7128 -lng -74.0060 [-date 2023-10-14]
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/skydash/skydash/pkg/report"
)

func main() {
	lat := flag.Float64("lat", 40.7128, "observer latitude in degrees")
	lng := flag.Float64("lng", -74.0060, "observer longitude in degrees")
	date := flag.String("date", time.Now().UTC().Format(report.DateLayout), "date as YYYY-MM-DD")
	flag.Parse()

	rep, err := report.Build(report.Request{
		Date:      *date,
		Latitude:  *lat,
		Longitude: *lng,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "tonight: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(rep.String())
}
