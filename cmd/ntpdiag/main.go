package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/akaere/ntpdiag"
	"github.com/beevik/ntp"
)

var (
	fc = flag.String("c", "", "yaml config file")
	ft = flag.Int("t", 0, "timeout in seconds, overrides config")
	fm = flag.String("metric", "", "prometheus listen, overrides config")
	fv = flag.Bool("v", false, "print version")

	fcompare = flag.Bool("compare", false, "crosscheck against a reference NTP client")
	fpprof   = flag.String("pprof", "", "pprof listen")

	Version = "dev"
)

func main() {
	flag.Parse()

	if *fv {
		fmt.Println(Version)
		return
	}

	if *fpprof != "" {
		go http.ListenAndServe(*fpprof, nil)
	}

	var (
		cfg *ntpdiag.Config
		err error
	)
	if *fc != "" {
		cfg, err = ntpdiag.NewConfigFromFile(*fc)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		cfg = &ntpdiag.Config{}
	}
	if *ft > 0 {
		cfg.TimeoutSec = *ft
	}
	if *fm != "" {
		cfg.Metric = *fm
	}

	if flag.NArg() != 1 || flag.Arg(0) == "" {
		fmt.Print(ntpdiag.RenderUsage())
		os.Exit(2)
	}
	server := flag.Arg(0)

	r, err := ntpdiag.New(cfg).Probe(server)
	if err != nil {
		fmt.Print(ntpdiag.RenderError(server, err))
		os.Exit(1)
	}
	fmt.Print(ntpdiag.RenderReport(r))

	if *fcompare {
		compare(server, r, cfg)
	}
}

// compare runs the same query through an independent client library and
// prints both measurements side by side. Useful when a raw probe result
// looks suspicious.
func compare(server string, r *ntpdiag.Result, cfg *ntpdiag.Config) {
	resp, err := ntp.QueryWithOptions(server, ntp.QueryOptions{
		Timeout: time.Duration(cfg.TimeoutSec) * time.Second,
	})
	if err != nil {
		fmt.Printf("%% Crosscheck failed: %s\n", err)
		return
	}
	fmt.Printf("%%\n")
	fmt.Printf("%% Crosscheck (reference client):\n")
	fmt.Printf("offset:          %.3f ms (probe) vs %.3f ms (reference)\n",
		float64(r.OffsetMicros)/1000,
		float64(resp.ClockOffset.Microseconds())/1000)
	fmt.Printf("round-trip:      %.3f ms (probe) vs %.3f ms (reference)\n",
		float64(r.RoundTripMicros)/1000,
		float64(resp.RTT.Microseconds())/1000)
}
