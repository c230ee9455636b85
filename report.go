package ntpdiag

import (
	"fmt"
	"strings"
)

const timeLayout = "2006-01-02 15:04:05 UTC"

func formatMicros(us int64) string {
	return unixMicrosToTime(us).UTC().Format(timeLayout)
}

// RenderReport turns a probe result into the whois style plain text
// report served by the lookup gateway.
func RenderReport(r *Result) string {
	var w strings.Builder

	offsetMs := float64(r.OffsetMicros) / 1000
	rttMs := float64(r.RoundTripMicros) / 1000

	fmt.Fprintf(&w, "%% NTP Time Synchronization Test\n")
	fmt.Fprintf(&w, "%% Server: %s\n", r.Server)
	fmt.Fprintf(&w, "%% Resolved to: %s\n", r.Addr)
	fmt.Fprintf(&w, "%%\n")
	fmt.Fprintf(&w, "%% Server Information:\n")
	fmt.Fprintf(&w, "stratum:         %d (%s)\n", r.Stratum, r.StratumDesc)
	fmt.Fprintf(&w, "precision:       2^%d seconds\n", r.Precision)
	fmt.Fprintf(&w, "root-delay:      %d ms\n", r.RootDelayMillis)
	fmt.Fprintf(&w, "root-dispersion: %d ms\n", r.RootDispersionMillis)
	fmt.Fprintf(&w, "%%\n")
	fmt.Fprintf(&w, "%% Time Information:\n")
	fmt.Fprintf(&w, "server-time:     %s\n", formatMicros(r.ServerTime))
	fmt.Fprintf(&w, "local-time:      %s\n", formatMicros(r.LocalTime))
	fmt.Fprintf(&w, "%%\n")
	fmt.Fprintf(&w, "%% Synchronization Metrics:\n")
	fmt.Fprintf(&w, "offset:          %.3f ms (%.6f seconds)\n", offsetMs, offsetMs/1000)
	fmt.Fprintf(&w, "round-trip:      %.3f ms\n", rttMs)
	fmt.Fprintf(&w, "%%\n")

	switch r.Band {
	case BandWarning:
		fmt.Fprintf(&w, "%% WARNING: Clock offset is %.3f seconds\n", offsetMs/1000)
		fmt.Fprintf(&w, "%% Your local clock may need adjustment\n")
	case BandSignificant:
		fmt.Fprintf(&w, "%% Clock offset is significant: %.1fms\n", offsetMs)
	case BandSynchronized:
		fmt.Fprintf(&w, "%% Clock is synchronized (offset: %.1fms)\n", offsetMs)
	default:
		fmt.Fprintf(&w, "%% Excellent synchronization! (offset: %.2fms)\n", offsetMs)
	}

	fmt.Fprintf(&w, "%%\n")
	fmt.Fprintf(&w, "%% Note: This is a test query only. System time was not modified.\n")
	return w.String()
}

// RenderError is the failure counterpart of RenderReport.
func RenderError(server string, err error) string {
	var w strings.Builder
	fmt.Fprintf(&w, "%% NTP Time Synchronization Test\n")
	fmt.Fprintf(&w, "%% Server: %s\n", server)
	fmt.Fprintf(&w, "%% Error: %s\n", err)
	fmt.Fprintf(&w, "%%\n")
	fmt.Fprintf(&w, "%% Possible reasons:\n")
	fmt.Fprintf(&w, "%% - Server is unreachable\n")
	fmt.Fprintf(&w, "%% - Firewall blocking UDP port 123\n")
	fmt.Fprintf(&w, "%% - Invalid server address\n")
	fmt.Fprintf(&w, "%% - Server is not responding\n")
	fmt.Fprintf(&w, "%%\n")
	fmt.Fprintf(&w, "%% Try these public NTP servers:\n")
	for _, s := range publicServers {
		fmt.Fprintf(&w, "%%   %s\n", s)
	}
	return w.String()
}

// RenderUsage is shown when no server was given at all.
func RenderUsage() string {
	var w strings.Builder
	fmt.Fprintf(&w, "%% NTP Time Synchronization Test\n")
	fmt.Fprintf(&w, "%% Error: No server specified\n")
	fmt.Fprintf(&w, "%%\n")
	fmt.Fprintf(&w, "%% Usage: ntpdiag <server>\n")
	fmt.Fprintf(&w, "%%\n")
	fmt.Fprintf(&w, "%% Examples:\n")
	for _, s := range publicServers {
		fmt.Fprintf(&w, "%%   ntpdiag %s\n", s)
	}
	return w.String()
}

var publicServers = []string{
	"pool.ntp.org",
	"time.google.com",
	"time.cloudflare.com",
	"ntp.aliyun.com",
	"cn.pool.ntp.org",
}
