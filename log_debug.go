//go:build debug

package ntpdiag

import "log"

const debug = true

func init() {
	log.SetFlags(log.Lshortfile | log.LstdFlags)
	log.SetPrefix("[DEBG] ")
}
