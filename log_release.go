//go:build !debug

package ntpdiag

const debug = false
