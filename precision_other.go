//go:build !linux

package ntpdiag

func localPrecision() int8 {
	return defaultPrecision
}
