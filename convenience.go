package ntpdiag

// 2^-20 seconds, roughly a microsecond, used when the kernel precision
// cannot be read.
const defaultPrecision int8 = -20

func absInt64(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}
