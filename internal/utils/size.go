package utils

import (
	"strconv"
)

const (
	bytesPerKilobyte  int64 = 1024
	bytesPerMegabyte        = bytesPerKilobyte * 1024
	tokensPerThousand       = 1000
	tokensPerMillion        = 1000 * 1000

	// rollover thresholds, in tenths of the smaller unit
	tenthsPerKilobyteRollover = 1024 * 10
	tenthsPerThousandRollover = 1000 * 10
)

// FormatFileSize converts a byte length into a kb or mb string with one decimal, rounded half up.
// A trailing ".0" is dropped and non-empty files never render as zero.
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0kb"
	}
	kilobyteTenths := roundedTenths(bytes, bytesPerKilobyte)
	if kilobyteTenths == 0 {
		kilobyteTenths = 1
	}
	if kilobyteTenths < tenthsPerKilobyteRollover {
		return formatTenths(kilobyteTenths) + "kb"
	}
	return formatTenths(roundedTenths(bytes, bytesPerMegabyte)) + "mb"
}

// FormatTokenCount abbreviates a token count with k and M suffixes, one decimal, rounded half up.
func FormatTokenCount(tokens int) string {
	if tokens <= 0 {
		return "0"
	}
	if tokens < tokensPerThousand {
		return strconv.Itoa(tokens)
	}
	thousandTenths := roundedTenths(int64(tokens), tokensPerThousand)
	if thousandTenths < tenthsPerThousandRollover {
		return formatTenths(thousandTenths) + "k"
	}
	return formatTenths(roundedTenths(int64(tokens), tokensPerMillion)) + "M"
}

// roundedTenths returns value/unit in tenths, rounded half up, using integer arithmetic only.
func roundedTenths(value int64, unit int64) int64 {
	return (value*10 + unit/2) / unit
}

func formatTenths(tenths int64) string {
	whole := strconv.FormatInt(tenths/10, 10)
	fraction := tenths % 10
	if fraction == 0 {
		return whole
	}
	return whole + "." + strconv.FormatInt(fraction, 10)
}
