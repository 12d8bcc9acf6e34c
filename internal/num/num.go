package num

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// MaxDigits is the longest digit string a uint64 can produce (base 10).
const MaxDigits = 20

// DigitCount returns the number of digits v renders to in the given base.
// Zero counts as one digit.
func DigitCount(v uint64, base uint64) int {
	n := 1
	for v >= base {
		v /= base
		n++
	}
	return n
}

// AppendDigits appends the minimal digit string for v in the given base.
// Zero renders as a single "0". Sign and padding are the caller's concern.
func AppendDigits(dst []byte, v uint64, base uint64, upper bool) []byte {
	digits := lowerDigits
	if upper {
		digits = upperDigits
	}

	var tmp [MaxDigits]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = digits[v%base]
		v /= base
		if v == 0 {
			break
		}
	}
	return append(dst, tmp[i:]...)
}
