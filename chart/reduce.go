package chart

// Ceiling is the largest value Reduce leaves untouched.
type Ceiling int

const (
	// KeepMaster keeps master numbers: values up to 22 are not reduced.
	KeepMaster Ceiling = 22

	// FullReduce reduces down to a single digit.
	FullReduce Ceiling = 9
)

// Reduce replaces n by the sum of its decimal digits while n exceeds the
// ceiling. Values at or below the ceiling, including 0, are returned as is.
func Reduce(n int, c Ceiling) int {
	for n > int(c) {
		sum := 0
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}
	return n
}

// reduceKeep is the common composite reduction.
func reduceKeep(n int) int {
	return Reduce(n, KeepMaster)
}
