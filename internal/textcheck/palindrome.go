package textcheck

// IsPalindrome reports whether s reads the same forwards and backwards.
// Comparison is rune by rune with no case folding or whitespace trimming,
// so "Aa" and "a " are not palindromes. The empty string is a palindrome.
func IsPalindrome(s string) bool {
	runes := []rune(s)
	length := len(runes)

	for i := 0; i < length/2; i++ {
		if runes[i] != runes[length-1-i] {
			return false
		}
	}

	return true
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
