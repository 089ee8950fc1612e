package stack

// openerFor maps each closing bracket to the opener it must match.
var openerFor = map[rune]rune{
	')': '(',
	']': '[',
	'}': '{',
}

// IsBalanced reports whether the brackets in s are properly nested and
// matched. Characters other than the six bracket symbols are ignored.
// The empty string is balanced.
func IsBalanced(s string) bool {
	var open []rune
	for _, ch := range s {
		switch ch {
		case '(', '[', '{':
			open = append(open, ch)
		case ')', ']', '}':
			n := len(open)
			if n == 0 || open[n-1] != openerFor[ch] {
				return false
			}
			open = open[:n-1]
		}
	}

	return len(open) == 0
}
