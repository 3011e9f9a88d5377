package mask

// Style selects which comment markers Sanitize blanks out.
type Style uint8

const (
	// StyleNone leaves the text untouched.
	StyleNone Style = iota
	// StyleHash blanks leading '#' runs (python).
	StyleHash
	// StyleSlash blanks '//' runs and '/* ... */' delimiters (c family).
	StyleSlash
	// StylePercent blanks leading '%' runs (latex).
	StylePercent
)

// Sanitize replaces comment markers with spaces, character for
// character: the output always has the same character count as the
// input, so byte positions computed before sanitizing stay valid
// after masking. Re-sanitizing already sanitized text is a no-op.
func Sanitize(text string, style Style) string {
	if text == "" {
		return text
	}

	switch style {
	case StyleHash:
		return sanitizeHash(text)
	case StyleSlash:
		return sanitizeSlash(text)
	case StylePercent:
		return sanitizePercent(text)
	}
	return text
}

func sanitizeHash(text string) string {
	result := []rune(text)
	i := 0
	for i < len(result) && result[i] == '#' {
		result[i] = ' '
		i++
	}
	for i < len(result) && (result[i] == ' ' || result[i] == '\t') {
		result[i] = ' '
		i++
	}
	return string(result)
}

func sanitizeSlash(text string) string {
	result := []rune(text)
	switch {
	case len(result) >= 2 && result[0] == '/' && result[1] == '/':
		i := 0
		for i < len(result) && result[i] == '/' {
			result[i] = ' '
			i++
		}
		for i < len(result) && (result[i] == ' ' || result[i] == '\t') {
			result[i] = ' '
			i++
		}
	case len(result) >= 2 && result[0] == '/' && result[1] == '*':
		result[0] = ' '
		result[1] = ' '
		i := 2
		for i < len(result) && result[i] == '*' {
			result[i] = ' '
			i++
		}
		for i < len(result) && (result[i] == ' ' || result[i] == '\t') {
			result[i] = ' '
			i++
		}
		// Хвостовой */ и звёздочки перед ним. Если звёздочку уже съел
		// префиксный проход, хвост остаётся как есть.
		if len(result) >= 2 && result[len(result)-1] == '/' && result[len(result)-2] == '*' {
			result[len(result)-1] = ' '
			result[len(result)-2] = ' '
			j := len(result) - 3
			for j >= 0 && result[j] == '*' {
				result[j] = ' '
				j--
			}
		}
	}
	return string(result)
}

func sanitizePercent(text string) string {
	result := []rune(text)
	result[0] = ' '
	idx := 1
	for idx < len(result) && result[idx] == '%' {
		result[idx] = ' '
		idx++
	}
	for idx < len(result) && (result[idx] == ' ' || result[idx] == '\t') {
		result[idx] = ' '
		idx++
	}
	return string(result)
}
