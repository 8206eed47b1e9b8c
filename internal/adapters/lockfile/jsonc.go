package lockfile

// normalizeJSONC rewrites permissive lockfile text into strict JSON. The
// lockfile dialect allows trailing commas before "}" and "]" as well as
// line and block comments. The scan is string-aware, so string values that
// happen to contain comma-brace sequences or comment markers pass through
// untouched.
func normalizeJSONC(src []byte) []byte {
	out := make([]byte, 0, len(src))
	n := len(src)
	i := 0

	for i < n {
		c := src[i]
		switch {
		case c == '"':
			out = append(out, c)
			i++
			for i < n {
				out = append(out, src[i])
				if src[i] == '\\' {
					if i+1 < n {
						out = append(out, src[i+1])
					}
					i += 2
					continue
				}
				if src[i] == '"' {
					i++
					break
				}
				i++
			}

		case c == '/' && i+1 < n && src[i+1] == '/':
			for i < n && src[i] != '\n' {
				i++
			}

		case c == '/' && i+1 < n && src[i+1] == '*':
			i += 2
			for i+1 < n && !(src[i] == '*' && src[i+1] == '/') {
				i++
			}
			i += 2

		case c == ',':
			if closesScope(src, i+1) {
				i++
				continue
			}
			out = append(out, c)
			i++

		default:
			out = append(out, c)
			i++
		}
	}

	return out
}

// closesScope reports whether the next significant character at or after
// position i closes an object or array, making a preceding comma trailing.
func closesScope(src []byte, i int) bool {
	n := len(src)
	for i < n {
		switch c := src[i]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '/' && i+1 < n && src[i+1] == '/':
			for i < n && src[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < n && src[i+1] == '*':
			i += 2
			for i+1 < n && !(src[i] == '*' && src[i+1] == '/') {
				i++
			}
			i += 2
		default:
			return c == '}' || c == ']'
		}
	}
	return false
}
