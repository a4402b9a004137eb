package sanitizer

import "regexp"

// redundantSpaceRegex matches runs of two or more whitespace characters.
// A single tab or newline is left untouched.
var redundantSpaceRegex = regexp.MustCompile(`[\s\p{Zs}]{2,}`)
