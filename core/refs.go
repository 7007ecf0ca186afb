package core

import (
	"regexp"
	"strconv"
	"strings"
)

// ClosingKeywords are the reference keywords recognized ahead of an issue
// number in PR titles and bodies. Bare "#N" references are recognized as
// well; the keyword prefix is optional.
var ClosingKeywords = []string{
	"close", "closes", "closed",
	"fix", "fixes", "fixed",
	"resolve", "resolves", "resolved",
}

var issueRefPattern = regexp.MustCompile(
	`(?i)(?:\b(?:` + strings.Join(ClosingKeywords, "|") + `)[:\s]+)?#(\d+)`,
)

// ExtractIssueRefs returns the set of issue numbers referenced in the given
// text. It recognizes "fixes #12", "Closes: #7" and bare "#3" forms,
// case-insensitively.
func ExtractIssueRefs(text string) map[int]struct{} {
	refs := make(map[int]struct{})
	for _, m := range issueRefPattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			continue
		}
		refs[n] = struct{}{}
	}
	return refs
}
